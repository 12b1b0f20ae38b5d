package models

import (
	"fmt"

	"github.com/lib/pq"
)

// Hotel is one property in the catalog. The catalog is loaded once at
// startup and never mutated afterwards.
type Hotel struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name"`
	City        string         `json:"city"`
	Address     string         `json:"address"`
	Description string         `json:"description"`
	Price       int            `json:"price"` // base nightly price, whole rupees
	Rating      float64        `json:"rating"`
	RatingCount int            `json:"ratingCount"`
	Images      pq.StringArray `json:"images" gorm:"type:text[]"`
	Amenities   pq.StringArray `json:"amenities" gorm:"type:text[]"`
	Featured    bool           `json:"featured,omitempty"`
}

// Validate checks the catalog invariants: positive price, rating in
// [0,5], at least one image.
func (h *Hotel) Validate() error {
	if h.Price <= 0 {
		return fmt.Errorf("invalid price %d for hotel %s, must be positive", h.Price, h.ID)
	}
	if h.Rating < 0 || h.Rating > 5 {
		return fmt.Errorf("invalid rating %.1f for hotel %s, must be within [0,5]", h.Rating, h.ID)
	}
	if len(h.Images) == 0 {
		return fmt.Errorf("hotel %s has no images", h.ID)
	}
	return nil
}

// HasAmenity reports whether the hotel lists the given amenity label.
func (h *Hotel) HasAmenity(label string) bool {
	for _, a := range h.Amenities {
		if a == label {
			return true
		}
	}
	return false
}
