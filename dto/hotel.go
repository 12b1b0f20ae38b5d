package dto

import (
	"stayverse/models"
)

// FilterCriteria is the set of constraints a catalog search can apply.
// Zero values mean "no constraint"; MaxPrice zero is replaced with the
// default ceiling before filtering.
type FilterCriteria struct {
	City          string   `form:"city" json:"city"`
	MaxPrice      int      `form:"maxPrice" json:"maxPrice"`
	PropertyTypes []string `form:"propertyType" json:"propertyTypes"`
	StarRatings   []int    `form:"stars" json:"starRatings"`
	Amenities     []string `form:"amenity" json:"amenities"`
}

// IsZero reports whether no constraint is set at all.
func (f *FilterCriteria) IsZero() bool {
	return f.City == "" && f.MaxPrice == 0 &&
		len(f.PropertyTypes) == 0 && len(f.StarRatings) == 0 && len(f.Amenities) == 0
}

// HotelResponse is the list-view projection of a catalog entry.
type HotelResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	City        string   `json:"city"`
	Address     string   `json:"address"`
	Price       int      `json:"price"`
	Rating      float64  `json:"rating"`
	RatingCount int      `json:"ratingCount"`
	Image       string   `json:"image"`
	Amenities   []string `json:"amenities"`
	Featured    bool     `json:"featured,omitempty"`
}

// HotelDetailResponse carries the full record for the detail page.
type HotelDetailResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	City        string   `json:"city"`
	Address     string   `json:"address"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Rating      float64  `json:"rating"`
	RatingCount int      `json:"ratingCount"`
	Images      []string `json:"images"`
	Amenities   []string `json:"amenities"`
	Featured    bool     `json:"featured,omitempty"`
}

// ScoredHotel pairs a hotel with its relevance score in a fuzzy search.
type ScoredHotel struct {
	Hotel models.Hotel `json:"hotel"`
	Score int          `json:"score"`
}

// NewHotelResponse projects a catalog entry for list views.
func NewHotelResponse(h models.Hotel) HotelResponse {
	image := ""
	if len(h.Images) > 0 {
		image = h.Images[0]
	}
	return HotelResponse{
		ID:          h.ID,
		Name:        h.Name,
		City:        h.City,
		Address:     h.Address,
		Price:       h.Price,
		Rating:      h.Rating,
		RatingCount: h.RatingCount,
		Image:       image,
		Amenities:   h.Amenities,
		Featured:    h.Featured,
	}
}

// NewHotelDetailResponse projects the full record for the detail page.
func NewHotelDetailResponse(h models.Hotel) HotelDetailResponse {
	return HotelDetailResponse{
		ID:          h.ID,
		Name:        h.Name,
		City:        h.City,
		Address:     h.Address,
		Description: h.Description,
		Price:       h.Price,
		Rating:      h.Rating,
		RatingCount: h.RatingCount,
		Images:      h.Images,
		Amenities:   h.Amenities,
		Featured:    h.Featured,
	}
}
