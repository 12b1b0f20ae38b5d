package services

import (
	"fmt"
	"strings"

	"stayverse/constants"
	"stayverse/dto"
	"stayverse/models"
)

// Catalog holds the static hotel collection. It is built once at
// startup and read-only afterwards, so lookups need no locking.
type Catalog struct {
	hotels []models.Hotel
	byID   map[string]int
}

// NewCatalog validates every entry and indexes the collection.
func NewCatalog(hotels []models.Hotel) (*Catalog, error) {
	byID := make(map[string]int, len(hotels))
	for i, h := range hotels {
		if err := h.Validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog entry: %w", err)
		}
		if _, exists := byID[h.ID]; exists {
			return nil, fmt.Errorf("duplicate hotel id %s", h.ID)
		}
		byID[h.ID] = i
	}
	return &Catalog{hotels: hotels, byID: byID}, nil
}

// All returns the catalog in source order.
func (c *Catalog) All() []models.Hotel {
	return c.hotels
}

// ByID returns the hotel with the given id.
func (c *Catalog) ByID(id string) (*models.Hotel, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &c.hotels[idx], true
}

// Featured returns the hotels flagged for the landing page.
func (c *Catalog) Featured() []models.Hotel {
	featured := make([]models.Hotel, 0)
	for _, h := range c.hotels {
		if h.Featured {
			featured = append(featured, h)
		}
	}
	return featured
}

// Cities returns the distinct cities in catalog order.
func (c *Catalog) Cities() []string {
	seen := make(map[string]bool)
	cities := make([]string, 0)
	for _, h := range c.hotels {
		if !seen[h.City] {
			seen[h.City] = true
			cities = append(cities, h.City)
		}
	}
	return cities
}

// Search is the simple text search used on catalog load: exact city
// match when given, and a case-insensitive substring match of the
// query against name or description.
func (c *Catalog) Search(query, city string) []models.Hotel {
	lowerQuery := strings.ToLower(query)
	results := make([]models.Hotel, 0)
	for _, h := range c.hotels {
		if city != "" && h.City != city {
			continue
		}
		matchesName := strings.Contains(strings.ToLower(h.Name), lowerQuery)
		matchesDescription := strings.Contains(strings.ToLower(h.Description), lowerQuery)
		if matchesName || matchesDescription {
			results = append(results, h)
		}
	}
	return results
}

// Filter narrows the catalog to the entries matching every set
// dimension of the criteria, preserving source order. It never fails:
// an empty result is a valid result.
func (c *Catalog) Filter(criteria dto.FilterCriteria) []models.Hotel {
	maxPrice := criteria.MaxPrice
	if maxPrice == 0 {
		maxPrice = constants.DefaultMaxPrice
	}

	results := make([]models.Hotel, 0)
	for _, h := range c.hotels {
		if criteria.City != "" && h.City != criteria.City {
			continue
		}
		if h.Price > maxPrice {
			continue
		}
		if len(criteria.PropertyTypes) > 0 && !matchesPropertyType(h, criteria.PropertyTypes) {
			continue
		}
		if len(criteria.StarRatings) > 0 && !matchesStarBucket(h.Rating, criteria.StarRatings) {
			continue
		}
		if len(criteria.Amenities) > 0 && !hasAllAmenities(h, criteria.Amenities) {
			continue
		}
		results = append(results, h)
	}
	return results
}

// matchesPropertyType reports whether the hotel name contains at least
// one of the requested type keywords. The match is a case-sensitive
// substring check: there is no structured property-type field, the
// name is all we have.
func matchesPropertyType(h models.Hotel, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(h.Name, kw) {
			return true
		}
	}
	return false
}

// matchesStarBucket maps a decimal rating onto the displayed star
// buckets: 5 stars means rating >= 4.7, 4 stars 4.3..4.7, 3 stars
// 4.0..4.3.
func matchesStarBucket(rating float64, buckets []int) bool {
	for _, b := range buckets {
		switch b {
		case 5:
			if rating >= 4.7 {
				return true
			}
		case 4:
			if rating >= 4.3 && rating < 4.7 {
				return true
			}
		case 3:
			if rating >= 4.0 && rating < 4.3 {
				return true
			}
		}
	}
	return false
}

// hasAllAmenities requires every requested amenity to be present.
func hasAllAmenities(h models.Hotel, amenities []string) bool {
	for _, a := range amenities {
		if !h.HasAmenity(a) {
			return false
		}
	}
	return true
}
