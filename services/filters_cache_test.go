package services

import (
	"testing"

	"stayverse/dto"
)

func TestMergeFiltersNilRemembered(t *testing.T) {
	incoming := dto.FilterCriteria{City: "Pune"}

	merged := MergeFilters(incoming, nil)
	if merged.City != "Pune" {
		t.Errorf("City = %q, want Pune", merged.City)
	}
}

func TestMergeFiltersFillsEmptyFields(t *testing.T) {
	incoming := dto.FilterCriteria{City: "Mumbai"}
	remembered := &dto.FilterCriteria{
		City:      "Nagpur",
		MaxPrice:  9000,
		Amenities: []string{"Pool"},
	}

	merged := MergeFilters(incoming, remembered)

	// Newer non-zero fields win, empty ones are filled in.
	if merged.City != "Mumbai" {
		t.Errorf("City = %q, want Mumbai", merged.City)
	}
	if merged.MaxPrice != 9000 {
		t.Errorf("MaxPrice = %d, want 9000", merged.MaxPrice)
	}
	if len(merged.Amenities) != 1 || merged.Amenities[0] != "Pool" {
		t.Errorf("Amenities = %v, want [Pool]", merged.Amenities)
	}
}

func TestMergeFiltersUnionsAmenities(t *testing.T) {
	incoming := dto.FilterCriteria{Amenities: []string{"Spa"}}
	remembered := &dto.FilterCriteria{Amenities: []string{"Pool"}}

	merged := MergeFilters(incoming, remembered)
	want := []string{"Pool", "Spa"}
	if len(merged.Amenities) != len(want) {
		t.Fatalf("Amenities = %v, want %v", merged.Amenities, want)
	}
	for i, amenity := range want {
		if merged.Amenities[i] != amenity {
			t.Errorf("Amenities[%d] = %q, want %q", i, merged.Amenities[i], amenity)
		}
	}
}

func TestMergeFiltersDropsDuplicateAmenities(t *testing.T) {
	incoming := dto.FilterCriteria{Amenities: []string{"Pool", "Gym"}}
	remembered := &dto.FilterCriteria{Amenities: []string{"Pool", "Spa"}}

	merged := MergeFilters(incoming, remembered)
	want := []string{"Pool", "Spa", "Gym"}
	if len(merged.Amenities) != len(want) {
		t.Fatalf("Amenities = %v, want %v", merged.Amenities, want)
	}
	for i, amenity := range want {
		if merged.Amenities[i] != amenity {
			t.Errorf("Amenities[%d] = %q, want %q", i, merged.Amenities[i], amenity)
		}
	}
}

func TestMergeFiltersPartialRequestKeepsRememberedConstraints(t *testing.T) {
	incoming := dto.FilterCriteria{City: "Pune"}
	remembered := &dto.FilterCriteria{MaxPrice: 9000}

	merged := MergeFilters(incoming, remembered)
	if merged.City != "Pune" {
		t.Errorf("City = %q, want Pune", merged.City)
	}
	if merged.MaxPrice != 9000 {
		t.Errorf("MaxPrice = %d, want 9000", merged.MaxPrice)
	}
}

func TestMergeFiltersKeepsIncomingStarRatings(t *testing.T) {
	incoming := dto.FilterCriteria{StarRatings: []int{5}}
	remembered := &dto.FilterCriteria{StarRatings: []int{3}}

	merged := MergeFilters(incoming, remembered)
	if len(merged.StarRatings) != 1 || merged.StarRatings[0] != 5 {
		t.Errorf("StarRatings = %v, want [5]", merged.StarRatings)
	}
}
