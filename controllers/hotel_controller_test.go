package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func testContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req, err := http.NewRequest(http.MethodGet, "/hotels?"+rawQuery, nil)
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}
	c.Request = req
	return c
}

func TestParseFilterCriteriaDropsUnknownStarBuckets(t *testing.T) {
	c := testContext(t, "stars=2&stars=4&stars=6")

	criteria := parseFilterCriteria(c)
	if len(criteria.StarRatings) != 1 || criteria.StarRatings[0] != 4 {
		t.Errorf("StarRatings = %v, want [4]", criteria.StarRatings)
	}
}

func TestParseFilterCriteriaAllBogusStarsMeansNoConstraint(t *testing.T) {
	c := testContext(t, "city=Nagpur&stars=2")

	criteria := parseFilterCriteria(c)
	if len(criteria.StarRatings) != 0 {
		t.Errorf("StarRatings = %v, want empty", criteria.StarRatings)
	}
	if criteria.City != "Nagpur" {
		t.Errorf("City = %q, want Nagpur", criteria.City)
	}
}

func TestParseFilterCriteriaCommaSeparatedLists(t *testing.T) {
	c := testContext(t, "amenity=Pool,Spa&propertyType=Resort&maxPrice=9000")

	criteria := parseFilterCriteria(c)
	if len(criteria.Amenities) != 2 || criteria.Amenities[0] != "Pool" || criteria.Amenities[1] != "Spa" {
		t.Errorf("Amenities = %v, want [Pool Spa]", criteria.Amenities)
	}
	if len(criteria.PropertyTypes) != 1 || criteria.PropertyTypes[0] != "Resort" {
		t.Errorf("PropertyTypes = %v, want [Resort]", criteria.PropertyTypes)
	}
	if criteria.MaxPrice != 9000 {
		t.Errorf("MaxPrice = %d, want 9000", criteria.MaxPrice)
	}
}

func TestParseFilterCriteriaIgnoresUnreadableMaxPrice(t *testing.T) {
	c := testContext(t, "maxPrice=cheap")

	criteria := parseFilterCriteria(c)
	if criteria.MaxPrice != 0 {
		t.Errorf("MaxPrice = %d, want 0", criteria.MaxPrice)
	}
}
