package services

import (
	"testing"

	"stayverse/models"
)

func TestExtractStarsFromQuery(t *testing.T) {
	cases := []struct {
		query string
		want  int
	}{
		{"5 star hotel in mumbai", 5},
		{"4star stay", 4},
		{"cheap hotel", -1},
		{"star gazing resort", -1},
	}
	for _, tc := range cases {
		if got := extractStarsFromQuery(tc.query); got != tc.want {
			t.Errorf("extractStarsFromQuery(%q) = %d, want %d", tc.query, got, tc.want)
		}
	}
}

func TestCalculateSimilarity(t *testing.T) {
	if got := calculateSimilarity("pool", "pool"); got != 1.0 {
		t.Errorf("similarity of equal strings = %f, want 1.0", got)
	}
	if got := calculateSimilarity("", ""); got != 1.0 {
		t.Errorf("similarity of empty strings = %f, want 1.0", got)
	}
	if got := calculateSimilarity("pool", "spa"); got > 0.5 {
		t.Errorf("similarity(pool, spa) = %f, want <= 0.5", got)
	}
}

func TestParsePropertyType(t *testing.T) {
	propertyType, stars := parsePropertyType("5 star hotel in mumbai")
	if propertyType != "Hotel" {
		t.Errorf("propertyType = %q, want Hotel", propertyType)
	}
	if stars != 5 {
		t.Errorf("stars = %d, want 5", stars)
	}
}

func TestScoreHotelsRanksCityMatches(t *testing.T) {
	hotels := models.SeedHotels()

	scored := ScoreHotels("stay in mumbai", hotels)
	if len(scored) == 0 {
		t.Fatal("ScoreHotels returned no results")
	}

	for i := 1; i < len(scored); i++ {
		if scored[i-1].Score < scored[i].Score {
			t.Fatalf("results not sorted by score: %d before %d", scored[i-1].Score, scored[i].Score)
		}
	}

	if scored[0].Hotel.City != "Mumbai" {
		t.Errorf("top result city = %q, want Mumbai", scored[0].Hotel.City)
	}
}

func TestScoreHotelsDropsZeroScores(t *testing.T) {
	hotels := models.SeedHotels()

	scored := ScoreHotels("taj palace", hotels)
	for _, s := range scored {
		if s.Score <= 0 {
			t.Errorf("hotel %s kept with score %d", s.Hotel.ID, s.Score)
		}
	}
}
