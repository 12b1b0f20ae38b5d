package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"stayverse/dto"
	"stayverse/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

var starPattern = regexp.MustCompile(`(\d+)\s*star`)

// Normalize a query or field for fuzzy comparison.
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// calculateSimilarity returns a score in [0,1] where 1 means equal strings.
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// extractStarsFromQuery pulls a star rating out of phrases like "5 star hotel".
func extractStarsFromQuery(query string) int {
	match := starPattern.FindStringSubmatch(query)
	if len(match) < 2 {
		return -1
	}

	stars, err := strconv.Atoi(match[1])
	if err != nil {
		return -1
	}
	return stars
}

// parsePropertyType maps query keywords to a property-type keyword and stars.
func parsePropertyType(query string) (string, int) {
	hotelKeywords := []string{"hotel", "inn", "lodge"}
	resortKeywords := []string{"resort", "retreat", "spa resort"}
	apartmentKeywords := []string{"apartment", "flat", "serviced apartment"}

	normalizedQuery := normalizeInput(query)
	stars := extractStarsFromQuery(normalizedQuery)

	hotelMatcher := createMatcher(hotelKeywords)
	resortMatcher := createMatcher(resortKeywords)
	apartmentMatcher := createMatcher(apartmentKeywords)

	hotelMatch := hotelMatcher.Closest(normalizedQuery)
	resortMatch := resortMatcher.Closest(normalizedQuery)
	apartmentMatch := apartmentMatcher.Closest(normalizedQuery)

	if resortMatch != "" && strings.Contains(normalizedQuery, resortMatch) {
		return "Resort", stars
	}
	if apartmentMatch != "" && strings.Contains(normalizedQuery, apartmentMatch) {
		return "Apartment", stars
	}
	if hotelMatch != "" && strings.Contains(normalizedQuery, hotelMatch) {
		return "Hotel", stars
	}

	return "", stars
}

// prepareCityList builds the unique normalized city list for closestmatch.
func prepareCityList(hotels []models.Hotel) []string {
	uniqueValues := make(map[string]bool)
	for _, hotel := range hotels {
		if hotel.City != "" {
			uniqueValues[normalizeInput(hotel.City)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

func calculateScore(query string, hotel models.Hotel, cmCity *closestmatch.ClosestMatch) int {
	normalizedQuery := normalizeInput(query)
	propertyType, stars := parsePropertyType(normalizedQuery)
	score := 0

	if propertyType != "" && strings.Contains(hotel.Name, propertyType) {
		score += 20
	}
	if stars != -1 && matchesStarBucket(hotel.Rating, []int{stars}) {
		score += 15
	}
	score += calculateCityScore(normalizedQuery, hotel, cmCity)
	score += calculateNameScore(normalizedQuery, hotel.Name)
	score += calculateAmenityScore(normalizedQuery, hotel.Amenities)

	return score
}

func calculateCityScore(query string, hotel models.Hotel, cmCity *closestmatch.ClosestMatch) int {
	if cmCity.Closest(query) == normalizeInput(hotel.City) {
		return 13
	}
	return 0
}

func calculateNameScore(query, name string) int {
	normalizedName := normalizeInput(name)
	if strings.Contains(normalizedName, query) || strings.Contains(query, normalizedName) {
		return 10
	}

	score := 0
	for _, word := range strings.Fields(normalizedName) {
		if len(word) < 3 {
			continue
		}
		if strings.Contains(query, word) || calculateSimilarity(query, word) > 0.7 {
			score += 5
			if score >= 10 {
				break
			}
		}
	}
	return score
}

func calculateAmenityScore(query string, amenities []string) int {
	maxAmenityScore := 12
	amenityScore := 0

	for _, amenity := range amenities {
		normalizedAmenity := normalizeInput(amenity)
		similarity := calculateSimilarity(query, normalizedAmenity)
		if similarity > 0.7 || strings.Contains(query, normalizedAmenity) {
			amenityScore += 4
			if amenityScore >= maxAmenityScore {
				break
			}
		}
	}
	return amenityScore
}

// ScoreHotels ranks hotels against a free-text query. Hotels that score
// zero are dropped and the rest are ordered best match first.
func ScoreHotels(query string, hotels []models.Hotel) []dto.ScoredHotel {
	cmCity := createMatcher(prepareCityList(hotels))

	var scored []dto.ScoredHotel
	scoreCh := make(chan dto.ScoredHotel, len(hotels))
	var wg sync.WaitGroup

	for _, hotel := range hotels {
		wg.Add(1)
		go func(hotel models.Hotel) {
			defer wg.Done()
			score := calculateScore(query, hotel, cmCity)
			if score > 0 {
				scoreCh <- dto.ScoredHotel{
					Hotel: hotel,
					Score: score,
				}
			}
		}(hotel)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	for scoredHotel := range scoreCh {
		scored = append(scored, scoredHotel)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
