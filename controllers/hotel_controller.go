package controllers

import (
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"

	"stayverse/config"
	"stayverse/dto"
	"stayverse/response"
	"stayverse/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// HotelController serves the public catalog endpoints.
type HotelController struct {
	catalog *services.Catalog
	rdb     *redis.Client
}

func NewHotelController(catalog *services.Catalog, rdb *redis.Client) *HotelController {
	return &HotelController{catalog: catalog, rdb: rdb}
}

// parseFilterCriteria reads the filter query parameters. Values are
// parsed leniently: anything unreadable is ignored rather than
// rejected.
func parseFilterCriteria(c *gin.Context) dto.FilterCriteria {
	var criteria dto.FilterCriteria

	if city := c.Query("city"); city != "" {
		if decoded, err := url.QueryUnescape(city); err == nil {
			criteria.City = decoded
		} else {
			criteria.City = city
		}
	}

	if maxPriceStr := c.Query("maxPrice"); maxPriceStr != "" {
		if maxPrice, err := strconv.Atoi(maxPriceStr); err == nil && maxPrice > 0 {
			criteria.MaxPrice = maxPrice
		}
	}

	criteria.PropertyTypes = splitMulti(c.QueryArray("propertyType"))

	for _, starStr := range splitMulti(c.QueryArray("stars")) {
		// Only the 3, 4 and 5 star buckets exist; anything else is
		// treated as no constraint.
		if stars, err := strconv.Atoi(starStr); err == nil && stars >= 3 && stars <= 5 {
			criteria.StarRatings = append(criteria.StarRatings, stars)
		}
	}

	criteria.Amenities = splitMulti(c.QueryArray("amenity"))

	return criteria
}

// splitMulti accepts both repeated params and comma separated lists.
func splitMulti(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func paginate(c *gin.Context, total int) (page, limit, start, end int) {
	page = 0
	limit = 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	start = page * limit
	end = start + limit
	if start >= total {
		start, end = total, total
	} else if end > total {
		end = total
	}
	return page, limit, start, end
}

// GetHotels lists the catalog with optional filters, remembering the
// last filter set per session.
func (h *HotelController) GetHotels(c *gin.Context) {
	criteria := parseFilterCriteria(c)

	sessionID := c.GetString("sessionId")
	if remembered, err := services.GetFilters(config.Ctx, h.rdb, sessionID); err == nil {
		criteria = services.MergeFilters(criteria, remembered)
	}
	if !criteria.IsZero() {
		if err := services.SaveFilters(config.Ctx, h.rdb, sessionID, criteria); err != nil {
			log.Printf("Could not remember session filters: %v", err)
		}
	}

	hotels := h.catalog.Filter(criteria)
	total := len(hotels)

	page, limit, start, end := paginate(c, total)
	hotels = hotels[start:end]

	hotelsResponse := make([]dto.HotelResponse, 0, len(hotels))
	for _, hotel := range hotels {
		hotelsResponse = append(hotelsResponse, dto.NewHotelResponse(hotel))
	}

	response.SuccessWithPagination(c, hotelsResponse, page, limit, total)
}

// SearchHotels matches a free-text query against name and description,
// optionally constrained to a city.
func (h *HotelController) SearchHotels(c *gin.Context) {
	query := c.Query("q")
	city := c.Query("city")

	hotels := h.catalog.Search(query, city)
	total := len(hotels)

	page, limit, start, end := paginate(c, total)
	hotels = hotels[start:end]

	hotelsResponse := make([]dto.HotelResponse, 0, len(hotels))
	for _, hotel := range hotels {
		hotelsResponse = append(hotelsResponse, dto.NewHotelResponse(hotel))
	}

	response.SuccessWithPagination(c, hotelsResponse, page, limit, total)
}

// SuggestHotels ranks the catalog against a fuzzy query, serving
// cached results for repeated queries.
func (h *HotelController) SuggestHotels(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		response.BadRequest(c, "Query is required")
		return
	}

	cacheKey := "suggest:" + strings.ToLower(query)
	var scored []dto.ScoredHotel
	if err := services.GetFromRedis(config.Ctx, h.rdb, cacheKey, &scored); err != nil || len(scored) == 0 {
		scored = services.ScoreHotels(query, h.catalog.All())
		if len(scored) > 0 {
			if err := services.SetToRedis(config.Ctx, h.rdb, cacheKey, scored, 10*time.Minute); err != nil {
				log.Printf("Could not cache suggestions: %v", err)
			}
		}
	}

	total := len(scored)
	page, limit, start, end := paginate(c, total)
	scored = scored[start:end]

	hotelsResponse := make([]dto.HotelResponse, 0, len(scored))
	for _, s := range scored {
		hotelsResponse = append(hotelsResponse, dto.NewHotelResponse(s.Hotel))
	}

	response.SuccessWithPagination(c, hotelsResponse, page, limit, total)
}

// GetFeaturedHotels lists the hotels flagged for the landing page.
func (h *HotelController) GetFeaturedHotels(c *gin.Context) {
	hotels := h.catalog.Featured()

	hotelsResponse := make([]dto.HotelResponse, 0, len(hotels))
	for _, hotel := range hotels {
		hotelsResponse = append(hotelsResponse, dto.NewHotelResponse(hotel))
	}

	response.Success(c, hotelsResponse)
}

// GetCities lists the distinct cities in the catalog.
func (h *HotelController) GetCities(c *gin.Context) {
	response.Success(c, h.catalog.Cities())
}

// GetHotelDetail serves one catalog entry by id.
func (h *HotelController) GetHotelDetail(c *gin.Context) {
	hotel, ok := h.catalog.ByID(c.Param("id"))
	if !ok {
		response.NotFound(c)
		return
	}

	response.Success(c, dto.NewHotelDetailResponse(*hotel))
}

// ClearFilters forgets the remembered filter set for this session.
func (h *HotelController) ClearFilters(c *gin.Context) {
	sessionID := c.GetString("sessionId")
	if err := services.ClearFilters(config.Ctx, h.rdb, sessionID); err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, gin.H{"cleared": true})
}
