package services

import (
	"context"
	"fmt"
	"time"

	"stayverse/dto"

	"github.com/redis/go-redis/v9"
)

const filtersCacheTTL = 30 * time.Minute

func filtersCacheKey(sessionID string) string {
	return fmt.Sprintf("last_filters:%s", sessionID)
}

// SaveFilters remembers the last filter set a session applied.
func SaveFilters(ctx context.Context, rdb *redis.Client, sessionID string, criteria dto.FilterCriteria) error {
	if sessionID == "" {
		return nil
	}
	return SetToRedis(ctx, rdb, filtersCacheKey(sessionID), criteria, filtersCacheTTL)
}

// GetFilters returns the remembered filters for a session, if any.
func GetFilters(ctx context.Context, rdb *redis.Client, sessionID string) (*dto.FilterCriteria, error) {
	if sessionID == "" {
		return nil, nil
	}
	var criteria dto.FilterCriteria
	if err := GetFromRedis(ctx, rdb, filtersCacheKey(sessionID), &criteria); err != nil {
		return nil, err
	}
	// A cache miss leaves the criteria zero valued.
	if criteria.IsZero() {
		return nil, nil
	}
	return &criteria, nil
}

// ClearFilters drops the remembered filters for a session.
func ClearFilters(ctx context.Context, rdb *redis.Client, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return DeleteFromRedis(ctx, rdb, filtersCacheKey(sessionID))
}

// MergeFilters combines the incoming criteria with the remembered
// ones. Newer non-zero fields win, amenities accumulate as a unique
// union.
func MergeFilters(incoming dto.FilterCriteria, remembered *dto.FilterCriteria) dto.FilterCriteria {
	if remembered == nil {
		return incoming
	}
	merged := incoming
	if merged.City == "" {
		merged.City = remembered.City
	}
	if merged.MaxPrice == 0 {
		merged.MaxPrice = remembered.MaxPrice
	}
	if len(merged.PropertyTypes) == 0 {
		merged.PropertyTypes = remembered.PropertyTypes
	}
	if len(merged.StarRatings) == 0 {
		merged.StarRatings = remembered.StarRatings
	}
	merged.Amenities = mergeUniqueStrings(remembered.Amenities, incoming.Amenities)
	return merged
}

func mergeUniqueStrings(a, b []string) []string {
	seen := make(map[string]bool)
	var result []string

	for _, val := range a {
		if !seen[val] {
			seen[val] = true
			result = append(result, val)
		}
	}
	for _, val := range b {
		if !seen[val] {
			seen[val] = true
			result = append(result, val)
		}
	}
	return result
}
