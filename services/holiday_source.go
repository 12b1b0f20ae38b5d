package services

import (
	"context"
	"time"

	"stayverse/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const holidayCacheKey = "holidays:all"

// DBHolidaySource reads the holiday calendar from the database,
// cached in Redis for an hour. When the table is empty the static
// seed is used, so pricing keeps working on a fresh install.
type DBHolidaySource struct {
	db  *gorm.DB
	rdb *redis.Client
	ctx context.Context
}

func NewDBHolidaySource(db *gorm.DB, rdb *redis.Client) *DBHolidaySource {
	return &DBHolidaySource{db: db, rdb: rdb, ctx: context.Background()}
}

func (s *DBHolidaySource) Holidays() []models.Holiday {
	var holidays []models.Holiday

	if s.rdb != nil {
		if err := GetFromRedis(s.ctx, s.rdb, holidayCacheKey, &holidays); err == nil && len(holidays) > 0 {
			return holidays
		}
	}

	if err := s.db.Find(&holidays).Error; err != nil || len(holidays) == 0 {
		return models.SeedHolidays()
	}

	if s.rdb != nil {
		_ = SetToRedis(s.ctx, s.rdb, holidayCacheKey, holidays, 60*time.Minute)
	}
	return holidays
}

// InvalidateHolidayCache drops the cached calendar after a write.
func InvalidateHolidayCache(ctx context.Context, rdb *redis.Client) {
	if rdb != nil {
		_ = DeleteFromRedis(ctx, rdb, holidayCacheKey)
	}
}
