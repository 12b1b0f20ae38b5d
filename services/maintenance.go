package services

import (
	"context"
	"fmt"
	"time"

	"stayverse/constants"
	"stayverse/models"
	"stayverse/services/logger"

	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// MaintenanceService backs the nightly cron run: it completes stays
// whose check-out date has passed and purges derived caches.
type MaintenanceService struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger logger.Logger
}

type MaintenanceServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Logger
}

func NewMaintenanceService(opts MaintenanceServiceOptions) *MaintenanceService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &MaintenanceService{db: opts.DB, rdb: opts.Redis, logger: l}
}

// CompleteElapsedStays marks confirmed bookings as completed once
// their check-out date is in the past, announcing each transition.
func (s *MaintenanceService) CompleteElapsedStays(m *melody.Melody) error {
	var bookings []models.Booking
	if err := s.db.Where("status = ?", constants.BookingStatusConfirmed).Find(&bookings).Error; err != nil {
		return err
	}

	today := time.Now().Truncate(24 * time.Hour)
	completed := 0
	for _, booking := range bookings {
		checkOut, err := time.Parse(constants.DateLayout, booking.CheckOutDate)
		if err != nil {
			s.logger.Error("Booking %s has an unreadable check-out date %q", booking.Code, booking.CheckOutDate)
			continue
		}
		if !checkOut.Before(today) {
			continue
		}

		booking.Status = constants.BookingStatusCompleted
		if err := s.db.Save(&booking).Error; err != nil {
			s.logger.Error("Could not complete booking %s: %v", booking.Code, err)
			continue
		}
		completed++

		if m != nil {
			message := fmt.Sprintf("Booking %s at %s is now completed.", booking.Code, booking.HotelName)
			if err := m.Broadcast([]byte(message)); err != nil {
				s.logger.Error("Could not broadcast completion of %s: %v", booking.Code, err)
			}
		}

		if booking.UserID != nil && s.rdb != nil {
			key := fmt.Sprintf("bookings:user:%d", *booking.UserID)
			_ = DeleteFromRedis(context.Background(), s.rdb, key)
		}
	}

	s.logger.Info("Completed %d elapsed stays", completed)
	return nil
}

// PurgeSuggestions drops cached fuzzy-search results.
func (s *MaintenanceService) PurgeSuggestions() error {
	if s.rdb == nil {
		return nil
	}
	return DeleteKeysByPattern(context.Background(), s.rdb, "suggest:*")
}
