package services

import (
	goerrors "errors"
	"time"

	"stayverse/constants"
	"stayverse/errors"
	"stayverse/models"

	"gorm.io/gorm"
)

// BookingService owns booking persistence and status transitions.
type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

// Validate checks the stay fields before a booking is persisted.
func (s *BookingService) Validate(booking *models.Booking) error {
	checkIn, err := time.Parse(constants.DateLayout, booking.CheckInDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid check-in date", err)
	}
	checkOut, err := time.Parse(constants.DateLayout, booking.CheckOutDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid check-out date", err)
	}
	if !checkOut.After(checkIn) {
		return errors.NewAppError(errors.ErrCodeInvalidDateRange, errors.ErrInvalidDateRange.Error(), errors.ErrInvalidDateRange)
	}
	if booking.Rooms < 1 {
		return errors.NewAppError(errors.ErrCodeInvalidRoomCount, errors.ErrInvalidRoomCount.Error(), errors.ErrInvalidRoomCount)
	}
	if booking.HotelID == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Hotel is required", nil)
	}
	return nil
}

func (s *BookingService) Create(booking *models.Booking) error {
	return s.db.Create(booking).Error
}

func (s *BookingService) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("User").First(&booking, id).Error; err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (s *BookingService) GetByCode(code string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Where("code = ?", code).First(&booking).Error; err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// ListByUser returns a user's bookings, newest first.
func (s *BookingService) ListByUser(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

// List returns all bookings, newest first.
func (s *BookingService) List() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Preload("User").Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

func (s *BookingService) Cancel(booking *models.Booking) error {
	switch booking.Status {
	case constants.BookingStatusCancelled:
		return errors.ErrBookingCancelled
	case constants.BookingStatusCompleted:
		return errors.ErrBookingCompleted
	}
	booking.Status = constants.BookingStatusCancelled
	return s.db.Save(booking).Error
}

func (s *BookingService) Complete(booking *models.Booking) error {
	switch booking.Status {
	case constants.BookingStatusCancelled:
		return errors.ErrBookingCancelled
	case constants.BookingStatusCompleted:
		return errors.ErrBookingCompleted
	}
	booking.Status = constants.BookingStatusCompleted
	return s.db.Save(booking).Error
}

func (s *BookingService) Confirm(booking *models.Booking) error {
	switch booking.Status {
	case constants.BookingStatusCancelled:
		return errors.ErrBookingCancelled
	case constants.BookingStatusCompleted:
		return errors.ErrBookingCompleted
	}
	booking.Status = constants.BookingStatusConfirmed
	return s.db.Save(booking).Error
}
