package validator

import (
	"regexp"
	"time"

	"stayverse/constants"
	"stayverse/dto"
	"stayverse/errors"
	"stayverse/models"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

// ValidateUser checks registration input.
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email is required", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email is not valid", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Password is required", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Password must be at least 6 characters", nil)
	}

	if user.PhoneNumber != "" && !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Phone number is not valid", nil)
	}

	if user.Role != constants.RoleGuest && user.Role != constants.RoleAdmin {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role is not valid", nil)
	}

	return nil
}

// ValidateHoliday checks a holiday calendar entry.
func ValidateHoliday(holiday *models.Holiday) error {
	if holiday.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Holiday name is required", nil)
	}

	if _, err := time.Parse(constants.DateLayout, holiday.Date); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Holiday date is not valid", err)
	}

	return nil
}

// ValidateBookingRequest checks the booking payload before it reaches
// the pricing engine.
func ValidateBookingRequest(req *dto.CreateBookingRequest, userID *uint) error {
	if req.HotelID == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Hotel is required", nil)
	}

	checkInDate, err := time.Parse(constants.DateLayout, req.CheckInDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Check-in date is not valid", err)
	}

	checkOutDate, err := time.Parse(constants.DateLayout, req.CheckOutDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Check-out date is not valid", err)
	}

	if !checkOutDate.After(checkInDate) {
		return errors.NewAppError(errors.ErrCodeInvalidDateRange, errors.ErrInvalidDateRange.Error(), errors.ErrInvalidDateRange)
	}

	if req.Rooms < 1 {
		return errors.NewAppError(errors.ErrCodeInvalidRoomCount, errors.ErrInvalidRoomCount.Error(), errors.ErrInvalidRoomCount)
	}

	if req.Guests < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "At least one guest is required", nil)
	}

	// Guest contact details are required only for anonymous bookings.
	if userID == nil {
		if req.GuestName == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Guest name is required", nil)
		}
		if req.GuestPhone == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Guest phone number is required", nil)
		}
		if !isValidPhone(req.GuestPhone) {
			return errors.NewAppError(errors.ErrCodeInvalidPhone, "Guest phone number is not valid", nil)
		}
		if req.GuestEmail != "" && !isValidEmail(req.GuestEmail) {
			return errors.NewAppError(errors.ErrCodeInvalidEmail, "Guest email is not valid", nil)
		}
	}

	return nil
}

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func isValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// ValidateEmail checks an email address.
func ValidateEmail(email string) error {
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email is not valid", nil)
	}
	return nil
}

// ValidatePhone checks a phone number.
func ValidatePhone(phone string) error {
	if !isValidPhone(phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Phone number is not valid", nil)
	}
	return nil
}
