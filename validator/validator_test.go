package validator

import (
	"testing"

	"stayverse/dto"
	"stayverse/errors"
	"stayverse/models"
)

func bookingRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		HotelID:      "m1",
		CheckInDate:  "10/06/2024",
		CheckOutDate: "12/06/2024",
		Rooms:        1,
		Guests:       2,
		GuestName:    "Asha Rao",
		GuestPhone:   "9876543210",
		GuestEmail:   "asha@example.com",
	}
}

func wantCode(t *testing.T, err error, code errors.ErrorCode) {
	t.Helper()
	appErr := errors.GetAppError(err)
	if appErr == nil {
		t.Fatalf("err = %v, want AppError with code %s", err, code)
	}
	if appErr.Code != code {
		t.Errorf("code = %s, want %s", appErr.Code, code)
	}
}

func TestValidateBookingRequestValid(t *testing.T) {
	req := bookingRequest()
	if err := ValidateBookingRequest(&req, nil); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}
}

func TestValidateBookingRequestDateOrder(t *testing.T) {
	req := bookingRequest()
	req.CheckOutDate = "10/06/2024"
	wantCode(t, ValidateBookingRequest(&req, nil), errors.ErrCodeInvalidDateRange)

	req = bookingRequest()
	req.CheckOutDate = "09/06/2024"
	wantCode(t, ValidateBookingRequest(&req, nil), errors.ErrCodeInvalidDateRange)
}

func TestValidateBookingRequestDateFormat(t *testing.T) {
	req := bookingRequest()
	req.CheckInDate = "2024-06-10"
	wantCode(t, ValidateBookingRequest(&req, nil), errors.ErrCodeInvalidFormat)
}

func TestValidateBookingRequestRooms(t *testing.T) {
	req := bookingRequest()
	req.Rooms = 0
	wantCode(t, ValidateBookingRequest(&req, nil), errors.ErrCodeInvalidRoomCount)
}

func TestValidateBookingRequestAnonymousNeedsContact(t *testing.T) {
	req := bookingRequest()
	req.GuestName = ""
	wantCode(t, ValidateBookingRequest(&req, nil), errors.ErrCodeRequiredField)

	req = bookingRequest()
	req.GuestPhone = "12345"
	wantCode(t, ValidateBookingRequest(&req, nil), errors.ErrCodeInvalidPhone)

	// Authenticated bookings carry the account's contact details.
	userID := uint(7)
	req = bookingRequest()
	req.GuestName = ""
	req.GuestPhone = ""
	if err := ValidateBookingRequest(&req, &userID); err != nil {
		t.Errorf("authenticated request rejected: %v", err)
	}
}

func TestValidateHoliday(t *testing.T) {
	holiday := models.Holiday{Name: "Diwali", Date: "01/11/2024"}
	if err := ValidateHoliday(&holiday); err != nil {
		t.Errorf("valid holiday rejected: %v", err)
	}

	holiday = models.Holiday{Name: "", Date: "01/11/2024"}
	wantCode(t, ValidateHoliday(&holiday), errors.ErrCodeRequiredField)

	holiday = models.Holiday{Name: "Diwali", Date: "2024-11-01"}
	wantCode(t, ValidateHoliday(&holiday), errors.ErrCodeInvalidFormat)
}

func TestValidateUser(t *testing.T) {
	user := models.User{
		Email:       "asha@example.com",
		Password:    "secret123",
		PhoneNumber: "9876543210",
	}
	if err := ValidateUser(&user); err != nil {
		t.Errorf("valid user rejected: %v", err)
	}

	user.Email = "not-an-email"
	wantCode(t, ValidateUser(&user), errors.ErrCodeInvalidEmail)

	user.Email = "asha@example.com"
	user.Password = "short"
	wantCode(t, ValidateUser(&user), errors.ErrCodeValidation)
}
