package builders

import (
	"stayverse/dto"
	"stayverse/models"
)

// BookingBuilder assembles a booking step by step.
type BookingBuilder struct {
	booking *models.Booking
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{},
	}
}

func (b *BookingBuilder) WithCode(code string) *BookingBuilder {
	b.booking.Code = code
	return b
}

func (b *BookingBuilder) WithUser(userID uint) *BookingBuilder {
	b.booking.UserID = &userID
	return b
}

func (b *BookingBuilder) WithHotel(hotel *models.Hotel) *BookingBuilder {
	b.booking.HotelID = hotel.ID
	b.booking.HotelName = hotel.Name
	b.booking.HotelCity = hotel.City
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut string, guests, rooms int) *BookingBuilder {
	b.booking.CheckInDate = checkIn
	b.booking.CheckOutDate = checkOut
	b.booking.Guests = guests
	b.booking.Rooms = rooms
	return b
}

func (b *BookingBuilder) WithGuestInfo(guestName, guestPhone, guestEmail string) *BookingBuilder {
	b.booking.GuestName = guestName
	b.booking.GuestPhone = guestPhone
	b.booking.GuestEmail = guestEmail
	return b
}

func (b *BookingBuilder) WithStatus(status int) *BookingBuilder {
	b.booking.Status = status
	return b
}

// WithBreakdown copies the quoted price breakdown onto the booking.
func (b *BookingBuilder) WithBreakdown(breakdown *dto.PriceBreakdown) *BookingBuilder {
	b.booking.BasePrice = breakdown.BasePrice
	b.booking.NightlyRate = breakdown.NightlyRate
	b.booking.Nights = breakdown.Nights
	b.booking.RoomsSubtotal = breakdown.RoomsSubtotal
	b.booking.ServiceFee = breakdown.ServiceFee
	b.booking.TotalPrice = breakdown.Total
	b.booking.DemandLevel = breakdown.DemandLevel
	return b
}

func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
