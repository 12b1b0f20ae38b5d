package dto

import (
	"time"

	"stayverse/models"
)

// QuoteRequest asks for a price breakdown without creating a booking.
type QuoteRequest struct {
	HotelID      string `json:"hotelId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	Rooms        int    `json:"rooms"`
}

// PriceBreakdown is the result of one pricing computation.
type PriceBreakdown struct {
	BasePrice     int    `json:"basePrice"`
	NightlyRate   int    `json:"nightlyRate"` // base rate after surcharges, rounded
	Nights        int    `json:"nights"`
	Rooms         int    `json:"rooms"`
	RoomsSubtotal int    `json:"roomsSubtotal"`
	ServiceFee    int    `json:"serviceFee"`
	Total         int    `json:"total"`
	HasWeekend    bool   `json:"hasWeekend"`
	HasHoliday    bool   `json:"hasHoliday"`
	DemandLevel   string `json:"demandLevel"`
}

// CreateBookingRequest is the payload for creating a booking.
type CreateBookingRequest struct {
	HotelID      string `json:"hotelId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	Rooms        int    `json:"rooms"`
	Guests       int    `json:"guests"`
	GuestName    string `json:"guestName"`
	GuestEmail   string `json:"guestEmail"`
	GuestPhone   string `json:"guestPhone"`
}

// ActorResponse is the guest/user half of a booking response.
type ActorResponse struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// BookingHotelResponse is the catalog half of a booking response.
type BookingHotelResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Address string `json:"address"`
	Price   int    `json:"price"`
	Image   string `json:"image"`
}

type BookingResponse struct {
	ID           uint                 `json:"id"`
	Code         string               `json:"code"`
	User         ActorResponse        `json:"user"`
	Hotel        BookingHotelResponse `json:"hotel"`
	CheckInDate  string               `json:"checkInDate"`
	CheckOutDate string               `json:"checkOutDate"`
	Guests       int                  `json:"guests"`
	Rooms        int                  `json:"rooms"`
	Status       int                  `json:"status"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
	Price        PriceBreakdown       `json:"price"`
}

// NewBookingResponse projects a booking, joining back the catalog
// entry when it is still present.
func NewBookingResponse(b models.Booking, hotel *models.Hotel) BookingResponse {
	actor := ActorResponse{
		Name:        b.GuestName,
		Email:       b.GuestEmail,
		PhoneNumber: b.GuestPhone,
	}
	if b.User != nil {
		actor = ActorResponse{
			Name:        b.User.Name,
			Email:       b.User.Email,
			PhoneNumber: b.User.PhoneNumber,
		}
	}

	hotelResp := BookingHotelResponse{
		ID:   b.HotelID,
		Name: b.HotelName,
		City: b.HotelCity,
	}
	if hotel != nil {
		hotelResp.Address = hotel.Address
		hotelResp.Price = hotel.Price
		if len(hotel.Images) > 0 {
			hotelResp.Image = hotel.Images[0]
		}
	}

	return BookingResponse{
		ID:           b.ID,
		Code:         b.Code,
		User:         actor,
		Hotel:        hotelResp,
		CheckInDate:  b.CheckInDate,
		CheckOutDate: b.CheckOutDate,
		Guests:       b.Guests,
		Rooms:        b.Rooms,
		Status:       b.Status,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
		Price: PriceBreakdown{
			BasePrice:     b.BasePrice,
			NightlyRate:   b.NightlyRate,
			Nights:        b.Nights,
			Rooms:         b.Rooms,
			RoomsSubtotal: b.RoomsSubtotal,
			ServiceFee:    b.ServiceFee,
			Total:         b.TotalPrice,
			DemandLevel:   b.DemandLevel,
		},
	}
}

// StatusUpdateRequest updates a booking's status.
type StatusUpdateRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}
