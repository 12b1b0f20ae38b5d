package models

import (
	"time"
)

type Booking struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Code         string    `json:"code" gorm:"uniqueIndex"`
	UserID       *uint     `json:"userId"`
	User         *User     `json:"user" gorm:"foreignKey:UserID"`
	HotelID      string    `json:"hotelId"`
	HotelName    string    `json:"hotelName"`
	HotelCity    string    `json:"hotelCity"`
	CheckInDate  string    `json:"checkInDate"`
	CheckOutDate string    `json:"checkOutDate"`
	Guests       int       `json:"guests"`
	Rooms        int       `json:"rooms"`
	GuestName    string    `json:"guestName,omitempty"`
	GuestEmail   string    `json:"guestEmail,omitempty"`
	GuestPhone   string    `json:"guestPhone,omitempty"`
	Status       int       `json:"status"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Price breakdown as quoted when the booking was made
	BasePrice     int    `json:"basePrice"`     // catalog nightly rate before surcharges
	NightlyRate   int    `json:"nightlyRate"`   // surcharge-adjusted nightly rate
	Nights        int    `json:"nights"`
	RoomsSubtotal int    `json:"roomsSubtotal"` // nightlyRate x nights x rooms
	ServiceFee    int    `json:"serviceFee"`    // 10% of the subtotal
	TotalPrice    int    `json:"totalPrice"`
	DemandLevel   string `json:"demandLevel"` // sampled demand bucket at quote time
}
