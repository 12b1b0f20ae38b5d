package dto

import (
	"time"
)

// HolidayResponse is the API projection of a holiday.
type HolidayResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateHolidayRequest creates a new holiday entry.
type CreateHolidayRequest struct {
	Name string `json:"name" binding:"required"`
	Date string `json:"date" binding:"required"`
}

type UpdateHolidayRequest struct {
	ID   uint   `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
	Date string `json:"date" binding:"required"`
}

// DeleteHolidayRequest removes holidays by id.
type DeleteHolidayRequest struct {
	IDs []uint `json:"ids" binding:"required"`
}
