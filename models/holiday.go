package models

import (
	"time"
)

type Holiday struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Date      string    `json:"date"` // "02/01/2006"; pricing matches month+day only
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Matches reports whether d falls on this holiday. The stored year is
// ignored so the list keeps working across years.
func (h *Holiday) Matches(d time.Time) bool {
	parsed, err := time.Parse("02/01/2006", h.Date)
	if err != nil {
		return false
	}
	return parsed.Day() == d.Day() && parsed.Month() == d.Month()
}
