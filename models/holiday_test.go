package models

import (
	"testing"
	"time"
)

func TestHolidayMatchesIgnoresYear(t *testing.T) {
	holiday := Holiday{Name: "Independence Day", Date: "15/08/2024"}

	cases := []struct {
		date time.Time
		want bool
	}{
		{time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2024, 8, 14, 0, 0, 0, 0, time.UTC), false},
		{time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tc := range cases {
		if got := holiday.Matches(tc.date); got != tc.want {
			t.Errorf("Matches(%s) = %t, want %t", tc.date.Format("02/01/2006"), got, tc.want)
		}
	}
}

func TestHolidayMatchesUnparsableDate(t *testing.T) {
	holiday := Holiday{Name: "Broken", Date: "not-a-date"}
	if holiday.Matches(time.Now()) {
		t.Error("Matches returned true for an unparsable calendar entry")
	}
}

func TestSeedHotelsAreValid(t *testing.T) {
	for _, hotel := range SeedHotels() {
		if err := hotel.Validate(); err != nil {
			t.Errorf("seed hotel %s invalid: %v", hotel.ID, err)
		}
	}
}
