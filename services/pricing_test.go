package services

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	apperrors "stayverse/errors"
	"stayverse/models"
)

func newTestEngine(applyDemand bool, seed int64) *PricingEngine {
	return NewPricingEngine(PricingEngineOptions{
		Holidays:        StaticHolidaySource(models.SeedHolidays()),
		Rand:            rand.New(rand.NewSource(seed)),
		ApplyDemandRate: applyDemand,
	})
}

func date(day, month, year int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func TestQuoteHolidaySurcharge(t *testing.T) {
	engine := newTestEngine(false, 1)

	// 14-16 Aug 2024 spans Independence Day, no weekend nights.
	breakdown, err := engine.Quote(10000, date(14, 8, 2024), date(16, 8, 2024), 1)
	if err != nil {
		t.Fatalf("Quote returned error: %v", err)
	}

	if !breakdown.HasHoliday {
		t.Errorf("HasHoliday = false, want true")
	}
	if breakdown.HasWeekend {
		t.Errorf("HasWeekend = true, want false")
	}
	if breakdown.Nights != 2 {
		t.Errorf("Nights = %d, want 2", breakdown.Nights)
	}
	if breakdown.NightlyRate != 15000 {
		t.Errorf("NightlyRate = %d, want 15000", breakdown.NightlyRate)
	}
	if breakdown.RoomsSubtotal != 30000 {
		t.Errorf("RoomsSubtotal = %d, want 30000", breakdown.RoomsSubtotal)
	}
	if breakdown.ServiceFee != 3000 {
		t.Errorf("ServiceFee = %d, want 3000", breakdown.ServiceFee)
	}
	if breakdown.Total != 33000 {
		t.Errorf("Total = %d, want 33000", breakdown.Total)
	}
}

func TestQuoteWeekendSurcharge(t *testing.T) {
	engine := newTestEngine(false, 1)

	// 1 Jun 2024 is a Saturday.
	breakdown, err := engine.Quote(10000, date(1, 6, 2024), date(2, 6, 2024), 2)
	if err != nil {
		t.Fatalf("Quote returned error: %v", err)
	}

	if !breakdown.HasWeekend {
		t.Errorf("HasWeekend = false, want true")
	}
	if breakdown.HasHoliday {
		t.Errorf("HasHoliday = true, want false")
	}
	if breakdown.NightlyRate != 12000 {
		t.Errorf("NightlyRate = %d, want 12000", breakdown.NightlyRate)
	}
	if breakdown.RoomsSubtotal != 24000 {
		t.Errorf("RoomsSubtotal = %d, want 24000", breakdown.RoomsSubtotal)
	}
	if breakdown.ServiceFee != 2400 {
		t.Errorf("ServiceFee = %d, want 2400", breakdown.ServiceFee)
	}
	if breakdown.Total != 26400 {
		t.Errorf("Total = %d, want 26400", breakdown.Total)
	}
}

func TestQuoteWeekendAndHolidayStack(t *testing.T) {
	engine := newTestEngine(false, 1)

	// 21-26 Dec 2024 has weekend nights and Christmas; each surcharge
	// applies once, multiplied together.
	breakdown, err := engine.Quote(10000, date(21, 12, 2024), date(26, 12, 2024), 1)
	if err != nil {
		t.Fatalf("Quote returned error: %v", err)
	}

	if !breakdown.HasWeekend || !breakdown.HasHoliday {
		t.Fatalf("flags = weekend %t holiday %t, want both true", breakdown.HasWeekend, breakdown.HasHoliday)
	}
	if breakdown.NightlyRate != 18000 {
		t.Errorf("NightlyRate = %d, want 18000", breakdown.NightlyRate)
	}
	if breakdown.Total != 99000 {
		t.Errorf("Total = %d, want 99000", breakdown.Total)
	}
}

func TestQuoteServiceFeeRounding(t *testing.T) {
	engine := newTestEngine(false, 1)

	// 3-6 Jun 2024 are weekdays with no holiday, so the base rate is
	// untouched and the fee lands on a .5 that rounds up.
	breakdown, err := engine.Quote(3335, date(3, 6, 2024), date(6, 6, 2024), 1)
	if err != nil {
		t.Fatalf("Quote returned error: %v", err)
	}

	if breakdown.RoomsSubtotal != 10005 {
		t.Fatalf("RoomsSubtotal = %d, want 10005", breakdown.RoomsSubtotal)
	}
	if breakdown.ServiceFee != 1001 {
		t.Errorf("ServiceFee = %d, want 1001", breakdown.ServiceFee)
	}
	if breakdown.Total != 11006 {
		t.Errorf("Total = %d, want 11006", breakdown.Total)
	}
}

func TestQuoteNightlyRateRounding(t *testing.T) {
	engine := newTestEngine(false, 1)

	// 6999 * 1.2 = 8398.8, rounds to 8399.
	breakdown, err := engine.Quote(6999, date(1, 6, 2024), date(2, 6, 2024), 1)
	if err != nil {
		t.Fatalf("Quote returned error: %v", err)
	}
	if breakdown.NightlyRate != 8399 {
		t.Errorf("NightlyRate = %d, want 8399", breakdown.NightlyRate)
	}
}

func TestQuoteHolidayMatchesAnyYear(t *testing.T) {
	engine := newTestEngine(false, 1)

	// The calendar stores 2024 dates but matches month and day only.
	breakdown, err := engine.Quote(10000, date(14, 8, 2025), date(16, 8, 2025), 1)
	if err != nil {
		t.Fatalf("Quote returned error: %v", err)
	}
	if !breakdown.HasHoliday {
		t.Errorf("HasHoliday = false for 15 Aug 2025, want true")
	}
}

func TestQuoteInvalidDateRange(t *testing.T) {
	engine := newTestEngine(false, 1)

	sameDay := date(10, 6, 2024)
	if _, err := engine.Quote(10000, sameDay, sameDay, 1); !errors.Is(err, apperrors.ErrInvalidDateRange) {
		t.Errorf("same-day stay: err = %v, want ErrInvalidDateRange", err)
	}

	if _, err := engine.Quote(10000, date(12, 6, 2024), date(10, 6, 2024), 1); !errors.Is(err, apperrors.ErrInvalidDateRange) {
		t.Errorf("reversed stay: err = %v, want ErrInvalidDateRange", err)
	}
}

func TestQuoteInvalidRoomCount(t *testing.T) {
	engine := newTestEngine(false, 1)

	if _, err := engine.Quote(10000, date(10, 6, 2024), date(12, 6, 2024), 0); !errors.Is(err, apperrors.ErrInvalidRoomCount) {
		t.Errorf("rooms=0: err = %v, want ErrInvalidRoomCount", err)
	}
	if _, err := engine.Quote(10000, date(10, 6, 2024), date(12, 6, 2024), -3); !errors.Is(err, apperrors.ErrInvalidRoomCount) {
		t.Errorf("rooms=-3: err = %v, want ErrInvalidRoomCount", err)
	}
}

func TestQuoteDemandLabelOnly(t *testing.T) {
	// With the demand multiplier disabled the sampled level varies but
	// the numbers never move.
	for seed := int64(0); seed < 10; seed++ {
		engine := newTestEngine(false, seed)
		breakdown, err := engine.Quote(10000, date(3, 6, 2024), date(4, 6, 2024), 1)
		if err != nil {
			t.Fatalf("Quote returned error: %v", err)
		}
		if breakdown.NightlyRate != 10000 {
			t.Errorf("seed %d: NightlyRate = %d, want 10000", seed, breakdown.NightlyRate)
		}
		switch breakdown.DemandLevel {
		case "high", "medium", "low":
		default:
			t.Errorf("seed %d: DemandLevel = %q, want high/medium/low", seed, breakdown.DemandLevel)
		}
	}
}

func TestQuoteApplyDemandRate(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		engine := newTestEngine(true, seed)
		breakdown, err := engine.Quote(10000, date(3, 6, 2024), date(4, 6, 2024), 1)
		if err != nil {
			t.Fatalf("Quote returned error: %v", err)
		}

		want := 10000
		switch breakdown.DemandLevel {
		case "high":
			want = 13000
		case "low":
			want = 9000
		}
		if breakdown.NightlyRate != want {
			t.Errorf("seed %d: level %s NightlyRate = %d, want %d", seed, breakdown.DemandLevel, breakdown.NightlyRate, want)
		}
	}
}

func TestQuoteTotalIsSubtotalPlusFee(t *testing.T) {
	engine := newTestEngine(false, 7)

	cases := []struct {
		base  int
		in    time.Time
		out   time.Time
		rooms int
	}{
		{18500, date(5, 7, 2024), date(8, 7, 2024), 1},
		{6500, date(24, 1, 2024), date(28, 1, 2024), 3},
		{11000, date(30, 9, 2024), date(3, 10, 2024), 2},
	}
	for _, tc := range cases {
		breakdown, err := engine.Quote(tc.base, tc.in, tc.out, tc.rooms)
		if err != nil {
			t.Fatalf("Quote(%d) returned error: %v", tc.base, err)
		}
		if breakdown.Total != breakdown.RoomsSubtotal+breakdown.ServiceFee {
			t.Errorf("Total = %d, want subtotal %d + fee %d", breakdown.Total, breakdown.RoomsSubtotal, breakdown.ServiceFee)
		}
		if breakdown.RoomsSubtotal != breakdown.NightlyRate*breakdown.Nights*tc.rooms {
			t.Errorf("RoomsSubtotal = %d, want nightly %d x nights %d x rooms %d", breakdown.RoomsSubtotal, breakdown.NightlyRate, breakdown.Nights, tc.rooms)
		}
	}
}
