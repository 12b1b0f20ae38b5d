package services

import (
	"math"
	"math/rand"
	"time"

	"stayverse/constants"
	"stayverse/dto"
	"stayverse/errors"
	"stayverse/models"
	"stayverse/services/logger"
)

const (
	weekendRate    = 1.20
	holidayRate    = 1.50
	serviceFeeRate = 0.10

	// Demand multipliers advertised in the booking UI. Only applied
	// when ApplyDemandRate is enabled; see the note on PricingEngine.
	highDemandRate = 1.30
	lowDemandRate  = 0.90
)

// occupancyBuckets holds the simulated occupancy fractions per demand
// level.
var occupancyBuckets = map[string][]float64{
	constants.DemandHigh:   {0.8, 0.9, 1.0},
	constants.DemandMedium: {0.5, 0.6, 0.7},
	constants.DemandLow:    {0.1, 0.2, 0.3, 0.4},
}

var demandLevels = []string{constants.DemandHigh, constants.DemandMedium, constants.DemandLow}

// HolidaySource supplies the holiday calendar to the pricing engine.
type HolidaySource interface {
	Holidays() []models.Holiday
}

// StaticHolidaySource serves a fixed holiday list.
type StaticHolidaySource []models.Holiday

func (s StaticHolidaySource) Holidays() []models.Holiday {
	return s
}

// PricingEngine turns a base nightly rate plus a stay window into a
// price breakdown. Weekend and holiday surcharges each apply once for
// the whole stay, not per night. The demand level is sampled fresh on
// every Quote call; by default it is informational only and does not
// move the price, which matches the long-standing behavior of the
// booking form even though the UI advertises +30%/-10% effects. Set
// ApplyDemandRate to make the sampled level actually multiply into
// the rate.
type PricingEngine struct {
	holidays        HolidaySource
	rng             *rand.Rand
	applyDemandRate bool
	logger          logger.Logger
}

// PricingEngineOptions configures a PricingEngine.
type PricingEngineOptions struct {
	Holidays        HolidaySource
	Rand            *rand.Rand // optional; defaults to a time-seeded source
	ApplyDemandRate bool
	Logger          logger.Logger
}

// NewPricingEngine creates a PricingEngine.
func NewPricingEngine(opts PricingEngineOptions) *PricingEngine {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	lg := opts.Logger
	if lg == nil {
		lg = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &PricingEngine{
		holidays:        opts.Holidays,
		rng:             rng,
		applyDemandRate: opts.ApplyDemandRate,
		logger:          lg,
	}
}

// Quote computes the price breakdown for a stay.
func (e *PricingEngine) Quote(basePrice int, checkIn, checkOut time.Time, rooms int) (*dto.PriceBreakdown, error) {
	if !checkOut.After(checkIn) {
		return nil, errors.ErrInvalidDateRange
	}
	if rooms < 1 {
		return nil, errors.ErrInvalidRoomCount
	}

	checkIn = truncateToDay(checkIn)
	checkOut = truncateToDay(checkOut)
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		return nil, errors.ErrInvalidDateRange
	}

	hasWeekend := false
	hasHoliday := false
	for i := 0; i < nights; i++ {
		date := checkIn.AddDate(0, 0, i)
		if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
			hasWeekend = true
		}
		if e.isHoliday(date) {
			hasHoliday = true
		}
	}

	rate := float64(basePrice)
	if hasWeekend {
		rate *= weekendRate
	}
	if hasHoliday {
		rate *= holidayRate
	}

	level, occupancy := e.sampleDemand()
	if e.applyDemandRate {
		switch level {
		case constants.DemandHigh:
			rate *= highDemandRate
		case constants.DemandLow:
			rate *= lowDemandRate
		}
	}

	nightlyRate := int(math.Round(rate))
	roomsSubtotal := nightlyRate * nights * rooms
	serviceFee := int(math.Round(float64(roomsSubtotal) * serviceFeeRate))

	e.logger.Debug("quote: base=%d nights=%d rooms=%d weekend=%t holiday=%t demand=%s occupancy=%.1f nightly=%d",
		basePrice, nights, rooms, hasWeekend, hasHoliday, level, occupancy, nightlyRate)

	return &dto.PriceBreakdown{
		BasePrice:     basePrice,
		NightlyRate:   nightlyRate,
		Nights:        nights,
		Rooms:         rooms,
		RoomsSubtotal: roomsSubtotal,
		ServiceFee:    serviceFee,
		Total:         roomsSubtotal + serviceFee,
		HasWeekend:    hasWeekend,
		HasHoliday:    hasHoliday,
		DemandLevel:   level,
	}, nil
}

// sampleDemand draws a demand level uniformly, then an occupancy
// fraction uniformly within that level's bucket.
func (e *PricingEngine) sampleDemand() (string, float64) {
	level := demandLevels[e.rng.Intn(len(demandLevels))]
	bucket := occupancyBuckets[level]
	return level, bucket[e.rng.Intn(len(bucket))]
}

func (e *PricingEngine) isHoliday(date time.Time) bool {
	if e.holidays == nil {
		return false
	}
	for _, h := range e.holidays.Holidays() {
		if h.Matches(date) {
			return true
		}
	}
	return false
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
