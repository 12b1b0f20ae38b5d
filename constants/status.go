package constants

// User roles
const (
	RoleGuest = 0
	RoleAdmin = 1
)

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// Booking status
const (
	BookingStatusPending   = 0
	BookingStatusConfirmed = 1
	BookingStatusCompleted = 2
	BookingStatusCancelled = 3
)

// Demand levels reported by the pricing engine
const (
	DemandHigh   = "high"
	DemandMedium = "medium"
	DemandLow    = "low"
)

// DateLayout is the day format used on every API edge.
const DateLayout = "02/01/2006"

// DefaultMaxPrice is the price ceiling applied when a search does not
// specify one.
const DefaultMaxPrice = 20000
