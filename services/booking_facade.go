package services

import (
	"fmt"
	"strings"
	"time"

	"stayverse/builders"
	"stayverse/commands"
	"stayverse/constants"
	"stayverse/dto"
	"stayverse/errors"
	"stayverse/models"
	"stayverse/services/logger"
	"stayverse/services/notification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingFacade ties the catalog, pricing engine and booking store
// together behind one entry point for the booking flow.
type BookingFacade struct {
	catalog        *Catalog
	pricing        *PricingEngine
	bookingService *BookingService
	notifier       notification.Service
	db             *gorm.DB
	logger         logger.Logger
}

type BookingFacadeOptions struct {
	Catalog  *Catalog
	Pricing  *PricingEngine
	DB       *gorm.DB
	Notifier notification.Service
	Logger   logger.Logger
}

func NewBookingFacade(opts BookingFacadeOptions) *BookingFacade {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BookingFacade{
		catalog:        opts.Catalog,
		pricing:        opts.Pricing,
		bookingService: NewBookingService(opts.DB),
		notifier:       opts.Notifier,
		db:             opts.DB,
		logger:         l,
	}
}

// Quote prices a stay without creating a booking.
func (f *BookingFacade) Quote(req dto.QuoteRequest) (*dto.PriceBreakdown, error) {
	hotel, ok := f.catalog.ByID(req.HotelID)
	if !ok {
		return nil, errors.ErrHotelNotFound
	}

	checkIn, checkOut, err := parseStayDates(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	return f.pricing.Quote(hotel.Price, checkIn, checkOut, req.Rooms)
}

// CreateBooking quotes the stay, persists the booking and announces it.
func (f *BookingFacade) CreateBooking(req dto.CreateBookingRequest, userID *uint) (*models.Booking, error) {
	hotel, ok := f.catalog.ByID(req.HotelID)
	if !ok {
		return nil, errors.ErrHotelNotFound
	}

	checkIn, checkOut, err := parseStayDates(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	breakdown, err := f.pricing.Quote(hotel.Price, checkIn, checkOut, req.Rooms)
	if err != nil {
		return nil, err
	}

	builder := builders.NewBookingBuilder().
		WithCode(newBookingCode()).
		WithHotel(hotel).
		WithStay(req.CheckInDate, req.CheckOutDate, req.Guests, req.Rooms).
		WithGuestInfo(req.GuestName, req.GuestPhone, req.GuestEmail).
		WithStatus(constants.BookingStatusConfirmed).
		WithBreakdown(breakdown)
	if userID != nil {
		builder = builder.WithUser(*userID)
	}
	booking := builder.Build()

	if err := f.bookingService.Validate(booking); err != nil {
		return nil, err
	}

	cmd := commands.NewCreateBookingCommand(booking, f.db)
	if err := cmd.Execute(); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not save booking", err)
	}

	f.announce(booking, "confirmed")
	return booking, nil
}

// CancelBooking cancels a booking and announces the change.
func (f *BookingFacade) CancelBooking(bookingID uint) (*models.Booking, error) {
	booking, err := f.bookingService.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if err := f.bookingService.Cancel(booking); err != nil {
		return nil, err
	}
	f.announce(booking, "cancelled")
	return booking, nil
}

// CompleteBooking marks a stay finished and announces the change.
func (f *BookingFacade) CompleteBooking(bookingID uint) (*models.Booking, error) {
	booking, err := f.bookingService.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if err := f.bookingService.Complete(booking); err != nil {
		return nil, err
	}
	f.announce(booking, "completed")
	return booking, nil
}

func (f *BookingFacade) Bookings() *BookingService {
	return f.bookingService
}

func (f *BookingFacade) announce(booking *models.Booking, status string) {
	if f.notifier == nil {
		return
	}
	message := notification.NewMessageBuilder(booking.Code, booking.HotelName, status).Build()
	if err := f.notifier.SendMessage(message); err != nil {
		f.logger.Error("Could not broadcast booking update: %v", err)
	}
}

func parseStayDates(checkInDate, checkOutDate string) (time.Time, time.Time, error) {
	checkIn, err := time.Parse(constants.DateLayout, checkInDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid check-in date", err)
	}
	checkOut, err := time.Parse(constants.DateLayout, checkOutDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid check-out date", err)
	}
	return checkIn, checkOut, nil
}

// newBookingCode builds a short human readable confirmation code.
func newBookingCode() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("SV-%s", id[:8])
}
