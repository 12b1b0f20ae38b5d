package controllers

import (
	goerrors "errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"stayverse/config"
	"stayverse/constants"
	"stayverse/dto"
	"stayverse/errors"
	"stayverse/models"
	"stayverse/response"
	"stayverse/services"
	"stayverse/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// BookingController serves the quote and booking endpoints.
type BookingController struct {
	facade  *services.BookingFacade
	catalog *services.Catalog
	rdb     *redis.Client
}

func NewBookingController(facade *services.BookingFacade, catalog *services.Catalog, rdb *redis.Client) *BookingController {
	return &BookingController{facade: facade, catalog: catalog, rdb: rdb}
}

func bookingsCacheKey(userID uint) string {
	return fmt.Sprintf("bookings:user:%d", userID)
}

// currentUserID returns the authenticated user id, if any.
func currentUserID(c *gin.Context) *uint {
	if v, exists := c.Get("userID"); exists {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	return nil
}

func respondBookingError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		response.BadRequest(c, appErr.Message)
		return
	}
	switch {
	case goerrors.Is(err, errors.ErrInvalidDateRange),
		goerrors.Is(err, errors.ErrInvalidRoomCount),
		goerrors.Is(err, errors.ErrBookingCancelled),
		goerrors.Is(err, errors.ErrBookingCompleted):
		response.BadRequest(c, err.Error())
	case goerrors.Is(err, errors.ErrHotelNotFound),
		goerrors.Is(err, errors.ErrBookingNotFound):
		response.NotFound(c)
	default:
		response.ServerError(c)
	}
}

func (b *BookingController) toBookingResponses(bookings []models.Booking) []dto.BookingResponse {
	bookingsResponse := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		hotel, _ := b.catalog.ByID(booking.HotelID)
		bookingsResponse = append(bookingsResponse, dto.NewBookingResponse(booking, hotel))
	}
	return bookingsResponse
}

// QuoteBooking prices a stay without creating a booking.
func (b *BookingController) QuoteBooking(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	breakdown, err := b.facade.Quote(req)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	response.Success(c, breakdown)
}

// CreateBooking validates, prices and persists a booking.
func (b *BookingController) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	userID := currentUserID(c)
	if err := validator.ValidateBookingRequest(&req, userID); err != nil {
		respondBookingError(c, err)
		return
	}

	booking, err := b.facade.CreateBooking(req, userID)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	if userID != nil {
		if err := services.DeleteFromRedis(config.Ctx, b.rdb, bookingsCacheKey(*userID)); err != nil {
			log.Printf("Could not invalidate bookings cache: %v", err)
		}
	}

	hotel, _ := b.catalog.ByID(booking.HotelID)
	response.Success(c, dto.NewBookingResponse(*booking, hotel))
}

// GetBookings lists the caller's bookings; admins see everything.
func (b *BookingController) GetBookings(c *gin.Context) {
	userID := currentUserID(c)
	if userID == nil {
		response.Unauthorized(c)
		return
	}

	if c.GetInt("userRole") == constants.RoleAdmin {
		bookings, err := b.facade.Bookings().List()
		if err != nil {
			response.ServerError(c)
			return
		}
		bookingsResponse := b.toBookingResponses(bookings)
		total := len(bookingsResponse)
		page, limit, start, end := paginate(c, total)
		response.SuccessWithPagination(c, bookingsResponse[start:end], page, limit, total)
		return
	}

	cacheKey := bookingsCacheKey(*userID)
	var bookingsResponse []dto.BookingResponse
	if err := services.GetFromRedis(config.Ctx, b.rdb, cacheKey, &bookingsResponse); err != nil || len(bookingsResponse) == 0 {
		bookings, err := b.facade.Bookings().ListByUser(*userID)
		if err != nil {
			response.ServerError(c)
			return
		}
		bookingsResponse = b.toBookingResponses(bookings)
		if len(bookingsResponse) > 0 {
			if err := services.SetToRedis(config.Ctx, b.rdb, cacheKey, bookingsResponse, 15*time.Minute); err != nil {
				log.Printf("Could not cache bookings: %v", err)
			}
		}
	}

	total := len(bookingsResponse)
	page, limit, start, end := paginate(c, total)
	response.SuccessWithPagination(c, bookingsResponse[start:end], page, limit, total)
}

// GetBookingDetail serves one booking. Guests may only read their own.
func (b *BookingController) GetBookingDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	booking, err := b.facade.Bookings().GetByID(uint(id))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	userID := currentUserID(c)
	if c.GetInt("userRole") != constants.RoleAdmin {
		if userID == nil || booking.UserID == nil || *booking.UserID != *userID {
			response.Forbidden(c)
			return
		}
	}

	hotel, _ := b.catalog.ByID(booking.HotelID)
	response.Success(c, dto.NewBookingResponse(*booking, hotel))
}

// ChangeBookingStatus cancels or completes a booking.
func (b *BookingController) ChangeBookingStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	var (
		booking *models.Booking
		err     error
	)
	switch req.Status {
	case constants.BookingStatusCancelled:
		booking, err = b.facade.CancelBooking(req.ID)
	case constants.BookingStatusCompleted:
		booking, err = b.facade.CompleteBooking(req.ID)
	default:
		response.BadRequest(c, "Unsupported status transition")
		return
	}
	if err != nil {
		respondBookingError(c, err)
		return
	}

	if booking.UserID != nil {
		if err := services.DeleteFromRedis(config.Ctx, b.rdb, bookingsCacheKey(*booking.UserID)); err != nil {
			log.Printf("Could not invalidate bookings cache: %v", err)
		}
	}

	hotel, _ := b.catalog.ByID(booking.HotelID)
	response.Success(c, dto.NewBookingResponse(*booking, hotel))
}
