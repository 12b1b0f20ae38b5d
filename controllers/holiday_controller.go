package controllers

import (
	"net/url"
	"strconv"
	"strings"

	"stayverse/config"
	"stayverse/dto"
	"stayverse/models"
	"stayverse/response"
	"stayverse/services"
	"stayverse/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// HolidayController manages the holiday calendar used by the pricing
// engine. Writes invalidate the cached calendar.
type HolidayController struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewHolidayController(db *gorm.DB, rdb *redis.Client) *HolidayController {
	return &HolidayController{db: db, rdb: rdb}
}

func toHolidayResponse(holiday models.Holiday) dto.HolidayResponse {
	return dto.HolidayResponse{
		ID:        holiday.ID,
		Name:      holiday.Name,
		Date:      holiday.Date,
		CreatedAt: holiday.CreatedAt,
		UpdatedAt: holiday.UpdatedAt,
	}
}

// GetHolidays lists the calendar with optional name filtering.
func (h *HolidayController) GetHolidays(c *gin.Context) {
	tx := h.db.Model(&models.Holiday{})

	if nameFilter := c.Query("name"); nameFilter != "" {
		decodedNameFilter, err := url.QueryUnescape(nameFilter)
		if err != nil {
			decodedNameFilter = nameFilter
		}
		tx = tx.Where("name ILIKE ?", "%"+decodedNameFilter+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	page, limit, _, _ := paginate(c, int(total))

	var holidays []models.Holiday
	if err := tx.Order("updated_at desc").Offset(page * limit).Limit(limit).Find(&holidays).Error; err != nil {
		response.ServerError(c)
		return
	}

	holidayResponses := make([]dto.HolidayResponse, 0, len(holidays))
	for _, holiday := range holidays {
		holidayResponses = append(holidayResponses, toHolidayResponse(holiday))
	}

	response.SuccessWithPagination(c, holidayResponses, page, limit, int(total))
}

// GetHolidayDetail serves one calendar entry by id.
func (h *HolidayController) GetHolidayDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid holiday id")
		return
	}

	var holiday models.Holiday
	if err := h.db.First(&holiday, uint(id)).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toHolidayResponse(holiday))
}

// CreateHoliday adds a calendar entry.
func (h *HolidayController) CreateHoliday(c *gin.Context) {
	var request dto.CreateHolidayRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	holiday := models.Holiday{
		Name: strings.TrimSpace(request.Name),
		Date: request.Date,
	}
	if err := validator.ValidateHoliday(&holiday); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.db.Create(&holiday).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateHolidayCache(config.Ctx, h.rdb)
	response.Success(c, toHolidayResponse(holiday))
}

// UpdateHoliday edits a calendar entry.
func (h *HolidayController) UpdateHoliday(c *gin.Context) {
	var request dto.UpdateHolidayRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	var holiday models.Holiday
	if err := h.db.First(&holiday, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	holiday.Name = strings.TrimSpace(request.Name)
	holiday.Date = request.Date
	if err := validator.ValidateHoliday(&holiday); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.db.Save(&holiday).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateHolidayCache(config.Ctx, h.rdb)
	response.Success(c, toHolidayResponse(holiday))
}

// DeleteHolidays removes calendar entries by id.
func (h *HolidayController) DeleteHolidays(c *gin.Context) {
	var request dto.DeleteHolidayRequest
	if err := c.ShouldBindJSON(&request); err != nil || len(request.IDs) == 0 {
		response.BadRequest(c, "Invalid payload")
		return
	}

	if err := h.db.Delete(&models.Holiday{}, request.IDs).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateHolidayCache(config.Ctx, h.rdb)
	response.Success(c, gin.H{"deleted": len(request.IDs)})
}
