package routes

import (
	"stayverse/constants"
	"stayverse/controllers"
	middlewares "stayverse/middleware"
	"stayverse/services"
	"stayverse/services/notification"

	_ "stayverse/docs"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody, catalog *services.Catalog, pricing *services.PricingEngine) {

	facade := services.NewBookingFacade(services.BookingFacadeOptions{
		Catalog:  catalog,
		Pricing:  pricing,
		DB:       db,
		Notifier: notification.NewMelodyService(m),
	})

	hotelController := controllers.NewHotelController(catalog, redisCli)
	bookingController := controllers.NewBookingController(facade, catalog, redisCli)
	holidayController := controllers.NewHolidayController(db, redisCli)
	authController := controllers.NewAuthController(db)

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.GET("/hotels", hotelController.GetHotels)
	v1.GET("/hotels/search", hotelController.SearchHotels)
	v1.GET("/hotels/suggest", hotelController.SuggestHotels)
	v1.GET("/hotels/featured", hotelController.GetFeaturedHotels)
	v1.GET("/hotels/cities", hotelController.GetCities)
	v1.GET("/hotels/:id", hotelController.GetHotelDetail)
	v1.DELETE("/filters", hotelController.ClearFilters)

	v1.POST("/bookings/quote", middlewares.OptionalAuthMiddleware(), bookingController.QuoteBooking)
	v1.POST("/bookings", middlewares.OptionalAuthMiddleware(), bookingController.CreateBooking)
	v1.GET("/bookings", middlewares.AuthMiddleware(), bookingController.GetBookings)
	v1.GET("/bookings/:id", middlewares.AuthMiddleware(), bookingController.GetBookingDetail)
	v1.PUT("/bookingStatus", middlewares.AuthMiddleware(), bookingController.ChangeBookingStatus)

	v1.GET("/holidays", holidayController.GetHolidays)
	v1.GET("/holidays/:id", holidayController.GetHolidayDetail)
	v1.POST("/holidays", middlewares.AuthMiddleware(constants.RoleAdmin), holidayController.CreateHoliday)
	v1.PUT("/holidaysUpdate", middlewares.AuthMiddleware(constants.RoleAdmin), holidayController.UpdateHoliday)
	v1.DELETE("/holidays", middlewares.AuthMiddleware(constants.RoleAdmin), holidayController.DeleteHolidays)

	v1.POST("/auth/register", authController.Register)
	v1.POST("/auth/login", authController.Login)
	v1.DELETE("/auth/logout", authController.Logout)
	v1.GET("/profile", middlewares.AuthMiddleware(), authController.GetProfile)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
