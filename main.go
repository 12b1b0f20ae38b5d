package main

import (
	"log"
	"net/http"
	"os"

	"stayverse/config"
	"stayverse/jobs"
	"stayverse/models"
	"stayverse/routes"
	"stayverse/services"
	"stayverse/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(&models.User{}, &models.Booking{}, &models.Holiday{}); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

// seedHolidays loads the default calendar on an empty table.
func seedHolidays() {
	var count int64
	if err := config.DB.Model(&models.Holiday{}).Count(&count).Error; err != nil {
		log.Printf("Could not count holidays: %v", err)
		return
	}
	if count > 0 {
		return
	}
	holidays := models.SeedHolidays()
	if err := config.DB.Create(&holidays).Error; err != nil {
		log.Printf("Could not seed holidays: %v", err)
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file, falling back to existing environment: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()
	seedHolidays()

	catalog, err := services.NewCatalog(models.SeedHotels())
	if err != nil {
		log.Fatalf("Failed to build catalog: %v", err)
	}

	pricing := services.NewPricingEngine(services.PricingEngineOptions{
		Holidays: services.NewDBHolidaySource(config.DB, config.RedisClient),
		Logger:   logger.NewDefaultLogger(logger.InfoLevel),
	})

	maintenance := services.NewMaintenanceService(services.MaintenanceServiceOptions{
		DB:     config.DB,
		Redis:  config.RedisClient,
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	})
	jobs.SetStayMaintainer(maintenance)
	jobs.SetCachePurger(maintenance)

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, m, catalog, pricing)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
