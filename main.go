package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"backoffice/handler"
	"backoffice/middleware"
	"backoffice/repository"
	"backoffice/services"
	"backoffice/usecase"
	"backoffice/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	// Check required environment variables
	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"REDIS_URL",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
}

type appDeps struct {
	locations *handler.LocationHandler
	reminders *handler.ReminderHandler
	schedules *handler.ScheduleHandler
	suppliers *handler.SupplierHandler
	orders    *handler.OrderHandler
	backups   *handler.BackupHandler
	settings  *handler.SettingsHandler
	telegram  *handler.TelegramHandler
	stats     *handler.StatsHandler
	health    *handler.HealthHandler
}

func setupRouter(deps *appDeps) *gin.Engine {
	router := gin.New()

	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())

	router.GET("/health", deps.health.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		locations := api.Group("/locations")
		{
			locations.GET("/:locationId", deps.locations.GetLocation)
			locations.PUT("/:locationId", deps.locations.SaveLocation)
		}

		schedules := api.Group("/schedules")
		{
			schedules.GET("/config", deps.schedules.GetConfig)
			schedules.PUT("/config", deps.schedules.PutConfig)
			schedules.GET("/:weekId", deps.schedules.GetWeek)
			schedules.PUT("/:weekId", deps.schedules.PutWeek)
		}

		reminders := api.Group("/reminders")
		{
			reminders.GET("", deps.reminders.ListReminders)
			reminders.POST("", deps.reminders.CreateReminder)
			reminders.GET("/:id", deps.reminders.GetReminder)
			reminders.PUT("/:id", deps.reminders.UpdateReminder)
			reminders.DELETE("/:id", deps.reminders.DeleteReminder)
		}

		suppliers := api.Group("/suppliers")
		{
			suppliers.GET("", deps.suppliers.ListSuppliers)
			suppliers.POST("", deps.suppliers.CreateSupplier)
			suppliers.GET("/:id", deps.suppliers.GetSupplier)
			suppliers.PUT("/:id", deps.suppliers.UpdateSupplier)
			suppliers.DELETE("/:id", deps.suppliers.DeleteSupplier)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", deps.orders.ListOrders)
			orders.POST("", deps.orders.CreateOrder)
			orders.DELETE("/:id", deps.orders.DeleteOrder)
		}

		backups := api.Group("/backups")
		{
			backups.GET("", deps.backups.ListBackups)
			backups.POST("", deps.backups.CreateBackup)
		}

		api.GET("/settings/telegram", deps.settings.GetTelegram)
		api.PUT("/settings/telegram", deps.settings.PutTelegram)
		api.POST("/telegram/test", deps.telegram.TestSend)

		api.GET("/stats", deps.stats.GetStats)
	}

	return router
}

func main() {
	// Initialize MongoDB connection
	utils.InitMongoClient()

	// Sent-marker ledger lives in Redis with a TTL per marker
	markerTTL := utils.GetEnvAsDuration("SENT_MARKER_TTL", services.DefaultMarkerTTL)
	markers, err := services.NewSentMarkerStore(os.Getenv("REDIS_URL"), markerTTL)
	if err != nil {
		log.Fatalf("Failed to initialize sent-marker store: %v", err)
	}
	defer markers.Close()

	// Repositories
	locationsRepo := repository.GetLocationsRepo(utils.MongoClient)
	remindersRepo := repository.GetRemindersRepo(utils.MongoClient)
	schedulesRepo := repository.GetSchedulesRepo(utils.MongoClient)
	suppliersRepo := repository.GetSuppliersRepo(utils.MongoClient)
	ordersRepo := repository.GetOrdersRepo(utils.MongoClient)
	backupsRepo := repository.GetBackupsRepo(utils.MongoClient)
	settingsRepo := repository.GetSettingsRepo(utils.MongoClient)

	// Services
	notifier := services.NewTelegramNotifier()
	locationService := &usecase.LocationService{
		Locations: locationsRepo,
		Backups:   backupsRepo,
		Guard:     usecase.DefaultGuardThresholds(),
	}

	// Reminder evaluator runs in the timezone the restaurants live in
	tzName := utils.GetEnvAsString("TIMEZONE", "Asia/Jerusalem")
	tz, err := time.LoadLocation(tzName)
	if err != nil {
		log.Fatalf("Invalid TIMEZONE %q: %v", tzName, err)
	}

	evaluator := &usecase.ReminderEvaluator{
		Reminders:   remindersRepo,
		Credentials: settingsRepo,
		Markers:     markers,
		Notifier:    notifier,
		Location:    tz,
	}

	if utils.GetEnvAsBool("ENABLE_EVALUATOR", true) {
		log.Println("Starting reminder evaluator...")
		interval := utils.GetEnvAsDuration("EVALUATOR_INTERVAL", time.Minute)
		go evaluator.Run(context.Background(), interval)
	} else {
		log.Println("Reminder evaluator disabled (set ENABLE_EVALUATOR=true to enable)")
	}

	deps := &appDeps{
		locations: handler.NewLocationHandler(locationService),
		reminders: handler.NewReminderHandler(remindersRepo),
		schedules: handler.NewScheduleHandler(schedulesRepo),
		suppliers: handler.NewSupplierHandler(suppliersRepo),
		orders:    handler.NewOrderHandler(ordersRepo),
		backups:   handler.NewBackupHandler(backupsRepo, locationService),
		settings:  handler.NewSettingsHandler(settingsRepo),
		telegram:  handler.NewTelegramHandler(settingsRepo, notifier),
		stats:     handler.NewStatsHandler(locationsRepo, remindersRepo),
		health:    handler.NewHealthHandler(utils.MongoClient, markers),
	}

	router := setupRouter(deps)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
