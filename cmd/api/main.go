package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/alexdelx20/WeddingDream/internal/config"
	"github.com/alexdelx20/WeddingDream/internal/handler"
	"github.com/alexdelx20/WeddingDream/internal/middleware"
	"github.com/alexdelx20/WeddingDream/internal/service"
	"github.com/alexdelx20/WeddingDream/internal/storage"
	"github.com/alexdelx20/WeddingDream/internal/storage/memory"
	pgstore "github.com/alexdelx20/WeddingDream/internal/storage/postgres"
	"github.com/alexdelx20/WeddingDream/internal/ws"
	"github.com/alexdelx20/WeddingDream/pkg/database"
	"github.com/alexdelx20/WeddingDream/pkg/email"
	"github.com/alexdelx20/WeddingDream/pkg/logger"
	objstorage "github.com/alexdelx20/WeddingDream/pkg/storage"
	"github.com/alexdelx20/WeddingDream/pkg/utils"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	log := logger.New(os.Getenv("APP_ENV"))
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}

	// Storage backend: in-memory and postgres are interchangeable
	var store storage.Storage
	switch cfg.StorageBackend {
	case config.BackendMemory:
		store = memory.New()
		log.Info("using in-memory storage")
	case config.BackendPostgres:
		db, err := database.New(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("failed to connect to database", zap.Error(err))
		}
		if err := database.RunMigrations(db); err != nil {
			log.Fatal("failed to migrate database", zap.Error(err))
		}
		store = pgstore.New(db)
		log.Info("using postgres storage")
	default:
		log.Fatal("unknown storage backend", zap.String("backend", cfg.StorageBackend))
	}

	// Object storage for profile images
	r2Storage, err := objstorage.NewR2Storage(cfg.R2)
	if err != nil {
		log.Fatal("failed to initialize R2 storage", zap.Error(err))
	}

	// Email service
	emailService := email.NewEmailService(
		cfg.Email.ResendAPIKey,
		cfg.Email.FromAddress,
		cfg.Email.FromName,
		cfg.Email.HelpInbox,
		log,
	)

	// Broadcast hub
	hub := ws.NewHub()

	validator := utils.NewValidator()

	// Services
	authService := service.NewAuthService(store, emailService)
	dashboardService := service.NewDashboardService(store)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	settingsHandler := handler.NewSettingsHandler(store, validator, hub, log)
	taskHandler := handler.NewTaskHandler(store, validator, hub, log)
	budgetHandler := handler.NewBudgetHandler(store, validator, hub, log)
	vendorHandler := handler.NewVendorHandler(store, validator, hub, log)
	guestHandler := handler.NewGuestHandler(store, validator, hub, log)
	timelineHandler := handler.NewTimelineHandler(store, validator, hub, log)
	helpHandler := handler.NewHelpHandler(store, emailService, validator, log)
	uploadHandler := handler.NewUploadHandler(r2Storage, log)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, log)
	wsHandler := handler.NewWSHandler(hub)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PATCH, DELETE",
		AllowCredentials: true,
	}))
	app.Use(fiberlogger.New())

	// Real-time channel; new connections get no backlog and must fetch
	// current state themselves
	app.Use("/ws", wsHandler.Upgrade)
	app.Get("/ws", wsHandler.Serve())

	api := app.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Protected routes
	api.Use(middleware.AuthMiddleware())

	api.Get("/wedding-settings", settingsHandler.GetSettings)
	api.Post("/wedding-settings", settingsHandler.SaveSettings)

	taskHandler.RegisterRoutes(api, "/tasks")
	budgetHandler.RegisterRoutes(api, "/budget")
	vendorHandler.RegisterRoutes(api, "/vendors")
	guestHandler.RegisterRoutes(api, "/guests")
	timelineHandler.RegisterRoutes(api, "/timeline")

	api.Post("/help", helpHandler.SubmitMessage)
	api.Post("/upload-image", uploadHandler.UploadImage)
	api.Get("/dashboard", dashboardHandler.GetSummary)

	log.Info("starting server", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
