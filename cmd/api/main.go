package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/dillkhus/cafe-pos/internal/application/service"
	"github.com/dillkhus/cafe-pos/internal/config"
	"github.com/dillkhus/cafe-pos/internal/infrastructure/repository"
	"github.com/dillkhus/cafe-pos/internal/presentation/http/handler"
	"github.com/dillkhus/cafe-pos/internal/presentation/http/routes"
	"github.com/dillkhus/cafe-pos/pkg/printer"
	"github.com/dillkhus/cafe-pos/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Operating hours are mandatory; nothing works without them
	scheduleService, err := service.NewScheduleService(&cfg.Hours)
	if err != nil {
		log.Fatalf("Failed to load operating hours: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	catalogRepo := repository.NewFileCatalogRepository(cfg.Catalog.DayPath, cfg.Catalog.EveningPath)
	ledgerRepo := repository.NewFileLedgerRepository(cfg.Ledger.Path)

	// Initialize services
	authService := service.NewAuthService(cfg.Staff, jwtManager)
	catalogService := service.NewCatalogService(catalogRepo, scheduleService)
	billingService := service.NewBillingService()
	sessionService := service.NewSessionService(scheduleService, catalogService, billingService, ledgerRepo)
	customerService := service.NewCustomerService(ledgerRepo)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, sessionService, cfg.Cafe, cfg.Printer.Type, cfg.Printer.Width)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Catalog:  handler.NewCatalogHandler(catalogService, scheduleService, cfg.Cafe.Name),
		Session:  handler.NewSessionHandler(sessionService, printerService, cfg.Cafe),
		Customer: handler.NewCustomerHandler(customerService),
		Printer:  handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
