package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/wekesadev/sokopos-api/internal/application/service"
	"github.com/wekesadev/sokopos-api/internal/cart"
	"github.com/wekesadev/sokopos-api/internal/config"
	"github.com/wekesadev/sokopos-api/internal/infrastructure/database"
	"github.com/wekesadev/sokopos-api/internal/infrastructure/repository"
	"github.com/wekesadev/sokopos-api/internal/presentation/http/handler"
	"github.com/wekesadev/sokopos-api/internal/presentation/http/routes"
	"github.com/wekesadev/sokopos-api/pkg/printer"
	"github.com/wekesadev/sokopos-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default branch, tax categories and admin cashier
	if err := database.SeedDefaultData(db, cfg); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	branchRepo := repository.NewBranchRepository(db)
	cashierRepo := repository.NewCashierRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	taxCategoryRepo := repository.NewTaxCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// In-memory carts, one per cashier
	cartStore := cart.NewStore()

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

	// Initialize services
	authService := service.NewAuthService(cashierRepo, jwtManager)
	cartService := service.NewCartService(cartStore, productRepo, customerRepo, branchRepo)
	checkoutService := service.NewCheckoutService(cartStore, orderRepo, customerRepo, branchRepo)
	orderService := service.NewOrderService(orderRepo)
	productService := service.NewProductService(productRepo, taxCategoryRepo)
	customerService := service.NewCustomerService(customerRepo)
	branchService := service.NewBranchService(branchRepo)
	taxCategoryService := service.NewTaxCategoryService(taxCategoryRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo)
	receiptService := service.NewReceiptService(thermalPrinter, orderRepo, cfg.Store, cfg.Printer)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Cart:        handler.NewCartHandler(cartService),
		Checkout:    handler.NewCheckoutHandler(checkoutService),
		Order:       handler.NewOrderHandler(orderService, receiptService),
		Product:     handler.NewProductHandler(productService),
		Customer:    handler.NewCustomerHandler(customerService),
		Branch:      handler.NewBranchHandler(branchService),
		TaxCategory: handler.NewTaxCategoryHandler(taxCategoryService),
		Analytics:   handler.NewAnalyticsHandler(analyticsService),
		Printer:     handler.NewPrinterHandler(receiptService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
