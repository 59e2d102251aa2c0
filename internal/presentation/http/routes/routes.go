package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wekesadev/sokopos-api/internal/config"
	domainRepo "github.com/wekesadev/sokopos-api/internal/domain/repository"
	"github.com/wekesadev/sokopos-api/internal/presentation/http/handler"
	"github.com/wekesadev/sokopos-api/internal/presentation/http/middleware"
	"github.com/wekesadev/sokopos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Cart        *handler.CartHandler
	Checkout    *handler.CheckoutHandler
	Order       *handler.OrderHandler
	Product     *handler.ProductHandler
	Customer    *handler.CustomerHandler
	Branch      *handler.BranchHandler
	TaxCategory *handler.TaxCategoryHandler
	Analytics   *handler.AnalyticsHandler
	Printer     *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-cashier rate limiter
		rateLimiter := middleware.NewCashierRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Cart and checkout
	registerCartRoutes(protected, h)
	registerCheckoutRoutes(protected, h, deps)

	// Orders
	registerOrderRoutes(protected, h)

	// Products
	registerProductRoutes(protected, h)

	// Customers
	registerCustomerRoutes(protected, h)

	// Branches
	registerBranchRoutes(protected, h)

	// Tax categories
	registerTaxCategoryRoutes(protected, h)

	// Analytics
	registerAnalyticsRoutes(protected, h)

	// Printer
	registerPrinterRoutes(protected, h)
}

func registerCartRoutes(protected *gin.RouterGroup, h *Handlers) {
	cart := protected.Group("/cart")
	{
		cart.GET("", h.Cart.Get)
		cart.DELETE("", h.Cart.Clear)
		cart.POST("/items", h.Cart.AddItem)
		cart.PATCH("/items/:productId", h.Cart.UpdateItem)
		cart.DELETE("/items/:productId", h.Cart.RemoveItem)
		cart.PUT("/customer", h.Cart.SetCustomer)
		cart.PUT("/note", h.Cart.SetNote)
		cart.PUT("/discount", h.Cart.SetDiscount)
		cart.PUT("/payment-method", h.Cart.SetPaymentMethod)
		cart.POST("/hold", h.Cart.Hold)
		cart.GET("/held", h.Cart.Held)
		cart.POST("/held/:heldOrderId/resume", h.Cart.Resume)
	}
}

func registerCheckoutRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Checkout uses idempotency middleware so a network retry never
	// creates a duplicate order.
	protected.POST("/checkout", middleware.Idempotency(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
	}), h.Checkout.Checkout)
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers) {
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.GET("/:id", h.Order.Get)
		orders.GET("/:id/receipt", h.Order.Receipt)
		orders.GET("/:id/invoice", h.Order.Invoice)
		orders.POST("/:id/print", h.Order.Print)
	}
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/:id", h.Product.Get)
		products.POST("", middleware.RequireAdmin(), h.Product.Create)
		products.PUT("/:id", middleware.RequireAdmin(), h.Product.Update)
		products.DELETE("/:id", middleware.RequireAdmin(), h.Product.Delete)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PATCH("/:id", h.Customer.Update)
		customers.DELETE("/:id", middleware.RequireAdmin(), h.Customer.Delete)
		customers.POST("/:id/redeem", h.Customer.Redeem)
		customers.POST("/:id/award", h.Customer.Award)
	}
}

func registerBranchRoutes(protected *gin.RouterGroup, h *Handlers) {
	branches := protected.Group("/branches")
	{
		branches.GET("", h.Branch.List)
		branches.GET("/:id", h.Branch.Get)
		branches.PATCH("/:id", middleware.RequireAdmin(), h.Branch.Update)
	}
}

func registerTaxCategoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	taxCategories := protected.Group("/tax-categories")
	{
		taxCategories.GET("", h.TaxCategory.List)
		taxCategories.GET("/:id", h.TaxCategory.Get)
		taxCategories.POST("", middleware.RequireAdmin(), h.TaxCategory.Create)
		taxCategories.PUT("/:id", middleware.RequireAdmin(), h.TaxCategory.Update)
		taxCategories.DELETE("/:id", middleware.RequireAdmin(), h.TaxCategory.Delete)
		taxCategories.POST("/:id/activate", middleware.RequireAdmin(), h.TaxCategory.Activate)
		taxCategories.POST("/:id/deactivate", middleware.RequireAdmin(), h.TaxCategory.Deactivate)
		taxCategories.POST("/defaults", middleware.RequireAdmin(), h.TaxCategory.InitDefaults)
	}
}

func registerAnalyticsRoutes(protected *gin.RouterGroup, h *Handlers) {
	analytics := protected.Group("/analytics")
	{
		analytics.GET("/overview", h.Analytics.Overview)
		analytics.GET("/daily-sales", h.Analytics.DailySales)
		analytics.GET("/payment-methods", h.Analytics.PaymentMethods)
		analytics.GET("/recent-sales", h.Analytics.RecentSales)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.Status)
		printerGroup.POST("/test", h.Printer.TestPrint)
	}
}
