package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dillkhus/cafe-pos/internal/config"
	"github.com/dillkhus/cafe-pos/internal/presentation/http/handler"
	"github.com/dillkhus/cafe-pos/internal/presentation/http/middleware"
	"github.com/dillkhus/cafe-pos/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Catalog  *handler.CatalogHandler
	Session  *handler.SessionHandler
	Customer *handler.CustomerHandler
	Printer  *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
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

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Per-client rate limiter covers the whole public surface
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		// Public routes (no authentication required)
		registerPublicRoutes(v1, h)

		// Staff routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		protected.Use(middleware.RequireRole("staff"))

		registerStaffRoutes(protected, h)
	}

	return router
}

func registerPublicRoutes(v1 *gin.RouterGroup, h *Handlers) {
	v1.GET("/status", h.Catalog.Status)
	v1.GET("/menu", h.Catalog.Menu)

	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
	}

	sessions := v1.Group("/sessions")
	{
		sessions.POST("", h.Session.Create)
		sessions.GET("/:id", h.Session.Get)
		sessions.PUT("/:id/identity", h.Session.SubmitIdentity)
		sessions.PUT("/:id/items", h.Session.SetItem)
		sessions.DELETE("/:id/items", h.Session.ClearCart)
		sessions.POST("/:id/checkout", h.Session.Checkout)
		sessions.GET("/:id/bill", h.Session.GetBill)
		sessions.GET("/:id/bill/pdf", h.Session.ExportPDF)
	}
}

func registerStaffRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.GET("/:identity", h.Customer.Get)
	}

	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.Status)
		printerGroup.POST("/test", h.Printer.Test)
	}

	protected.POST("/sessions/:id/bill/print", h.Session.PrintReceipt)
}
