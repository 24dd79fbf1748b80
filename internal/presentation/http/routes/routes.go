package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mhdalhzau/warungpos/internal/config"
	domainRepo "github.com/mhdalhzau/warungpos/internal/domain/repository"
	"github.com/mhdalhzau/warungpos/internal/presentation/http/handler"
	"github.com/mhdalhzau/warungpos/internal/presentation/http/middleware"
	"github.com/mhdalhzau/warungpos/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Store       *handler.StoreHandler
	Product     *handler.ProductHandler
	Customer    *handler.CustomerHandler
	Transaction *handler.TransactionHandler
	Dashboard   *handler.DashboardHandler
	Receipt     *handler.ReceiptHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	StoreRepo       domainRepo.StoreRepository
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

	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
			auth.GET("/google", h.Auth.GoogleLogin)
			auth.GET("/google/callback", h.Auth.GoogleCallback)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		protected.GET("/profile", h.Auth.Profile)
		protected.POST("/stores", h.Store.Create)
		protected.GET("/stores", h.Store.List)

		// Store-scoped routes: ownership is checked once here, then every
		// handler below can trust the store context.
		store := protected.Group("/stores/:storeID")
		store.Use(middleware.StoreAccessMiddleware(deps.StoreRepo))

		rateLimiter := middleware.NewStoreRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		store.Use(rateLimiter.Middleware())
		store.Use(middleware.Idempotency(deps.IdempotencyRepo))

		store.GET("", h.Store.Get)
		store.PUT("", h.Store.Update)
		store.DELETE("", h.Store.Delete)

		store.GET("/dashboard", h.Dashboard.Snapshot)

		products := store.Group("/products")
		{
			products.POST("", h.Product.Create)
			products.GET("", h.Product.List)
			products.GET("/low-stock", h.Product.LowStock)
			products.GET("/:id", h.Product.Get)
			products.PUT("/:id", h.Product.Update)
			products.DELETE("/:id", h.Product.Delete)
		}

		customers := store.Group("/customers")
		{
			customers.POST("", h.Customer.Create)
			customers.GET("", h.Customer.List)
			customers.GET("/:id", h.Customer.Get)
			customers.PUT("/:id", h.Customer.Update)
			customers.DELETE("/:id", h.Customer.Delete)
			customers.POST("/:id/debt", h.Customer.AddDebt)
			customers.POST("/:id/debt/settle", h.Customer.SettleDebt)
		}

		transactions := store.Group("/transactions")
		{
			transactions.POST("", h.Transaction.Create)
			transactions.GET("", h.Transaction.List)
			transactions.GET("/:id", h.Transaction.Get)
			transactions.POST("/:id/receipt", h.Receipt.Compose)
			transactions.POST("/:id/receipt/print", h.Receipt.Print)
		}

		printerRoutes := store.Group("/printer")
		{
			printerRoutes.GET("/status", h.Receipt.PrinterStatus)
			printerRoutes.POST("/test", h.Receipt.TestPrint)
		}
	}

	return router
}
