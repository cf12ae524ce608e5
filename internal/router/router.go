// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/arclux/watchdesk-backend/internal/config"
	"github.com/arclux/watchdesk-backend/internal/handlers"
	"github.com/arclux/watchdesk-backend/internal/middleware"
	"github.com/arclux/watchdesk-backend/internal/reconcile"
	"github.com/arclux/watchdesk-backend/internal/services"
	"github.com/arclux/watchdesk-backend/internal/store"
	"github.com/arclux/watchdesk-backend/internal/utils"
	"github.com/arclux/watchdesk-backend/internal/valuation"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Stores
	watchStore := store.NewGormWatchStore(db)
	mediaStore := store.NewGormMediaStore(db)
	customerStore := store.NewGormCustomerStore(db)
	invoiceStore := store.NewGormInvoiceStore(db)
	activityStore := store.NewGormActivityStore(db)
	operatorStore := store.NewGormOperatorStore(db)

	// Collaborators
	var calculator valuation.Calculator
	if cfg.Calculation.BaseURL != "" {
		calculator = valuation.NewHTTPCalculator(cfg.Calculation.BaseURL)
	}
	var cleaner reconcile.ObjectCleaner
	if storageService, err := services.NewStorageService(cfg); err != nil {
		logrus.WithError(err).Warn("Object storage unavailable, media cleanup disabled")
	} else {
		cleaner = storageService
	}

	// Services
	activityService := services.NewActivityService(activityStore)
	watchService := services.NewWatchService(watchStore, mediaStore, invoiceStore, activityService, calculator, cleaner)
	saleService := services.NewSaleService(watchStore, invoiceStore, customerStore, activityService)
	customerService := services.NewCustomerService(customerStore)
	paymentService := services.NewPaymentService(invoiceStore, cfg)
	authService := services.NewAuthService(operatorStore, cfg)

	// Handlers
	watchHandler := handlers.NewWatchHandler(watchService, saleService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceStore, paymentService)
	activityHandler := handlers.NewActivityHandler(activityService)
	authHandler := handlers.NewAuthHandler(authService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	v1 := r.Group("/v1")
	{
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/login", authHandler.Login)
		}

		// Public storefront collaborator
		storefront := v1.Group("/storefront")
		{
			storefront.GET("/watches", watchHandler.GetPublicWatches)
		}

		watches := v1.Group("/watches")
		watches.Use(middleware.AuthRequired())
		{
			watches.GET("", watchHandler.GetWatches)
			watches.GET("/:id", watchHandler.GetWatch)
			watches.POST("", watchHandler.CreateWatch)
			watches.PUT("/:id", watchHandler.UpdateWatch)
			watches.DELETE("/:id", watchHandler.DeleteWatch)
			watches.POST("/:id/toggle-public", watchHandler.TogglePublic)
			watches.POST("/:id/finalize-sale", watchHandler.FinalizeSale)
			watches.POST("/:id/historical-sale", watchHandler.RecordHistoricalSale)
			watches.GET("/:id/invoices", invoiceHandler.GetWatchInvoices)
		}

		customers := v1.Group("/customers")
		customers.Use(middleware.AuthRequired())
		{
			customers.GET("", customerHandler.GetCustomers)
			customers.GET("/:id", customerHandler.GetCustomer)
			customers.POST("", customerHandler.CreateCustomer)
			customers.PUT("/:id", customerHandler.UpdateCustomer)
			customers.DELETE("/:id", customerHandler.DeleteCustomer)
		}

		invoices := v1.Group("/invoices")
		invoices.Use(middleware.AuthRequired())
		{
			invoices.GET("", invoiceHandler.GetInvoices)
			invoices.POST("/:id/deposit-intent", invoiceHandler.CreateDepositIntent)
		}

		activity := v1.Group("/activity-log")
		activity.Use(middleware.AuthRequired())
		{
			activity.GET("", activityHandler.GetActivityLog)
		}
	}

	return r
}
