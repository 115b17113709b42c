package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	_ "github.com/joho/godotenv/autoload"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/skumar/kirana-api/docs" // Swagger docs
	"github.com/skumar/kirana-api/internal/config"
	"github.com/skumar/kirana-api/internal/database"
	"github.com/skumar/kirana-api/internal/handlers"
	"github.com/skumar/kirana-api/internal/jobs"
	"github.com/skumar/kirana-api/internal/middleware"
	"github.com/skumar/kirana-api/internal/repository"
	"github.com/skumar/kirana-api/internal/services"
	"github.com/skumar/kirana-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title Kirana POS API
// @version 1.0
// @description REST API for a kirana store point of sale and vendor ledger

// @host localhost:3001
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Setup(cfg.Environment)

	// Money fields serialize as plain JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true

	// Initialize Sentry when DSN is configured
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
		}); err != nil {
			logger.Error("Sentry initialization failed", "error", err)
		} else {
			logger.Info("Sentry initialized")
		}
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	logger.Info("Connected to database")

	if err := database.Migrate(db); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	repos := repository.NewRepositories(db)

	// Initialize background worker
	worker := jobs.NewWorker(cfg.WorkerCount)
	logger.Info("Started background worker", "goroutines", cfg.WorkerCount)

	// Initialize services
	svcs := services.NewServices(repos, cfg)

	// Schedule recurring jobs
	scheduleJobs(worker, svcs, cfg)

	// Initialize handlers
	h := handlers.NewHandlers(svcs, cfg.Location())

	// Setup router
	router := setupRouter(h, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	worker.Shutdown()
	logger.Info("Background worker stopped")

	if cfg.SentryDSN != "" {
		sentry.Flush(5 * time.Second)
	}

	logger.Info("Server exited gracefully")
}

func setupRouter(h *handlers.Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	if cfg.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.GET("/health", h.Health.Index)
		api.POST("/auth/login", h.Auth.Login)

		// Purchases (vendor deliveries)
		api.POST("/purchases", h.Purchase.Create)
		api.GET("/purchases", h.Purchase.Index)
		api.GET("/purchases/by-product-and-vendor", h.Purchase.LatestByProductAndVendor)
		api.DELETE("/purchases/:id", h.Purchase.Delete)

		// Vendors, their payments and balances
		api.GET("/vendors", h.Vendor.Index)
		api.GET("/vendors/with-products", h.Vendor.WithProducts)
		api.POST("/vendors", h.Vendor.Create)
		api.GET("/vendors/:id", h.Vendor.Show)
		api.PUT("/vendors/:id", h.Vendor.Update)
		api.DELETE("/vendors/:id", h.Vendor.Delete)
		api.GET("/vendors/:id/balance", h.Vendor.Balance)
		api.GET("/vendors/:id/payments", h.Vendor.Payments)
		api.POST("/vendors/:id/payments", h.Vendor.CreatePayment)
		api.DELETE("/payments/:id", h.Vendor.DeletePayment)

		// Product catalog and scanning
		api.GET("/products", h.Product.Index)
		api.POST("/products", h.Product.Create)
		api.GET("/products/scan/:code", h.Product.Scan)
		api.GET("/products/:id", h.Product.Show)
		api.PUT("/products/:id", h.Product.Update)
		api.DELETE("/products/:id", h.Product.Delete)

		// Billing, receipts and sales analytics
		api.POST("/bills", h.Bill.Create)
		api.GET("/bills", h.Bill.Index)
		api.GET("/bills/analytics", h.Bill.Analytics)
		api.GET("/bills/daily-sales", h.Bill.DailySales)
		api.GET("/bills/top-products", h.Bill.TopProducts)
		api.GET("/bills/:id", h.Bill.Show)
		api.GET("/bills/:id/receipt.pdf", h.Bill.Receipt)

		// Customer history
		api.GET("/customers", h.Customer.Index)

		// Downloadable reports
		api.GET("/reports/purchases.xlsx", h.Report.PurchasesXLSX)
		api.GET("/reports/sales.csv", h.Report.SalesCSV)
		api.GET("/reports/sales.pdf", h.Report.SalesPDF)

		// Authenticated routes
		protected := api.Group("")
		protected.Use(middleware.Auth(cfg.JWTSecret))
		{
			protected.GET("/users", h.User.Index)
			protected.POST("/users", middleware.RequireAdmin(), h.User.Create)
			protected.PUT("/users/:id/password", h.User.ChangePassword)
			protected.POST("/sync/catalog", middleware.RequireAdmin(), h.Sync.Run)
		}
	}

	return router
}

func scheduleJobs(worker *jobs.Worker, svcs *services.Services, cfg *config.Config) {
	if cfg.CatalogURL == "" {
		return
	}

	worker.ScheduleEveryImmediate(cfg.CatalogSyncInterval, func(ctx context.Context) error {
		logger.Info("[Job] Syncing product catalog...")
		_, err := svcs.CatalogSync.SyncOnce(ctx)
		return err
	})

	logger.Info("Scheduled recurring jobs")
}
