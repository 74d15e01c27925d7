package main

import (
	"context"                             // Context for shutdown and Redis operations
	"net/http"                            // HTTP server
	"os/signal"                           // Shutdown signals
	"syscall"                             // SIGTERM
	"time"                                // Shutdown grace period
	"paycoin_backend/internal/api"        // Custom package for API handlers
	"paycoin_backend/internal/config"     // Custom package for configuration
	"paycoin_backend/internal/middleware" // Custom package for middleware
	"paycoin_backend/internal/storage"    // Custom package for image storage

	// For loading .env files
	"github.com/gin-contrib/cors"  // CORS middleware
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Image storage: uploaded files on local disk, inline uploads as data URIs
	diskStore, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		logrus.Fatalf("failed to prepare upload directory: %v", err)
	}
	inlineStore := storage.InlineStore{}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// CORS with the configured allow-list
	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept"}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	apiGroup := r.Group("/api") // All endpoints live under /api

	// Public routes
	apiGroup.GET("/health", api.HealthHandler())                            // Liveness probe
	apiGroup.POST("/auth/register", api.RegisterHandler(db, cfg.JWTSecret)) // Registration endpoint
	apiGroup.POST("/auth/login", api.LoginHandler(db, cfg.JWTSecret))       // Login endpoint
	apiGroup.GET("/stores", api.ListStoresHandler(db, redisClient))         // Public store listing
	apiGroup.GET("/products", api.ListProductsHandler(db, redisClient))     // Public product listing

	// Authenticated routes (bearer token resolving to an existing user)
	authGroup := apiGroup.Group("")
	authGroup.Use(middleware.JWTAuthMiddleware(db, cfg.JWTSecret))
	authGroup.GET("/user/profile", api.GetProfileHandler())                            // Own profile
	authGroup.PUT("/user/profile", api.UpdateProfileHandler(db))                       // Profile update
	authGroup.POST("/user/upload-image", api.UploadInlineImageHandler(db, inlineStore)) // Inline image upload
	authGroup.POST("/upload/image", api.UploadImageHandler(db, diskStore))             // Disk image upload
	authGroup.DELETE("/upload/image/:image_type", api.RemoveImageHandler(db, diskStore)) // Image removal
	authGroup.POST("/transactions", api.CreateTransactionHandler(db))                  // Record a transaction
	authGroup.GET("/transactions", api.ListTransactionsHandler(db))                    // Own transaction history

	// Merchant-only routes
	merchantGroup := authGroup.Group("")
	merchantGroup.Use(middleware.MerchantOnlyMiddleware())
	merchantGroup.POST("/stores", api.CreateStoreHandler(db, redisClient))     // Create store
	merchantGroup.GET("/my-stores", api.MyStoresHandler(db))                   // Own stores
	merchantGroup.POST("/products", api.CreateProductHandler(db, redisClient)) // Create product
	merchantGroup.GET("/my-products", api.MyProductsHandler(db))               // Own products
	merchantGroup.GET("/analytics/dashboard", api.DashboardAnalyticsHandler(db)) // Revenue aggregates

	// Serve uploaded images from local disk
	r.Static("/uploads", cfg.UploadDir)

	srv := &http.Server{Addr: ":" + cfg.AppPort, Handler: r} // HTTP server

	// Run until interrupted
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		logrus.Info("Server running on " + cfg.AppPort) // Log server start
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("server error: %v", err)
		}
	}()
	<-ctx.Done() // Wait for shutdown signal

	// Graceful shutdown: stop accepting requests, then release clients
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("shutdown error: %v", err)
	}
	if err := redisClient.Close(); err != nil {
		logrus.Errorf("redis close error: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close() // Release the underlying connection pool
	}
	logrus.Info("Server stopped")
}
