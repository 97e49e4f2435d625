// File: /main.go
package main

import (
	"log"

	"autosales-api/config"
	"autosales-api/database"
	"autosales-api/jobs"
	"autosales-api/middleware"
	"autosales-api/routes"
	"autosales-api/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Structured logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to create logger:", err)
	}
	defer logger.Sync()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	// Email notifications
	emailService := services.NewEmailService(cfg)

	// Background cleanup of expired blacklisted tokens
	cleanupJob := jobs.NewTokenCleanupJob(db, cfg.TokenPurgeSchedule, logger)
	if err := cleanupJob.Start(); err != nil {
		logger.Fatal("failed to start token cleanup job", zap.Error(err))
	}
	defer cleanupJob.Stop()

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(routes.SetupCORS())
	router.Use(middleware.SecurityHeaders())

	// Setup routes
	routes.SetupRoutes(router, db, cfg, emailService, logger)

	// Start server
	logger.Info("starting server", zap.String("port", cfg.Port))

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
