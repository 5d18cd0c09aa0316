package main

import (
	"log"

	"idea-marketplace-backend/internal/api/routes"
	"idea-marketplace-backend/internal/config"
	"idea-marketplace-backend/internal/database"
	"idea-marketplace-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

//	@title			Idea Marketplace Backend API
//	@version		1.0
//	@description	Backend API for the Idea Marketplace: idea submission, dual claim approval, SDLC progress tracking, bounties and notifications.

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger.Setup(cfg.LogLevel)

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := routes.SetupRoutes(db, cfg)
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	port := cfg.Port
	if port == "" {
		port = "7008"
	}

	logrus.WithFields(logrus.Fields{
		"port":             port,
		"bounty_threshold": cfg.BountyApprovalThreshold,
		"admins":           len(cfg.AdminEmails),
		"push_enabled":     cfg.NotificationPushEnabled,
	}).Info("Starting idea marketplace server")
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}
