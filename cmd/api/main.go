package main

import (
	"os"

	"github.com/dogtorvet/dogtorvet-api/internal/config"
	"github.com/dogtorvet/dogtorvet-api/internal/constants"
	"github.com/dogtorvet/dogtorvet-api/internal/logger"
	"github.com/dogtorvet/dogtorvet-api/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// @title           DogtorVet API
// @version         1.0
// @description     API server for the DogtorVet clinic management system

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables; a missing .env is fine outside local dev
	_ = godotenv.Load()

	cfg := config.Load()
	logger.InitLogger(cfg.Stage)
	defer func() { _ = logger.Log.Sync() }()

	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET environment variable is required")
	}

	if cfg.Stage == constants.StageProd {
		gin.SetMode(gin.ReleaseMode)
	}

	srv, err := server.New(cfg)
	if err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}

	if err := srv.Run(); err != nil {
		logger.Error("Server exited with error", zap.Error(err))
		os.Exit(1)
	}
}
