package main

import (
	"socialnet/backend/internal/config"
	"socialnet/backend/internal/database"
	"socialnet/backend/internal/logger"
	"socialnet/backend/internal/router"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func init() {
	config.LoadConfig()
}

// @title           Social Network API
// @version         1.0
// @description     Registration, friend requests and posts with likes, comments and reposts.
// @host            localhost:8080
// @BasePath        /api/v1
func main() {
	cfg := config.AppConfig

	zl := logger.Build(cfg.LogLevel, cfg.LogEncoding)
	logger.ReplaceGlobal(zl)
	defer func() { _ = zl.Sync() }()

	if cfg.DatabaseURL == "" {
		zl.Fatal("DATABASE_URL is not configured")
	}

	gin.SetMode(cfg.GinMode)

	// Connect to the database
	if err := database.Connect(cfg.DatabaseURL, database.Options{AutoMigrate: cfg.AutoMigrate}); err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}

	r := router.New(zl)

	addr := ":" + cfg.Port
	zl.Info("server is running", zap.String("addr", addr))
	zl.Info("swagger UI is available", zap.String("url", "http://localhost"+addr+"/swagger/index.html"))
	if err := r.Run(addr); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
