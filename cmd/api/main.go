package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"library-api/internal/config"
	"library-api/pkg/logger"
)

func main() {
	// ========================================
	// LOAD ENVIRONMENT VARIABLES
	// ========================================
	// Load từ .env file (development/local)
	// Production sẽ dùng system environment variables
	envErr := godotenv.Load()

	env := config.GetEnv("APP_ENV", "development")
	logger.Init(env, config.GetEnv("LOG_LEVEL", "info"))

	if envErr != nil {
		logger.Debug("No .env file found, using system environment variables")
	}

	// ========================================
	// SET GIN MODE
	// ========================================
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Library API", map[string]interface{}{"env": env})

	if err := Serve(); err != nil {
		logger.Error("Server stopped with error", err)
		os.Exit(1)
	}
}
