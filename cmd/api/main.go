package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"bookshelf-api/pkg/logger"
)

func main() {
	// .env is a development convenience; production uses real env vars.
	dotenvErr := godotenv.Load()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Init(env)

	if dotenvErr != nil {
		logger.Info("No .env file found, using system environment variables", nil)
	}

	Serve()
}
