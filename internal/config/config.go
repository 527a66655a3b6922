package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	DB struct {
		URL                   string
		Name                  string
		ConnectTimeoutSeconds int64
	}

	Server struct {
		Port        string
		Environment string
		LogLevel    string
	}

	CORS struct {
		AllowMethods string
		AllowHeaders string
	}
}

// Load loads configuration from environment variables
func Load() *Config {
	_ = godotenv.Load()

	config := &Config{}

	config.DB.URL = getEnv("DATABASE_URL", "mongodb://localhost:27017")
	config.DB.Name = getEnv("DATABASE_NAME", "theater")
	config.DB.ConnectTimeoutSeconds = getEnvAsInt64("DB_CONNECT_TIMEOUT_SECONDS", 10)

	config.Server.Port = getEnv("PORT", "8000")
	config.Server.Environment = getEnv("ENVIRONMENT", "development")
	config.Server.LogLevel = getEnv("LOG_LEVEL", "info")

	config.CORS.AllowMethods = getEnv("CORS_ALLOW_METHODS", "GET,POST,PUT,PATCH,DELETE,HEAD,OPTIONS")
	config.CORS.AllowHeaders = getEnv("CORS_ALLOW_HEADERS", "Origin,Content-Length,Content-Type,Authorization")

	return config
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt64 gets an environment variable as int64 or returns a default value
func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
