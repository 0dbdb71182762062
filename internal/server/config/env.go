package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env file in
// the working directory is loaded first if present, so local development can
// keep secrets out of the shell profile; real environment variables win over
// file entries by godotenv's non-overriding semantics.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	config.EndpointAddr = getEnv("ADDRESS", config.EndpointAddr)
	config.DatabaseDSN = getEnv("DATABASE_DSN", config.DatabaseDSN)
	config.SecretKey = getEnv("SECRET_KEY", config.SecretKey)
	config.TokenScheme = getEnv("TOKEN_SCHEME", config.TokenScheme)
	config.PixKey = getEnv("PIX_KEY", config.PixKey)
	config.PixValue = getEnv("PIX_VALUE", config.PixValue)
	config.CORSAllowedOrigins = getEnv("CORS_ALLOWED_ORIGINS", config.CORSAllowedOrigins)
	config.GinMode = getEnv("GIN_MODE", config.GinMode)

	if minutes := getEnvAsInt("TOKEN_VALIDITY_MINUTES", 0); minutes > 0 {
		config.AccessTokenValidityDuration = time.Duration(minutes) * time.Minute
	}
}

// getEnv returns the value of an environment variable or the default when unset.
func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt reads an environment variable as an integer.
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
