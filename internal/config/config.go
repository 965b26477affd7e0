package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string
	// AuthServiceURL is the authorization service; the JWKS URL is derived from it
	AuthServiceURL string
	JWKSURL        string
	// UserServiceURL is the user directory consulted on every mutating request
	UserServiceURL string
	// DirectoryTimeout bounds a single user-directory resolve call
	DirectoryTimeout time.Duration
	CORSOrigins      string
	TablePrefix      string
	// Debug flags
	Debug bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")
	tablePrefix := getTablePrefix(env)
	authURL := getEnv("AUTH_SERVICE_URL", "")

	// Construct JWKS URL from the authorization service URL
	jwksURL := authURL + "/.well-known/jwks.json"

	return &Config{
		Port:             getEnv("PORT", "8080"),
		Environment:      env,
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		AuthServiceURL:   authURL,
		JWKSURL:          jwksURL,
		UserServiceURL:   getEnv("USER_SERVICE_URL", ""),
		DirectoryTimeout: getDurationSeconds("DIRECTORY_TIMEOUT_SECONDS", 10),
		CORSOrigins:      getEnv("CORS_ORIGINS", "http://localhost:3000"),
		TablePrefix:      tablePrefix,
		// Debug defaults to true in dev/test, false in production
		Debug: getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	// Auto-generate based on environment
	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	case "dev":
		return "dev_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationSeconds(key string, defaultSeconds int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return time.Duration(defaultSeconds) * time.Second
}
