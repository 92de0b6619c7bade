// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds library configuration
type Config struct {
	DBPath    string // Optional external rating-table database (empty = embedded tables)
	LogLevel  string
	LogPretty bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Optional external rating table database. When set, it must point to an
	// existing SQLite file carrying the same schema as the embedded tables.
	dbPath := getEnv("RATINGS_DB_PATH", "")
	if dbPath != "" {
		absPath, err := filepath.Abs(dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve RATINGS_DB_PATH: %w", err)
		}
		if _, err := os.Stat(absPath); err != nil {
			return nil, fmt.Errorf("RATINGS_DB_PATH does not exist: %w", err)
		}
		dbPath = absPath
	}

	cfg := &Config{
		DBPath:    dbPath,
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogPretty: getEnvAsBool("LOG_PRETTY", false),
	}

	return cfg, nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
