// Package pagination provides a reusable offset-based pagination framework
// for the question listing.
package pagination

import (
	"os"
	"strconv"
)

// Config holds pagination configuration settings.
// These values can be loaded from environment variables or config files.
type Config struct {
	DefaultPage int // Default page number (zero-based, typically 0)
	PageSize    int // Fixed items per page (typically 10)
	MaxPage     int // Maximum accepted page number, bounds OFFSET size
}

// DefaultConfig returns the default pagination configuration.
// Pages are zero-based with a fixed size of 10 items.
func DefaultConfig() Config {
	return Config{
		DefaultPage: 0,
		PageSize:    10,
		MaxPage:     100000,
	}
}

// LoadFromEnv loads pagination config from environment variables.
// Supported environment variables:
//   - PAGINATION_PAGE_SIZE: Items per page
//   - PAGINATION_MAX_PAGE: Maximum accepted page number
//
// Falls back to DefaultConfig() if environment variables are not set.
func LoadFromEnv() Config {
	return Config{
		DefaultPage: 0,
		PageSize:    getEnvAsInt("PAGINATION_PAGE_SIZE", 10),
		MaxPage:     getEnvAsInt("PAGINATION_MAX_PAGE", 100000),
	}
}

// getEnvAsInt retrieves an environment variable and parses it as an integer.
// Returns the default value if the variable is not set or cannot be parsed.
func getEnvAsInt(key string, defaultValue int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultValue
	}
	return val
}
