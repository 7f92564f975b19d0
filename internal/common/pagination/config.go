// Package pagination provides page arithmetic and page-size configuration shared by
// the HTML listing pages and the JSON list endpoints.
package pagination

import (
	"os"
	"strconv"
)

// Config holds pagination configuration settings.
type Config struct {
	DefaultPage    int // Default page number (always 1 in practice)
	PublicPageSize int // Cards per page on the public veterans/news pages
	AdminPageSize  int // Rows per page on the admin tables
	DefaultLimit   int // Default limit of the JSON list endpoints
	MaxLimit       int // Maximum limit accepted by the JSON list endpoints
}

// DefaultConfig returns the default pagination configuration.
// Default values: page=1, public=9, admin=10, limit=10, max=100
func DefaultConfig() Config {
	return Config{
		DefaultPage:    1,
		PublicPageSize: 9,
		AdminPageSize:  10,
		DefaultLimit:   10,
		MaxLimit:       100,
	}
}

// LoadFromEnv overlays environment variables on top of base.
// Supported environment variables:
//   - PAGINATION_PUBLIC_PAGE_SIZE
//   - PAGINATION_ADMIN_PAGE_SIZE
//   - PAGINATION_DEFAULT_LIMIT
//   - PAGINATION_MAX_LIMIT
//
// Values that are missing, unparsable or not positive leave base untouched.
func LoadFromEnv(base Config) Config {
	base.PublicPageSize = getEnvAsInt("PAGINATION_PUBLIC_PAGE_SIZE", base.PublicPageSize)
	base.AdminPageSize = getEnvAsInt("PAGINATION_ADMIN_PAGE_SIZE", base.AdminPageSize)
	base.DefaultLimit = getEnvAsInt("PAGINATION_DEFAULT_LIMIT", base.DefaultLimit)
	base.MaxLimit = getEnvAsInt("PAGINATION_MAX_LIMIT", base.MaxLimit)
	return base
}

func getEnvAsInt(key string, defaultValue int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 1 {
		return defaultValue
	}
	return val
}
