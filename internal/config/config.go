// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Mahe1235/Thai2026/internal/trip"
)

// Config carries everything the server needs at startup. The member
// universe and pool total are configuration, not constants, so a different
// trip can reuse the backend without code changes.
type Config struct {
	// HTTP server
	Port string

	// Database
	DBPath string

	// Ledger
	Members   []string
	PoolTotal float64

	// Weather
	WeatherBaseURL  string
	WeatherCacheTTL time.Duration
}

// Load reads configuration from environment variables, falling back to the
// reference deployment's defaults.
func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		DBPath:          getEnv("DB_PATH", "./data/trip.db"),
		Members:         getEnvList("TRIP_MEMBERS", trip.Members),
		PoolTotal:       getEnvFloat("POOL_TOTAL", trip.TotalCash),
		WeatherBaseURL:  getEnv("WEATHER_BASE_URL", ""),
		WeatherCacheTTL: getEnvDuration("WEATHER_CACHE_TTL", 30*time.Minute),
	}
}

// Validate returns an error describing every invalid field, or nil.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.DBPath == "" {
		errs = append(errs, "database path cannot be empty")
	}

	if len(c.Members) == 0 {
		errs = append(errs, "member list cannot be empty")
	}
	seen := make(map[string]bool, len(c.Members))
	for _, m := range c.Members {
		if m == "" {
			errs = append(errs, "member names cannot be empty")
			continue
		}
		if seen[m] {
			errs = append(errs, fmt.Sprintf("duplicate member %q", m))
		}
		seen[m] = true
	}

	if c.PoolTotal < 0 {
		errs = append(errs, fmt.Sprintf("invalid pool total %v: must not be negative", c.PoolTotal))
	}

	if c.WeatherCacheTTL < 0 {
		errs = append(errs, fmt.Sprintf("invalid weather cache TTL %v: must not be negative", c.WeatherCacheTTL))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
