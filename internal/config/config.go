// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host     string
	Port     string
	Env      string // "development", "production", "testing"
	SiteName string

	// Content store (Sanity-compatible)
	SanityProjectID  string
	SanityDataset    string
	SanityAPIVersion string
	SanityToken      string
	SanityUseCDN     bool
	SanityBaseURL    string // override for tests / self-hosted stores

	// Redis (rendered-page cache) — optional, empty host disables caching
	RedisHost     string
	RedisPort     string
	RedisPassword string
	PageCacheTTL  time.Duration

	// Rendering tunables. Overridable because they are conventions,
	// not invariants.
	WordsPerMinute     int // reading-time estimate rate
	HomeFetchLimit     int // posts fetched for the home grid
	PageSize           int // posts shown per grid page
	RateLimitPerMinute int // per-IP request budget, 0 disables
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing in production mode.
func Load() (*Config, error) {
	cfg := &Config{
		Host:     envOrDefault("APP_HOST", "0.0.0.0"),
		Port:     envOrDefault("APP_PORT", "8080"),
		Env:      envOrDefault("APP_ENV", "development"),
		SiteName: envOrDefault("SITE_NAME", "পত্রিকা"),

		SanityProjectID:  os.Getenv("SANITY_PROJECT_ID"),
		SanityDataset:    envOrDefault("SANITY_DATASET", "production"),
		SanityAPIVersion: envOrDefault("SANITY_API_VERSION", "2024-01-01"),
		SanityToken:      os.Getenv("SANITY_TOKEN"),
		SanityUseCDN:     envBool("SANITY_USE_CDN", false),
		SanityBaseURL:    os.Getenv("SANITY_BASE_URL"),

		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     envOrDefault("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		PageCacheTTL:  envDuration("PAGE_CACHE_TTL", 30*time.Second),

		WordsPerMinute:     envInt("WORDS_PER_MINUTE", 200),
		HomeFetchLimit:     envInt("HOME_FETCH_LIMIT", 12),
		PageSize:           envInt("PAGE_SIZE", 9),
		RateLimitPerMinute: envInt("RATE_LIMIT_PER_MINUTE", 300),
	}

	if cfg.Env == "production" {
		if cfg.SanityProjectID == "" && cfg.SanityBaseURL == "" {
			return nil, fmt.Errorf("SANITY_PROJECT_ID must be set in production")
		}
		if cfg.SanityDataset == "" {
			return nil, fmt.Errorf("SANITY_DATASET must be set in production")
		}
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// CacheEnabled reports whether a Redis host is configured.
func (c *Config) CacheEnabled() bool {
	return c.RedisHost != ""
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envInt reads an integer environment variable, returning a fallback on
// absence or parse failure.
func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// envBool reads a boolean environment variable ("true", "1", ...).
func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// envDuration reads a duration environment variable (e.g. "30s", "5m").
func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
