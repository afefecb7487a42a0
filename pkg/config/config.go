package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	// Application
	LogLevel string
	HTTPPort string

	// Upstream services
	GammaURL       string
	ClobURL        string
	TimeServiceURL string // empty disables remote time sync

	// Resolution
	LocatorStrategy    string // "slug" or "search"
	SearchMinValidated int    // fuzzy strategy early-exit threshold
	SearchResultLimit  int    // max records requested per search query

	// Timeouts
	DiscoveryTimeout time.Duration
	PricingTimeout   time.Duration
	TimeSyncTimeout  time.Duration
	TimeSyncTTL      time.Duration // how long a measured clock offset stays valid

	// Storage
	StorageMode  string // "postgres", "console" or "off"
	PostgresHost string
	PostgresPort string
	PostgresUser string
	PostgresPass string
	PostgresDB   string
	PostgresSSL  string
}

// Locator strategy names.
const (
	StrategySlug   = "slug"
	StrategySearch = "search"
)

// LoadFromEnv loads configuration from environment variables with defaults.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		// Application defaults
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
		HTTPPort: getEnvOrDefault("HTTP_PORT", "8080"),

		// Upstream defaults
		GammaURL:       getEnvOrDefault("GAMMA_API_URL", "https://gamma-api.polymarket.com"),
		ClobURL:        getEnvOrDefault("CLOB_API_URL", "https://clob.polymarket.com"),
		TimeServiceURL: os.Getenv("TIME_SERVICE_URL"),

		// Resolution defaults
		LocatorStrategy:    getEnvOrDefault("LOCATOR_STRATEGY", StrategySlug),
		SearchMinValidated: getIntOrDefault("SEARCH_MIN_VALIDATED", 3),
		SearchResultLimit:  getIntOrDefault("SEARCH_RESULT_LIMIT", 20),

		// Timeout defaults
		DiscoveryTimeout: getDurationOrDefault("DISCOVERY_TIMEOUT", 12*time.Second),
		PricingTimeout:   getDurationOrDefault("PRICING_TIMEOUT", 12*time.Second),
		TimeSyncTimeout:  getDurationOrDefault("TIMESYNC_TIMEOUT", 5*time.Second),
		TimeSyncTTL:      getDurationOrDefault("TIMESYNC_TTL", 5*time.Minute),

		// Storage defaults
		StorageMode:  getEnvOrDefault("STORAGE_MODE", "off"),
		PostgresHost: getEnvOrDefault("POSTGRES_HOST", "localhost"),
		PostgresPort: getEnvOrDefault("POSTGRES_PORT", "5432"),
		PostgresUser: getEnvOrDefault("POSTGRES_USER", "updown"),
		PostgresPass: getEnvOrDefault("POSTGRES_PASSWORD", "updown123"),
		PostgresDB:   getEnvOrDefault("POSTGRES_DB", "updown_resolver"),
		PostgresSSL:  getEnvOrDefault("POSTGRES_SSLMODE", "disable"),
	}

	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Validate checks that configuration values are valid.
func (c *Config) Validate() error {
	if c.HTTPPort == "" {
		return fmt.Errorf("HTTP_PORT cannot be empty")
	}

	if c.GammaURL == "" {
		return fmt.Errorf("GAMMA_API_URL cannot be empty")
	}

	if c.ClobURL == "" {
		return fmt.Errorf("CLOB_API_URL cannot be empty")
	}

	if c.LocatorStrategy != StrategySlug && c.LocatorStrategy != StrategySearch {
		return fmt.Errorf("LOCATOR_STRATEGY must be %q or %q, got %q",
			StrategySlug, StrategySearch, c.LocatorStrategy)
	}

	if c.SearchMinValidated <= 0 {
		return fmt.Errorf("SEARCH_MIN_VALIDATED must be positive, got %d", c.SearchMinValidated)
	}

	if c.StorageMode != "postgres" && c.StorageMode != "console" && c.StorageMode != "off" {
		return fmt.Errorf("STORAGE_MODE must be 'postgres', 'console' or 'off', got %q", c.StorageMode)
	}

	return nil
}

func getEnvOrDefault(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intVal
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}
