package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all tool settings, populated from environment variables.
type Config struct {
	LogLevel    string
	LogFormat   string
	AverageMode string
}

// Load reads configuration from environment variables, applying
// defaults where unset. The binary loads an optional .env file before
// calling this.
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:    envOrDefault("LOG_LEVEL", "warn"),
		LogFormat:   envOrDefault("LOG_FORMAT", "text"),
		AverageMode: envOrDefault("AVERAGE_MODE", "fixed"),
	}

	// Levels mirror observability's slog level mapping.
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL %q (valid: debug, info, warn, error)", cfg.LogLevel)
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q (valid: text, json)", cfg.LogFormat)
	}

	// Values mirror domain.ParseAveragePolicy.
	switch cfg.AverageMode {
	case "fixed", "mean":
	default:
		return nil, fmt.Errorf("invalid AVERAGE_MODE %q (valid: fixed, mean)", cfg.AverageMode)
	}

	return cfg, nil
}

// envOrDefault returns the named variable's value, or fallback when it
// is unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
