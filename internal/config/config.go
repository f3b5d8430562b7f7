package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the CLI settings that come from the environment. Flags take
// precedence over these values.
type Config struct {
	MaxWorkers   int
	ShowProgress bool
}

func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		MaxWorkers:   parseIntOrDefault("MAX_WORKERS", 0),
		ShowProgress: parseBoolOrDefault("SHOW_PROGRESS", true),
	}

	if cfg.MaxWorkers < 0 {
		return nil, fmt.Errorf("MAX_WORKERS must be >= 0 (got %d)", cfg.MaxWorkers)
	}
	return cfg, nil
}

func parseIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
