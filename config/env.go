package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables recognized by Load. Each overrides the matching
// config file value.
const (
	EnvConfig      = "SIZER_CONFIG"
	EnvLogLevel    = "SIZER_LOG_LEVEL"
	EnvCurrency    = "SIZER_CURRENCY"
	EnvFavorableRR = "SIZER_FAVORABLE_RR"
	EnvPrefsPath   = "SIZER_PREFS_PATH"
)

// Load resolves the effective configuration: a local .env file if present,
// then the config file (the explicit path, $SIZER_CONFIG, or the default
// location when a file exists there), then SIZER_* overrides on top.
func Load(path string) (*Config, error) {
	// Best effort; most runs have no .env file.
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		if p := DefaultConfigPath(); fileExists(p) {
			path = p
		}
	}

	var cfg *Config
	if path == "" {
		cfg = Default()
	} else {
		var err error
		cfg, err = LoadFromFile(path)
		if err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Log.Level = getEnvWithDefault(EnvLogLevel, cfg.Log.Level)
	cfg.Display.CurrencySymbol = getEnvWithDefault(EnvCurrency, cfg.Display.CurrencySymbol)
	cfg.Display.FavorableRR = getEnvFloatWithDefault(EnvFavorableRR, cfg.Display.FavorableRR)
	cfg.Store.Path = getEnvWithDefault(EnvPrefsPath, cfg.Store.Path)
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloatWithDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
