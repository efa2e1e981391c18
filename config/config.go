package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config represents the complete tool configuration.
type Config struct {
	Display DisplayConfig `json:"display" yaml:"display"`
	Store   StoreConfig   `json:"store" yaml:"store"`
	Log     LogConfig     `json:"log" yaml:"log"`
}

// DisplayConfig contains presentation parameters.
type DisplayConfig struct {
	CurrencySymbol string  `json:"currency_symbol" yaml:"currency_symbol"`
	FavorableRR    float64 `json:"favorable_rr" yaml:"favorable_rr"`
	Color          bool    `json:"color" yaml:"color"`
}

// StoreConfig contains preference store parameters.
type StoreConfig struct {
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// LogConfig contains logging parameters.
type LogConfig struct {
	Level string `json:"level" yaml:"level"`
}

// LoadFromFile loads configuration from a file (YAML or JSON). Fields absent
// from the file keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		cfg = Default()
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension),
// creating the parent directory when needed.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Display.CurrencySymbol == "" {
		return fmt.Errorf("display.currency_symbol is required")
	}
	if math.IsNaN(c.Display.FavorableRR) || c.Display.FavorableRR <= 0 {
		return fmt.Errorf("display.favorable_rr must be positive")
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			CurrencySymbol: "$",
			FavorableRR:    1.0,
			Color:          true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultConfigPath returns the per-user config file location, typically
// ~/.config/sizer/config.yaml. Empty when no user config dir is available.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "sizer", "config.yaml")
}

// DefaultStorePath returns the per-user preference database location,
// typically ~/.config/sizer/prefs.db.
func DefaultStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "prefs.db"
	}
	return filepath.Join(dir, "sizer", "prefs.db")
}
