// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"

	"github.com/joho/godotenv"

	"subwise/internal/errors"
	"subwise/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// CatalogDir holds the HCL catalog files
	CatalogDir string `json:"catalog_dir"`

	// Output is the default output format (cli, json)
	Output string `json:"output"`

	// Currency is the display currency code
	Currency string `json:"currency"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		CatalogDir: "catalog",
		Output:     "cli",
		Currency:   "KRW",
		Logging:    logging.DefaultConfig(),
	}
}

// Load reads configuration from a JSON file on top of defaults
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "reading config file", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "parsing config file", err)
	}
	cfg.applyEnv()
	return cfg, nil
}

// LoadEnv builds configuration from defaults, a .env file if present
// and SUBWISE_* environment variables
func LoadEnv() *Config {
	// missing .env is fine
	_ = godotenv.Load()

	cfg := Default()
	cfg.applyEnv()
	return cfg
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SUBWISE_CATALOG_DIR"); v != "" {
		c.CatalogDir = v
	}
	if v := os.Getenv("SUBWISE_OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv("SUBWISE_CURRENCY"); v != "" {
		c.Currency = v
	}
	if v := os.Getenv("SUBWISE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("SUBWISE_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
}

var current = Default()

// Get returns the current configuration
func Get() *Config {
	return current
}

// Set replaces the current configuration
func Set(cfg *Config) {
	if cfg != nil {
		current = cfg
	}
}
