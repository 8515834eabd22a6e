// Package config defines service configuration structures and loading hooks.
package config

import (
	"fmt"
	"runtime"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9090".
	Addr string `koanf:"addr"`

	// Catalog is the tournament catalog file, YAML or XLSX.
	Catalog string `koanf:"catalog"`

	// Workers sets the number of concurrent year workers.
	Workers int `koanf:"workers"`

	// OfficialFrom is the first year scored from published points
	// instead of the synthetic formula.
	OfficialFrom int `koanf:"official_from"`

	// PreOlympicFold folds the championship preceding an Olympic year
	// into the Olympic superevent.
	PreOlympicFold bool `koanf:"pre_olympic_fold"`

	// CountOther counts regional and invitational events against the
	// championship slots of the rating window.
	CountOther bool `koanf:"count_other"`

	// MaxLimit caps GET /api/rankings?limit.
	MaxLimit int `koanf:"max_limit"`
}

// New creates a Config with the methodology defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":9090",
		Catalog:        "catalog.yaml",
		Workers:        runtime.GOMAXPROCS(0),
		OfficialFrom:   2000,
		PreOlympicFold: true,
		CountOther:     false,
		MaxLimit:       100,
	}
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("addr must not be empty: %w", ErrInvalidConfig)
	case c.Catalog == "":
		return fmt.Errorf("catalog must not be empty: %w", ErrInvalidConfig)
	case c.Workers < 1:
		return fmt.Errorf("workers must be positive, got %d: %w", c.Workers, ErrInvalidConfig)
	case c.OfficialFrom < 1:
		return fmt.Errorf("official_from must be positive, got %d: %w", c.OfficialFrom, ErrInvalidConfig)
	case c.MaxLimit < 1:
		return fmt.Errorf("max_limit must be positive, got %d: %w", c.MaxLimit, ErrInvalidConfig)
	}
	return nil
}
