//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for pgedge-retailgen.
// Configuration is loaded from config files and CLI flags (no environment
// variables). CLI flags take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Sink names for generated data.
const (
	SinkCSV      = "csv"
	SinkPostgres = "postgres"
)

// Config holds all configuration for pgedge-retailgen.
type Config struct {
	// Connection is the PostgreSQL connection string (postgres sink only).
	Connection string `mapstructure:"connection"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Generate holds configuration for the generate subcommand.
	Generate GenerateConfig `mapstructure:"generate"`
}

// GenerateConfig holds configuration for dataset generation.
type GenerateConfig struct {
	// Scale is the dataset size tier: small, medium, or large.
	Scale string `mapstructure:"scale"`

	// Days is the length of the order-history window (1-365).
	Days int `mapstructure:"days"`

	// Seed is the reproducibility seed.
	Seed uint64 `mapstructure:"seed"`

	// StartDate anchors the last day of the order window as YYYY-MM-DD.
	// Empty means today (UTC).
	StartDate string `mapstructure:"start_date"`

	// Sink selects where the dataset is written: csv or postgres.
	Sink string `mapstructure:"sink"`

	// OutputDir is the directory for CSV output.
	OutputDir string `mapstructure:"output_dir"`

	// Overwrite replaces existing output instead of refusing (csv) or
	// appending (postgres).
	Overwrite bool `mapstructure:"overwrite"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Generate: GenerateConfig{
			Scale:     "small",
			Days:      14,
			Seed:      42,
			Sink:      SinkCSV,
			OutputDir: "sample_data",
			Overwrite: false,
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./pgedge-retailgen.yaml
// 3. ~/.config/pgedge-retailgen/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("pgedge-retailgen")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "pgedge-retailgen"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// ValidateGenerate checks configuration required for the generate
// command. Scale and days bounds are re-checked by the generator core;
// this catches sink wiring problems before any generation starts.
func (c *Config) ValidateGenerate() error {
	switch c.Generate.Sink {
	case SinkCSV:
		if c.Generate.OutputDir == "" {
			return fmt.Errorf("output_dir is required for the csv sink")
		}
	case SinkPostgres:
		if c.Connection == "" {
			return fmt.Errorf("connection string is required for the postgres sink")
		}
	default:
		return fmt.Errorf("unknown sink %q (valid: csv, postgres)", c.Generate.Sink)
	}

	if c.Generate.StartDate != "" {
		if _, err := time.Parse("2006-01-02", c.Generate.StartDate); err != nil {
			return fmt.Errorf("invalid start_date %q: expected YYYY-MM-DD", c.Generate.StartDate)
		}
	}
	return nil
}

// Anchor returns the configured window anchor date, defaulting to today
// (UTC) when no start date was given.
func (c *Config) Anchor() time.Time {
	if c.Generate.StartDate != "" {
		t, err := time.Parse("2006-01-02", c.Generate.StartDate)
		if err == nil {
			return t
		}
	}
	return time.Now().UTC()
}
