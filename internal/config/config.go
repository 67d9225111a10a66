// Package config loads runreport settings from an optional YAML file and
// RUNREPORT_* environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "RUNREPORT"

// DateLayout is the layout of date settings.
const DateLayout = "2006-01-02"

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Extract ExtractConfig `yaml:"extract" envconfig:"EXTRACT"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json console"`
}

// ExtractConfig contains extraction and CLI defaults
type ExtractConfig struct {
	PhixCutoff  string  `yaml:"phix_cutoff" envconfig:"PHIX_CUTOFF" validate:"datetime=2006-01-02"`
	MatchCutoff float64 `yaml:"match_cutoff" envconfig:"MATCH_CUTOFF" validate:"gt=0,lte=1"`
	Jobs        int     `yaml:"jobs" envconfig:"JOBS" validate:"gte=1,lte=64"`
	Output      string  `yaml:"output" envconfig:"OUTPUT" validate:"oneof=json csv tsv"`
	// Origins maps a format name (xls, xlsb, xlsx) to a 0-based scan origin.
	Origins map[string]Origin `yaml:"origins" ignored:"true" validate:"dive,keys,oneof=xls xlsb xlsx,endkeys"`
}

// Origin is a 0-based row/column pair.
type Origin struct {
	Row int `yaml:"row" validate:"gte=0"`
	Col int `yaml:"col" validate:"gte=0"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Extract: ExtractConfig{
			PhixCutoff:  "2024-01-16",
			MatchCutoff: 0.6,
			Jobs:        4,
			Output:      "json",
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path
// (skipped when path is empty), then environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// Only variables that are set override; there are no envconfig defaults.
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// loadFromFile overlays the YAML file onto cfg.
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.UnmarshalStrict(data, cfg)
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	for format, origin := range c.Extract.Origins {
		if origin.Row < 0 || origin.Col < 0 {
			return fmt.Errorf("origin for %s must not be negative: %+v", format, origin)
		}
	}
	return nil
}

// PhixCutoffDate parses Extract.PhixCutoff as a UTC date.
func (c *Config) PhixCutoffDate() (time.Time, error) {
	return time.ParseInLocation(DateLayout, c.Extract.PhixCutoff, time.UTC)
}
