// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/ats-checker/internal/style"
)

// Defaults
const (
	DefaultMaxInputBytes = 1 << 20
	DefaultConcurrency   = 4
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or are provided via CLI flags and environment.
type Config struct {
	CatalogPath   string `json:"catalog_path,omitempty"`                         // Custom skill catalog (.json/.yaml)
	MaxInputBytes int    `json:"max_input_bytes,omitempty" validate:"gte=0"`     // Per-text size limit
	Concurrency   int    `json:"concurrency,omitempty" validate:"gte=0,lte=256"` // Batch analysis workers
	StyleMatch    string `json:"style_match,omitempty"`                          // "substring" or "word"
	FoldAccents   bool   `json:"fold_accents,omitempty"`                         // Strip diacritics before matching
	Verbose       bool   `json:"verbose,omitempty"`                              // Print boxed summaries to stderr
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		MaxInputBytes: DefaultMaxInputBytes,
		Concurrency:   DefaultConcurrency,
		StyleMatch:    string(style.ModeSubstring),
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: '%s' fails %s=%s (got %v)", jsonName(fe.Field()), fe.Tag(), fe.Param(), fe.Value())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if _, err := style.ParseMode(c.StyleMatch); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.CatalogPath != "" {
		if _, err := os.Stat(c.CatalogPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.CatalogPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.CatalogPath == "" {
		result.CatalogPath = defaults.CatalogPath
	}
	if result.StyleMatch == "" {
		result.StyleMatch = defaults.StyleMatch
	}
	if result.MaxInputBytes == 0 {
		result.MaxInputBytes = defaults.MaxInputBytes
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}

	// Bool fields: cannot distinguish unset from false, so only true propagates
	result.FoldAccents = result.FoldAccents || defaults.FoldAccents
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

// StyleMode returns the parsed style match mode, ModeSubstring when unset.
func (c *Config) StyleMode() style.Mode {
	mode, err := style.ParseMode(c.StyleMatch)
	if err != nil {
		return style.ModeSubstring
	}
	return mode
}

func jsonName(field string) string {
	switch field {
	case "MaxInputBytes":
		return "max_input_bytes"
	case "Concurrency":
		return "concurrency"
	default:
		return field
	}
}
