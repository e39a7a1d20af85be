package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by ApplyEnv.
const (
	EnvCatalogPath   = "ATS_CATALOG_PATH"
	EnvMaxInputBytes = "ATS_MAX_INPUT_BYTES"
	EnvConcurrency   = "ATS_CONCURRENCY"
	EnvStyleMatch    = "ATS_STYLE_MATCH"
	EnvFoldAccents   = "ATS_FOLD_ACCENTS"
)

// FromEnv returns a Config populated only from environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	err := cfg.ApplyEnv()
	return cfg, err
}

// ApplyEnv overrides fields with any ATS_* environment variables that are set.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvCatalogPath); v != "" {
		c.CatalogPath = v
	}
	if v := os.Getenv(EnvStyleMatch); v != "" {
		c.StyleMatch = v
	}

	if v := os.Getenv(EnvMaxInputBytes); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %v", EnvMaxInputBytes, err)
		}
		c.MaxInputBytes = n
	}
	if v := os.Getenv(EnvConcurrency); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %v", EnvConcurrency, err)
		}
		c.Concurrency = n
	}
	if v := os.Getenv(EnvFoldAccents); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %v", EnvFoldAccents, err)
		}
		c.FoldAccents = b
	}

	return nil
}
