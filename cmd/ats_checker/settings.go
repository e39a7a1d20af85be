package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/ats-checker/internal/analyzer"
	"github.com/jonathan/ats-checker/internal/catalog"
	"github.com/jonathan/ats-checker/internal/config"
	"github.com/jonathan/ats-checker/internal/ingestion"
	"github.com/jonathan/ats-checker/internal/observability"
	"github.com/jonathan/ats-checker/internal/schemas"
	"github.com/spf13/cobra"
)

// commandOverrides carries flag values a command defines beyond the persistent ones.
type commandOverrides struct {
	styleMatch  string
	concurrency int
}

// resolveConfig layers the config file, ATS_* environment variables and changed flags,
// then fills defaults and validates.
func resolveConfig(cmd *cobra.Command, overrides commandOverrides) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	if err := cfg.ApplyEnv(); err != nil {
		return cfg, fmt.Errorf("failed to read environment: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.CatalogPath = catalogPath
	}
	if flags.Changed("fold-accents") {
		cfg.FoldAccents = foldAccents
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if flags.Changed("style-match") {
		cfg.StyleMatch = overrides.styleMatch
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = overrides.concurrency
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	if cfg.Verbose && configPath != "" {
		_, _ = fmt.Fprintf(os.Stderr, "Loaded config from: %s\n", configPath)
	}
	return cfg, nil
}

// loadCatalog returns the custom catalog at path, or the built-in one when path is empty.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return cat, nil
}

func newAnalyzer(cfg config.Config) (*analyzer.Analyzer, error) {
	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	return analyzer.New(cat, analyzer.Options{
		StyleMode:     cfg.StyleMode(),
		FoldAccents:   cfg.FoldAccents,
		MaxInputBytes: cfg.MaxInputBytes,
	}), nil
}

func newPrinter(cfg config.Config) *observability.Printer {
	if !cfg.Verbose {
		return nil
	}
	return observability.NewPrinter(os.Stderr)
}

// readInput extracts text from a file path, or stdin for "-".
func readInput(flag, path string) (*ingestion.Document, error) {
	if path == "" {
		return nil, fmt.Errorf("--%s is required", flag)
	}
	doc, err := ingestion.ReadDocument(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read --%s: %w", flag, err)
	}
	return doc, nil
}

// checkSchema validates data against the named schema when the schema file can be found.
// A document that violates the schema is an error. A schema that cannot be loaded only warns.
func checkSchema(schemaRelPath string, data []byte) error {
	schemaPath := schemas.ResolveSchemaPath(schemaRelPath)
	if schemaPath == "" {
		return nil
	}

	err := schemas.ValidateBytes(schemaPath, data)
	if err == nil {
		return nil
	}

	var validationErr *schemas.ValidationError
	var schemaLoadErr *schemas.SchemaLoadError
	if errors.As(err, &validationErr) {
		return fmt.Errorf("generated JSON does not validate against schema: %w", err)
	} else if errors.As(err, &schemaLoadErr) {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema (schema loading failed): %v\n", err)
	} else {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
	}
	return nil
}

// writeOutput writes data to path, or to stdout when path is empty or "-".
func writeOutput(path string, data []byte) error {
	if !strings.HasSuffix(string(data), "\n") {
		data = append(data, '\n')
	}
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
