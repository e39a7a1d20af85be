// Package main provides the entry point for the ATS resume checker CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_checker",
	Short: "Score a resume against a job description the way an ATS keyword screen would",
	Long: `ats_checker extracts skills from a resume and a job description, compares them against a weighted
skill catalog, checks resume sections and writing style, and reports a 0-100 match score with recommendations.

Configuration is read from --config (JSON), then ATS_* environment variables, then command-line flags.`,
	SilenceUsage: true,
}

var (
	configPath  string
	catalogPath string
	foldAccents bool
	verbose     bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.json file (values can be overridden by env and flags)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Path to a custom skill catalog (.json, .yaml); defaults to the built-in catalog")
	rootCmd.PersistentFlags().BoolVar(&foldAccents, "fold-accents", false, "Strip diacritics before matching skills")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print human-readable summaries to stderr")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
