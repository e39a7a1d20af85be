package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/ats-checker/internal/sections"
	"github.com/spf13/cobra"
)

var detectSectionsCmd = &cobra.Command{
	Use:   "detect-sections",
	Short: "Report which standard resume sections a text file contains",
	RunE:  runDetectSections,
}

var (
	sectionsInputFile  string
	sectionsOutputFile string
)

func init() {
	detectSectionsCmd.Flags().StringVarP(&sectionsInputFile, "text-file", "f", "", "Path to resume file (- for stdin)")
	detectSectionsCmd.Flags().StringVarP(&sectionsOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	_ = detectSectionsCmd.MarkFlagRequired("text-file")

	rootCmd.AddCommand(detectSectionsCmd)
}

func runDetectSections(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, commandOverrides{})
	if err != nil {
		return err
	}

	doc, err := readInput("text-file", sectionsInputFile)
	if err != nil {
		return err
	}

	flags := sections.Detect(doc.Text)
	if printer := newPrinter(cfg); printer != nil {
		printer.PrintSections(flags)
	}

	data, err := json.MarshalIndent(flags, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return writeOutput(sectionsOutputFile, data)
}
