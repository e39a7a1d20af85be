package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var extractSkillsCmd = &cobra.Command{
	Use:   "extract-skills",
	Short: "List the catalog skills found in a text file",
	Long:  "Normalizes a text file, matches its 1-3 word phrases against the skill catalog, and prints the distinct skills found as JSON in discovery order.",
	RunE:  runExtractSkills,
}

var (
	extractInputFile  string
	extractOutputFile string
)

func init() {
	extractSkillsCmd.Flags().StringVarP(&extractInputFile, "text-file", "f", "", "Path to text file (- for stdin)")
	extractSkillsCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	_ = extractSkillsCmd.MarkFlagRequired("text-file")

	rootCmd.AddCommand(extractSkillsCmd)
}

func runExtractSkills(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, commandOverrides{})
	if err != nil {
		return err
	}
	a, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}

	doc, err := readInput("text-file", extractInputFile)
	if err != nil {
		return err
	}
	if err := a.ValidateText("text-file", doc.Text); err != nil {
		return err
	}

	found := a.ExtractSkills(doc.Text)
	if printer := newPrinter(cfg); printer != nil {
		printer.PrintSkills("EXTRACTED SKILLS", found)
	}

	data, err := json.MarshalIndent(found, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return writeOutput(extractOutputFile, data)
}
