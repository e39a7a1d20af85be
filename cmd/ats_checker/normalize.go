package main

import (
	"strings"

	"github.com/jonathan/ats-checker/internal/parsing"
	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Print the normalized form of a text file, or its n-grams",
	Long:  "Prints the lowercase, punctuation-stripped text used for skill matching. With --ngrams, prints every 1-3 word phrase one per line in emission order.",
	RunE:  runNormalize,
}

var (
	normalizeInputFile string
	normalizeNGrams    bool
)

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeInputFile, "text-file", "f", "", "Path to text file (- for stdin)")
	normalizeCmd.Flags().BoolVar(&normalizeNGrams, "ngrams", false, "Print n-grams instead of the normalized text")
	_ = normalizeCmd.MarkFlagRequired("text-file")

	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, commandOverrides{})
	if err != nil {
		return err
	}

	doc, err := readInput("text-file", normalizeInputFile)
	if err != nil {
		return err
	}

	return writeOutput("", []byte(normalizedOutput(parsing.Normalizer{FoldAccents: cfg.FoldAccents}, doc.Text, normalizeNGrams)))
}

func normalizedOutput(n parsing.Normalizer, text string, ngrams bool) string {
	normalized := n.Normalize(text)
	if !ngrams {
		return normalized
	}
	return strings.Join(parsing.GenerateNGrams(normalized), "\n")
}
