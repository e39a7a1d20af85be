package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonathan/ats-checker/internal/analyzer"
	"github.com/jonathan/ats-checker/internal/ingestion"
	"github.com/jonathan/ats-checker/internal/schemas"
	"github.com/jonathan/ats-checker/internal/types"
	"github.com/spf13/cobra"
)

var analyzeBatchCmd = &cobra.Command{
	Use:   "analyze-batch",
	Short: "Rank many job descriptions against one resume",
	Long: `Analyzes one resume against every job description given by --job (repeatable) or found in --jobs-dir,
and writes a BatchReport JSON with entries ranked by score (highest first, ties by job name).`,
	RunE: runAnalyzeBatch,
}

var (
	batchResumePath  string
	batchJobPaths    []string
	batchJobsDir     string
	batchConcurrency int
	batchOutputFile  string
	batchStyleMatch  string
)

func init() {
	analyzeBatchCmd.Flags().StringVarP(&batchResumePath, "resume", "r", "", "Path to resume file (- for stdin)")
	analyzeBatchCmd.Flags().StringArrayVarP(&batchJobPaths, "job", "j", nil, "Path to a job description file (repeatable)")
	analyzeBatchCmd.Flags().StringVar(&batchJobsDir, "jobs-dir", "", "Directory of job description files")
	analyzeBatchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Maximum analyses in flight (default 4)")
	analyzeBatchCmd.Flags().StringVarP(&batchOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	analyzeBatchCmd.Flags().StringVar(&batchStyleMatch, "style-match", "", "Style phrase matching: substring (default) or word")

	rootCmd.AddCommand(analyzeBatchCmd)
}

func runAnalyzeBatch(cmd *cobra.Command, _ []string) error {
	if batchResumePath == "" {
		return fmt.Errorf("--resume is required")
	}
	if len(batchJobPaths) == 0 && batchJobsDir == "" {
		return fmt.Errorf("must provide --job or --jobs-dir")
	}

	cfg, err := resolveConfig(cmd, commandOverrides{styleMatch: batchStyleMatch, concurrency: batchConcurrency})
	if err != nil {
		return err
	}
	a, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}

	resume, err := readInput("resume", batchResumePath)
	if err != nil {
		return err
	}

	paths, err := collectJobPaths(batchJobPaths, batchJobsDir)
	if err != nil {
		return err
	}
	jobs, err := loadJobs(a, paths)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return fmt.Errorf("no job descriptions found")
	}

	report, err := runBatch(cmd.Context(), a, resume, jobs, cfg.Concurrency)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := checkSchema(schemas.BatchReportSchema, data); err != nil {
		return err
	}

	if printer := newPrinter(cfg); printer != nil {
		printer.PrintDocument("resume", resume)
		printer.PrintBatch(report)
	}

	return writeOutput(batchOutputFile, data)
}

func runBatch(ctx context.Context, a *analyzer.Analyzer, resume *ingestion.Document, jobs []types.JobInput, concurrency int) (*types.BatchReport, error) {
	if err := a.ValidateText("resume", resume.Text); err != nil {
		return nil, err
	}

	report, err := a.AnalyzeBatch(ctx, resume.Text, jobs, concurrency)
	if err != nil {
		return nil, err
	}
	report.Resume = resume.Path
	return report, nil
}

// collectJobPaths returns explicit paths followed by the supported files of dir in name order.
func collectJobPaths(explicit []string, dir string) ([]string, error) {
	paths := append([]string{}, explicit...)
	if dir == "" {
		return paths, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs directory: %w", err)
	}

	var found []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if _, err := ingestion.FormatFor(entry.Name()); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", entry.Name(), err)
			continue
		}
		found = append(found, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(found)

	return append(paths, found...), nil
}

// loadJobs reads each job file. Jobs are named by file name, with parent directories added
// only when two files share a name.
func loadJobs(a *analyzer.Analyzer, paths []string) ([]types.JobInput, error) {
	baseCount := make(map[string]int)
	for _, p := range paths {
		baseCount[filepath.Base(p)]++
	}

	jobs := make([]types.JobInput, 0, len(paths))
	for _, p := range paths {
		doc, err := ingestion.ReadDocument(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read job: %w", err)
		}

		name := filepath.Base(p)
		if baseCount[name] > 1 {
			name = p
		}
		if err := a.ValidateText(name, doc.Text); err != nil {
			return nil, err
		}
		jobs = append(jobs, types.JobInput{Name: name, Text: doc.Text})
	}
	return jobs, nil
}
