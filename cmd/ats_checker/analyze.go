package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/ats-checker/internal/analyzer"
	"github.com/jonathan/ats-checker/internal/schemas"
	"github.com/jonathan/ats-checker/internal/types"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against one job description",
	Long: `Extracts skills from the job description (required) and the resume (possessed), scores the match,
and writes the AnalysisResult JSON to stdout or --out.

Inputs are given either as --resume and --job files (.txt, .md, .html, .pdf, .docx, or - for stdin),
or as --request pointing at a JSON document {"resume_text": ..., "job_description_text": ...}.`,
	RunE: runAnalyze,
}

var (
	analyzeResumePath  string
	analyzeJobPath     string
	analyzeRequestPath string
	analyzeOutputFile  string
	analyzeStyleMatch  string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumePath, "resume", "r", "", "Path to resume file (- for stdin)")
	analyzeCmd.Flags().StringVarP(&analyzeJobPath, "job", "j", "", "Path to job description file (- for stdin)")
	analyzeCmd.Flags().StringVar(&analyzeRequestPath, "request", "", "Path to a JSON analysis request (- for stdin); mutually exclusive with --resume/--job")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	analyzeCmd.Flags().StringVar(&analyzeStyleMatch, "style-match", "", "Style phrase matching: substring (default) or word")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	useRequest := analyzeRequestPath != ""
	useFiles := analyzeResumePath != "" || analyzeJobPath != ""
	if useRequest && useFiles {
		return fmt.Errorf("cannot use --request with --resume/--job flags")
	}
	if !useRequest && !useFiles {
		return fmt.Errorf("must provide either --request or --resume and --job")
	}
	if useFiles && (analyzeResumePath == "" || analyzeJobPath == "") {
		return fmt.Errorf("--resume and --job are both required")
	}
	if analyzeResumePath == "-" && analyzeJobPath == "-" {
		return fmt.Errorf("only one of --resume and --job can read stdin")
	}

	cfg, err := resolveConfig(cmd, commandOverrides{styleMatch: analyzeStyleMatch})
	if err != nil {
		return err
	}
	a, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}
	printer := newPrinter(cfg)

	var req types.AnalyzeRequest
	if useRequest {
		req, err = readRequest(analyzeRequestPath)
		if err != nil {
			return err
		}
	} else {
		resume, err := readInput("resume", analyzeResumePath)
		if err != nil {
			return err
		}
		job, err := readInput("job", analyzeJobPath)
		if err != nil {
			return err
		}
		if printer != nil {
			printer.PrintDocument("resume", resume)
			printer.PrintDocument("job description", job)
		}
		req = types.AnalyzeRequest{ResumeText: &resume.Text, JobDescriptionText: &job.Text}
	}

	result, data, err := analyzeToJSON(a, req)
	if err != nil {
		return err
	}
	if printer != nil {
		printer.PrintAnalysis(&result)
	}

	return writeOutput(analyzeOutputFile, data)
}

// analyzeToJSON runs one analysis and returns schema-checked, indented JSON.
func analyzeToJSON(a *analyzer.Analyzer, req types.AnalyzeRequest) (types.AnalysisResult, []byte, error) {
	result, err := a.AnalyzeRequest(req)
	if err != nil {
		return result, nil, err
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return result, nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := checkSchema(schemas.AnalysisResultSchema, data); err != nil {
		return result, nil, err
	}
	return result, data, nil
}

func readRequest(path string) (types.AnalyzeRequest, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return types.AnalyzeRequest{}, fmt.Errorf("failed to read request: %w", err)
	}
	return analyzer.DecodeRequest(data)
}
