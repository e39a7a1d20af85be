package observability

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jonathan/ats-checker/internal/ingestion"
	"github.com/jonathan/ats-checker/internal/types"
	"github.com/stretchr/testify/assert"
)

func sampleResult() *types.AnalysisResult {
	return &types.AnalysisResult{
		Score: 48,
		MatchedSkills: types.SkillsByCategory{
			"frontend":  {{DisplayName: "React", Category: types.CategoryFrontend, Weight: 3}},
			"languages": {{DisplayName: "TypeScript", Category: types.CategoryLanguages, Weight: 3}},
		},
		MissingSkills: types.SkillsByCategory{
			"devops": {{DisplayName: "AWS", Category: types.CategoryDevOps, Weight: 3}},
		},
		TotalSkillsFound: 2,
		StrongWords:      []string{},
		WeakWords:        []string{"helped"},
		Sections:         types.SectionFlags{HasExperience: true},
		Recommendations:  []string{"Add AWS.", "Add a projects section."},
	}
}

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(sampleResult())
	output := buf.String()

	assert.Contains(t, output, "ATS ANALYSIS")
	assert.Contains(t, output, "Score:   48/100")
	assert.Contains(t, output, "Matched: 2   Missing: 1")
	assert.Contains(t, output, "frontend: React")
	assert.Contains(t, output, "devops: AWS")
	assert.Contains(t, output, "Weak words: 1")
	assert.Contains(t, output, "Missing sections: contact, education, skills, projects")
	assert.Contains(t, output, "RECOMMENDATIONS")
	assert.Contains(t, output, "1. Add AWS.")

	// Categories print in declaration order, not map order
	assert.Less(t, strings.Index(output, "languages:"), strings.Index(output, "frontend:"))
	assert.Less(t, strings.Index(output, "frontend:"), strings.Index(output, "devops:"))
}

func TestPrintAnalysis_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAnalysis(nil)
	assert.Empty(t, buf.String())
}

func TestPrintSkills(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSkills("JOB SKILLS", []types.SkillDescriptor{
		{DisplayName: "Python", Category: types.CategoryLanguages, Weight: 3},
	})
	output := buf.String()

	assert.Contains(t, output, "JOB SKILLS")
	assert.Contains(t, output, "Skills found: 1")
	assert.Contains(t, output, "Python (languages, weight 3)")
}

func TestPrintSections(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSections(types.SectionFlags{HasContact: true})
	output := buf.String()

	assert.Contains(t, output, "✓ contact")
	assert.Contains(t, output, "✗ projects")
}

func TestPrintBatch(t *testing.T) {
	entries := make([]types.BatchEntry, 7)
	for i := range entries {
		entries[i] = types.BatchEntry{Job: fmt.Sprintf("job-%d", i), Result: types.AnalysisResult{Score: 90 - i}}
	}
	report := &types.BatchReport{RunID: uuid.New(), Entries: entries}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintBatch(report)
	output := buf.String()

	assert.Contains(t, output, "BATCH RANKING")
	assert.Contains(t, output, report.RunID.String())
	assert.Contains(t, output, "job-0")
	assert.Contains(t, output, "job-4")
	assert.NotContains(t, output, "job-5")
	assert.Contains(t, output, "... and 2 more")
}

func TestPrintDocument(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintDocument("resume", &ingestion.Document{
		Path: "cv.pdf", Format: ingestion.FormatPDF, Text: "hello", Hash: strings.Repeat("ab", 32),
	})
	output := buf.String()

	assert.Contains(t, output, "RESUME")
	assert.Contains(t, output, "cv.pdf")
	assert.Contains(t, output, "pdf")
	assert.Contains(t, output, "5 bytes")
	assert.Contains(t, output, strings.Repeat("ab", 8))
	assert.NotContains(t, output, strings.Repeat("ab", 9))
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.printBox("TITLE", strings.Repeat("é", 100))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), "line %q", line)
	}
	assert.Contains(t, buf.String(), "...")
}
