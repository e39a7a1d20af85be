// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/ats-checker/internal/ingestion"
	"github.com/jonathan/ats-checker/internal/sections"
	"github.com/jonathan/ats-checker/internal/skills"
	"github.com/jonathan/ats-checker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

// PrintDocument outputs where a document's text came from.
func (p *Printer) PrintDocument(label string, doc *ingestion.Document) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Path:    %s\n", doc.Path))
	sb.WriteString(fmt.Sprintf("Format:  %s\n", doc.Format))
	sb.WriteString(fmt.Sprintf("Length:  %d bytes\n", len(doc.Text)))
	sb.WriteString(fmt.Sprintf("SHA256:  %s", shortHash(doc.Hash)))

	p.printBox(strings.ToUpper(label), sb.String())
}

func shortHash(h string) string {
	if len(h) > 16 {
		return h[:16]
	}
	return h
}

// PrintSkills outputs skills in discovery order.
func (p *Printer) PrintSkills(title string, found []types.SkillDescriptor) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skills found: %d\n", len(found)))
	for _, s := range found {
		sb.WriteString(fmt.Sprintf("  • %s (%s, weight %d)\n", s.DisplayName, s.Category, s.Weight))
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSections outputs which resume sections were detected.
func (p *Printer) PrintSections(flags types.SectionFlags) {
	p.printBox("RESUME SECTIONS", sectionLines(flags))
}

func sectionLines(flags types.SectionFlags) string {
	present := map[string]bool{
		sections.Contact:    flags.HasContact,
		sections.Experience: flags.HasExperience,
		sections.Education:  flags.HasEducation,
		sections.Skills:     flags.HasSkills,
		sections.Projects:   flags.HasProjects,
	}

	var sb strings.Builder
	for _, name := range []string{sections.Contact, sections.Experience, sections.Education, sections.Skills, sections.Projects} {
		mark := "✗"
		if present[name] {
			mark = "✓"
		}
		sb.WriteString(fmt.Sprintf("  %s %s\n", mark, name))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// PrintAnalysis outputs a human-readable summary of an analysis result.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:   %d/100\n", result.Score))
	sb.WriteString(fmt.Sprintf("Matched: %d   Missing: %d\n", result.TotalSkillsFound, result.MissingSkills.Count()))
	sb.WriteString("\n")

	writeGrouped(&sb, "Matched Skills:", result.MatchedSkills)
	writeGrouped(&sb, "Missing Skills:", result.MissingSkills)

	sb.WriteString(fmt.Sprintf("Strong words: %d   Weak words: %d\n", len(result.StrongWords), len(result.WeakWords)))
	if missing := sections.Missing(result.Sections); len(missing) > 0 {
		sb.WriteString(fmt.Sprintf("Missing sections: %s\n", strings.Join(missing, ", ")))
	}

	p.printBox("ATS ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))

	if len(result.Recommendations) > 0 {
		var rb strings.Builder
		for i, rec := range result.Recommendations {
			rb.WriteString(fmt.Sprintf("%d. %s\n", i+1, rec))
		}
		p.printBox("RECOMMENDATIONS", strings.TrimSuffix(rb.String(), "\n"))
	}
}

func writeGrouped(sb *strings.Builder, heading string, grouped types.SkillsByCategory) {
	if len(grouped) == 0 {
		return
	}
	sb.WriteString(heading + "\n")
	for _, category := range types.Categories {
		list := grouped[string(category)]
		if len(list) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %s: %s\n", category, strings.Join(skills.Names(list), ", ")))
	}
	sb.WriteString("\n")
}

// PrintBatch outputs the top ranked jobs of a batch run.
func (p *Printer) PrintBatch(report *types.BatchReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:  %s\n", report.RunID))
	sb.WriteString(fmt.Sprintf("Jobs: %d\n", len(report.Entries)))
	if len(report.Entries) > 0 {
		sb.WriteString("\n")
	}

	count := min(len(report.Entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		e := report.Entries[i]
		sb.WriteString(fmt.Sprintf("#%d  %3d  %s\n", i+1, e.Result.Score, e.Job))
	}
	if len(report.Entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(report.Entries)-maxItemsToShow))
	}

	p.printBox("BATCH RANKING", strings.TrimSuffix(sb.String(), "\n"))
}
