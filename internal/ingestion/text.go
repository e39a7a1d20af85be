// Package ingestion turns resume and job description files into plain text for analysis.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	spaceRunRe  = regexp.MustCompile(`\s+`)
	blankRunsRe = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes line endings and whitespace while preserving line structure,
// Markdown headings and bullet indentation.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ReplaceAll(content, "\u00a0", " ")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := strings.Join(lines, "\n")
	result = blankRunsRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	indent := ""
	if n := len(line) - len(trimmed); n > 0 {
		indent = strings.Repeat(" ", n)
	}
	if isBulletLine(trimmed) {
		return indent + trimmed
	}
	return indent + spaceRunRe.ReplaceAllString(trimmed, " ")
}

func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") ||
		strings.HasPrefix(line, "• ") || strings.HasPrefix(line, "· ")
}
