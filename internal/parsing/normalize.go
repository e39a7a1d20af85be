// Package parsing converts raw resume and job description text into canonical tokens for vocabulary lookup.
package parsing

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	lineBreakRe = regexp.MustCompile(`[\r\n]+`)
	// Word characters are ASCII only. '.', '#' and '+' survive so "node.js", "c#" and "c++" stay intact.
	disallowedRe = regexp.MustCompile(`[^\w\s.#+]`)
	spaceRunRe   = regexp.MustCompile(`\s+`)
)

// Normalizer holds optional normalization behavior. The zero value is the default behavior.
type Normalizer struct {
	// FoldAccents strips combining marks before filtering, so "résumé" becomes "resume"
	// instead of "r sum ".
	FoldAccents bool
}

// NormalizeText lowercases text, collapses line breaks, replaces every character other than
// word characters, whitespace, '.', '#' and '+' with a space, collapses whitespace runs and trims.
// The result contains only [a-z0-9_ .#+] and never two consecutive spaces.
func NormalizeText(text string) string {
	return Normalizer{}.Normalize(text)
}

// Normalize applies NormalizeText with the receiver's options.
func (n Normalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}

	// Casers and transformers keep state, so each call builds its own.
	text = cases.Lower(language.Und).String(text)
	if n.FoldAccents {
		text = foldAccents(text)
	}

	text = lineBreakRe.ReplaceAllString(text, " ")
	text = disallowedRe.ReplaceAllString(text, " ")
	text = spaceRunRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

func foldAccents(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return folded
}
