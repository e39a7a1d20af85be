// Package style scores resume writing style by spotting strong action verbs and weak, passive phrases.
package style

import (
	"fmt"
	"regexp"
	"strings"
)

// Mode selects how phrases are matched against text.
type Mode string

const (
	// ModeSubstring matches a phrase anywhere, including inside longer words ("etc" in "fetch").
	ModeSubstring Mode = "substring"
	// ModeWord requires the phrase to be bounded by non-word characters.
	ModeWord Mode = "word"
)

// ParseMode converts a configuration string to a Mode. An empty string is ModeSubstring.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeSubstring:
		return ModeSubstring, nil
	case ModeWord:
		return ModeWord, nil
	default:
		return "", fmt.Errorf("unknown style match mode %q (use %q or %q)", s, ModeSubstring, ModeWord)
	}
}

// StrongWords are action verbs that signal impact, in reporting order.
var StrongWords = []string{
	"accelerated", "achieved", "architected", "automated", "built", "championed",
	"delivered", "developed", "driven", "engineered", "established", "exceeded",
	"generated", "implemented", "improved", "initiated", "launched", "led",
	"maximized", "optimized", "orchestrated", "pioneered", "reduced", "resolved",
	"revitalized", "spearheaded", "stratigized", "structured", "transformed",
}

// WeakWords are passive or vague phrases, in reporting order.
var WeakWords = []string{
	"responsible for", "helped", "assisted", "worked on", "participated in",
	"attempted", "trying", "various", "etc",
}

var (
	strongBounded = boundedPatterns(StrongWords)
	weakBounded   = boundedPatterns(WeakWords)
)

func boundedPatterns(phrases []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(phrases))
	for i, p := range phrases {
		out[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(p) + `\b`)
	}
	return out
}

// Result lists the strong and weak phrases found, each in its list's fixed order.
type Result struct {
	Strong []string
	Weak   []string
}

// Analyzer detects style phrases. The zero value uses ModeSubstring.
type Analyzer struct {
	Mode Mode
}

// Analyze lowercases text (no other normalization) and reports every listed phrase it contains.
func (a Analyzer) Analyze(text string) Result {
	lower := strings.ToLower(text)
	if a.Mode == ModeWord {
		return Result{
			Strong: matchBounded(lower, StrongWords, strongBounded),
			Weak:   matchBounded(lower, WeakWords, weakBounded),
		}
	}
	return Result{
		Strong: matchSubstring(lower, StrongWords),
		Weak:   matchSubstring(lower, WeakWords),
	}
}

// Analyze runs the default substring analyzer.
func Analyze(text string) Result {
	return Analyzer{}.Analyze(text)
}

func matchSubstring(lower string, phrases []string) []string {
	found := make([]string, 0)
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			found = append(found, p)
		}
	}
	return found
}

func matchBounded(lower string, phrases []string, patterns []*regexp.Regexp) []string {
	found := make([]string, 0)
	for i, re := range patterns {
		if re.MatchString(lower) {
			found = append(found, phrases[i])
		}
	}
	return found
}
