// Package analyzer composes skill extraction, section detection, style analysis, scoring and
// recommendations into a single resume vs job description analysis.
package analyzer

import (
	"github.com/jonathan/ats-checker/internal/catalog"
	"github.com/jonathan/ats-checker/internal/parsing"
	"github.com/jonathan/ats-checker/internal/ranking"
	"github.com/jonathan/ats-checker/internal/recommendations"
	"github.com/jonathan/ats-checker/internal/sections"
	"github.com/jonathan/ats-checker/internal/skills"
	"github.com/jonathan/ats-checker/internal/style"
	"github.com/jonathan/ats-checker/internal/types"
)

// DefaultMaxInputBytes is the per-text limit applied at the request boundary.
const DefaultMaxInputBytes = 1 << 20

// Options tunes an Analyzer. The zero value reproduces the default matching behavior.
type Options struct {
	StyleMode   style.Mode
	FoldAccents bool
	// MaxInputBytes limits each text accepted by AnalyzeRequest. Zero means DefaultMaxInputBytes.
	MaxInputBytes int
}

// Analyzer runs analyses against a fixed catalog. It holds no mutable state and is safe for
// concurrent use.
type Analyzer struct {
	extractor skills.Extractor
	style     style.Analyzer
	maxBytes  int
}

// New returns an Analyzer that reads cat. A nil cat uses the built-in catalog.
func New(cat *catalog.Catalog, opts Options) *Analyzer {
	if cat == nil {
		cat = catalog.Default()
	}
	maxBytes := opts.MaxInputBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxInputBytes
	}
	return &Analyzer{
		extractor: skills.Extractor{Catalog: cat, Normalizer: parsing.Normalizer{FoldAccents: opts.FoldAccents}},
		style:     style.Analyzer{Mode: opts.StyleMode},
		maxBytes:  maxBytes,
	}
}

// ExtractSkills returns the catalog skills found in text, in discovery order.
func (a *Analyzer) ExtractSkills(text string) []types.SkillDescriptor {
	return a.extractor.Extract(text)
}

// Analyze scores resumeText against jobDescriptionText.
//
// Required skills come from the job description; a required skill is matched when the resume
// yields a skill with the same display name. Sections and style are read from the resume only.
func (a *Analyzer) Analyze(resumeText, jobDescriptionText string) types.AnalysisResult {
	required := a.extractor.Extract(jobDescriptionText)
	possessed := make(map[string]bool)
	for _, s := range a.extractor.Extract(resumeText) {
		possessed[s.DisplayName] = true
	}

	matched := make([]types.SkillDescriptor, 0, len(required))
	missing := make([]types.SkillDescriptor, 0, len(required))
	for _, s := range required {
		if possessed[s.DisplayName] {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}

	flags := sections.Detect(resumeText)
	found := a.style.Analyze(resumeText)

	score := ranking.ComputeScore(matched, missing, flags)
	score = ranking.ApplyStyleBonus(score, len(found.Strong))

	return types.AnalysisResult{
		Score:            score,
		MatchedSkills:    types.GroupByCategory(matched),
		MissingSkills:    types.GroupByCategory(missing),
		TotalSkillsFound: len(matched),
		StrongWords:      found.Strong,
		WeakWords:        found.Weak,
		Sections:         flags,
		Recommendations: recommendations.Generate(recommendations.Input{
			Score:       score,
			Missing:     missing,
			Sections:    flags,
			StrongWords: len(found.Strong),
			WeakWords:   len(found.Weak),
		}),
	}
}
