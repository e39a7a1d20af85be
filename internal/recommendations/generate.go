// Package recommendations turns analysis signals into a short, prioritized list of resume advice.
package recommendations

import (
	"fmt"
	"strings"

	"github.com/jonathan/ats-checker/internal/types"
)

// MaxRecommendations caps the number of messages returned.
const MaxRecommendations = 5

const maxCriticalNamed = 3

// Fixed advice messages, in priority order after the critical-skills message.
const (
	MsgMissingFrontend = "You have strong backend coverage but are missing key frontend keywords. Ensure you list frameworks like React or Vue if you know them."
	MsgMissingBackend  = "Your frontend profile is solid, but the JD requires backend knowledge. Highlight any API or database experience."
	MsgAddProjects     = "You are missing a 'Projects' section. Listing 2-3 github projects proves you can apply your skills."
	MsgReplaceWeak     = `Replace weak phrases like "Responsible for" or "Worked on" with strong action verbs (e.g., "Spearheaded", "Engineered").`
	MsgMorePowerWords  = "Use more 'Power Words' (e.g., 'Achieved', 'Optimized') to quantify your impact and pass screeners."
	MsgSignificantGap  = "The gap between your resume and the JD is significant. Consider simpler roles or a heavy revision."
	MsgSoftSkills      = "Don't underestimate culture match. Explicitly mention soft skills like 'Communication' or 'Leadership'."
)

const (
	weakGapScore   = 50
	minStrongWords = 3
)

// Input carries the signals recommendations are derived from.
type Input struct {
	Score       int
	Missing     []types.SkillDescriptor
	Sections    types.SectionFlags
	StrongWords int
	WeakWords   int
}

// CriticalMessage names up to three critical skills.
func CriticalMessage(names []string) string {
	return fmt.Sprintf("Your profile is missing core requirements: %s. Adding these is the fastest way to improve your score.",
		strings.Join(names, ", "))
}

// Generate evaluates each rule in priority order and returns the first MaxRecommendations that fire.
// The result is never nil.
func Generate(in Input) []string {
	recs := make([]string, 0, MaxRecommendations)

	critical := make([]string, 0, maxCriticalNamed)
	missingCategories := make(map[types.Category]bool)
	for _, s := range in.Missing {
		missingCategories[s.Category] = true
		if s.Weight == types.WeightCritical && len(critical) < maxCriticalNamed {
			critical = append(critical, s.DisplayName)
		}
	}

	if len(critical) > 0 {
		recs = append(recs, CriticalMessage(critical))
	}

	frontend := missingCategories[types.CategoryFrontend]
	backend := missingCategories[types.CategoryBackend]
	if frontend && !backend {
		recs = append(recs, MsgMissingFrontend)
	} else if backend && !frontend {
		recs = append(recs, MsgMissingBackend)
	}

	if !in.Sections.HasProjects {
		recs = append(recs, MsgAddProjects)
	}
	if in.WeakWords > 0 {
		recs = append(recs, MsgReplaceWeak)
	}
	if in.StrongWords < minStrongWords {
		recs = append(recs, MsgMorePowerWords)
	}
	if in.Score < weakGapScore {
		recs = append(recs, MsgSignificantGap)
	}
	if missingCategories[types.CategorySoft] {
		recs = append(recs, MsgSoftSkills)
	}

	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}
	return recs
}
