// Package ranking computes the 0-100 match score of a resume against a job description.
package ranking

import (
	"math"

	"github.com/jonathan/ats-checker/internal/types"
)

// Score components
const (
	MaxScore = 100

	// skillPoints is the most the skill component can contribute.
	skillPoints = 70.0
	// neutralSkillPoints is used when the job description names no catalog skills.
	neutralSkillPoints = 35.0

	contactPoints    = 5
	experiencePoints = 10
	educationPoints  = 5
	skillsPoints     = 5
	projectsPoints   = 5

	// StyleBonusThreshold is the strong-word count that must be exceeded to earn StyleBonus.
	StyleBonusThreshold = 4
	StyleBonus          = 5
)

// SkillComponent returns the weighted share of required skills the resume covers, scaled to 70.
// With no required skills it returns a neutral 35.
func SkillComponent(matched, missing []types.SkillDescriptor) float64 {
	matchedWeight := types.SumWeights(matched)
	total := matchedWeight + types.SumWeights(missing)
	if total == 0 {
		return neutralSkillPoints
	}
	return float64(matchedWeight) / float64(total) * skillPoints
}

// SectionComponent returns up to 30 points for resume section completeness.
func SectionComponent(s types.SectionFlags) int {
	points := 0
	if s.HasContact {
		points += contactPoints
	}
	if s.HasExperience {
		points += experiencePoints
	}
	if s.HasEducation {
		points += educationPoints
	}
	if s.HasSkills {
		points += skillsPoints
	}
	if s.HasProjects {
		points += projectsPoints
	}
	return points
}

// ComputeScore combines the skill and section components, rounds to the nearest integer
// and clamps to 0..100. It does not include the style bonus.
func ComputeScore(matched, missing []types.SkillDescriptor, s types.SectionFlags) int {
	raw := SkillComponent(matched, missing) + float64(SectionComponent(s))
	return clamp(int(math.Round(raw)))
}

// ApplyStyleBonus adds StyleBonus when more than StyleBonusThreshold strong words were found.
func ApplyStyleBonus(score, strongWordCount int) int {
	if strongWordCount > StyleBonusThreshold {
		score += StyleBonus
	}
	return clamp(score)
}

func clamp(score int) int {
	if score > MaxScore {
		return MaxScore
	}
	if score < 0 {
		return 0
	}
	return score
}
