// Package types provides type definitions for structured data used throughout the ats-checker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Category is the fixed grouping a skill belongs to.
type Category string

// Skill categories
const (
	CategoryFrontend    Category = "frontend"
	CategoryBackend     Category = "backend"
	CategoryDatabase    Category = "database"
	CategoryDevOps      Category = "devops"
	CategoryMobile      Category = "mobile"
	CategoryLanguages   Category = "languages"
	CategoryTools       Category = "tools"
	CategorySoft        Category = "soft"
	CategoryDataScience Category = "datascience"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryLanguages,
	CategoryFrontend,
	CategoryBackend,
	CategoryDatabase,
	CategoryDevOps,
	CategoryMobile,
	CategoryTools,
	CategorySoft,
	CategoryDataScience,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Skill weights
const (
	WeightMinor    = 1
	WeightStandard = 2
	WeightCritical = 3
)

// SkillDescriptor is the catalog record for one recognizable skill.
// DisplayName is the identity used for de-duplication across synonyms.
type SkillDescriptor struct {
	Key         string   `json:"key" yaml:"key" validate:"required,lowercase"`
	DisplayName string   `json:"name" yaml:"name" validate:"required"`
	Category    Category `json:"category" yaml:"category" validate:"required,oneof=frontend backend database devops mobile languages tools soft datascience"`
	Synonyms    []string `json:"synonyms" yaml:"synonyms" validate:"dive,required,lowercase"`
	Weight      int      `json:"weight" yaml:"weight" validate:"min=1,max=3"`
}

// SumWeights returns the total weight of the given skills.
func SumWeights(skills []SkillDescriptor) int {
	total := 0
	for _, s := range skills {
		total += s.Weight
	}
	return total
}
