// Package skills recognizes catalog skills in free text.
package skills

import (
	"github.com/jonathan/ats-checker/internal/catalog"
	"github.com/jonathan/ats-checker/internal/parsing"
	"github.com/jonathan/ats-checker/internal/types"
)

// Extractor finds catalog skills in text. It holds no mutable state and may be shared.
type Extractor struct {
	Catalog    *catalog.Catalog
	Normalizer parsing.Normalizer
}

// Extract returns the skills found in text using the default normalizer.
func Extract(c *catalog.Catalog, text string) []types.SkillDescriptor {
	return Extractor{Catalog: c}.Extract(text)
}

// Extract returns the distinct skills found in text in discovery order.
//
// Each n-gram contributes at most one skill: a canonical key match wins, otherwise a
// synonym match. A skill already recorded under its display name is never recorded again.
func (e Extractor) Extract(text string) []types.SkillDescriptor {
	found := make([]types.SkillDescriptor, 0)
	seen := make(map[string]bool)

	for _, gram := range parsing.GenerateNGrams(e.Normalizer.Normalize(text)) {
		if skill, ok := e.Catalog.LookupKey(gram); ok && !seen[skill.DisplayName] {
			seen[skill.DisplayName] = true
			found = append(found, skill)
			continue
		}
		if skill, ok := e.Catalog.LookupSynonym(gram); ok && !seen[skill.DisplayName] {
			seen[skill.DisplayName] = true
			found = append(found, skill)
		}
	}

	return found
}

// Names returns the display names of skills.
func Names(list []types.SkillDescriptor) []string {
	names := make([]string, len(list))
	for i, s := range list {
		names[i] = s.DisplayName
	}
	return names
}
