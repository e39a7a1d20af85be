// Package types provides type definitions for structured data used throughout the ats-checker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// SectionFlags records which expected resume sections were detected.
type SectionFlags struct {
	HasContact    bool `json:"hasContact"`
	HasExperience bool `json:"hasExperience"`
	HasEducation  bool `json:"hasEducation"`
	HasSkills     bool `json:"hasSkills"`
	HasProjects   bool `json:"hasProjects"`
}

// SkillsByCategory maps a category name to skills in discovery order.
type SkillsByCategory map[string][]SkillDescriptor

// Count returns the number of skills across all categories.
func (s SkillsByCategory) Count() int {
	n := 0
	for _, list := range s {
		n += len(list)
	}
	return n
}

// GroupByCategory groups skills by category, preserving input order within each group.
func GroupByCategory(skills []SkillDescriptor) SkillsByCategory {
	grouped := make(SkillsByCategory)
	for _, skill := range skills {
		key := string(skill.Category)
		grouped[key] = append(grouped[key], skill)
	}
	return grouped
}

// AnalysisResult is the output of one resume vs job description analysis.
type AnalysisResult struct {
	Score            int              `json:"score"`
	MatchedSkills    SkillsByCategory `json:"matchedSkills"`
	MissingSkills    SkillsByCategory `json:"missingSkills"`
	TotalSkillsFound int              `json:"totalSkillsFound"`
	StrongWords      []string         `json:"strongWords"`
	WeakWords        []string         `json:"weakWords"`
	Sections         SectionFlags     `json:"sections"`
	Recommendations  []string         `json:"recommendations"`
}

// AnalyzeRequest is the boundary input for one analysis. Both fields must be present;
// empty strings are allowed.
type AnalyzeRequest struct {
	ResumeText         *string `json:"resume_text" validate:"required"`
	JobDescriptionText *string `json:"job_description_text" validate:"required"`
}

// Validate checks that both texts are present.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
