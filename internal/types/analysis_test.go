// Package types provides type definitions for structured data used throughout the ats-checker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisResult_JSONShape(t *testing.T) {
	result := AnalysisResult{
		Score: 42,
		MatchedSkills: SkillsByCategory{
			"languages": {{Key: "python", DisplayName: "Python", Category: CategoryLanguages, Synonyms: []string{"py"}, Weight: 3}},
		},
		MissingSkills:    SkillsByCategory{},
		TotalSkillsFound: 1,
		StrongWords:      []string{"led"},
		WeakWords:        []string{},
		Sections:         SectionFlags{HasContact: true},
		Recommendations:  []string{},
	}

	jsonBytes, err := json.Marshal(result)
	require.NoError(t, err)
	out := string(jsonBytes)

	assert.Contains(t, out, `"score":42`)
	assert.Contains(t, out, `"matchedSkills":{"languages":[{"key":"python","name":"Python","category":"languages","synonyms":["py"],"weight":3}]}`)
	assert.Contains(t, out, `"missingSkills":{}`)
	assert.Contains(t, out, `"totalSkillsFound":1`)
	assert.Contains(t, out, `"weakWords":[]`)
	assert.Contains(t, out, `"hasContact":true`)
	assert.Contains(t, out, `"hasProjects":false`)
}

func TestGroupByCategory_PreservesOrder(t *testing.T) {
	skills := []SkillDescriptor{
		{DisplayName: "React", Category: CategoryFrontend, Weight: 3},
		{DisplayName: "Node.js", Category: CategoryBackend, Weight: 3},
		{DisplayName: "Redux", Category: CategoryFrontend, Weight: 2},
	}

	grouped := GroupByCategory(skills)

	require.Len(t, grouped, 2)
	require.Len(t, grouped["frontend"], 2)
	assert.Equal(t, "React", grouped["frontend"][0].DisplayName)
	assert.Equal(t, "Redux", grouped["frontend"][1].DisplayName)
	assert.Equal(t, "Node.js", grouped["backend"][0].DisplayName)
	assert.Equal(t, 3, grouped.Count())
}

func TestGroupByCategory_Empty(t *testing.T) {
	grouped := GroupByCategory(nil)
	assert.NotNil(t, grouped)
	assert.Empty(t, grouped)
}

func TestSumWeights(t *testing.T) {
	assert.Equal(t, 0, SumWeights(nil))
	assert.Equal(t, 5, SumWeights([]SkillDescriptor{{Weight: 3}, {Weight: 2}}))
}

func TestCategory_Valid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, Category("cooking").Valid())
	assert.False(t, Category("").Valid())
}

func TestAnalyzeRequest_Validate(t *testing.T) {
	empty := ""
	text := "python"

	tests := []struct {
		name    string
		request AnalyzeRequest
		wantErr bool
	}{
		{"both present", AnalyzeRequest{ResumeText: &text, JobDescriptionText: &text}, false},
		{"empty strings allowed", AnalyzeRequest{ResumeText: &empty, JobDescriptionText: &empty}, false},
		{"missing resume", AnalyzeRequest{JobDescriptionText: &text}, true},
		{"missing job description", AnalyzeRequest{ResumeText: &text}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
