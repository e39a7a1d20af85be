// Package types provides type definitions for structured data used throughout the ats-checker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// JobInput is one job description to score a resume against.
type JobInput struct {
	Name string `json:"name"`
	Text string `json:"-"`
}

// BatchEntry is the analysis of one job in a batch run.
type BatchEntry struct {
	Job    string         `json:"job"`
	Result AnalysisResult `json:"result"`
}

// BatchReport holds the ranked results of analyzing one resume against many jobs.
type BatchReport struct {
	RunID   uuid.UUID    `json:"run_id"`
	Resume  string       `json:"resume,omitempty"`
	Entries []BatchEntry `json:"entries"`
}
