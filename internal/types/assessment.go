// Package types provides type definitions for structured data used throughout the assessment engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// Content length limits enforced at the input boundary
const (
	MinContentLength = 50
	MaxContentLength = 50000
)

// AssessmentInput is the immutable per-request input to the engine.
type AssessmentInput struct {
	Content         string          `json:"content"`
	SubjectType     SubjectType     `json:"subject_type"`
	Location        string          `json:"location,omitempty"`
	ExperienceLevel ExperienceLevel `json:"experience_level,omitempty"`
}

// AssessmentResult aggregates the outputs of the base scoring pipeline.
type AssessmentResult struct {
	ID              string              `json:"id"`
	Vulnerability   VulnerabilityIndex  `json:"vulnerability"`
	Occupations     []MatchedOccupation `json:"occupations"`
	Recommendations []string            `json:"recommendations"`
	Citations       []string            `json:"citations,omitempty"`
	GeneratedAt     time.Time           `json:"generated_at"`
}

// EnhancedAssessmentResult extends the base result with qualitative insights
// obtained (or synthesized) by the insight augmentor.
type EnhancedAssessmentResult struct {
	AssessmentResult
	Insights AIInsights `json:"insights"`
}

// InsightSource records which parsing layer produced the insights, so callers
// can distinguish model output from degraded or fully synthetic content.
type InsightSource string

// Insight provenance values, from most to least faithful to the model output
const (
	InsightSourceModel     InsightSource = "model"
	InsightSourceRepaired  InsightSource = "repaired"
	InsightSourcePartial   InsightSource = "partial"
	InsightSourceSynthetic InsightSource = "synthetic"
)

// TaskImpact describes the projected AI impact on a single role task.
type TaskImpact struct {
	Task           string `json:"task"`
	Impact         string `json:"impact"`
	AutomationRisk string `json:"automation_risk"`
}

// RoadmapPhase is one phase of the adaptation roadmap.
type RoadmapPhase struct {
	Phase   string   `json:"phase"`
	Horizon string   `json:"horizon"`
	Actions []string `json:"actions"`
}

// AIInsights is the qualitative narrative layer produced by the augmentor.
type AIInsights struct {
	Summary           string         `json:"summary"`
	TaskImpacts       []TaskImpact   `json:"task_impacts"`
	Strengths         []string       `json:"strengths"`
	AdaptationRoadmap []RoadmapPhase `json:"adaptation_roadmap"`
	Citations         []string       `json:"citations"`
	Source            InsightSource  `json:"source"`
}
