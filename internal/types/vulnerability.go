// Package types provides type definitions for structured data used throughout the assessment engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Breakdown holds the per-dimension sub-scores behind the overall
// vulnerability score. Every field is clamped to [0,100].
type Breakdown struct {
	Automation    float64 `json:"automation"`
	SkillTransfer float64 `json:"skill_transfer"`
	Geographic    float64 `json:"geographic"`
	Demographic   float64 `json:"demographic"`
}

// Milestone is a single projected event on the impact timeline.
type Milestone struct {
	Period      string  `json:"period"`
	Likelihood  float64 `json:"likelihood"`
	Description string  `json:"description"`
	Impact      string  `json:"impact"`
}

// Timeline groups projected milestones into short, medium and long horizons.
type Timeline struct {
	ShortTerm  []Milestone `json:"short_term"`
	MediumTerm []Milestone `json:"medium_term"`
	LongTerm   []Milestone `json:"long_term"`
}

// VulnerabilityIndex is the scoring engine's primary output: a 0-100 overall
// score with its breakdown, risk tier, timing projection and confidence.
// Computed once per assessment and immutable thereafter.
type VulnerabilityIndex struct {
	Overall            float64   `json:"overall"`
	Breakdown          Breakdown `json:"breakdown"`
	RiskLevel          RiskLevel `json:"risk_level"`
	TimeToImpactMonths int       `json:"time_to_impact_months"`
	Confidence         float64   `json:"confidence"`
	Timeline           Timeline  `json:"timeline"`
}
