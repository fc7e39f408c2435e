// Package types provides type definitions for structured data used throughout the assessment engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// TaskComposition describes how working time divides across task kinds, as
// percentages. After extraction the fields never sum above 100.
type TaskComposition struct {
	Routine    float64 `json:"routine"`
	Creative   float64 `json:"creative"`
	Social     float64 `json:"social"`
	Physical   float64 `json:"physical"`
	Analytical float64 `json:"analytical"`
}

// Sum returns the total of all composition percentages.
func (t TaskComposition) Sum() float64 {
	return t.Routine + t.Creative + t.Social + t.Physical + t.Analytical
}

// SkillRatings holds the three 0-10 protective skill ratings derived from content.
type SkillRatings struct {
	SocialIntelligence float64 `json:"social_intelligence"`
	Creativity         float64 `json:"creativity"`
	ProblemSolving     float64 `json:"problem_solving"`
}

// FeatureRecord is the structured feature set extracted from raw content.
// It is ephemeral, derived once per assessment, and is the sole input to the
// vulnerability scorer besides the static lookup tables.
type FeatureRecord struct {
	OccupationType            OccupationType  `json:"occupation_type"`
	Industry                  Industry        `json:"industry"`
	EducationLevel            EducationLevel  `json:"education_level"`
	LocationClass             LocationClass   `json:"location_class"`
	IncomeBracket             IncomeBracket   `json:"income_bracket"`
	TaskComposition           TaskComposition `json:"task_composition"`
	Skills                    SkillRatings    `json:"skills"`
	DemographicRiskMultiplier float64         `json:"demographic_risk_multiplier"`
	ExperienceLevel           ExperienceLevel `json:"experience_level"`
}
