// Package types provides type definitions for structured data used throughout the assessment engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// WorkActivity is a catalog entry describing a generalized work activity.
// Activities are referenced by occupations and drive the automation-risk and
// augmentation-potential sub-scores.
type WorkActivity struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// WorkActivityRef links an occupation to a work activity with the importance
// weight used when aggregating activity-level scores.
type WorkActivityRef struct {
	ActivityID string  `json:"activity_id"`
	Importance float64 `json:"importance"`
}

// OccupationProfile is a static catalog entry loaded once per process.
type OccupationProfile struct {
	Code           string            `json:"code"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Skills         []string          `json:"skills"`
	Knowledge      []string          `json:"knowledge"`
	Tasks          []string          `json:"tasks"`
	MedianWage     float64           `json:"median_wage"`
	Employment     int               `json:"employment"`
	WorkActivities []WorkActivityRef `json:"work_activities"`
}

// AIImpactScore holds the per-occupation AI impact sub-scores, each 0-100.
type AIImpactScore struct {
	AutomationRisk        float64 `json:"automation_risk"`
	AugmentationPotential float64 `json:"augmentation_potential"`
	Overall               int     `json:"overall"`
}

// MatchedOccupation pairs a catalog profile with its match score against the
// input content and the derived AI impact sub-scores.
type MatchedOccupation struct {
	Profile    OccupationProfile `json:"profile"`
	MatchScore float64           `json:"match_score"`
	AIImpact   AIImpactScore     `json:"ai_impact"`
}
