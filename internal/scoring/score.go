// Package scoring implements the deterministic vulnerability formula pipeline.
// It is a pure function over an extracted FeatureRecord and fixed lookup
// tables; on well-formed input it never fails, since every lookup has a
// default and all arithmetic is clamped.
package scoring

import (
	"math"
	"time"

	"github.com/Shaolin23/adence-ai/internal/types"
)

// Weights of the base vulnerability formula
const (
	applicabilityWeight = 0.4
	automationWeight    = 0.3
	routineWeight       = 0.2
	physicalWeight      = 0.1
)

// Weights of the protection score sub-factors
const (
	educationProtectionWeight  = 0.4
	skillProtectionWeight      = 0.3
	geographicProtectionWeight = 0.15
	incomeProtectionWeight     = 0.15
)

// Risk tier thresholds on the overall score. These are contract constants:
// changing any of them is a behavior-visible change requiring a version bump.
const (
	criticalThreshold = 35
	highThreshold     = 15
	mediumThreshold   = 5
)

// projectionHorizonYear anchors the time-to-impact projection.
const projectionHorizonYear = 2045

// Confidence scoring constants
const (
	confidenceBase          = 70
	confidenceEducationBump = 5
	confidenceLocationBump  = 5
	confidenceMatchBump     = 10
	confidenceCap           = 95
)

// Scorer computes vulnerability indices. The clock is injectable so the
// year-dependent time factor is reproducible in tests.
type Scorer struct {
	now func() time.Time
}

// NewScorer returns a Scorer using the wall clock.
func NewScorer() *Scorer {
	return &Scorer{now: time.Now}
}

// NewScorerAt returns a Scorer pinned to a fixed clock.
func NewScorerAt(now func() time.Time) *Scorer {
	return &Scorer{now: now}
}

// RiskLevelFor maps an overall score to its risk tier. It is a monotonic step
// function: 35 is critical, 15 is high, 5 is medium, anything below is low.
func RiskLevelFor(overall float64) types.RiskLevel {
	switch {
	case overall >= criticalThreshold:
		return types.RiskCritical
	case overall >= highThreshold:
		return types.RiskHigh
	case overall >= mediumThreshold:
		return types.RiskMedium
	default:
		return types.RiskLow
	}
}

// Score runs the formula pipeline over the feature record.
// occupationMatched feeds the confidence bonus only; the Timeline field is
// left empty for the caller to fill from the risk tier.
func (s *Scorer) Score(features types.FeatureRecord, occupationMatched bool) types.VulnerabilityIndex {
	base := baseVulnerability(features)
	factors := factorsFor(features.Industry)

	accelerationBonus := factors.Maturity * 5
	timeFactor := 1 / (float64(projectionHorizonYear-s.now().Year()) + accelerationBonus)

	adoptionRate := factors.CurrentAdoption * factors.GrowthFactor * factors.ValueCreation

	protection, parts := protectionScore(features)

	overall := clamp(base*timeFactor*adoptionRate*(1-protection)*100, 0, 100)

	return types.VulnerabilityIndex{
		Overall: overall,
		Breakdown: types.Breakdown{
			Automation:    clamp(base, 0, 100),
			SkillTransfer: clamp((1-parts.skill)*100, 0, 100),
			Geographic:    clamp((1-parts.geographic)*100, 0, 100),
			Demographic:   clamp(50*features.DemographicRiskMultiplier, 0, 100),
		},
		RiskLevel:          RiskLevelFor(overall),
		TimeToImpactMonths: int(math.Round(12 / timeFactor)),
		Confidence:         confidence(features, occupationMatched, factors.Maturity),
	}
}

// baseVulnerability combines AI applicability, automation probability, the
// routine index and the physical share of the work.
func baseVulnerability(features types.FeatureRecord) float64 {
	applicability := aiApplicability[features.OccupationType]
	autoProb := automationProbability[features.OccupationType]

	return applicabilityWeight*applicability +
		automationWeight*autoProb*100 +
		routineWeight*routineIndex(features.TaskComposition.Routine) +
		physicalWeight*(100-features.TaskComposition.Physical)
}

// routineIndex is a three-tier piecewise-linear function of the routine
// percentage, with tier boundaries at 30 and 60. It is continuous and
// monotonically increasing, reaching 100 at a fully routine workload.
func routineIndex(routine float64) float64 {
	switch {
	case routine <= 30:
		return routine * 0.8
	case routine <= 60:
		return 24 + (routine-30)*1.2
	default:
		return clamp(60+(routine-60), 0, 100)
	}
}

// protectionParts holds the [0,1] sub-factors behind the protection score.
type protectionParts struct {
	education  float64
	skill      float64
	geographic float64
	income     float64
}

func protectionScore(features types.FeatureRecord) (float64, protectionParts) {
	parts := protectionParts{
		education:  educationProtection[features.EducationLevel],
		skill:      skillFactor(features.Skills),
		geographic: geographicProtection[features.LocationClass],
		income:     incomeProtection[features.IncomeBracket],
	}

	total := educationProtectionWeight*parts.education +
		skillProtectionWeight*parts.skill +
		geographicProtectionWeight*parts.geographic +
		incomeProtectionWeight*parts.income

	return total, parts
}

// skillFactor converts the three 0-10 skill ratings into a [0,1] protection
// factor via threshold bands on their average.
func skillFactor(skills types.SkillRatings) float64 {
	avg := (skills.SocialIntelligence + skills.Creativity + skills.ProblemSolving) / 3

	switch {
	case avg >= 8:
		return 0.9
	case avg >= 6.5:
		return 0.7
	case avg >= 5:
		return 0.5
	case avg >= 3.5:
		return 0.3
	default:
		return 0.15
	}
}

func confidence(features types.FeatureRecord, occupationMatched bool, maturity float64) float64 {
	score := float64(confidenceBase)
	if features.EducationLevel != types.EducationBachelors {
		score += confidenceEducationBump
	}
	if features.LocationClass != types.LocationMidUrban {
		score += confidenceLocationBump
	}
	if occupationMatched {
		score += confidenceMatchBump
	}
	score += math.Round(maturity * 10)

	if score > confidenceCap {
		score = confidenceCap
	}
	return score
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
