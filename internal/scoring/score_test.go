package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Shaolin23/adence-ai/internal/types"
)

// fixedClock pins the scorer to mid-2025 so the time factor is reproducible.
func fixedClock() time.Time {
	return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
}

func adminRecord() types.FeatureRecord {
	return types.FeatureRecord{
		OccupationType:            types.OccupationAdministrative,
		Industry:                  types.IndustryUnknown,
		EducationLevel:            types.EducationHighSchool,
		LocationClass:             types.LocationSmallTown,
		IncomeBracket:             types.Income30to60,
		TaskComposition:           types.TaskComposition{Routine: 48},
		Skills:                    types.SkillRatings{SocialIntelligence: 5, Creativity: 5, ProblemSolving: 5},
		DemographicRiskMultiplier: 1.0,
	}
}

func nurseRecord() types.FeatureRecord {
	return types.FeatureRecord{
		OccupationType:            types.OccupationHealthcare,
		Industry:                  types.IndustryHealthcare,
		EducationLevel:            types.EducationBachelors,
		LocationClass:             types.LocationMajorMetro,
		IncomeBracket:             types.Income60to120,
		TaskComposition:           types.TaskComposition{Social: 20, Physical: 12, Analytical: 10},
		Skills:                    types.SkillRatings{SocialIntelligence: 8, Creativity: 5, ProblemSolving: 6},
		DemographicRiskMultiplier: 0.85,
		ExperienceLevel:           types.ExperienceSenior,
	}
}

func TestRiskLevelFor_ThresholdBoundaries(t *testing.T) {
	assert.Equal(t, types.RiskCritical, RiskLevelFor(35))
	assert.Equal(t, types.RiskHigh, RiskLevelFor(34.9))
	assert.Equal(t, types.RiskHigh, RiskLevelFor(15))
	assert.Equal(t, types.RiskMedium, RiskLevelFor(14.9))
	assert.Equal(t, types.RiskMedium, RiskLevelFor(5))
	assert.Equal(t, types.RiskLow, RiskLevelFor(4.9))
	assert.Equal(t, types.RiskLow, RiskLevelFor(0))
}

func TestScore_AdministrativeProfile(t *testing.T) {
	index := NewScorerAt(fixedClock).Score(adminRecord(), true)

	// base 81.92, time factor 1/22.5, adoption 0.1265, protection 0.335
	assert.InDelta(t, 30.628, index.Overall, 0.01)
	assert.Equal(t, types.RiskHigh, index.RiskLevel)
	assert.Equal(t, 270, index.TimeToImpactMonths)
	assert.Equal(t, 95.0, index.Confidence)

	assert.InDelta(t, 81.92, index.Breakdown.Automation, 0.001)
	assert.InDelta(t, 50, index.Breakdown.SkillTransfer, 0.001)
	assert.InDelta(t, 65, index.Breakdown.Geographic, 0.001)
	assert.InDelta(t, 50, index.Breakdown.Demographic, 0.001)
}

func TestScore_NurseProfile(t *testing.T) {
	index := NewScorerAt(fixedClock).Score(nurseRecord(), true)

	assert.InDelta(t, 3.494, index.Overall, 0.01)
	assert.Equal(t, types.RiskLow, index.RiskLevel)
	assert.Equal(t, 261, index.TimeToImpactMonths)
	assert.Equal(t, 89.0, index.Confidence)

	assert.InDelta(t, 23.07, index.Breakdown.Automation, 0.001)
	assert.InDelta(t, 30, index.Breakdown.Geographic, 0.001)
	assert.InDelta(t, 42.5, index.Breakdown.Demographic, 0.001)
}

func TestScore_OverallClampedToHundred(t *testing.T) {
	rec := types.FeatureRecord{
		OccupationType:            types.OccupationAdministrative,
		Industry:                  types.IndustryTechnology,
		EducationLevel:            types.EducationNoHighSchool,
		LocationClass:             types.LocationRural,
		IncomeBracket:             types.IncomeUnder30,
		TaskComposition:           types.TaskComposition{Routine: 100},
		Skills:                    types.SkillRatings{SocialIntelligence: 1, Creativity: 1, ProblemSolving: 1},
		DemographicRiskMultiplier: 1.2,
	}

	index := NewScorerAt(fixedClock).Score(rec, true)

	assert.Equal(t, 100.0, index.Overall)
	assert.Equal(t, types.RiskCritical, index.RiskLevel)
}

func TestScore_UnmatchedOccupationLowersConfidence(t *testing.T) {
	matched := NewScorerAt(fixedClock).Score(nurseRecord(), true)
	unmatched := NewScorerAt(fixedClock).Score(nurseRecord(), false)

	assert.Equal(t, matched.Overall, unmatched.Overall)
	assert.Equal(t, matched.Confidence-10, unmatched.Confidence)
}

func TestScore_TimelineLeftForCaller(t *testing.T) {
	index := NewScorerAt(fixedClock).Score(adminRecord(), true)

	assert.Empty(t, index.Timeline.ShortTerm)
	assert.Empty(t, index.Timeline.MediumTerm)
	assert.Empty(t, index.Timeline.LongTerm)
}

func TestRoutineIndex_PiecewiseContinuity(t *testing.T) {
	assert.InDelta(t, 0, routineIndex(0), 0.001)
	assert.InDelta(t, 24, routineIndex(30), 0.001)
	assert.InDelta(t, 45.6, routineIndex(48), 0.001)
	assert.InDelta(t, 60, routineIndex(60), 0.001)
	assert.InDelta(t, 80, routineIndex(80), 0.001)
	assert.InDelta(t, 100, routineIndex(100), 0.001)
}

func TestSkillFactor_Bands(t *testing.T) {
	assert.Equal(t, 0.9, skillFactor(types.SkillRatings{SocialIntelligence: 8, Creativity: 8, ProblemSolving: 8}))
	assert.Equal(t, 0.7, skillFactor(types.SkillRatings{SocialIntelligence: 7, Creativity: 7, ProblemSolving: 7}))
	assert.Equal(t, 0.5, skillFactor(types.SkillRatings{SocialIntelligence: 5, Creativity: 5, ProblemSolving: 5}))
	assert.Equal(t, 0.3, skillFactor(types.SkillRatings{SocialIntelligence: 4, Creativity: 4, ProblemSolving: 4}))
	assert.Equal(t, 0.15, skillFactor(types.SkillRatings{SocialIntelligence: 1, Creativity: 1, ProblemSolving: 1}))
}
