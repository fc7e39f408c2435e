package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shaolin23/adence-ai/internal/types"
)

func strongSkills() types.SkillRatings {
	return types.SkillRatings{SocialIntelligence: 8, Creativity: 8, ProblemSolving: 8}
}

func weakSkills() types.SkillRatings {
	return types.SkillRatings{SocialIntelligence: 5, Creativity: 5, ProblemSolving: 5}
}

func TestRecommendations_TierOpenersComeFirst(t *testing.T) {
	features := types.FeatureRecord{Skills: strongSkills(), Industry: types.IndustryUnknown}

	recs := Recommendations(types.RiskCritical, features, types.SubjectIndividual)

	require.Len(t, recs, 3)
	opener := tierOpeners[types.RiskCritical]
	assert.Equal(t, opener[0], recs[0])
	assert.Equal(t, opener[1], recs[1])
	assert.Equal(t, opener[2], recs[2])
}

func TestRecommendations_SkillGapsAndIndustry(t *testing.T) {
	features := types.FeatureRecord{Skills: weakSkills(), Industry: types.IndustryHealthcare}

	recs := Recommendations(types.RiskMedium, features, types.SubjectIndividual)

	require.Len(t, recs, 7)
	assert.Contains(t, recs, socialGapRecommendation)
	assert.Contains(t, recs, creativeGapRecommendation)
	assert.Contains(t, recs, problemGapRecommendation)
	assert.Equal(t, industryRecommendations[types.IndustryHealthcare], recs[6])
}

func TestRecommendations_SkillAtThresholdIsNotAGap(t *testing.T) {
	features := types.FeatureRecord{
		Skills:   types.SkillRatings{SocialIntelligence: 6, Creativity: 6, ProblemSolving: 6},
		Industry: types.IndustryUnknown,
	}

	recs := Recommendations(types.RiskLow, features, types.SubjectIndividual)
	assert.Len(t, recs, 3)
}

func TestRecommendations_UnknownIndustryContributesNothing(t *testing.T) {
	features := types.FeatureRecord{Skills: strongSkills(), Industry: types.IndustryGovernment}

	recs := Recommendations(types.RiskLow, features, types.SubjectIndividual)
	assert.Len(t, recs, 3)
}

func TestRecommendations_BusinessSubjectTruncatedToEight(t *testing.T) {
	features := types.FeatureRecord{Skills: weakSkills(), Industry: types.IndustryTechnology}

	recs := Recommendations(types.RiskCritical, features, types.SubjectBusiness)

	// 3 openers + 3 skill gaps + 1 industry + 3 business = 10, truncated in
	// generation order
	require.Len(t, recs, maxRecommendations)
	assert.Equal(t, businessRecommendations[0], recs[7])
	assert.NotContains(t, recs, businessRecommendations[1])
	assert.NotContains(t, recs, businessRecommendations[2])
}

func TestRecommendations_BusinessTripletWhenRoomRemains(t *testing.T) {
	features := types.FeatureRecord{Skills: strongSkills(), Industry: types.IndustryUnknown}

	recs := Recommendations(types.RiskMedium, features, types.SubjectBusiness)

	require.Len(t, recs, 6)
	assert.Equal(t, businessRecommendations[0], recs[3])
	assert.Equal(t, businessRecommendations[2], recs[5])
}
