package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shaolin23/adence-ai/internal/types"
)

func TestExtractProfile_FromContent(t *testing.T) {
	content := "Operations manager with 12 years of experience using Excel, SQL and Python daily"

	p := extractProfile(content, nil)

	assert.Equal(t, "Unknown Role", p.JobTitle)
	assert.Equal(t, 12, p.YearsExperience)
	assert.Equal(t, levelManager, p.ManagementLevel)
	assert.Equal(t, []string{"excel", "sql", "python"}, p.TechnicalSkills)
	assert.Equal(t, len(content), p.ContentLength)
}

func TestExtractProfile_TitleFromTopOccupation(t *testing.T) {
	base := &types.AssessmentResult{
		Occupations: []types.MatchedOccupation{
			{Profile: types.OccupationProfile{Title: "Registered Nurse"}},
		},
	}

	p := extractProfile("vice president of clinical operations", base)

	assert.Equal(t, "Registered Nurse", p.JobTitle)
	assert.Equal(t, levelExecutive, p.ManagementLevel)
}

func TestExtractProfile_SkillsCappedAtThree(t *testing.T) {
	p := extractProfile("excel sql python javascript java tableau", nil)
	require.Len(t, p.TechnicalSkills, maxProfileSkills)
}

func TestFingerprint_StableForIdenticalProfiles(t *testing.T) {
	content := "Senior accountant with 8 years experience in QuickBooks and Excel"

	a := fingerprint(extractProfile(content, nil))
	b := fingerprint(extractProfile(content, nil))

	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestFingerprint_DistinctForDifferentProfiles(t *testing.T) {
	a := fingerprint(extractProfile("Junior clerk with 2 years experience", nil))
	b := fingerprint(extractProfile("Senior clerk with 20 years experience", nil))

	assert.NotEqual(t, a, b)
}
