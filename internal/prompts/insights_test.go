package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsights_RendersArgs(t *testing.T) {
	system, user, err := Insights(InsightArgs{
		JobTitle:        "Accountant",
		YearsExperience: "8",
		ManagementLevel: "individual_contributor",
		TechnicalSkills: "quickbooks, excel",
		OccupationType:  "finance_accounting",
		Industry:        "finance",
		RiskLevel:       "high",
		OverallScore:    "31",
		TopOccupations:  "Accountant",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, system)
	assert.Contains(t, user, "Accountant")
	assert.Contains(t, user, "quickbooks, excel")
	assert.Contains(t, user, "high")
	assert.NotContains(t, user, "{{.")
}

func TestInsights_EmptyArgsLeaveNoMarkers(t *testing.T) {
	_, user, err := Insights(InsightArgs{})
	require.NoError(t, err)
	assert.NotContains(t, user, "{{.")
}

func TestInsights_SystemDemandsBareJSON(t *testing.T) {
	system, _, err := Insights(InsightArgs{})
	require.NoError(t, err)
	assert.Contains(t, system, "JSON")
}

func TestMustInsights_Renders(t *testing.T) {
	system, user := MustInsights(InsightArgs{JobTitle: "Electrician"})
	assert.NotEmpty(t, system)
	assert.Contains(t, user, "Electrician")
}
