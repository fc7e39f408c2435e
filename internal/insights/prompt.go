package insights

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Shaolin23/adence-ai/internal/prompts"
	"github.com/Shaolin23/adence-ai/internal/types"
)

// Generation parameters for insight requests. Low temperature keeps the
// structured output stable across retries.
const (
	insightMaxTokens   = 2048
	insightTemperature = 0.2
)

// buildPrompts renders the system and user prompts for a subject.
func buildPrompts(profile subjectProfile, base *types.AssessmentResult, features types.FeatureRecord) (system, user string) {
	args := prompts.InsightArgs{
		JobTitle:        profile.JobTitle,
		YearsExperience: strconv.Itoa(profile.YearsExperience),
		ManagementLevel: profile.ManagementLevel,
		TechnicalSkills: strings.Join(profile.TechnicalSkills, ", "),
		OccupationType:  string(features.OccupationType),
		Industry:        string(features.Industry),
		RiskLevel:       string(types.RiskMedium),
		OverallScore:    "0",
		TopOccupations:  "none matched",
	}

	if base != nil {
		args.RiskLevel = string(base.Vulnerability.RiskLevel)
		args.OverallScore = fmt.Sprintf("%.0f", base.Vulnerability.Overall)

		if len(base.Occupations) > 0 {
			titles := make([]string, 0, len(base.Occupations))
			for _, occ := range base.Occupations {
				titles = append(titles, occ.Profile.Title)
			}
			args.TopOccupations = strings.Join(titles, "; ")
		}
	}

	return prompts.MustInsights(args)
}
