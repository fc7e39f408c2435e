package insights

import (
	"fmt"
	"strings"

	"github.com/Shaolin23/adence-ai/internal/types"
)

// synthesizeInsights builds deterministic fallback insights from the
// extracted features and base assessment. It is used whenever the external
// call fails or its response is unparseable, so a caller with a configured
// credential never observes a missing-insights state.
func synthesizeInsights(profile subjectProfile, base *types.AssessmentResult, features types.FeatureRecord) types.AIInsights {
	risk := types.RiskMedium
	if base != nil {
		risk = base.Vulnerability.RiskLevel
	}

	insights := types.AIInsights{
		Summary: fmt.Sprintf(
			"As a %s, your exposure to AI-driven change is assessed as %s. The projection below is derived from your task composition and industry profile.",
			strings.ToLower(profile.JobTitle), risk,
		),
		TaskImpacts:       synthesizeTaskImpacts(features),
		Strengths:         synthesizeStrengths(features),
		AdaptationRoadmap: synthesizeRoadmap(risk),
		Citations: []string{
			"Frey, C. B., & Osborne, M. A. (2017). The future of employment: How susceptible are jobs to computerisation?",
			"OECD (2023). Employment Outlook: Artificial Intelligence and the Labour Market.",
		},
		Source: types.InsightSourceSynthetic,
	}

	return insights
}

func synthesizeTaskImpacts(features types.FeatureRecord) []types.TaskImpact {
	comp := features.TaskComposition
	impacts := make([]types.TaskImpact, 0, 3)

	if comp.Routine > 0 {
		impacts = append(impacts, types.TaskImpact{
			Task:           "Routine and repetitive work",
			Impact:         "Highly exposed to current automation tooling",
			AutomationRisk: "high",
		})
	}
	if comp.Analytical > 0 {
		impacts = append(impacts, types.TaskImpact{
			Task:           "Analysis and evaluation",
			Impact:         "Likely to be augmented rather than replaced in the near term",
			AutomationRisk: "medium",
		})
	}
	if comp.Social > 0 || comp.Physical > 0 {
		impacts = append(impacts, types.TaskImpact{
			Task:           "Interpersonal and hands-on work",
			Impact:         "Resistant to automation; becomes a larger share of the role",
			AutomationRisk: "low",
		})
	}
	if len(impacts) == 0 {
		impacts = append(impacts, types.TaskImpact{
			Task:           "Core occupational tasks",
			Impact:         "Exposure depends on how quickly your industry adopts AI tooling",
			AutomationRisk: "medium",
		})
	}
	return impacts
}

func synthesizeStrengths(features types.FeatureRecord) []string {
	var strengths []string
	if features.Skills.SocialIntelligence >= 6 {
		strengths = append(strengths, "Strong interpersonal skills that resist automation")
	}
	if features.Skills.Creativity >= 6 {
		strengths = append(strengths, "Creative capabilities that pair well with generative tools")
	}
	if features.Skills.ProblemSolving >= 6 {
		strengths = append(strengths, "Structured problem-solving that benefits from AI assistance")
	}
	if len(strengths) == 0 {
		strengths = append(strengths, "Domain experience that transfers to adjacent, lower-risk roles")
	}
	return strengths
}

func synthesizeRoadmap(risk types.RiskLevel) []types.RoadmapPhase {
	urgency := "within the next two years"
	if risk == types.RiskCritical || risk == types.RiskHigh {
		urgency = "within the next six months"
	}

	return []types.RoadmapPhase{
		{
			Phase:   "Stabilize",
			Horizon: urgency,
			Actions: []string{
				"Inventory which of your weekly tasks AI tools can already perform",
				"Adopt one AI-assisted workflow in your current role",
			},
		},
		{
			Phase:   "Reposition",
			Horizon: "6-24 months",
			Actions: []string{
				"Shift responsibilities toward judgment, oversight, and client-facing work",
				"Complete targeted training in the tools your industry is standardizing on",
			},
		},
		{
			Phase:   "Compound",
			Horizon: "2-5 years",
			Actions: []string{
				"Build a track record supervising AI-augmented processes",
				"Mentor others through the transition to strengthen your standing",
			},
		},
	}
}
