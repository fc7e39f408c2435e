// Package timeline derives projected impact milestones and ranked
// recommendations from a computed risk tier and the extracted features.
package timeline

import "github.com/Shaolin23/adence-ai/internal/types"

// longTermLikelihood applies to every long-term milestone regardless of tier.
// The short/medium tables also have no dedicated "low" entry: the low tier
// reuses the medium constants there. Both quirks are preserved deliberately
// for output compatibility.
const longTermLikelihood = 95

// tierLikelihoods holds the fixed short- and medium-term likelihoods per tier.
var tierLikelihoods = map[types.RiskLevel]struct {
	short  float64
	medium float64
}{
	types.RiskCritical: {short: 75, medium: 85},
	types.RiskHigh:     {short: 55, medium: 70},
	types.RiskMedium:   {short: 35, medium: 55},
}

type milestoneTemplate struct {
	period      string
	description string
	impact      string
}

var shortTermTemplates = []milestoneTemplate{
	{"0-2 years", "AI tools become standard for the routine portions of this role", "Task augmentation"},
	{"0-2 years", "Employers begin consolidating overlapping responsibilities", "Role compression"},
}

var mediumTermTemplates = []milestoneTemplate{
	{"2-5 years", "Automated systems absorb a growing share of core tasks", "Headcount pressure"},
	{"2-5 years", "Hiring shifts toward hybrid human-AI workflows", "Skill requalification"},
}

var longTermTemplates = []milestoneTemplate{
	{"5-10 years", "The role is substantially redefined around AI oversight", "Occupational restructuring"},
	{"5-10 years", "Legacy workflows are retired across the industry", "Industry transformation"},
}

// Build produces the projected milestone timeline for a risk tier.
func Build(risk types.RiskLevel) types.Timeline {
	likelihoods, ok := tierLikelihoods[risk]
	if !ok {
		likelihoods = tierLikelihoods[types.RiskMedium]
	}

	return types.Timeline{
		ShortTerm:  expand(shortTermTemplates, likelihoods.short),
		MediumTerm: expand(mediumTermTemplates, likelihoods.medium),
		LongTerm:   expand(longTermTemplates, longTermLikelihood),
	}
}

func expand(templates []milestoneTemplate, likelihood float64) []types.Milestone {
	out := make([]types.Milestone, 0, len(templates))
	for _, tpl := range templates {
		out = append(out, types.Milestone{
			Period:      tpl.period,
			Likelihood:  likelihood,
			Description: tpl.description,
			Impact:      tpl.impact,
		})
	}
	return out
}
