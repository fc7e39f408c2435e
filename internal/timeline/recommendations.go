package timeline

import "github.com/Shaolin23/adence-ai/internal/types"

// maxRecommendations truncates the list in generation order.
const maxRecommendations = 8

// skillGapThreshold triggers a skill-gap recommendation for any rating below it.
const skillGapThreshold = 6.0

// tierOpeners are the mandatory tier-specific opening triplets.
var tierOpeners = map[types.RiskLevel][3]string{
	types.RiskCritical: {
		"Begin an active career transition plan now; your current role faces near-term displacement pressure",
		"Prioritize learning to operate and supervise the AI tools entering your field",
		"Build a financial buffer covering 6-12 months to absorb a possible role change",
	},
	types.RiskHigh: {
		"Start repositioning toward the least automatable parts of your role within the next year",
		"Develop working fluency with the AI tools your industry is adopting",
		"Expand your professional network in adjacent, lower-risk occupations",
	},
	types.RiskMedium: {
		"Monitor AI adoption in your industry and reassess your exposure yearly",
		"Invest in the judgment-heavy and interpersonal parts of your current role",
		"Add one AI-assisted workflow to your routine to stay ahead of the adoption curve",
	},
	types.RiskLow: {
		"Your role is well protected; focus on deepening the strengths that make it so",
		"Adopt AI tools selectively where they remove drudgery rather than replace judgment",
		"Mentor others through AI-driven change to grow your professional standing",
	},
}

// skill-gap recommendations, keyed by the rating they respond to
const (
	socialGapRecommendation   = "Strengthen interpersonal and stakeholder-facing skills; they remain the hardest capabilities to automate"
	creativeGapRecommendation = "Develop creative and generative skills such as original content, design, or novel problem framing"
	problemGapRecommendation  = "Sharpen structured problem-solving and diagnostic skills that pair well with AI assistance"
)

// industryRecommendations exist only for industries with a table entry;
// unmatched industries contribute nothing.
var industryRecommendations = map[types.Industry]string{
	types.IndustryTechnology:    "In technology, move toward system design, reliability, and AI-integration work rather than routine implementation",
	types.IndustryHealthcare:    "In healthcare, direct patient interaction and clinical judgment remain durable; lean into hands-on care",
	types.IndustryFinance:       "In finance, regulatory interpretation and client advisory work outlast transaction processing",
	types.IndustryEducation:     "In education, mentorship and individualized instruction resist automation better than content delivery",
	types.IndustryRetail:        "In retail, experiential and relationship-driven selling outlasts transactional checkout roles",
	types.IndustryManufacturing: "In manufacturing, robotics supervision and quality engineering are the growth paths",
	types.IndustryLegal:         "In legal services, courtroom advocacy and negotiation endure while document review automates",
	types.IndustryMedia:         "In media, editorial judgment and original reporting hold value as generation commoditizes",
	types.IndustryLogistics:     "In logistics, exception handling and network design outlast dispatch and tracking tasks",
}

// businessRecommendations are appended for business-subject assessments.
var businessRecommendations = [3]string{
	"Audit your workflows to identify which functions AI can augment before competitors do",
	"Budget for workforce reskilling alongside any automation investment",
	"Pilot AI adoption in one low-risk process before committing to organization-wide rollout",
}

// Recommendations composes the ranked recommendation list: the tier opener
// triplet, any skill-gap items, an industry item when one exists, and the
// business triplet for business subjects, truncated to the first 8 in
// generation order.
func Recommendations(risk types.RiskLevel, features types.FeatureRecord, subject types.SubjectType) []string {
	recs := make([]string, 0, maxRecommendations)

	opener := tierOpeners[risk]
	recs = append(recs, opener[0], opener[1], opener[2])

	if features.Skills.SocialIntelligence < skillGapThreshold {
		recs = append(recs, socialGapRecommendation)
	}
	if features.Skills.Creativity < skillGapThreshold {
		recs = append(recs, creativeGapRecommendation)
	}
	if features.Skills.ProblemSolving < skillGapThreshold {
		recs = append(recs, problemGapRecommendation)
	}

	if rec, ok := industryRecommendations[features.Industry]; ok {
		recs = append(recs, rec)
	}

	if subject == types.SubjectBusiness {
		recs = append(recs, businessRecommendations[0], businessRecommendations[1], businessRecommendations[2])
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
