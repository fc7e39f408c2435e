// Package features turns raw free-text content into a structured feature record.
// Extraction is pure keyword lookup against fixed tables: it never fails, and
// every unmatched category falls back to a documented default.
package features

import (
	"strings"

	"github.com/Shaolin23/adence-ai/internal/types"
)

// Defaults applied when no keyword table matches the content
const (
	DefaultOccupationType = types.OccupationAdministrative
	DefaultEducationLevel = types.EducationBachelors
	DefaultLocationClass  = types.LocationMidUrban
	DefaultIncomeBracket  = types.Income60to120
)

// Base and ceiling for the three protective skill ratings
const (
	skillBase = 5.0
	skillMax  = 10.0
)

// Extract derives a FeatureRecord from raw content. Matching is
// case-insensitive substring lookup; tables are scanned in declared order and
// the first matching category wins.
func Extract(content string) types.FeatureRecord {
	lower := strings.ToLower(content)

	return types.FeatureRecord{
		OccupationType:            matchOccupation(lower),
		Industry:                  matchIndustry(lower),
		EducationLevel:            matchEducation(lower),
		LocationClass:             matchLocation(lower),
		IncomeBracket:             matchIncome(lower),
		TaskComposition:           scoreTaskComposition(lower),
		Skills:                    scoreSkills(lower),
		ExperienceLevel:           matchExperience(lower),
		DemographicRiskMultiplier: DemographicMultiplier(matchExperience(lower)),
	}
}

// Refine overrides extracted fields with explicitly declared input values.
// Declared values win over keyword detection; the demographic multiplier is
// recomputed when the experience level changes.
func Refine(rec *types.FeatureRecord, location string, level types.ExperienceLevel) {
	if location != "" {
		if class, ok := matchLocationString(strings.ToLower(location)); ok {
			rec.LocationClass = class
		}
	}
	if level != "" {
		rec.ExperienceLevel = level
		rec.DemographicRiskMultiplier = DemographicMultiplier(level)
	}
}

// DemographicMultiplier maps an experience level to the demographic risk
// multiplier applied by the scorer's demographic breakdown.
func DemographicMultiplier(level types.ExperienceLevel) float64 {
	switch level {
	case types.ExperienceEntry:
		return 1.2
	case types.ExperienceSenior:
		return 0.85
	default:
		return 1.0
	}
}

func matchOccupation(lower string) types.OccupationType {
	for _, rule := range occupationRules {
		if containsAny(lower, rule.keywords) {
			return rule.category
		}
	}
	return DefaultOccupationType
}

func matchIndustry(lower string) types.Industry {
	for _, rule := range industryRules {
		if containsAny(lower, rule.keywords) {
			return rule.category
		}
	}
	return types.IndustryUnknown
}

func matchEducation(lower string) types.EducationLevel {
	for _, rule := range educationRules {
		if containsAny(lower, rule.keywords) {
			return rule.category
		}
	}
	return DefaultEducationLevel
}

func matchLocation(lower string) types.LocationClass {
	if class, ok := matchLocationString(lower); ok {
		return class
	}
	return DefaultLocationClass
}

func matchLocationString(lower string) (types.LocationClass, bool) {
	for _, rule := range locationRules {
		if containsAny(lower, rule.keywords) {
			return rule.category, true
		}
	}
	return "", false
}

func matchIncome(lower string) types.IncomeBracket {
	for _, rule := range incomeRules {
		if containsAny(lower, rule.keywords) {
			return rule.category
		}
	}
	return DefaultIncomeBracket
}

func matchExperience(lower string) types.ExperienceLevel {
	for _, rule := range experienceRules {
		if containsAny(lower, rule.keywords) {
			return rule.category
		}
	}
	return ""
}

// scoreTaskComposition accumulates points per detected keyword cluster, then
// rescales proportionally when the raw sum exceeds 100 so components keep
// their ratio.
func scoreTaskComposition(lower string) types.TaskComposition {
	comp := types.TaskComposition{
		Routine:    clusterPoints(lower, routineCluster),
		Creative:   clusterPoints(lower, creativeCluster),
		Social:     clusterPoints(lower, socialCluster),
		Physical:   clusterPoints(lower, physicalCluster),
		Analytical: clusterPoints(lower, analyticalCluster),
	}

	sum := comp.Sum()
	if sum > 100 {
		scale := 100 / sum
		comp.Routine *= scale
		comp.Creative *= scale
		comp.Social *= scale
		comp.Physical *= scale
		comp.Analytical *= scale
	}
	return comp
}

func clusterPoints(lower string, cluster taskCluster) float64 {
	points := 0.0
	for _, kw := range cluster.keywords {
		if strings.Contains(lower, kw) {
			points += cluster.pointsPerHit
		}
	}
	return points
}

// scoreSkills starts each rating at the base of 5/10 and adds fixed increments
// per detected keyword, clamped to 10.
func scoreSkills(lower string) types.SkillRatings {
	return types.SkillRatings{
		SocialIntelligence: skillScore(lower, socialSkillKeywords),
		Creativity:         skillScore(lower, creativitySkillKeywords),
		ProblemSolving:     skillScore(lower, problemSolvingSkillKeywords),
	}
}

func skillScore(lower string, keywords []weightedKeyword) float64 {
	score := skillBase
	for _, kw := range keywords {
		if strings.Contains(lower, kw.keyword) {
			score += kw.increment
		}
	}
	if score > skillMax {
		score = skillMax
	}
	return score
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
