package occupation

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/Shaolin23/adence-ai/internal/types"
)

// Match score component weights; the total is clamped to [0,1].
const (
	titleWeight       = 0.3
	descriptionWeight = 0.2
	skillsWeight      = 0.3
	knowledgeWeight   = 0.2
)

// minMatchScore excludes weak matches before ranking.
const minMatchScore = 0.2

// Description overlap only counts words longer than this many characters.
const descriptionMinWordLen = 3

// Point deltas for work-activity AI impact sub-scores. Both sub-scores start
// from a neutral 50 and are clamped to [0,100].
const (
	impactScoreBase       = 50
	highRiskDelta         = 15
	lowRiskDelta          = 10
	highAugmentationDelta = 12
)

// Keyword sets driving the per-activity sub-scores. Matched against the
// activity's title and description.
var (
	highRiskActivityKeywords = []string{
		"data", "processing", "recording", "compiling", "calculating",
		"transcribing", "scheduling", "verifying", "entering", "categorizing",
	}
	lowRiskActivityKeywords = []string{
		"caring", "physical", "emotional", "lifting", "climbing",
		"driving", "persuading", "navigating",
	}
	highAugmentationKeywords = []string{
		"analyzing", "decisions", "designing", "creating", "writing",
		"planning", "teaching", "communicating", "monitoring",
	}
)

// Matcher scores catalog occupations against input content.
type Matcher struct {
	catalog *Catalog
}

// NewMatcher creates a matcher over a loaded catalog.
func NewMatcher(catalog *Catalog) *Matcher {
	return &Matcher{catalog: catalog}
}

// Match returns the top occupations for the content, sorted descending by
// match score and truncated to limit. An empty slice is a valid result.
func (m *Matcher) Match(content string, limit int) []types.MatchedOccupation {
	lower := strings.ToLower(content)
	words := wordSet(lower)

	matched := make([]types.MatchedOccupation, 0, len(m.catalog.Occupations))
	for _, occ := range m.catalog.Occupations {
		score := m.matchScore(occ, lower, words)
		if score <= minMatchScore {
			continue
		}
		matched = append(matched, types.MatchedOccupation{
			Profile:    occ,
			MatchScore: score,
			AIImpact:   m.impactScore(occ),
		})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].MatchScore > matched[j].MatchScore
	})

	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

// matchScore is the weighted sum of title, description, skills and knowledge
// overlap, clamped to [0,1].
func (m *Matcher) matchScore(occ types.OccupationProfile, lower string, words map[string]bool) float64 {
	score := titleWeight*wordOverlap(occ.Title, words, 0) +
		descriptionWeight*wordOverlap(occ.Description, words, descriptionMinWordLen) +
		skillsWeight*phraseOverlap(occ.Skills, lower) +
		knowledgeWeight*phraseOverlap(occ.Knowledge, lower)

	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}
	return score
}

// impactScore aggregates per-activity automation risk and augmentation
// potential into the occupation's AI impact, weighting each activity by its
// declared importance.
func (m *Matcher) impactScore(occ types.OccupationProfile) types.AIImpactScore {
	var weightedRisk, weightedAug, totalImportance float64

	for _, ref := range occ.WorkActivities {
		wa, ok := m.catalog.Activity(ref.ActivityID)
		if !ok {
			continue
		}
		risk, aug := activityScores(wa)
		weightedRisk += risk * ref.Importance
		weightedAug += aug * ref.Importance
		totalImportance += ref.Importance
	}

	if totalImportance == 0 {
		return types.AIImpactScore{}
	}

	automation := weightedRisk / totalImportance
	augmentation := weightedAug / totalImportance

	return types.AIImpactScore{
		AutomationRisk:        automation,
		AugmentationPotential: augmentation,
		Overall:               int(math.Round(0.4*automation + 0.6*augmentation)),
	}
}

// activityScores derives the automation-risk and augmentation-potential
// sub-scores for a single work activity from keyword presence.
func activityScores(wa types.WorkActivity) (risk, augmentation float64) {
	text := strings.ToLower(wa.Title + " " + wa.Description)

	risk = impactScoreBase
	for _, kw := range highRiskActivityKeywords {
		if strings.Contains(text, kw) {
			risk += highRiskDelta
		}
	}
	for _, kw := range lowRiskActivityKeywords {
		if strings.Contains(text, kw) {
			risk -= lowRiskDelta
		}
	}

	augmentation = impactScoreBase
	for _, kw := range highAugmentationKeywords {
		if strings.Contains(text, kw) {
			augmentation += highAugmentationDelta
		}
	}

	return clamp100(risk), clamp100(augmentation)
}

// wordOverlap returns the fraction of words in text (longer than minLen) that
// appear in the content word set.
func wordOverlap(text string, words map[string]bool, minLen int) float64 {
	total := 0
	matches := 0
	for _, w := range splitWords(strings.ToLower(text)) {
		if len(w) <= minLen {
			continue
		}
		total++
		if words[w] {
			matches++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(matches) / float64(total)
}

// phraseOverlap returns the fraction of phrases contained in the lowercased
// content as substrings.
func phraseOverlap(phrases []string, lower string) float64 {
	if len(phrases) == 0 {
		return 0
	}
	matches := 0
	for _, p := range phrases {
		if strings.Contains(lower, strings.ToLower(p)) {
			matches++
		}
	}
	return float64(matches) / float64(len(phrases))
}

func wordSet(lower string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range splitWords(lower) {
		set[w] = true
	}
	return set
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func clamp100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
