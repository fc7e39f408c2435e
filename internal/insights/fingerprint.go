// Package insights implements the optional augmentation layer: it obtains
// qualitative, role-specific narrative insights from an external
// text-generation service, caching results by feature fingerprint and
// batching concurrent requests to bound external call concurrency.
package insights

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"github.com/Shaolin23/adence-ai/internal/types"
)

// subjectProfile is the compact summary of an assessment subject used for
// prompt construction and cache fingerprinting.
type subjectProfile struct {
	JobTitle        string
	YearsExperience int
	ManagementLevel string
	TechnicalSkills []string
	ContentLength   int
}

// Management level labels derived from content keywords
const (
	levelExecutive             = "executive"
	levelManager               = "manager"
	levelIndividualContributor = "individual_contributor"
)

var yearsPattern = regexp.MustCompile(`(\d{1,2})\+?\s*years`)

var executiveKeywords = []string{"chief ", "vice president", "vp of", "head of", "executive director", "c-suite"}
var managerKeywords = []string{"manager", "supervisor", "team lead", "management"}

// technicalSkillVocabulary is scanned in order; the first three hits become
// the profile's technical skills, so the fingerprint is stable for a given
// content.
var technicalSkillVocabulary = []string{
	"excel", "sql", "python", "javascript", "java", "salesforce",
	"tableau", "quickbooks", "autocad", "photoshop", "sap", "epic",
	"kubernetes", "aws", "machine learning",
}

// maxProfileSkills caps the skills folded into the fingerprint.
const maxProfileSkills = 3

// extractProfile derives the subject profile from raw content and the base
// assessment. Deterministic for identical inputs.
func extractProfile(content string, base *types.AssessmentResult) subjectProfile {
	lower := strings.ToLower(content)

	profile := subjectProfile{
		JobTitle:        "Unknown Role",
		ManagementLevel: levelIndividualContributor,
		ContentLength:   len(content),
	}

	if base != nil && len(base.Occupations) > 0 {
		profile.JobTitle = base.Occupations[0].Profile.Title
	}

	if m := yearsPattern.FindStringSubmatch(lower); m != nil {
		var years int
		fmt.Sscanf(m[1], "%d", &years)
		profile.YearsExperience = years
	}

	if containsAny(lower, executiveKeywords) {
		profile.ManagementLevel = levelExecutive
	} else if containsAny(lower, managerKeywords) {
		profile.ManagementLevel = levelManager
	}

	for _, skill := range technicalSkillVocabulary {
		if strings.Contains(lower, skill) {
			profile.TechnicalSkills = append(profile.TechnicalSkills, skill)
			if len(profile.TechnicalSkills) == maxProfileSkills {
				break
			}
		}
	}

	return profile
}

// fingerprint produces the stable cache key for a profile.
func fingerprint(p subjectProfile) string {
	payload := strings.Join([]string{
		p.JobTitle,
		fmt.Sprintf("%d", p.YearsExperience),
		p.ManagementLevel,
		strings.Join(p.TechnicalSkills, ","),
		fmt.Sprintf("%d", p.ContentLength),
	}, "|")

	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
