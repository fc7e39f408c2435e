package features

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Shaolin23/adence-ai/internal/types"
)

const adminContent = "Administrative assistant with a GED responsible for data entry, filing, scheduling and invoice processing at a local office. Based in a small town. Earning $35,000 per year."

const nurseContent = "Registered nurse providing patient care, counseling patients and families, and assessing treatment plans at a community hospital. Bachelor of Science in Nursing. 12 years of experience in a major metropolitan area."

func TestExtract_AdministrativeProfile(t *testing.T) {
	rec := Extract(adminContent)

	assert.Equal(t, types.OccupationAdministrative, rec.OccupationType)
	assert.Equal(t, types.IndustryUnknown, rec.Industry)
	assert.Equal(t, types.EducationHighSchool, rec.EducationLevel)
	assert.Equal(t, types.LocationSmallTown, rec.LocationClass)
	assert.Equal(t, types.Income30to60, rec.IncomeBracket)
	assert.Equal(t, 1.0, rec.DemographicRiskMultiplier)

	// Four routine cluster hits: data entry, filing, scheduling, invoic
	assert.InDelta(t, 48, rec.TaskComposition.Routine, 0.001)
	assert.Zero(t, rec.TaskComposition.Creative)
	assert.Zero(t, rec.TaskComposition.Physical)
}

func TestExtract_NurseProfile(t *testing.T) {
	rec := Extract(nurseContent)

	assert.Equal(t, types.OccupationHealthcare, rec.OccupationType)
	assert.Equal(t, types.IndustryHealthcare, rec.Industry)
	assert.Equal(t, types.EducationBachelors, rec.EducationLevel)
	assert.Equal(t, types.LocationMajorMetro, rec.LocationClass)
	assert.Equal(t, types.ExperienceSenior, rec.ExperienceLevel)
	assert.Equal(t, 0.85, rec.DemographicRiskMultiplier)

	assert.Zero(t, rec.TaskComposition.Routine)
	assert.InDelta(t, 20, rec.TaskComposition.Social, 0.001)
	assert.InDelta(t, 12, rec.TaskComposition.Physical, 0.001)
	assert.InDelta(t, 10, rec.TaskComposition.Analytical, 0.001)

	// patient care and counsel raise social intelligence; assess raises
	// problem solving
	assert.InDelta(t, 8, rec.Skills.SocialIntelligence, 0.001)
	assert.InDelta(t, 5, rec.Skills.Creativity, 0.001)
	assert.InDelta(t, 6, rec.Skills.ProblemSolving, 0.001)
}

func TestExtract_UnmatchedContentFallsBackToDefaults(t *testing.T) {
	rec := Extract("qqqq wwww eeee rrrr tttt yyyy uuuu iiii oooo pppp")

	assert.Equal(t, DefaultOccupationType, rec.OccupationType)
	assert.Equal(t, types.IndustryUnknown, rec.Industry)
	assert.Equal(t, DefaultEducationLevel, rec.EducationLevel)
	assert.Equal(t, DefaultLocationClass, rec.LocationClass)
	assert.Equal(t, DefaultIncomeBracket, rec.IncomeBracket)
	assert.Equal(t, 1.0, rec.DemographicRiskMultiplier)

	assert.Zero(t, rec.TaskComposition.Sum())
	assert.Equal(t, skillBase, rec.Skills.SocialIntelligence)
	assert.Equal(t, skillBase, rec.Skills.Creativity)
	assert.Equal(t, skillBase, rec.Skills.ProblemSolving)
}

func TestExtract_TaskCompositionRescaledPreservingRatios(t *testing.T) {
	// All nine routine keywords (108 raw points) plus four creative keywords
	// (48 raw points) force the proportional rescale.
	content := "data entry filing repetitive routine scheduling invoice paperwork record keeping transcription design creative writing brainstorm"

	rec := Extract(content)

	assert.InDelta(t, 100, rec.TaskComposition.Sum(), 0.001)
	assert.InDelta(t, 108.0/48.0, rec.TaskComposition.Routine/rec.TaskComposition.Creative, 0.001)
}

func TestExtract_SkillScoreClampedAtTen(t *testing.T) {
	content := "patient care counseling negotiation leadership mentoring team communication empathy"

	rec := Extract(content)
	assert.Equal(t, skillMax, rec.Skills.SocialIntelligence)
}

func TestRefine_DeclaredValuesWin(t *testing.T) {
	rec := Extract(adminContent)
	Refine(&rec, "Rural Montana", types.ExperienceSenior)

	assert.Equal(t, types.LocationRural, rec.LocationClass)
	assert.Equal(t, types.ExperienceSenior, rec.ExperienceLevel)
	assert.Equal(t, 0.85, rec.DemographicRiskMultiplier)
}

func TestRefine_UnrecognizedLocationKeepsExtracted(t *testing.T) {
	rec := Extract(adminContent)
	Refine(&rec, "somewhere unclassifiable", "")

	assert.Equal(t, types.LocationSmallTown, rec.LocationClass)
	assert.Equal(t, 1.0, rec.DemographicRiskMultiplier)
}

func TestDemographicMultiplier(t *testing.T) {
	assert.Equal(t, 1.2, DemographicMultiplier(types.ExperienceEntry))
	assert.Equal(t, 1.0, DemographicMultiplier(types.ExperienceMid))
	assert.Equal(t, 0.85, DemographicMultiplier(types.ExperienceSenior))
	assert.Equal(t, 1.0, DemographicMultiplier(""))
}
