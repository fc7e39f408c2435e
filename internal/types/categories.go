// Package types provides type definitions for structured data used throughout the assessment engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SubjectType identifies whether an assessment targets an individual career or a business.
type SubjectType string

// SubjectType values accepted by the input boundary
const (
	SubjectIndividual SubjectType = "individual"
	SubjectBusiness   SubjectType = "business"
)

// Valid reports whether s is a recognized subject type.
func (s SubjectType) Valid() bool {
	return s == SubjectIndividual || s == SubjectBusiness
}

// ExperienceLevel represents the seniority stated on the input.
type ExperienceLevel string

// ExperienceLevel values accepted by the input boundary; empty means unspecified
const (
	ExperienceEntry  ExperienceLevel = "entry"
	ExperienceMid    ExperienceLevel = "mid"
	ExperienceSenior ExperienceLevel = "senior"
)

// Valid reports whether e is a recognized experience level or unspecified.
func (e ExperienceLevel) Valid() bool {
	switch e {
	case "", ExperienceEntry, ExperienceMid, ExperienceSenior:
		return true
	}
	return false
}

// RiskLevel is the tier derived from the overall vulnerability score.
type RiskLevel string

// Risk tiers, ordered from least to most exposed
const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// OccupationType is a closed enumeration of occupation categories used as
// keys into the static scoring tables. Unmatched content falls back to
// OccupationAdministrative.
type OccupationType string

// Occupation categories recognized by the feature extractor
const (
	OccupationAdministrative  OccupationType = "administrative_clerical"
	OccupationHealthcare      OccupationType = "healthcare_direct"
	OccupationTechnology      OccupationType = "technology_software"
	OccupationEducation       OccupationType = "education_instruction"
	OccupationCreative        OccupationType = "creative_arts"
	OccupationFinance         OccupationType = "finance_accounting"
	OccupationLegal           OccupationType = "legal_services"
	OccupationSales           OccupationType = "sales_retail"
	OccupationManufacturing   OccupationType = "manufacturing_production"
	OccupationTransportation  OccupationType = "transportation_logistics"
	OccupationConstruction    OccupationType = "construction_trades"
	OccupationFoodService     OccupationType = "food_service"
	OccupationManagement      OccupationType = "management_executive"
	OccupationMarketing       OccupationType = "marketing_media"
	OccupationCustomerService OccupationType = "customer_service"
)

// Industry is a closed enumeration of industry categories. IndustryUnknown is
// the explicit fallback used when content matches no industry keywords;
// scorers apply documented default factors for it.
type Industry string

// Industry categories recognized by the feature extractor
const (
	IndustryUnknown       Industry = "unknown"
	IndustryTechnology    Industry = "technology"
	IndustryHealthcare    Industry = "healthcare"
	IndustryFinance       Industry = "finance"
	IndustryEducation     Industry = "education"
	IndustryRetail        Industry = "retail"
	IndustryManufacturing Industry = "manufacturing"
	IndustryLegal         Industry = "legal"
	IndustryMedia         Industry = "media"
	IndustryLogistics     Industry = "logistics"
	IndustryConstruction  Industry = "construction"
	IndustryHospitality   Industry = "hospitality"
	IndustryEnergy        Industry = "energy"
	IndustryGovernment    Industry = "government"
)

// EducationLevel is a closed enumeration of attained education levels.
// Unmatched content falls back to EducationBachelors.
type EducationLevel string

// Education levels recognized by the feature extractor
const (
	EducationNoHighSchool EducationLevel = "no_high_school"
	EducationHighSchool   EducationLevel = "high_school"
	EducationAssociates   EducationLevel = "associates"
	EducationBachelors    EducationLevel = "bachelors"
	EducationMasters      EducationLevel = "masters"
	EducationDoctorate    EducationLevel = "doctorate"
	EducationProfessional EducationLevel = "professional"
)

// LocationClass is a closed enumeration of location density classes.
// Unmatched content falls back to LocationMidUrban.
type LocationClass string

// Location classes recognized by the feature extractor
const (
	LocationMajorMetro LocationClass = "major_metro"
	LocationMidUrban   LocationClass = "mid_urban"
	LocationSmallTown  LocationClass = "small_town"
	LocationRural      LocationClass = "rural"
)

// IncomeBracket is a closed enumeration of annual income brackets.
// Unmatched content falls back to Income60to120.
type IncomeBracket string

// Income brackets recognized by the feature extractor
const (
	IncomeUnder30  IncomeBracket = "under_30k"
	Income30to60   IncomeBracket = "30k_60k"
	Income60to120  IncomeBracket = "60k_120k"
	Income120to250 IncomeBracket = "120k_250k"
	IncomeOver250  IncomeBracket = "over_250k"
)
