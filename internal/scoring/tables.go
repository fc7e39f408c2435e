package scoring

import "github.com/Shaolin23/adence-ai/internal/types"

// aiApplicability scores (0-100) how much of each occupation's work current
// AI systems can plausibly address.
var aiApplicability = map[types.OccupationType]float64{
	types.OccupationAdministrative:  85,
	types.OccupationHealthcare:      35,
	types.OccupationTechnology:      70,
	types.OccupationEducation:       45,
	types.OccupationCreative:        50,
	types.OccupationFinance:         75,
	types.OccupationLegal:           60,
	types.OccupationSales:           65,
	types.OccupationManufacturing:   70,
	types.OccupationTransportation:  60,
	types.OccupationConstruction:    40,
	types.OccupationFoodService:     55,
	types.OccupationManagement:      40,
	types.OccupationMarketing:       65,
	types.OccupationCustomerService: 75,
}

// automationProbability holds per-occupation probabilities (0-1) of full task
// automation within the projection horizon.
var automationProbability = map[types.OccupationType]float64{
	types.OccupationAdministrative:  0.96,
	types.OccupationHealthcare:      0.009,
	types.OccupationTechnology:      0.21,
	types.OccupationEducation:       0.095,
	types.OccupationCreative:        0.22,
	types.OccupationFinance:         0.58,
	types.OccupationLegal:           0.35,
	types.OccupationSales:           0.47,
	types.OccupationManufacturing:   0.79,
	types.OccupationTransportation:  0.69,
	types.OccupationConstruction:    0.17,
	types.OccupationFoodService:     0.63,
	types.OccupationManagement:      0.09,
	types.OccupationMarketing:       0.33,
	types.OccupationCustomerService: 0.55,
}

// industryFactor bundles the per-industry adoption dynamics.
type industryFactor struct {
	Maturity        float64
	CurrentAdoption float64
	GrowthFactor    float64
	ValueCreation   float64
}

// defaultIndustryFactor applies when the industry is unmatched.
var defaultIndustryFactor = industryFactor{
	Maturity:        0.5,
	CurrentAdoption: 0.5,
	GrowthFactor:    1.15,
	ValueCreation:   0.22,
}

var industryFactors = map[types.Industry]industryFactor{
	types.IndustryTechnology:    {Maturity: 0.85, CurrentAdoption: 0.85, GrowthFactor: 1.30, ValueCreation: 0.35},
	types.IndustryHealthcare:    {Maturity: 0.35, CurrentAdoption: 0.38, GrowthFactor: 1.12, ValueCreation: 0.18},
	types.IndustryFinance:       {Maturity: 0.75, CurrentAdoption: 0.72, GrowthFactor: 1.25, ValueCreation: 0.30},
	types.IndustryEducation:     {Maturity: 0.40, CurrentAdoption: 0.35, GrowthFactor: 1.10, ValueCreation: 0.15},
	types.IndustryRetail:        {Maturity: 0.60, CurrentAdoption: 0.55, GrowthFactor: 1.20, ValueCreation: 0.25},
	types.IndustryManufacturing: {Maturity: 0.65, CurrentAdoption: 0.60, GrowthFactor: 1.18, ValueCreation: 0.28},
	types.IndustryLegal:         {Maturity: 0.45, CurrentAdoption: 0.40, GrowthFactor: 1.15, ValueCreation: 0.20},
	types.IndustryMedia:         {Maturity: 0.70, CurrentAdoption: 0.68, GrowthFactor: 1.22, ValueCreation: 0.26},
	types.IndustryLogistics:     {Maturity: 0.62, CurrentAdoption: 0.58, GrowthFactor: 1.20, ValueCreation: 0.24},
	types.IndustryConstruction:  {Maturity: 0.30, CurrentAdoption: 0.25, GrowthFactor: 1.08, ValueCreation: 0.12},
	types.IndustryHospitality:   {Maturity: 0.35, CurrentAdoption: 0.30, GrowthFactor: 1.10, ValueCreation: 0.14},
	types.IndustryEnergy:        {Maturity: 0.55, CurrentAdoption: 0.50, GrowthFactor: 1.15, ValueCreation: 0.22},
	types.IndustryGovernment:    {Maturity: 0.25, CurrentAdoption: 0.20, GrowthFactor: 1.05, ValueCreation: 0.10},
}

// factorsFor returns the industry factors, falling back to defaults for
// unmatched industries.
func factorsFor(industry types.Industry) industryFactor {
	if f, ok := industryFactors[industry]; ok {
		return f
	}
	return defaultIndustryFactor
}

// educationProtection maps attained education to a [0,1] protection factor.
var educationProtection = map[types.EducationLevel]float64{
	types.EducationNoHighSchool: 0.10,
	types.EducationHighSchool:   0.20,
	types.EducationAssociates:   0.40,
	types.EducationBachelors:    0.60,
	types.EducationMasters:      0.75,
	types.EducationProfessional: 0.85,
	types.EducationDoctorate:    0.90,
}

// geographicProtection maps location class to a [0,1] protection factor.
// Denser labor markets offer more lateral moves.
var geographicProtection = map[types.LocationClass]float64{
	types.LocationMajorMetro: 0.70,
	types.LocationMidUrban:   0.50,
	types.LocationSmallTown:  0.35,
	types.LocationRural:      0.25,
}

// incomeProtection maps income bracket to a [0,1] protection factor.
var incomeProtection = map[types.IncomeBracket]float64{
	types.IncomeUnder30:  0.20,
	types.Income30to60:   0.35,
	types.Income60to120:  0.50,
	types.Income120to250: 0.70,
	types.IncomeOver250:  0.85,
}
