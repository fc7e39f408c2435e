package features

import "github.com/Shaolin23/adence-ai/internal/types"

// categoryRule binds a category to its detection keywords. Rule slices are
// scanned top to bottom and the first match wins, so declaration order is the
// tie-break policy.
type categoryRule[T ~string] struct {
	category T
	keywords []string
}

// taskCluster is a keyword cluster contributing fixed points per hit to one
// task-composition component.
type taskCluster struct {
	keywords     []string
	pointsPerHit float64
}

// weightedKeyword adds a fixed increment to a skill rating when detected.
type weightedKeyword struct {
	keyword   string
	increment float64
}

var occupationRules = []categoryRule[types.OccupationType]{
	{types.OccupationHealthcare, []string{"nurse", "nursing", "physician", "patient care", "caregiver", "therapist", "dental", "paramedic"}},
	{types.OccupationTechnology, []string{"software", "developer", "programmer", "devops", "data scientist", "engineer", "sysadmin", "it support"}},
	{types.OccupationEducation, []string{"teacher", "professor", "instructor", "tutor", "educator", "curriculum"}},
	{types.OccupationCreative, []string{"designer", "artist", "writer", "musician", "photographer", "illustrator", "video editor"}},
	{types.OccupationFinance, []string{"accountant", "accounting", "bookkeep", "auditor", "financial analyst", "underwriter", "actuary"}},
	{types.OccupationLegal, []string{"attorney", "lawyer", "paralegal", "legal assistant", "law firm"}},
	{types.OccupationSales, []string{"salesperson", "sales representative", "cashier", "retail", "account executive", "store associate"}},
	{types.OccupationManufacturing, []string{"assembly line", "machinist", "factory", "production worker", "welder", "fabricat"}},
	{types.OccupationTransportation, []string{"truck driver", "delivery driver", "courier", "warehouse", "forklift", "dispatcher"}},
	{types.OccupationConstruction, []string{"construction", "carpenter", "electrician", "plumber", "roofer", "mason"}},
	{types.OccupationFoodService, []string{"chef", "cook", "waiter", "waitress", "barista", "bartender", "food service"}},
	{types.OccupationManagement, []string{"chief executive", "vice president", "general manager", "executive director", "coo", "managing director"}},
	{types.OccupationMarketing, []string{"marketing", "social media manager", "copywriter", "brand manager", "seo", "public relations"}},
	{types.OccupationCustomerService, []string{"customer service", "call center", "help desk", "support agent", "client services"}},
	{types.OccupationAdministrative, []string{"administrative", "data entry", "clerical", "receptionist", "secretary", "office assistant", "filing"}},
}

var industryRules = []categoryRule[types.Industry]{
	{types.IndustryHealthcare, []string{"hospital", "clinic", "patient", "medical", "health care", "healthcare", "pharma"}},
	{types.IndustryTechnology, []string{"software company", "tech company", "saas", "startup", "cloud", "silicon valley"}},
	{types.IndustryFinance, []string{"bank", "investment", "insurance", "fintech", "hedge fund", "brokerage"}},
	{types.IndustryEducation, []string{"school", "university", "college", "k-12", "academy"}},
	{types.IndustryRetail, []string{"retail", "e-commerce", "ecommerce", "supermarket", "department store"}},
	{types.IndustryManufacturing, []string{"manufactur", "automotive", "aerospace", "industrial"}},
	{types.IndustryLegal, []string{"law firm", "legal services", "litigation"}},
	{types.IndustryMedia, []string{"media", "publishing", "broadcast", "advertising agency", "entertainment"}},
	{types.IndustryLogistics, []string{"logistics", "shipping", "freight", "supply chain", "distribution center"}},
	{types.IndustryConstruction, []string{"construction company", "real estate development", "general contractor"}},
	{types.IndustryHospitality, []string{"hotel", "restaurant", "hospitality", "tourism", "resort"}},
	{types.IndustryEnergy, []string{"oil and gas", "utility", "renewable energy", "solar", "power plant"}},
	{types.IndustryGovernment, []string{"government", "federal agency", "municipal", "public sector", "nonprofit"}},
}

// Education rules: the no-high-school rule precedes high-school because its
// keywords contain "high school" as a substring.
var educationRules = []categoryRule[types.EducationLevel]{
	{types.EducationNoHighSchool, []string{"no high school", "did not finish high school", "dropped out"}},
	{types.EducationDoctorate, []string{"phd", "ph.d", "doctorate", "doctoral"}},
	{types.EducationProfessional, []string{"juris doctor", "m.d.", "medical degree", "law degree"}},
	{types.EducationMasters, []string{"master's", "masters degree", "master of", "mba", "m.s.", "m.a."}},
	{types.EducationBachelors, []string{"bachelor", "b.s.", "b.a.", "undergraduate degree"}},
	{types.EducationAssociates, []string{"associate degree", "associate's", "community college"}},
	{types.EducationHighSchool, []string{"high school", "no degree", "ged", "some college"}},
}

var locationRules = []categoryRule[types.LocationClass]{
	{types.LocationMajorMetro, []string{"new york", "san francisco", "los angeles", "chicago", "seattle", "boston", "london", "major metro", "metropolitan"}},
	{types.LocationSmallTown, []string{"small town", "small city"}},
	{types.LocationRural, []string{"rural", "countryside", "farming community", "remote area"}},
	{types.LocationMidUrban, []string{"suburb", "mid-size city", "midsize city"}},
}

var incomeRules = []categoryRule[types.IncomeBracket]{
	{types.IncomeOver250, []string{"$250,000", "$300,000", "seven figure"}},
	{types.Income120to250, []string{"$120,000", "$150,000", "$200,000", "six figure"}},
	{types.IncomeUnder30, []string{"minimum wage", "$25,000", "under $30"}},
	{types.Income30to60, []string{"$35,000", "$40,000", "$50,000", "hourly wage"}},
	{types.Income60to120, []string{"$60,000", "$75,000", "$90,000", "$100,000"}},
}

var experienceRules = []categoryRule[types.ExperienceLevel]{
	{types.ExperienceEntry, []string{"entry-level", "entry level", "junior", "intern", "recent graduate", "new grad", "first job"}},
	{types.ExperienceSenior, []string{"senior", "principal", "director", "10+ years", "12 years", "15 years", "20 years", "decades of"}},
	{types.ExperienceMid, []string{"mid-level", "mid level", "5 years", "6 years", "7 years"}},
}

var routineCluster = taskCluster{
	keywords:     []string{"data entry", "filing", "repetitive", "routine", "scheduling", "invoic", "paperwork", "record keeping", "transcri"},
	pointsPerHit: 12,
}

var creativeCluster = taskCluster{
	keywords:     []string{"design", "creative", "writing", "content creation", "brainstorm", "innovat", "compose", "storytell"},
	pointsPerHit: 12,
}

var socialCluster = taskCluster{
	keywords:     []string{"customer", "client", "teaching", "mentor", "collaborat", "communicat", "negotiat", "patient care", "counsel"},
	pointsPerHit: 10,
}

var physicalCluster = taskCluster{
	keywords:     []string{"physical", "lifting", "manual labor", "assembly", "driving", "equipment operation", "patient care", "standing"},
	pointsPerHit: 12,
}

var analyticalCluster = taskCluster{
	keywords:     []string{"analy", "research", "assess", "evaluat", "diagnos", "modeling", "forecast", "troubleshoot"},
	pointsPerHit: 10,
}

var socialSkillKeywords = []weightedKeyword{
	{"patient care", 1.5},
	{"counsel", 1.5},
	{"negotiat", 1.5},
	{"leadership", 1.5},
	{"mentor", 1.0},
	{"team", 1.0},
	{"communicat", 1.0},
	{"empath", 1.5},
}

var creativitySkillKeywords = []weightedKeyword{
	{"design", 1.5},
	{"creative", 1.5},
	{"innovat", 1.5},
	{"writing", 1.0},
	{"artist", 1.5},
	{"brainstorm", 1.0},
	{"original", 1.0},
}

var problemSolvingSkillKeywords = []weightedKeyword{
	{"problem solving", 1.5},
	{"problem-solving", 1.5},
	{"troubleshoot", 1.5},
	{"diagnos", 1.5},
	{"assess", 1.0},
	{"analy", 1.0},
	{"strategy", 1.0},
	{"optimiz", 1.0},
}
