// Package catalog holds the display metadata for the option lists the
// wizard presents: resume templates, industries, and job levels. The
// canonical values themselves live in the types package; this package adds
// the human-facing labels and descriptions used when prompting the user.
package catalog

import (
	"github.com/jonathan/resume-wizard/internal/types"
)

// Template describes one selectable resume template.
type Template struct {
	ID          types.TemplateID
	Name        string
	Description string
	Features    []string
	BestFor     []string
}

// IndustryOption pairs an industry with its selection description.
type IndustryOption struct {
	Value       types.Industry
	Label       string
	Description string
}

// JobLevelOption pairs a job level with its selection description and the
// typical experience range it covers.
type JobLevelOption struct {
	Value           types.JobLevel
	Label           string
	Description     string
	YearsExperience string
}

// Templates lists every selectable template in display order.
var Templates = []Template{
	{
		ID:          types.TemplateClassic,
		Name:        "Classic",
		Description: "Single-column, clean serif typography, traditional layout",
		Features:    []string{"Serif typography", "Traditional layout", "Formal appearance"},
		BestFor:     []string{"Finance", "Legal", "Academia", "Government"},
	},
	{
		ID:          types.TemplateModern,
		Name:        "Modern",
		Description: "Single-column, sans-serif, subtle accent line",
		Features:    []string{"Sans-serif typography", "Clean design", "Accent colors"},
		BestFor:     []string{"Technology", "Startups", "Creative roles", "Most industries"},
	},
	{
		ID:          types.TemplateCompact,
		Name:        "Compact",
		Description: "Two-column, space-efficient, good for extensive experience",
		Features:    []string{"Two-column layout", "Space efficient", "Information dense"},
		BestFor:     []string{"Experienced professionals", "Multiple roles", "Detailed skills"},
	},
	{
		ID:          types.TemplateExecutive,
		Name:        "Executive",
		Description: "Elegant spacing, refined typography, understated sophistication",
		Features:    []string{"Premium feel", "Generous whitespace", "Refined typography"},
		BestFor:     []string{"C-level executives", "Directors", "Senior leadership"},
	},
	{
		ID:          types.TemplateCanva,
		Name:        "Canva Style",
		Description: "Modern two-column design with teal accents and clean typography",
		Features:    []string{"Two-column layout", "Icon accents", "Modern design"},
		BestFor:     []string{"Marketing", "Creative roles", "Modern companies", "All industries"},
	},
}

// Industries lists every selectable industry in display order.
var Industries = []IndustryOption{
	{Value: types.IndustryTechnology, Label: "Technology", Description: "Software, IT, SaaS, Hardware"},
	{Value: types.IndustryFinance, Label: "Finance", Description: "Banking, Investment, Insurance"},
	{Value: types.IndustryHealthcare, Label: "Healthcare", Description: "Medical, Pharmaceutical, Biotech"},
	{Value: types.IndustryMarketing, Label: "Marketing", Description: "Advertising, Digital Marketing, PR"},
	{Value: types.IndustryEducation, Label: "Education", Description: "Teaching, EdTech, Training"},
	{Value: types.IndustryEngineering, Label: "Engineering", Description: "Mechanical, Civil, Electrical"},
	{Value: types.IndustryLegal, Label: "Legal", Description: "Law, Compliance, Legal Services"},
	{Value: types.IndustrySales, Label: "Sales", Description: "Business Development, Account Management"},
	{Value: types.IndustryHumanResources, Label: "Human Resources", Description: "Recruiting, HR Management, Training"},
	{Value: types.IndustryOperations, Label: "Operations", Description: "Supply Chain, Logistics, Manufacturing"},
	{Value: types.IndustryConsulting, Label: "Consulting", Description: "Management, Strategy, Advisory"},
	{Value: types.IndustryOther, Label: "Other", Description: "Other industries not listed"},
}

// JobLevels lists every selectable job level in display order.
var JobLevels = []JobLevelOption{
	{
		Value:           types.LevelEntry,
		Label:           "Entry-level",
		Description:     "Starting your career, recent graduate",
		YearsExperience: "0-2 years",
	},
	{
		Value:           types.LevelMid,
		Label:           "Mid-level",
		Description:     "Established professional with growing expertise",
		YearsExperience: "3-5 years",
	},
	{
		Value:           types.LevelSenior,
		Label:           "Senior",
		Description:     "Expert-level individual contributor",
		YearsExperience: "6-10 years",
	},
	{
		Value:           types.LevelManager,
		Label:           "Manager",
		Description:     "Team lead or department manager",
		YearsExperience: "5+ years",
	},
	{
		Value:           types.LevelExecutive,
		Label:           "Executive",
		Description:     "Director, VP, or C-level",
		YearsExperience: "10+ years",
	},
}

// TemplateByID returns the catalog entry for id, or false when id is not a
// known template.
func TemplateByID(id types.TemplateID) (Template, bool) {
	for _, t := range Templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// IndustryByValue returns the catalog entry for the given industry.
func IndustryByValue(v types.Industry) (IndustryOption, bool) {
	for _, opt := range Industries {
		if opt.Value == v {
			return opt, true
		}
	}
	return IndustryOption{}, false
}

// JobLevelByValue returns the catalog entry for the given job level.
func JobLevelByValue(v types.JobLevel) (JobLevelOption, bool) {
	for _, opt := range JobLevels {
		if opt.Value == v {
			return opt, true
		}
	}
	return JobLevelOption{}, false
}
