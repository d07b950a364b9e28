// Package types provides type definitions for the resume draft and its
// sub-entities used throughout the resume-wizard system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// PersonalDetails holds the candidate's contact information.
// There is exactly one PersonalDetails per draft.
type PersonalDetails struct {
	FullName            string `json:"full_name"`
	Title               string `json:"title,omitempty"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Location            string `json:"location"`
	LinkedIn            string `json:"linked_in,omitempty"`
	ProfessionalSummary string `json:"professional_summary,omitempty"`
}

// WorkExperience represents a single position in the candidate's work history.
// Order within the draft is meaningful: entries render top to bottom exactly
// as the user arranged them, not sorted by date.
type WorkExperience struct {
	ID               string   `json:"id"`
	Company          string   `json:"company"`
	Title            string   `json:"title"`
	StartDate        string   `json:"start_date"`
	EndDate          string   `json:"end_date,omitempty"`
	IsCurrentRole    bool     `json:"is_current_role"`
	Responsibilities string   `json:"responsibilities"`
	Bullets          []string `json:"bullets,omitempty"`
}

// Education represents a single educational credential.
type Education struct {
	ID           string `json:"id"`
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date,omitempty"`
	Honors       string `json:"honors,omitempty"`
	GPA          string `json:"gpa,omitempty"`
}

// Certification represents a professional certification.
type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date,omitempty"`
}

// Proficiency is a spoken-language proficiency level.
type Proficiency string

// Proficiency levels, lowest to highest.
const (
	ProficiencyBasic          Proficiency = "Basic"
	ProficiencyConversational Proficiency = "Conversational"
	ProficiencyProfessional   Proficiency = "Professional"
	ProficiencyNative         Proficiency = "Native"
)

// Proficiencies lists all valid proficiency levels in ascending order.
var Proficiencies = []Proficiency{
	ProficiencyBasic,
	ProficiencyConversational,
	ProficiencyProfessional,
	ProficiencyNative,
}

// Valid reports whether p is one of the known proficiency levels.
func (p Proficiency) Valid() bool {
	for _, known := range Proficiencies {
		if p == known {
			return true
		}
	}
	return false
}

// Language represents a spoken language and its proficiency.
type Language struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Proficiency Proficiency `json:"proficiency"`
}

// Project represents a personal or professional project.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
}

// Industry identifies the candidate's target industry. It drives the
// terminology hints embedded in generation prompts.
type Industry string

// Known industries. IndustryOther is the fallback for anything unlisted.
const (
	IndustryTechnology     Industry = "Technology"
	IndustryFinance        Industry = "Finance"
	IndustryHealthcare     Industry = "Healthcare"
	IndustryMarketing      Industry = "Marketing"
	IndustryEducation      Industry = "Education"
	IndustryEngineering    Industry = "Engineering"
	IndustryLegal          Industry = "Legal"
	IndustrySales          Industry = "Sales"
	IndustryHumanResources Industry = "Human Resources"
	IndustryOperations     Industry = "Operations"
	IndustryConsulting     Industry = "Consulting"
	IndustryOther          Industry = "Other"
)

// Industries lists all selectable industries in display order.
var Industries = []Industry{
	IndustryTechnology,
	IndustryFinance,
	IndustryHealthcare,
	IndustryMarketing,
	IndustryEducation,
	IndustryEngineering,
	IndustryLegal,
	IndustrySales,
	IndustryHumanResources,
	IndustryOperations,
	IndustryConsulting,
	IndustryOther,
}

// JobLevel identifies the candidate's career level. It selects the writing
// guidance embedded in generation prompts.
type JobLevel string

// Known job levels.
const (
	LevelEntry     JobLevel = "Entry-level"
	LevelMid       JobLevel = "Mid-level"
	LevelSenior    JobLevel = "Senior"
	LevelManager   JobLevel = "Manager"
	LevelExecutive JobLevel = "Executive"
)

// JobLevels lists all selectable job levels in ascending order.
var JobLevels = []JobLevel{
	LevelEntry,
	LevelMid,
	LevelSenior,
	LevelManager,
	LevelExecutive,
}
