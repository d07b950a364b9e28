package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-wizard/internal/types"
	"github.com/jonathan/resume-wizard/internal/wizard"
)

// Entry limits per ordered sequence.
const (
	MaxWorkExperiences = 5
	MaxEducation       = 3
	MinSkills          = 3
)

// validate is the shared validator instance. Struct tags carry the rules;
// messages come from the table below.
var validate = validator.New(validator.WithRequiredStructEnabled())

// personalDetailsForm carries the rules for the personal step.
type personalDetailsForm struct {
	FullName            string `validate:"required,min=2"`
	Email               string `validate:"required,email"`
	Phone               string `validate:"required,min=10"`
	Location            string `validate:"required,min=2"`
	LinkedIn            string `validate:"omitempty,url"`
	ProfessionalSummary string `validate:"omitempty,max=500"`
}

// workExperienceForm carries the rules for one experience entry.
type workExperienceForm struct {
	Company          string `validate:"required"`
	Title            string `validate:"required"`
	StartDate        string `validate:"required"`
	Responsibilities string `validate:"required,min=10"`
}

// educationForm carries the rules for one education entry.
type educationForm struct {
	Institution  string `validate:"required"`
	Degree       string `validate:"required"`
	FieldOfStudy string `validate:"required"`
	StartDate    string `validate:"required"`
}

// certificationForm carries the rules for one certification entry.
type certificationForm struct {
	Name   string `validate:"required"`
	Issuer string `validate:"required"`
}

// projectForm carries the rules for one project entry.
type projectForm struct {
	Name        string `validate:"required"`
	Description string `validate:"required,min=10"`
	URL         string `validate:"omitempty,url"`
}

// messages maps struct field names to human-readable messages per failing
// tag. Unlisted combinations fall back to a generic message.
var messages = map[string]map[string]string{
	"FullName":            {"required": "Name is required", "min": "Name must be at least 2 characters"},
	"Email":               {"required": "Email is required", "email": "Invalid email address"},
	"Phone":               {"required": "Phone is required", "min": "Phone number must be at least 10 characters"},
	"Location":            {"required": "Location is required", "min": "Location is required"},
	"LinkedIn":            {"url": "Invalid LinkedIn URL"},
	"ProfessionalSummary": {"max": "Summary must be under 500 characters"},
	"Company":             {"required": "Company name is required"},
	"Title":               {"required": "Job title is required"},
	"StartDate":           {"required": "Start date is required"},
	"Responsibilities":    {"required": "Please describe your responsibilities", "min": "Please describe your responsibilities (at least 10 characters)"},
	"Institution":         {"required": "Institution name is required"},
	"Degree":              {"required": "Degree is required"},
	"FieldOfStudy":        {"required": "Field of study is required"},
	"Name":                {"required": "Name is required"},
	"Issuer":              {"required": "Issuer is required"},
	"Description":         {"required": "Please provide a brief description", "min": "Please provide a brief description (at least 10 characters)"},
	"URL":                 {"url": "Invalid URL"},
}

// structErrors runs the validator and translates failures. prefix is
// prepended to field names so entries in a sequence carry their position
// (e.g. "work_experience[1].Company").
func structErrors(form any, prefix string) []FieldError {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var out []FieldError
	for _, fe := range err.(validator.ValidationErrors) {
		msg := messages[fe.Field()][fe.Tag()]
		if msg == "" {
			msg = fmt.Sprintf("invalid value for %s", fe.Field())
		}
		out = append(out, FieldError{Field: prefix + fe.Field(), Message: msg})
	}
	return out
}

// PersonalDetails validates the personal step.
func PersonalDetails(pd types.PersonalDetails) error {
	form := personalDetailsForm{
		FullName:            pd.FullName,
		Email:               pd.Email,
		Phone:               pd.Phone,
		Location:            pd.Location,
		LinkedIn:            pd.LinkedIn,
		ProfessionalSummary: pd.ProfessionalSummary,
	}
	return stepError(structErrors(form, ""))
}

// IndustryLevel validates the industry step: both selections are required.
func IndustryLevel(industry types.Industry, level types.JobLevel) error {
	var errs []FieldError
	if industry == "" {
		errs = append(errs, FieldError{Field: "Industry", Message: "Please select an industry"})
	}
	if level == "" {
		errs = append(errs, FieldError{Field: "JobLevel", Message: "Please select a job level"})
	}
	return stepError(errs)
}

// WorkExperience validates the experience step: 1-5 entries, each complete.
func WorkExperience(entries []types.WorkExperience) error {
	var errs []FieldError
	if len(entries) == 0 {
		errs = append(errs, FieldError{Field: "WorkExperience", Message: "Add at least one work experience"})
	}
	if len(entries) > MaxWorkExperiences {
		errs = append(errs, FieldError{Field: "WorkExperience", Message: fmt.Sprintf("Maximum %d work experiences allowed", MaxWorkExperiences)})
	}
	for i, exp := range entries {
		form := workExperienceForm{
			Company:          exp.Company,
			Title:            exp.Title,
			StartDate:        exp.StartDate,
			Responsibilities: exp.Responsibilities,
		}
		errs = append(errs, structErrors(form, fmt.Sprintf("work_experience[%d].", i))...)
	}
	return stepError(errs)
}

// Education validates the education step: 1-3 entries, each complete.
func Education(entries []types.Education) error {
	var errs []FieldError
	if len(entries) == 0 {
		errs = append(errs, FieldError{Field: "Education", Message: "Add at least one education entry"})
	}
	if len(entries) > MaxEducation {
		errs = append(errs, FieldError{Field: "Education", Message: fmt.Sprintf("Maximum %d education entries allowed", MaxEducation)})
	}
	for i, edu := range entries {
		form := educationForm{
			Institution:  edu.Institution,
			Degree:       edu.Degree,
			FieldOfStudy: edu.FieldOfStudy,
			StartDate:    edu.StartDate,
		}
		errs = append(errs, structErrors(form, fmt.Sprintf("education[%d].", i))...)
	}
	return stepError(errs)
}

// Skills validates the skills step: at least three skills, no duplicates
// (comparison is case-sensitive), none blank.
func Skills(skills []string) error {
	var errs []FieldError
	if len(skills) < MinSkills {
		errs = append(errs, FieldError{Field: "Skills", Message: fmt.Sprintf("Please add at least %d skills", MinSkills)})
	}
	seen := make(map[string]bool, len(skills))
	for i, skill := range skills {
		if skill == "" {
			errs = append(errs, FieldError{Field: fmt.Sprintf("skills[%d]", i), Message: "Skill must not be empty"})
			continue
		}
		if seen[skill] {
			errs = append(errs, FieldError{Field: fmt.Sprintf("skills[%d]", i), Message: fmt.Sprintf("Duplicate skill %q", skill)})
		}
		seen[skill] = true
	}
	return stepError(errs)
}

// Optional validates the optional-sections step. Empty sections are fine;
// present entries must be complete.
func Optional(certs []types.Certification, langs []types.Language, projects []types.Project) error {
	var errs []FieldError
	for i, cert := range certs {
		form := certificationForm{Name: cert.Name, Issuer: cert.Issuer}
		errs = append(errs, structErrors(form, fmt.Sprintf("certifications[%d].", i))...)
	}
	for i, lang := range langs {
		if lang.Name == "" {
			errs = append(errs, FieldError{Field: fmt.Sprintf("languages[%d].Name", i), Message: "Language name is required"})
		}
		if !lang.Proficiency.Valid() {
			errs = append(errs, FieldError{Field: fmt.Sprintf("languages[%d].Proficiency", i), Message: "Select a proficiency level"})
		}
	}
	for i, project := range projects {
		form := projectForm{Name: project.Name, Description: project.Description, URL: project.URL}
		errs = append(errs, structErrors(form, fmt.Sprintf("projects[%d].", i))...)
	}
	return stepError(errs)
}

// Template validates the template step: the selection must name a
// registered template.
func Template(id types.TemplateID) error {
	if !id.Valid() {
		return stepError([]FieldError{{Field: "SelectedTemplate", Message: "Select a template"}})
	}
	return nil
}

// Step validates the slice of the draft owned by the given wizard step.
// Steps without rules (preview) always pass.
func Step(step wizard.Step, draft *types.ResumeDraft) error {
	switch step {
	case wizard.StepPersonal:
		return PersonalDetails(draft.PersonalDetails)
	case wizard.StepIndustry:
		return IndustryLevel(draft.Industry, draft.JobLevel)
	case wizard.StepExperience:
		return WorkExperience(draft.WorkExperience)
	case wizard.StepEducation:
		return Education(draft.Education)
	case wizard.StepSkills:
		return Skills(draft.Skills)
	case wizard.StepOptional:
		return Optional(draft.Certifications, draft.Languages, draft.Projects)
	case wizard.StepTemplate:
		return Template(draft.SelectedTemplate)
	default:
		return nil
	}
}
