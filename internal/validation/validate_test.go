package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-wizard/internal/types"
	"github.com/jonathan/resume-wizard/internal/wizard"
)

func validDetails() types.PersonalDetails {
	return types.PersonalDetails{
		FullName: "John Doe",
		Email:    "john@example.com",
		Phone:    "555-123-4567",
		Location: "NYC",
	}
}

func TestPersonalDetails_Valid(t *testing.T) {
	assert.NoError(t, PersonalDetails(validDetails()))
}

func TestPersonalDetails_FieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*types.PersonalDetails)
		field   string
		message string
	}{
		{"short name", func(pd *types.PersonalDetails) { pd.FullName = "J" }, "FullName", "Name must be at least 2 characters"},
		{"bad email", func(pd *types.PersonalDetails) { pd.Email = "not-an-email" }, "Email", "Invalid email address"},
		{"short phone", func(pd *types.PersonalDetails) { pd.Phone = "555" }, "Phone", "Phone number must be at least 10 characters"},
		{"missing location", func(pd *types.PersonalDetails) { pd.Location = "" }, "Location", "Location is required"},
		{"bad linkedin", func(pd *types.PersonalDetails) { pd.LinkedIn = "not a url" }, "LinkedIn", "Invalid LinkedIn URL"},
		{"long summary", func(pd *types.PersonalDetails) { pd.ProfessionalSummary = strings.Repeat("x", 501) }, "ProfessionalSummary", "Summary must be under 500 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pd := validDetails()
			tt.mutate(&pd)
			err := PersonalDetails(pd)
			var stepErr *StepError
			require.ErrorAs(t, err, &stepErr)
			assert.Equal(t, tt.message, stepErr.ByField(tt.field))
		})
	}
}

func TestPersonalDetails_OptionalFieldsMayBeEmpty(t *testing.T) {
	pd := validDetails()
	pd.LinkedIn = ""
	pd.ProfessionalSummary = ""
	assert.NoError(t, PersonalDetails(pd))
}

func TestIndustryLevel(t *testing.T) {
	assert.NoError(t, IndustryLevel(types.IndustryTechnology, types.LevelMid))

	err := IndustryLevel("", "")
	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Len(t, stepErr.Errors, 2)
}

func TestWorkExperience_Bounds(t *testing.T) {
	assert.Error(t, WorkExperience(nil), "empty list must fail")

	entries := make([]types.WorkExperience, 6)
	for i := range entries {
		entries[i] = types.WorkExperience{
			Company:          "Acme",
			Title:            "Engineer",
			StartDate:        "2020-01",
			Responsibilities: "Did many useful things",
		}
	}
	err := WorkExperience(entries)
	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Contains(t, stepErr.ByField("WorkExperience"), "Maximum 5")

	assert.NoError(t, WorkExperience(entries[:5]))
}

func TestWorkExperience_EntryErrorsCarryPosition(t *testing.T) {
	entries := []types.WorkExperience{
		{Company: "Acme", Title: "Engineer", StartDate: "2020-01", Responsibilities: "Did many useful things"},
		{Company: "", Title: "Engineer", StartDate: "2021-01", Responsibilities: "short"},
	}
	err := WorkExperience(entries)
	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, "Company name is required", stepErr.ByField("work_experience[1].Company"))
	assert.Contains(t, stepErr.ByField("work_experience[1].Responsibilities"), "at least 10 characters")
}

func TestEducation_Bounds(t *testing.T) {
	assert.Error(t, Education(nil))

	entry := types.Education{Institution: "State U", Degree: "BSc", FieldOfStudy: "CS", StartDate: "2012-09"}
	assert.NoError(t, Education([]types.Education{entry}))

	four := []types.Education{entry, entry, entry, entry}
	err := Education(four)
	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Contains(t, stepErr.ByField("Education"), "Maximum 3")
}

func TestSkills_MinimumThree(t *testing.T) {
	assert.Error(t, Skills([]string{"a", "b"}))
	assert.NoError(t, Skills([]string{"a", "b", "c"}))
}

func TestSkills_UniquenessIsCaseSensitive(t *testing.T) {
	// Same word in a different case is a distinct skill.
	assert.NoError(t, Skills([]string{"Go", "go", "SQL"}))

	err := Skills([]string{"Go", "Go", "SQL"})
	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Contains(t, stepErr.ByField("skills[1]"), "Duplicate")
}

func TestOptional_EmptySectionsPass(t *testing.T) {
	assert.NoError(t, Optional(nil, nil, nil))
}

func TestOptional_EntryRules(t *testing.T) {
	err := Optional(
		[]types.Certification{{Name: "", Issuer: ""}},
		[]types.Language{{Name: "Spanish", Proficiency: "Fluent"}},
		[]types.Project{{Name: "Thing", Description: "short", URL: "not a url"}},
	)
	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, "Name is required", stepErr.ByField("certifications[0].Name"))
	assert.Equal(t, "Issuer is required", stepErr.ByField("certifications[0].Issuer"))
	assert.Equal(t, "Select a proficiency level", stepErr.ByField("languages[0].Proficiency"))
	assert.Contains(t, stepErr.ByField("projects[0].Description"), "at least 10 characters")
	assert.Equal(t, "Invalid URL", stepErr.ByField("projects[0].URL"))
}

func TestTemplate(t *testing.T) {
	assert.NoError(t, Template(types.TemplateClassic))
	assert.Error(t, Template(types.TemplateID("sparkly")))
}

func TestStep_DispatchesPerStep(t *testing.T) {
	draft := types.NewDraft()
	draft.PersonalDetails = validDetails()
	draft.Industry = types.IndustryTechnology
	draft.JobLevel = types.LevelSenior
	draft.WorkExperience = []types.WorkExperience{{
		Company: "Acme", Title: "Engineer", StartDate: "2020-01",
		Responsibilities: "Did many useful things",
	}}
	draft.Education = []types.Education{{
		Institution: "State U", Degree: "BSc", FieldOfStudy: "CS", StartDate: "2012-09",
	}}
	draft.Skills = []string{"Go", "SQL", "Docker"}

	for _, step := range wizard.Steps {
		assert.NoError(t, Step(step, draft), "step %s", step)
	}

	draft.Skills = draft.Skills[:2]
	assert.Error(t, Step(wizard.StepSkills, draft))
	assert.NoError(t, Step(wizard.StepPreview, draft), "preview has no rules")
}
