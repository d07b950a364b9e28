package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-wizard/internal/types"
	"github.com/jonathan/resume-wizard/internal/validation"
	"github.com/jonathan/resume-wizard/internal/wizard"
)

func TestPrintStepHeader(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	w := wizard.New()
	w.MarkStepComplete(wizard.StepPersonal)
	w.NextStep()

	p.PrintStepHeader(w)
	output := buf.String()

	assert.Contains(t, output, "STEP 2/8: INDUSTRY & LEVEL")
	assert.Contains(t, output, "Select your industry and job level")
	assert.Contains(t, output, "1/8 complete")
}

func TestProgressBar(t *testing.T) {
	bar := progressBar(3, 8)
	assert.Equal(t, 3, strings.Count(bar, "█"))
	assert.Equal(t, 5, strings.Count(bar, "░"))
	assert.Contains(t, bar, "3/8 complete")
}

func TestPrintDraftSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	draft := types.NewDraft()
	draft.PersonalDetails.FullName = "John Doe"
	draft.PersonalDetails.Email = "john@example.com"
	draft.Industry = types.IndustryTechnology
	draft.JobLevel = types.LevelSenior
	draft.WorkExperience = []types.WorkExperience{
		{ID: "exp-1", Company: "Acme", Title: "Engineer"},
	}
	draft.AIBullets["exp-1"] = []string{"Shipped it"}
	draft.Skills = []string{"Go", "SQL", "Docker"}

	p.PrintDraftSummary(draft)
	output := buf.String()

	assert.Contains(t, output, "RESUME DRAFT")
	assert.Contains(t, output, "John Doe")
	assert.Contains(t, output, "Technology")
	assert.Contains(t, output, "* Engineer at Acme")
	assert.Contains(t, output, "Skills:              3")
}

func TestPrintDraftSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDraftSummary(nil)
	assert.Empty(t, buf.String())
}

func TestPrintBullets(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	exp := &types.WorkExperience{ID: "exp-1", Company: "Acme", Title: "Engineer"}
	p.PrintBullets(exp, []string{"Shipped the billing system", "Cut deploy time in half"})
	output := buf.String()

	assert.Contains(t, output, "GENERATED BULLETS")
	assert.Contains(t, output, "Engineer at Acme")
	assert.Contains(t, output, "• Shipped the billing system")
}

func TestPrintBullets_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBullets(&types.WorkExperience{}, nil)
	assert.Empty(t, buf.String())
}

func TestPrintTemplateCatalog(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTemplateCatalog(types.TemplateModern)
	output := buf.String()

	assert.Contains(t, output, "TEMPLATES")
	assert.Contains(t, output, "> 2. Modern")
	assert.Contains(t, output, "  1. Classic")
}

func TestPrintValidationErrors(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	err := &validation.StepError{Errors: []validation.FieldError{
		{Field: "full_name", Message: "Name must be at least 2 characters"},
		{Field: "email", Message: "Please enter a valid email address"},
	}}

	p.PrintValidationErrors(err)
	output := buf.String()

	assert.Contains(t, output, "full_name: Name must be at least 2 characters")
	assert.Contains(t, output, "email: Please enter a valid email address")
}

func TestPrintValidationErrors_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintValidationErrors(nil)
	assert.Empty(t, buf.String())
}
