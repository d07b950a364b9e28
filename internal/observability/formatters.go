// Package observability provides formatted terminal output for the wizard.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-wizard/internal/catalog"
	"github.com/jonathan/resume-wizard/internal/types"
	"github.com/jonathan/resume-wizard/internal/validation"
	"github.com/jonathan/resume-wizard/internal/wizard"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintStepHeader outputs a boxed header for the current wizard step with a
// progress line underneath.
func (p *Printer) PrintStepHeader(w *wizard.Wizard) {
	info := wizard.StepCatalog[w.Current()]
	position := 0
	for i, step := range wizard.Steps {
		if step == w.Current() {
			position = i + 1
			break
		}
	}

	var sb strings.Builder
	sb.WriteString(info.Description)
	sb.WriteString("\n\n")
	sb.WriteString(progressBar(w.CompletedCount(), len(wizard.Steps)))

	title := fmt.Sprintf("STEP %d/%d: %s", position, len(wizard.Steps), strings.ToUpper(info.Title))
	p.printBox(title, sb.String())
}

// progressBar renders completed steps as filled blocks.
func progressBar(completed, total int) string {
	var sb strings.Builder
	for i := 0; i < total; i++ {
		if i < completed {
			sb.WriteString("█")
		} else {
			sb.WriteString("░")
		}
	}
	sb.WriteString(fmt.Sprintf("  %d/%d complete", completed, total))
	return sb.String()
}

// PrintDraftSummary outputs a human-readable summary of the draft.
func (p *Printer) PrintDraftSummary(draft *types.ResumeDraft) {
	if draft == nil {
		return
	}

	var sb strings.Builder

	name := draft.PersonalDetails.FullName
	if name == "" {
		name = "(not set)"
	}
	sb.WriteString(fmt.Sprintf("Name:      %s\n", name))
	if draft.PersonalDetails.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:     %s\n", draft.PersonalDetails.Email))
	}
	if draft.Industry != "" {
		sb.WriteString(fmt.Sprintf("Industry:  %s\n", draft.Industry))
	}
	if draft.JobLevel != "" {
		sb.WriteString(fmt.Sprintf("Level:     %s\n", draft.JobLevel))
	}
	sb.WriteString(fmt.Sprintf("Template:  %s\n", draft.SelectedTemplate))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Experience entries:  %d\n", len(draft.WorkExperience)))
	count := min(len(draft.WorkExperience), maxItemsToShow)
	for i := 0; i < count; i++ {
		exp := draft.WorkExperience[i]
		marker := " "
		if len(draft.AIBullets[exp.ID]) > 0 {
			marker = "*"
		}
		sb.WriteString(fmt.Sprintf("  %s %s at %s\n", marker, exp.Title, exp.Company))
	}
	if len(draft.WorkExperience) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(draft.WorkExperience)-maxItemsToShow))
	}
	sb.WriteString(fmt.Sprintf("Education entries:   %d\n", len(draft.Education)))
	sb.WriteString(fmt.Sprintf("Skills:              %d\n", len(draft.Skills)))
	if len(draft.Certifications) > 0 {
		sb.WriteString(fmt.Sprintf("Certifications:      %d\n", len(draft.Certifications)))
	}
	if len(draft.Languages) > 0 {
		sb.WriteString(fmt.Sprintf("Languages:           %d\n", len(draft.Languages)))
	}
	if len(draft.Projects) > 0 {
		sb.WriteString(fmt.Sprintf("Projects:            %d\n", len(draft.Projects)))
	}
	if draft.AISummary != "" {
		sb.WriteString("\nGenerated summary: yes")
	}

	p.printBox("RESUME DRAFT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBullets outputs generated bullet points for one experience.
func (p *Printer) PrintBullets(exp *types.WorkExperience, bullets []string) {
	if exp == nil || len(bullets) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s at %s\n\n", exp.Title, exp.Company))
	for _, bullet := range bullets {
		text := bullet
		if len(text) > 50 {
			text = text[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", text))
	}

	p.printBox("GENERATED BULLETS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummaryText outputs a generated professional summary.
func (p *Printer) PrintSummaryText(summary string) {
	if summary == "" {
		return
	}
	p.printBox("GENERATED SUMMARY", summary)
}

// PrintTemplateCatalog lists the selectable templates with their metadata.
func (p *Printer) PrintTemplateCatalog(selected types.TemplateID) {
	var sb strings.Builder
	for i, tmpl := range catalog.Templates {
		marker := " "
		if tmpl.ID == selected {
			marker = ">"
		}
		sb.WriteString(fmt.Sprintf("%s %d. %s\n", marker, i+1, tmpl.Name))
		sb.WriteString(fmt.Sprintf("    %s\n", tmpl.Description))
		sb.WriteString(fmt.Sprintf("    Best for: %s\n", strings.Join(tmpl.BestFor, ", ")))
		if i < len(catalog.Templates)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("TEMPLATES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidationErrors outputs field errors for the current step.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidationErrors(err *validation.StepError) {
	if err == nil || len(err.Errors) == 0 {
		return
	}
	fmt.Fprintln(p.out, "Please fix the following before continuing:")
	for _, fieldErr := range err.Errors {
		fmt.Fprintf(p.out, "  ✗ %s: %s\n", fieldErr.Field, fieldErr.Message)
	}
}
