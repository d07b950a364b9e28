// Package render maps a resume draft onto visual templates. Every template
// registers a pair of pure rendering functions over the same data contract:
// a screen preview that clips long content, and a print document that shows
// everything. Adding a template means registering a new pair under a new id;
// no other component changes.
package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/resume-wizard/internal/types"
)

// Preview clip limits. The document variant is unbounded.
const (
	previewMaxExperiences = 2
	previewMaxBullets     = 3
	previewMaxSkills      = 10
)

// UnknownTemplateError reports a template id with no registered pair.
type UnknownTemplateError struct {
	ID types.TemplateID
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("no template registered under id %q", e.ID)
}

// pair holds the two parsed templates for one id.
type pair struct {
	preview  *template.Template
	document *template.Template
}

// registry maps template ids to their rendering pairs. Populated at init by
// the per-template files.
var registry = map[types.TemplateID]pair{}

// register parses and installs a template pair. The same markup serves both
// variants; clipping happens in the view model.
func register(id types.TemplateID, markup string) {
	tmpl := template.Must(template.New(string(id)).Parse(markup))
	registry[id] = pair{preview: tmpl, document: tmpl}
}

// Preview renders the screen-preview variant: at most two experience
// entries with three bullets each and ten skills.
func Preview(id types.TemplateID, draft *types.ResumeDraft) (string, error) {
	return render(id, draft, viewOptions{
		maxExperiences: previewMaxExperiences,
		maxBullets:     previewMaxBullets,
		maxSkills:      previewMaxSkills,
	}, false)
}

// Document renders the print-ready variant with no clipping, as a complete
// HTML page sized for a fixed single page.
func Document(id types.TemplateID, draft *types.ResumeDraft) (string, error) {
	return render(id, draft, viewOptions{}, true)
}

func render(id types.TemplateID, draft *types.ResumeDraft, opts viewOptions, page bool) (string, error) {
	p, ok := registry[id]
	if !ok {
		return "", &UnknownTemplateError{ID: id}
	}

	view := buildView(draft, opts)

	var body strings.Builder
	if err := p.document.Execute(&body, view); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", id, err)
	}

	if !page {
		return body.String(), nil
	}
	return wrapPage(body.String()), nil
}

// wrapPage wraps rendered markup in a minimal document shell with fixed A4
// page geometry for the print renderer.
func wrapPage(body string) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<style>\n")
	sb.WriteString("@page { size: A4; margin: 0; }\n")
	sb.WriteString("html, body { margin: 0; padding: 0; }\n")
	sb.WriteString(".page { width: 210mm; min-height: 297mm; padding: 14mm 16mm; box-sizing: border-box; }\n")
	sb.WriteString("</style>\n</head>\n<body>\n<div class=\"page\">\n")
	sb.WriteString(body)
	sb.WriteString("\n</div>\n</body>\n</html>\n")
	return sb.String()
}
