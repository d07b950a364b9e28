package export

import (
	"bytes"
	"context"
	"fmt"

	"baliance.com/gooxml/document"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/schema/soo/wml"

	"github.com/jonathan/resume-wizard/internal/render"
	"github.com/jonathan/resume-wizard/internal/types"
)

// DOCXSerializer writes the resume as a Word document. Unlike the PDF path
// it needs no external process, so the end-to-end export tests run against
// it. Templates only affect HTML output; the DOCX layout is fixed.
type DOCXSerializer struct{}

func NewDOCXSerializer() *DOCXSerializer {
	return &DOCXSerializer{}
}

func (s *DOCXSerializer) Extension() string {
	return "docx"
}

func (s *DOCXSerializer) Serialize(_ context.Context, draft *types.ResumeDraft, id types.TemplateID) ([]byte, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("unknown template id %q", id)
	}
	view := render.DocumentView(draft)

	doc := document.New()
	writeHeader(doc, view)
	writeSection(doc, "Professional Summary", func() {
		addBody(doc, view.Summary)
	}, view.Summary != "")
	writeSection(doc, "Experience", func() {
		for _, exp := range view.Experience {
			heading := doc.AddParagraph()
			run := heading.AddRun()
			run.Properties().SetBold(true)
			run.AddText(exp.Title)
			if exp.Company != "" {
				heading.AddRun().AddText(" | " + exp.Company)
			}
			if exp.Dates != "" {
				addBody(doc, exp.Dates)
			}
			for _, bullet := range exp.Bullets {
				addBody(doc, "• "+bullet)
			}
		}
	}, len(view.Experience) > 0)
	writeSection(doc, "Education", func() {
		for _, edu := range view.Education {
			run := doc.AddParagraph().AddRun()
			run.Properties().SetBold(true)
			run.AddText(edu.Degree)
			addBody(doc, edu.Institution)
			if edu.Dates != "" {
				addBody(doc, edu.Dates)
			}
			if edu.Honors != "" {
				addBody(doc, edu.Honors)
			}
			if edu.GPA != "" {
				addBody(doc, "GPA: "+edu.GPA)
			}
		}
	}, len(view.Education) > 0)
	writeSection(doc, "Skills", func() {
		addBody(doc, view.SkillsLine())
	}, len(view.Skills) > 0)
	writeSection(doc, "Certifications", func() {
		for _, cert := range view.Certifications {
			addBody(doc, cert)
		}
	}, len(view.Certifications) > 0)
	writeSection(doc, "Languages", func() {
		for _, lang := range view.Languages {
			addBody(doc, lang)
		}
	}, len(view.Languages) > 0)
	writeSection(doc, "Projects", func() {
		for _, project := range view.Projects {
			run := doc.AddParagraph().AddRun()
			run.Properties().SetBold(true)
			run.AddText(project.Name)
			addBody(doc, project.Description)
			if project.URL != "" {
				addBody(doc, project.URL)
			}
		}
	}, len(view.Projects) > 0)

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeader(doc *document.Document, view render.ResumeView) {
	name := doc.AddParagraph()
	name.Properties().SetAlignment(wml.ST_JcCenter)
	run := name.AddRun()
	run.Properties().SetBold(true)
	run.Properties().SetSize(18 * measurement.Point)
	run.AddText(view.Name)

	if view.Title != "" {
		headline := doc.AddParagraph()
		headline.Properties().SetAlignment(wml.ST_JcCenter)
		headline.AddRun().AddText(view.Title)
	}

	contact := doc.AddParagraph()
	contact.Properties().SetAlignment(wml.ST_JcCenter)
	line := view.ContactLine()
	if view.LinkedIn != "" {
		line += " | " + view.LinkedIn
	}
	contact.AddRun().AddText(line)
}

// writeSection emits a bold section heading followed by the body, or nothing
// when the section is empty.
func writeSection(doc *document.Document, title string, body func(), present bool) {
	if !present {
		return
	}
	heading := doc.AddParagraph()
	run := heading.AddRun()
	run.Properties().SetBold(true)
	run.Properties().SetSize(12 * measurement.Point)
	run.AddText(title)
	body()
}

func addBody(doc *document.Document, text string) {
	doc.AddParagraph().AddRun().AddText(text)
}
