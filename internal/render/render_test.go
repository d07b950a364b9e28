package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-wizard/internal/types"
)

// fullDraft builds a draft exercising every section.
func fullDraft() *types.ResumeDraft {
	draft := types.NewDraft()
	draft.PersonalDetails = types.PersonalDetails{
		FullName:            "John Doe",
		Title:               "Staff Engineer",
		Email:               "john@example.com",
		Phone:               "555-123-4567",
		Location:            "NYC",
		LinkedIn:            "https://linkedin.com/in/johndoe",
		ProfessionalSummary: "Engineer who ships.",
	}
	draft.Industry = types.IndustryTechnology
	draft.JobLevel = types.LevelSenior
	for i := 0; i < 3; i++ {
		exp := types.WorkExperience{
			ID:               fmt.Sprintf("exp-%d", i),
			Company:          fmt.Sprintf("Company %d", i),
			Title:            fmt.Sprintf("Title %d", i),
			StartDate:        "2020-01",
			EndDate:          "2022-01",
			Responsibilities: "Did many useful things",
		}
		draft.WorkExperience = append(draft.WorkExperience, exp)
		draft.AIBullets[exp.ID] = []string{"bullet one", "bullet two", "bullet three", "bullet four"}
	}
	draft.Education = []types.Education{{
		ID: "edu-1", Institution: "State U", Degree: "BSc", FieldOfStudy: "CS",
		StartDate: "2012-09", EndDate: "2016-06", Honors: "magna cum laude", GPA: "3.8",
	}}
	draft.Skills = []string{"Go", "SQL", "Docker", "Kubernetes", "Terraform", "AWS", "Redis", "Kafka", "Postgres", "gRPC", "GraphQL", "React"}
	draft.Certifications = []types.Certification{{ID: "c1", Name: "CKA", Issuer: "CNCF", Date: "2024-06"}}
	draft.Languages = []types.Language{{ID: "l1", Name: "Spanish", Proficiency: types.ProficiencyProfessional}}
	draft.Projects = []types.Project{{ID: "p1", Name: "resume-wizard", Description: "A resume wizard written in Go", URL: "https://example.com"}}
	return draft
}

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestRegistry_CoversEveryTemplateID(t *testing.T) {
	draft := fullDraft()
	for _, id := range types.TemplateIDs {
		preview, err := Preview(id, draft)
		require.NoError(t, err, "preview %s", id)
		assert.NotEmpty(t, preview)

		document, err := Document(id, draft)
		require.NoError(t, err, "document %s", id)
		assert.Contains(t, document, "<!DOCTYPE html>")
	}
}

func TestUnknownTemplate(t *testing.T) {
	_, err := Preview(types.TemplateID("sparkly"), fullDraft())
	var unknownErr *UnknownTemplateError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, types.TemplateID("sparkly"), unknownErr.ID)
}

func TestRendering_IsDeterministicAndPure(t *testing.T) {
	draft := fullDraft()
	before := draft.Clone()

	first, err := Document(types.TemplateModern, draft)
	require.NoError(t, err)
	second, err := Document(types.TemplateModern, draft)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, before, draft, "rendering must not mutate the draft")
}

func TestPreview_ClipsExperienceBulletsAndSkills(t *testing.T) {
	draft := fullDraft()
	preview, err := Preview(types.TemplateModern, draft)
	require.NoError(t, err)
	doc := parseHTML(t, preview)

	assert.Equal(t, 2, doc.Find("section.experience .entry").Length())
	assert.Equal(t, 3, doc.Find("section.experience .entry").First().Find("li").Length())

	skills := doc.Find("section.skills p").Text()
	assert.Contains(t, skills, "gRPC")
	assert.NotContains(t, skills, "GraphQL", "preview keeps only the first ten skills")
}

func TestDocument_IsUnbounded(t *testing.T) {
	draft := fullDraft()
	document, err := Document(types.TemplateModern, draft)
	require.NoError(t, err)
	doc := parseHTML(t, document)

	assert.Equal(t, 3, doc.Find("section.experience .entry").Length())
	assert.Equal(t, 4, doc.Find("section.experience .entry").First().Find("li").Length())
	assert.Contains(t, doc.Find("section.skills p").Text(), "React")
}

func TestEmptySectionsAreOmitted(t *testing.T) {
	draft := types.NewDraft()
	draft.PersonalDetails.FullName = "Jane Doe"
	draft.PersonalDetails.Email = "jane@example.com"

	for _, id := range types.TemplateIDs {
		t.Run(string(id), func(t *testing.T) {
			html, err := Document(id, draft)
			require.NoError(t, err)
			doc := parseHTML(t, html)

			for _, section := range []string{"summary", "experience", "education", "skills", "certifications", "languages", "projects"} {
				assert.Zero(t, doc.Find("section."+section).Length(),
					"empty %s section must not render a heading", section)
			}
			assert.Contains(t, doc.Text(), "Jane Doe")
		})
	}
}

func TestConditionalFields(t *testing.T) {
	draft := fullDraft()
	draft.PersonalDetails.LinkedIn = ""
	draft.Education[0].Honors = ""
	draft.Education[0].GPA = ""

	html, err := Document(types.TemplateClassic, draft)
	require.NoError(t, err)
	assert.NotContains(t, html, "linkedin.com")
	assert.NotContains(t, html, "GPA:")
	assert.NotContains(t, html, "magna cum laude")
}

func TestCurrentRole_AlwaysShowsPresent(t *testing.T) {
	draft := fullDraft()
	// End date present AND current role: Present wins.
	draft.WorkExperience[0].IsCurrentRole = true
	draft.WorkExperience[0].EndDate = "2022-01"

	html, err := Document(types.TemplateExecutive, draft)
	require.NoError(t, err)
	doc := parseHTML(t, html)

	dates := doc.Find("section.experience .entry").First().Find(".dates").Text()
	assert.Contains(t, dates, "Present")
	assert.NotContains(t, dates, "2022-01")
}

func TestAIBulletsPreferredOverRawBullets(t *testing.T) {
	draft := fullDraft()
	draft.WorkExperience[0].Bullets = []string{"raw user bullet"}

	html, err := Document(types.TemplateModern, draft)
	require.NoError(t, err)
	assert.NotContains(t, html, "raw user bullet")

	delete(draft.AIBullets, draft.WorkExperience[0].ID)
	html, err = Document(types.TemplateModern, draft)
	require.NoError(t, err)
	assert.Contains(t, html, "raw user bullet")
}

func TestRendering_EscapesHTML(t *testing.T) {
	draft := fullDraft()
	draft.PersonalDetails.FullName = `John <script>alert("x")</script> Doe`

	html, err := Document(types.TemplateModern, draft)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert")
}

func TestTwoColumnTemplates_PlaceSkillsInSidebar(t *testing.T) {
	draft := fullDraft()
	for _, id := range []types.TemplateID{types.TemplateCompact, types.TemplateCanva} {
		html, err := Document(id, draft)
		require.NoError(t, err)
		doc := parseHTML(t, html)
		assert.Equal(t, 1, doc.Find(".sidebar section.skills").Length(), "template %s", id)
	}
}

func TestDateRange(t *testing.T) {
	tests := []struct {
		start, end string
		current    bool
		want       string
	}{
		{"2020-01", "2022-01", false, "2020-01 - 2022-01"},
		{"2020-01", "", false, "2020-01"},
		{"2020-01", "", true, "2020-01 - Present"},
		{"2020-01", "2022-01", true, "2020-01 - Present"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, dateRange(tt.start, tt.end, tt.current))
	}
}
