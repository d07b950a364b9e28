package render

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-wizard/internal/types"
)

// presentLabel replaces the end date while a role is current. It always wins
// over a lingering end date value.
const presentLabel = "Present"

// viewOptions controls clipping. Zero values mean unbounded.
type viewOptions struct {
	maxExperiences int
	maxBullets     int
	maxSkills      int
}

// ExperienceView is one position, dates already formatted.
type ExperienceView struct {
	Title   string
	Company string
	Dates   string
	Bullets []string
}

// EducationView is one credential, dates already formatted.
type EducationView struct {
	Degree      string
	Institution string
	Dates       string
	Honors      string
	GPA         string
}

// ProjectView is one project.
type ProjectView struct {
	Name        string
	Description string
	URL         string
}

// ResumeView is the data contract every template consumes. Sections with no
// entries are empty slices, which the templates omit entirely.
type ResumeView struct {
	Name     string
	Title    string
	Email    string
	Phone    string
	Location string
	LinkedIn string
	Summary  string

	Experience     []ExperienceView
	Education      []EducationView
	Skills         []string
	Certifications []string
	Languages      []string
	Projects       []ProjectView
}

// ContactLine joins the always-present contact fields for single-line
// headers.
func (v ResumeView) ContactLine() string {
	parts := []string{}
	for _, part := range []string{v.Email, v.Phone, v.Location} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " | ")
}

// SkillsLine joins skills for templates that render them as one line.
func (v ResumeView) SkillsLine() string {
	return strings.Join(v.Skills, ", ")
}

// DocumentView returns the unclipped view model for a draft. Serializers
// that do not go through HTML consume the same contract the templates do.
func DocumentView(draft *types.ResumeDraft) ResumeView {
	return buildView(draft, viewOptions{})
}

// buildView maps a draft onto the shared template contract, applying the
// variant's clip limits.
func buildView(draft *types.ResumeDraft, opts viewOptions) ResumeView {
	view := ResumeView{
		Name:     draft.PersonalDetails.FullName,
		Title:    draft.PersonalDetails.Title,
		Email:    draft.PersonalDetails.Email,
		Phone:    draft.PersonalDetails.Phone,
		Location: draft.PersonalDetails.Location,
		LinkedIn: draft.PersonalDetails.LinkedIn,
		Summary:  summaryFor(draft),
	}

	experiences := draft.WorkExperience
	if opts.maxExperiences > 0 && len(experiences) > opts.maxExperiences {
		experiences = experiences[:opts.maxExperiences]
	}
	for _, exp := range experiences {
		bullets := bulletsFor(draft, exp)
		if opts.maxBullets > 0 && len(bullets) > opts.maxBullets {
			bullets = bullets[:opts.maxBullets]
		}
		view.Experience = append(view.Experience, ExperienceView{
			Title:   exp.Title,
			Company: exp.Company,
			Dates:   dateRange(exp.StartDate, exp.EndDate, exp.IsCurrentRole),
			Bullets: bullets,
		})
	}

	for _, edu := range draft.Education {
		view.Education = append(view.Education, EducationView{
			Degree:      degreeLine(edu),
			Institution: edu.Institution,
			Dates:       dateRange(edu.StartDate, edu.EndDate, false),
			Honors:      edu.Honors,
			GPA:         edu.GPA,
		})
	}

	view.Skills = draft.Skills
	if opts.maxSkills > 0 && len(view.Skills) > opts.maxSkills {
		view.Skills = view.Skills[:opts.maxSkills]
	}

	for _, cert := range draft.Certifications {
		line := fmt.Sprintf("%s - %s", cert.Name, cert.Issuer)
		if cert.Date != "" {
			line = fmt.Sprintf("%s (%s)", line, cert.Date)
		}
		view.Certifications = append(view.Certifications, line)
	}

	for _, lang := range draft.Languages {
		view.Languages = append(view.Languages, fmt.Sprintf("%s (%s)", lang.Name, lang.Proficiency))
	}

	for _, project := range draft.Projects {
		view.Projects = append(view.Projects, ProjectView{
			Name:        project.Name,
			Description: project.Description,
			URL:         project.URL,
		})
	}

	return view
}

// summaryFor prefers the generated summary; the user-authored one is the
// fallback.
func summaryFor(draft *types.ResumeDraft) string {
	if draft.AISummary != "" {
		return draft.AISummary
	}
	return draft.PersonalDetails.ProfessionalSummary
}

// bulletsFor returns the generated bullets for an experience, falling back
// to any user-authored bullets on the entry.
func bulletsFor(draft *types.ResumeDraft, exp types.WorkExperience) []string {
	if bullets := draft.AIBullets[exp.ID]; len(bullets) > 0 {
		return bullets
	}
	return exp.Bullets
}

// dateRange formats "start - end". A current role always shows the Present
// label regardless of any end date value.
func dateRange(start, end string, current bool) string {
	if current {
		end = presentLabel
	}
	if end == "" {
		return start
	}
	return fmt.Sprintf("%s - %s", start, end)
}

// degreeLine formats "Degree in Field", tolerating a missing field of study.
func degreeLine(edu types.Education) string {
	if edu.FieldOfStudy == "" {
		return edu.Degree
	}
	return fmt.Sprintf("%s in %s", edu.Degree, edu.FieldOfStudy)
}
