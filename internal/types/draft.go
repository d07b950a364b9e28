package types

// AIContent holds the side content produced by the generation gateway.
// Bullets are keyed by the owning WorkExperience id; the mapping entry is
// removed together with the experience.
type AIContent struct {
	Bullets map[string][]string `json:"bullets"`
	Summary string              `json:"summary,omitempty"`
}

// ResumeDraft is the aggregate of all resume data plus AI-generated side
// content. It is the unit of persistence: one draft exists per process,
// hydrated at startup and saved after every mutation.
type ResumeDraft struct {
	PersonalDetails  PersonalDetails     `json:"personal_details"`
	Industry         Industry            `json:"industry,omitempty"`
	JobLevel         JobLevel            `json:"job_level,omitempty"`
	WorkExperience   []WorkExperience    `json:"work_experience"`
	Education        []Education         `json:"education"`
	Skills           []string            `json:"skills"`
	Certifications   []Certification     `json:"certifications"`
	Languages        []Language          `json:"languages"`
	Projects         []Project           `json:"projects"`
	AIBullets        map[string][]string `json:"ai_bullets"`
	AISummary        string              `json:"ai_summary,omitempty"`
	SelectedTemplate TemplateID          `json:"selected_template"`
}

// NewDraft returns a draft with all fields at their documented defaults:
// empty strings, empty sequences, no AI content, and the default template.
func NewDraft() *ResumeDraft {
	return &ResumeDraft{
		WorkExperience:   []WorkExperience{},
		Education:        []Education{},
		Skills:           []string{},
		Certifications:   []Certification{},
		Languages:        []Language{},
		Projects:         []Project{},
		AIBullets:        map[string][]string{},
		SelectedTemplate: DefaultTemplate,
	}
}

// Clone returns a deep copy of the draft. The store hands clones to readers
// so that callers can never mutate shared state directly.
func (d *ResumeDraft) Clone() *ResumeDraft {
	clone := *d
	clone.WorkExperience = append([]WorkExperience(nil), d.WorkExperience...)
	for i, exp := range d.WorkExperience {
		clone.WorkExperience[i].Bullets = append([]string(nil), exp.Bullets...)
	}
	clone.Education = append([]Education(nil), d.Education...)
	clone.Skills = append([]string(nil), d.Skills...)
	clone.Certifications = append([]Certification(nil), d.Certifications...)
	clone.Languages = append([]Language(nil), d.Languages...)
	clone.Projects = append([]Project(nil), d.Projects...)
	clone.AIBullets = make(map[string][]string, len(d.AIBullets))
	for id, bullets := range d.AIBullets {
		clone.AIBullets[id] = append([]string(nil), bullets...)
	}
	return &clone
}

// FindWorkExperience returns the experience with the given id, or nil.
func (d *ResumeDraft) FindWorkExperience(id string) *WorkExperience {
	for i := range d.WorkExperience {
		if d.WorkExperience[i].ID == id {
			return &d.WorkExperience[i]
		}
	}
	return nil
}
