// Package store provides the draft state container. All mutations go through
// the documented operation set; readers receive snapshots and can never
// mutate shared state. The store owns entity id issuance, and persistence is
// attached as an observer rather than woven into the setters, so the core
// stays testable without a storage dependency.
package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/resume-wizard/internal/types"
)

// Observer is notified with a snapshot of the draft after every mutation.
// Observers run synchronously inside the mutation; long work (such as
// persistence writes) should be handed off to a goroutine by the observer.
type Observer func(*types.ResumeDraft)

// Store holds the resume draft and guards it for concurrent access. The
// generation gateway writes results from worker goroutines, so every
// operation takes the lock even though the wizard itself is single-threaded.
type Store struct {
	mu        sync.Mutex
	draft     *types.ResumeDraft
	observers []Observer
}

// Option configures a Store.
type Option func(*Store)

// WithObserver registers an observer called after every mutation.
func WithObserver(obs Observer) Option {
	return func(s *Store) {
		s.observers = append(s.observers, obs)
	}
}

// WithDraft seeds the store with an existing draft (hydrated from storage).
// A nil draft falls back to defaults.
func WithDraft(draft *types.ResumeDraft) Option {
	return func(s *Store) {
		if draft != nil {
			s.draft = draft
		}
	}
}

// New creates a store seeded with the default empty draft.
func New(opts ...Option) *Store {
	s := &Store{draft: types.NewDraft()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Draft returns a deep copy of the current draft.
func (s *Store) Draft() *types.ResumeDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.Clone()
}

// mutate runs fn under the lock and notifies observers with a snapshot.
func (s *Store) mutate(fn func(*types.ResumeDraft)) {
	s.mu.Lock()
	fn(s.draft)
	snapshot := s.draft.Clone()
	observers := s.observers
	s.mu.Unlock()

	for _, obs := range observers {
		obs(snapshot)
	}
}

// SetPersonalDetails shallow-merges the patch into the personal details.
// Nil fields are untouched.
func (s *Store) SetPersonalDetails(patch types.PersonalDetailsPatch) {
	s.mutate(func(d *types.ResumeDraft) {
		pd := &d.PersonalDetails
		if patch.FullName != nil {
			pd.FullName = *patch.FullName
		}
		if patch.Title != nil {
			pd.Title = *patch.Title
		}
		if patch.Email != nil {
			pd.Email = *patch.Email
		}
		if patch.Phone != nil {
			pd.Phone = *patch.Phone
		}
		if patch.Location != nil {
			pd.Location = *patch.Location
		}
		if patch.LinkedIn != nil {
			pd.LinkedIn = *patch.LinkedIn
		}
		if patch.ProfessionalSummary != nil {
			pd.ProfessionalSummary = *patch.ProfessionalSummary
		}
	})
}

// SetIndustry sets the target industry.
func (s *Store) SetIndustry(industry types.Industry) {
	s.mutate(func(d *types.ResumeDraft) {
		d.Industry = industry
	})
}

// SetJobLevel sets the career level.
func (s *Store) SetJobLevel(level types.JobLevel) {
	s.mutate(func(d *types.ResumeDraft) {
		d.JobLevel = level
	})
}

// AddWorkExperience appends an experience and returns its generated id. Any
// id supplied by the caller is replaced; the store owns id issuance. A true
// IsCurrentRole clears the end date.
func (s *Store) AddWorkExperience(exp types.WorkExperience) string {
	exp.ID = uuid.NewString()
	if exp.IsCurrentRole {
		exp.EndDate = ""
	}
	if exp.Bullets == nil {
		exp.Bullets = []string{}
	}
	s.mutate(func(d *types.ResumeDraft) {
		d.WorkExperience = append(d.WorkExperience, exp)
	})
	return exp.ID
}

// UpdateWorkExperience merges the patch into the matching experience.
// No-op if the id is not found. Setting IsCurrentRole true clears the end
// date even when the patch also carries one.
func (s *Store) UpdateWorkExperience(id string, patch types.WorkExperiencePatch) {
	s.mutate(func(d *types.ResumeDraft) {
		exp := d.FindWorkExperience(id)
		if exp == nil {
			return
		}
		if patch.Company != nil {
			exp.Company = *patch.Company
		}
		if patch.Title != nil {
			exp.Title = *patch.Title
		}
		if patch.StartDate != nil {
			exp.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			exp.EndDate = *patch.EndDate
		}
		if patch.IsCurrentRole != nil {
			exp.IsCurrentRole = *patch.IsCurrentRole
		}
		if patch.Responsibilities != nil {
			exp.Responsibilities = *patch.Responsibilities
		}
		if patch.Bullets != nil {
			exp.Bullets = append([]string(nil), *patch.Bullets...)
		}
		if exp.IsCurrentRole {
			exp.EndDate = ""
		}
	})
}

// RemoveWorkExperience removes the matching experience and deletes its
// AI-bullets mapping entry in the same operation, so no orphaned bullets
// survive the experience. No-op if the id is absent.
func (s *Store) RemoveWorkExperience(id string) {
	s.mutate(func(d *types.ResumeDraft) {
		kept := d.WorkExperience[:0]
		for _, exp := range d.WorkExperience {
			if exp.ID != id {
				kept = append(kept, exp)
			}
		}
		d.WorkExperience = kept
		delete(d.AIBullets, id)
	})
}

// ReorderWorkExperience moves the entry at position from to position to.
// Out-of-range indices are a no-op; callers are expected to pass valid
// positions.
func (s *Store) ReorderWorkExperience(from, to int) {
	s.mutate(func(d *types.ResumeDraft) {
		n := len(d.WorkExperience)
		if from < 0 || from >= n || to < 0 || to >= n {
			return
		}
		moved := d.WorkExperience[from]
		rest := append(d.WorkExperience[:from], d.WorkExperience[from+1:]...)
		d.WorkExperience = append(rest[:to], append([]types.WorkExperience{moved}, rest[to:]...)...)
	})
}

// AddEducation appends an education entry and returns its generated id.
func (s *Store) AddEducation(edu types.Education) string {
	edu.ID = uuid.NewString()
	s.mutate(func(d *types.ResumeDraft) {
		d.Education = append(d.Education, edu)
	})
	return edu.ID
}

// UpdateEducation merges the patch into the matching entry; no-op if absent.
func (s *Store) UpdateEducation(id string, patch types.EducationPatch) {
	s.mutate(func(d *types.ResumeDraft) {
		for i := range d.Education {
			if d.Education[i].ID != id {
				continue
			}
			edu := &d.Education[i]
			if patch.Institution != nil {
				edu.Institution = *patch.Institution
			}
			if patch.Degree != nil {
				edu.Degree = *patch.Degree
			}
			if patch.FieldOfStudy != nil {
				edu.FieldOfStudy = *patch.FieldOfStudy
			}
			if patch.StartDate != nil {
				edu.StartDate = *patch.StartDate
			}
			if patch.EndDate != nil {
				edu.EndDate = *patch.EndDate
			}
			if patch.Honors != nil {
				edu.Honors = *patch.Honors
			}
			if patch.GPA != nil {
				edu.GPA = *patch.GPA
			}
			return
		}
	})
}

// RemoveEducation removes the matching entry; no-op if absent.
func (s *Store) RemoveEducation(id string) {
	s.mutate(func(d *types.ResumeDraft) {
		kept := d.Education[:0]
		for _, edu := range d.Education {
			if edu.ID != id {
				kept = append(kept, edu)
			}
		}
		d.Education = kept
	})
}

// SetSkills wholesale-replaces the skill list.
func (s *Store) SetSkills(skills []string) {
	s.mutate(func(d *types.ResumeDraft) {
		d.Skills = append([]string(nil), skills...)
	})
}

// AddSkill appends a skill. Exact duplicates (case-sensitive) are ignored;
// the skill set is an ordered sequence of unique strings.
func (s *Store) AddSkill(skill string) {
	s.mutate(func(d *types.ResumeDraft) {
		for _, existing := range d.Skills {
			if existing == skill {
				return
			}
		}
		d.Skills = append(d.Skills, skill)
	})
}

// RemoveSkill removes the matching skill; no-op if absent.
func (s *Store) RemoveSkill(skill string) {
	s.mutate(func(d *types.ResumeDraft) {
		kept := d.Skills[:0]
		for _, existing := range d.Skills {
			if existing != skill {
				kept = append(kept, existing)
			}
		}
		d.Skills = kept
	})
}

// AddCertification appends a certification and returns its generated id.
func (s *Store) AddCertification(cert types.Certification) string {
	cert.ID = uuid.NewString()
	s.mutate(func(d *types.ResumeDraft) {
		d.Certifications = append(d.Certifications, cert)
	})
	return cert.ID
}

// UpdateCertification merges the patch into the matching entry; no-op if
// absent.
func (s *Store) UpdateCertification(id string, patch types.CertificationPatch) {
	s.mutate(func(d *types.ResumeDraft) {
		for i := range d.Certifications {
			if d.Certifications[i].ID != id {
				continue
			}
			cert := &d.Certifications[i]
			if patch.Name != nil {
				cert.Name = *patch.Name
			}
			if patch.Issuer != nil {
				cert.Issuer = *patch.Issuer
			}
			if patch.Date != nil {
				cert.Date = *patch.Date
			}
			return
		}
	})
}

// RemoveCertification removes the matching entry; no-op if absent.
func (s *Store) RemoveCertification(id string) {
	s.mutate(func(d *types.ResumeDraft) {
		kept := d.Certifications[:0]
		for _, cert := range d.Certifications {
			if cert.ID != id {
				kept = append(kept, cert)
			}
		}
		d.Certifications = kept
	})
}

// AddLanguage appends a language and returns its generated id.
func (s *Store) AddLanguage(lang types.Language) string {
	lang.ID = uuid.NewString()
	s.mutate(func(d *types.ResumeDraft) {
		d.Languages = append(d.Languages, lang)
	})
	return lang.ID
}

// UpdateLanguage merges the patch into the matching entry; no-op if absent.
func (s *Store) UpdateLanguage(id string, patch types.LanguagePatch) {
	s.mutate(func(d *types.ResumeDraft) {
		for i := range d.Languages {
			if d.Languages[i].ID != id {
				continue
			}
			lang := &d.Languages[i]
			if patch.Name != nil {
				lang.Name = *patch.Name
			}
			if patch.Proficiency != nil {
				lang.Proficiency = *patch.Proficiency
			}
			return
		}
	})
}

// RemoveLanguage removes the matching entry; no-op if absent.
func (s *Store) RemoveLanguage(id string) {
	s.mutate(func(d *types.ResumeDraft) {
		kept := d.Languages[:0]
		for _, lang := range d.Languages {
			if lang.ID != id {
				kept = append(kept, lang)
			}
		}
		d.Languages = kept
	})
}

// AddProject appends a project and returns its generated id.
func (s *Store) AddProject(project types.Project) string {
	project.ID = uuid.NewString()
	s.mutate(func(d *types.ResumeDraft) {
		d.Projects = append(d.Projects, project)
	})
	return project.ID
}

// UpdateProject merges the patch into the matching entry; no-op if absent.
func (s *Store) UpdateProject(id string, patch types.ProjectPatch) {
	s.mutate(func(d *types.ResumeDraft) {
		for i := range d.Projects {
			if d.Projects[i].ID != id {
				continue
			}
			project := &d.Projects[i]
			if patch.Name != nil {
				project.Name = *patch.Name
			}
			if patch.Description != nil {
				project.Description = *patch.Description
			}
			if patch.URL != nil {
				project.URL = *patch.URL
			}
			return
		}
	})
}

// RemoveProject removes the matching entry; no-op if absent.
func (s *Store) RemoveProject(id string) {
	s.mutate(func(d *types.ResumeDraft) {
		kept := d.Projects[:0]
		for _, project := range d.Projects {
			if project.ID != id {
				kept = append(kept, project)
			}
		}
		d.Projects = kept
	})
}

// SetAIBullets wholesale-replaces the generated bullets for an experience.
func (s *Store) SetAIBullets(experienceID string, bullets []string) {
	s.mutate(func(d *types.ResumeDraft) {
		d.AIBullets[experienceID] = append([]string(nil), bullets...)
	})
}

// UpdateAIBullet replaces a single bullet for an experience. No-op when the
// experience has no bullets or the index is out of range.
func (s *Store) UpdateAIBullet(experienceID string, index int, text string) {
	s.mutate(func(d *types.ResumeDraft) {
		bullets, ok := d.AIBullets[experienceID]
		if !ok || index < 0 || index >= len(bullets) {
			return
		}
		bullets[index] = text
	})
}

// SetAISummary sets the generated professional summary.
func (s *Store) SetAISummary(summary string) {
	s.mutate(func(d *types.ResumeDraft) {
		d.AISummary = summary
	})
}

// SetTemplate selects the rendering template.
func (s *Store) SetTemplate(id types.TemplateID) {
	s.mutate(func(d *types.ResumeDraft) {
		d.SelectedTemplate = id
	})
}

// Reset restores every field to its default: empty details, empty sequences,
// no AI content, default template.
func (s *Store) Reset() {
	s.mutate(func(d *types.ResumeDraft) {
		*d = *types.NewDraft()
	})
}
