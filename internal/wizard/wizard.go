// Package wizard implements the step sequencing state machine for the resume
// wizard: one current step, a monotonically growing completed set, and a
// forward-navigation gate requiring an unbroken completed prefix.
package wizard

// Step identifies one page of the wizard.
type Step string

// Wizard steps in their fixed order.
const (
	StepPersonal   Step = "personal"
	StepIndustry   Step = "industry"
	StepExperience Step = "experience"
	StepEducation  Step = "education"
	StepSkills     Step = "skills"
	StepOptional   Step = "optional"
	StepTemplate   Step = "template"
	StepPreview    Step = "preview"
)

// Steps is the fixed step sequence. Navigation positions are indices into
// this slice.
var Steps = []Step{
	StepPersonal,
	StepIndustry,
	StepExperience,
	StepEducation,
	StepSkills,
	StepOptional,
	StepTemplate,
	StepPreview,
}

// StepInfo carries display metadata for a step, consumed by the progress UI.
type StepInfo struct {
	ID          Step
	Title       string
	Description string
}

// StepCatalog maps each step to its display metadata.
var StepCatalog = map[Step]StepInfo{
	StepPersonal:   {ID: StepPersonal, Title: "Personal Details", Description: "Enter your contact information"},
	StepIndustry:   {ID: StepIndustry, Title: "Industry & Level", Description: "Select your industry and job level"},
	StepExperience: {ID: StepExperience, Title: "Work Experience", Description: "Add your work history"},
	StepEducation:  {ID: StepEducation, Title: "Education Information", Description: "Add your educational background"},
	StepSkills:     {ID: StepSkills, Title: "Technical & Soft Skills", Description: "List your professional skills"},
	StepOptional:   {ID: StepOptional, Title: "Optional Sections", Description: "Add certifications, languages, or projects"},
	StepTemplate:   {ID: StepTemplate, Title: "Choose Template", Description: "Select a resume template"},
	StepPreview:    {ID: StepPreview, Title: "Preview & Download", Description: "Review and download your resume"},
}

// indexOf returns the position of step in Steps, or -1 if unknown.
func indexOf(step Step) int {
	for i, s := range Steps {
		if s == step {
			return i
		}
	}
	return -1
}

// Wizard tracks the current step and the set of completed steps. It is pure
// and synchronous: none of its operations return errors, and invalid
// navigation requests are silently refused.
//
// A Wizard is not safe for concurrent use; the wizard runs on a single
// interaction loop.
type Wizard struct {
	current   Step
	completed map[Step]bool
}

// New returns a wizard positioned at the first step with nothing completed.
func New() *Wizard {
	return &Wizard{
		current:   Steps[0],
		completed: make(map[Step]bool),
	}
}

// Current returns the current step.
func (w *Wizard) Current() Step {
	return w.current
}

// Completed reports whether step has been completed.
func (w *Wizard) Completed(step Step) bool {
	return w.completed[step]
}

// CompletedCount returns the number of completed steps.
func (w *Wizard) CompletedCount() int {
	return len(w.completed)
}

// CanNavigate reports whether navigation to target is permitted. Backward
// and same-step navigation is always allowed. Forward navigation requires
// every step strictly before target to be completed; the check is relative
// to the target, not the current step, so a user can jump past the current
// step when all intermediate steps were already completed in an earlier
// session.
func (w *Wizard) CanNavigate(target Step) bool {
	targetIdx := indexOf(target)
	if targetIdx < 0 {
		return false
	}
	if targetIdx <= indexOf(w.current) {
		return true
	}
	for i := 0; i < targetIdx; i++ {
		if !w.completed[Steps[i]] {
			return false
		}
	}
	return true
}

// GoToStep moves to target if CanNavigate permits it; otherwise it is a
// no-op. Returns whether the move happened.
func (w *Wizard) GoToStep(target Step) bool {
	if !w.CanNavigate(target) {
		return false
	}
	w.current = target
	return true
}

// NextStep marks the current step completed and advances to the next step
// in sequence. No-op at the last step.
func (w *Wizard) NextStep() {
	idx := indexOf(w.current)
	if idx < 0 || idx >= len(Steps)-1 {
		return
	}
	w.completed[w.current] = true
	w.current = Steps[idx+1]
}

// PreviousStep moves back one step without touching the completed set.
// No-op at the first step.
func (w *Wizard) PreviousStep() {
	idx := indexOf(w.current)
	if idx <= 0 {
		return
	}
	w.current = Steps[idx-1]
}

// MarkStepComplete idempotently adds step to the completed set without
// changing the current step.
func (w *Wizard) MarkStepComplete(step Step) {
	if indexOf(step) < 0 {
		return
	}
	w.completed[step] = true
}

// IsFirst reports whether the current step is the first step.
func (w *Wizard) IsFirst() bool {
	return indexOf(w.current) == 0
}

// IsLast reports whether the current step is the last step.
func (w *Wizard) IsLast() bool {
	return indexOf(w.current) == len(Steps)-1
}

// Reset restores the initial state: current is the first step, nothing is
// completed.
func (w *Wizard) Reset() {
	w.current = Steps[0]
	w.completed = make(map[Step]bool)
}
