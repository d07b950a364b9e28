package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_StartsAtFirstStep(t *testing.T) {
	w := New()
	assert.Equal(t, StepPersonal, w.Current())
	assert.Equal(t, 0, w.CompletedCount())
	assert.True(t, w.IsFirst())
	assert.False(t, w.IsLast())
}

func TestNextStep_MarksCurrentCompleteAndAdvances(t *testing.T) {
	w := New()
	w.NextStep()
	assert.Equal(t, StepIndustry, w.Current())
	assert.True(t, w.Completed(StepPersonal))
	assert.False(t, w.Completed(StepIndustry))
}

func TestNextStep_NoOpAtLastStep(t *testing.T) {
	w := New()
	for range Steps {
		w.NextStep()
	}
	assert.Equal(t, StepPreview, w.Current())
	assert.True(t, w.IsLast())
	// Last step is never auto-completed by advancing past it.
	assert.False(t, w.Completed(StepPreview))
	assert.Equal(t, len(Steps)-1, w.CompletedCount())
}

func TestPreviousStep_MovesBackWithoutCompleting(t *testing.T) {
	w := New()
	w.NextStep()
	w.NextStep()
	require.Equal(t, StepExperience, w.Current())

	w.PreviousStep()
	assert.Equal(t, StepIndustry, w.Current())
	// Going back never changes the completed set.
	assert.True(t, w.Completed(StepIndustry))
	assert.Equal(t, 2, w.CompletedCount())
}

func TestPreviousStep_NoOpAtFirstStep(t *testing.T) {
	w := New()
	w.PreviousStep()
	assert.Equal(t, StepPersonal, w.Current())
}

func TestCanNavigate_BackwardAlwaysAllowed(t *testing.T) {
	w := New()
	w.NextStep()
	w.NextStep()
	require.Equal(t, StepExperience, w.Current())

	assert.True(t, w.CanNavigate(StepPersonal))
	assert.True(t, w.CanNavigate(StepIndustry))
	assert.True(t, w.CanNavigate(StepExperience))
}

func TestCanNavigate_ForwardRequiresCompletedPrefix(t *testing.T) {
	// With completed = {personal, industry}, the next step is reachable but
	// anything past the first gap is not.
	w := New()
	w.MarkStepComplete(StepPersonal)
	w.MarkStepComplete(StepIndustry)

	assert.True(t, w.CanNavigate(StepExperience))
	assert.False(t, w.CanNavigate(StepEducation))
	assert.False(t, w.CanNavigate(StepPreview))
}

func TestCanNavigate_ForwardJumpPastCurrentWhenPrefixComplete(t *testing.T) {
	// The gate is relative to the target, not the current step: if every
	// step before the target was completed in an earlier session, the user
	// may jump straight there.
	w := New()
	for _, step := range Steps[:4] {
		w.MarkStepComplete(step)
	}
	require.Equal(t, StepPersonal, w.Current())

	assert.True(t, w.GoToStep(StepSkills))
	assert.Equal(t, StepSkills, w.Current())
}

func TestCanNavigate_UnknownStep(t *testing.T) {
	w := New()
	assert.False(t, w.CanNavigate(Step("nonsense")))
}

func TestGoToStep_RefusalIsSilentNoOp(t *testing.T) {
	w := New()
	moved := w.GoToStep(StepPreview)
	assert.False(t, moved)
	assert.Equal(t, StepPersonal, w.Current())
}

func TestMarkStepComplete_Idempotent(t *testing.T) {
	w := New()
	w.MarkStepComplete(StepSkills)
	w.MarkStepComplete(StepSkills)
	assert.Equal(t, 1, w.CompletedCount())
	assert.Equal(t, StepPersonal, w.Current())
}

func TestReset_RestoresInitialState(t *testing.T) {
	w := New()
	w.NextStep()
	w.NextStep()
	w.MarkStepComplete(StepTemplate)

	w.Reset()
	assert.Equal(t, StepPersonal, w.Current())
	assert.Equal(t, 0, w.CompletedCount())
	assert.False(t, w.Completed(StepPersonal))
}

func TestStepCatalog_CoversEveryStep(t *testing.T) {
	for _, step := range Steps {
		info, ok := StepCatalog[step]
		require.True(t, ok, "missing catalog entry for %s", step)
		assert.Equal(t, step, info.ID)
		assert.NotEmpty(t, info.Title)
		assert.NotEmpty(t, info.Description)
	}
}
