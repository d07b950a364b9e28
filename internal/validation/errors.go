// Package validation enforces the per-step form rules that gate wizard
// advancement. Field errors are surfaced individually so the form layer can
// attach each message to its field; a step cannot be submitted while any
// remain.
package validation

import (
	"fmt"
	"strings"
)

// FieldError is a single validation failure attached to one field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// StepError aggregates every field failure for one step submission.
type StepError struct {
	Errors []FieldError
}

func (e *StepError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fe.Error()
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

// ByField returns the message for a field, or empty if the field passed.
func (e *StepError) ByField(field string) string {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// stepError builds a *StepError or nil when there are no failures.
func stepError(errs []FieldError) error {
	if len(errs) == 0 {
		return nil
	}
	return &StepError{Errors: errs}
}
