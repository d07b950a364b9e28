package generate

import (
	"errors"
	"fmt"
)

// PrerequisiteError reports an input problem caught before any network call:
// a missing industry or job level on the draft, or an invalid field on the
// request itself. It is fully recoverable; the user corrects the field and
// retries.
type PrerequisiteError struct {
	Field   string
	Message string
}

func (e *PrerequisiteError) Error() string {
	return fmt.Sprintf("cannot generate: %s: %s", e.Field, e.Message)
}

// GenerationError wraps a transport or parse failure from the provider.
// Existing AI content is left untouched when one occurs.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation failed: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// ErrStaleResponse marks a response that resolved after a newer request for
// the same target had already been issued. Stale responses are discarded
// rather than written over the newer result.
var ErrStaleResponse = errors.New("generation response superseded by a newer request")
