package export

import "errors"

// ErrExportInProgress reports that an export is already running.
var ErrExportInProgress = errors.New("an export is already in progress")

// PreconditionError reports that the draft lacks the minimal fields an
// export requires. No rendering work happens when it is returned.
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string {
	return e.Message
}

// ExportError reports a failure while generating or writing the artifact.
type ExportError struct {
	Message string
	Cause   error
}

func (e *ExportError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}
