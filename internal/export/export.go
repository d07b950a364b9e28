// Package export turns a finished draft into a downloadable document. It
// checks that the draft carries the minimal identifying fields, renders the
// selected template's document variant, serializes it to PDF or DOCX, and
// writes the artifact to disk under a filename derived from the full name.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/jonathan/resume-wizard/internal/types"
)

// Format selects the output serialization.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// Valid reports whether f is a supported export format.
func (f Format) Valid() bool {
	return f == FormatPDF || f == FormatDOCX
}

// Serializer produces the binary artifact for one format.
type Serializer interface {
	// Serialize renders the draft using the given template and returns the
	// complete artifact bytes. Implementations must not produce partial
	// output on error.
	Serialize(ctx context.Context, draft *types.ResumeDraft, id types.TemplateID) ([]byte, error)
	// Extension returns the filename extension without the dot.
	Extension() string
}

// State is the exporter's lifecycle phase. Exactly one holds at a time.
type State int

const (
	StateIdle State = iota
	StateInProgress
	StateDone
)

// Result is the terminal outcome of the most recent export.
type Result struct {
	Path string
	Err  error
}

// Exporter orchestrates export runs. A run in progress blocks further
// invocations until it finishes.
type Exporter struct {
	mu          sync.Mutex
	state       State
	result      Result
	serializers map[Format]Serializer
	outDir      string
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithOutputDir sets the directory artifacts are written to. Defaults to the
// current working directory.
func WithOutputDir(dir string) Option {
	return func(e *Exporter) {
		e.outDir = dir
	}
}

// WithSerializer registers or replaces the serializer for a format.
func WithSerializer(format Format, s Serializer) Option {
	return func(e *Exporter) {
		e.serializers[format] = s
	}
}

// New returns an Exporter with the default PDF and DOCX serializers. Options
// may replace either, which tests use to avoid launching a browser.
func New(opts ...Option) *Exporter {
	e := &Exporter{
		state: StateIdle,
		serializers: map[Format]Serializer{
			FormatPDF:  NewPDFSerializer(""),
			FormatDOCX: NewDOCXSerializer(),
		},
		outDir: ".",
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the current lifecycle phase.
func (e *Exporter) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Result returns the outcome of the most recent finished export. The zero
// Result is returned while no export has completed.
func (e *Exporter) Result() Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.result
}

// Export renders and writes the draft as a document in the given format.
// It returns the path of the written artifact. The precondition check and
// the in-progress guard both fail before any rendering work happens.
func (e *Exporter) Export(ctx context.Context, draft *types.ResumeDraft, format Format) (string, error) {
	if err := e.begin(draft, format); err != nil {
		return "", err
	}

	path, err := e.run(ctx, draft, format)

	e.mu.Lock()
	e.state = StateDone
	e.result = Result{Path: path, Err: err}
	e.mu.Unlock()

	return path, err
}

func (e *Exporter) begin(draft *types.ResumeDraft, format Format) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == StateInProgress {
		return ErrExportInProgress
	}
	if !format.Valid() {
		return &ExportError{Message: fmt.Sprintf("unsupported export format %q", format)}
	}
	if draft.PersonalDetails.FullName == "" || draft.PersonalDetails.Email == "" {
		return &PreconditionError{
			Message: "fill in at least your name and email before exporting",
		}
	}

	e.state = StateInProgress
	e.result = Result{}
	return nil
}

func (e *Exporter) run(ctx context.Context, draft *types.ResumeDraft, format Format) (string, error) {
	serializer := e.serializers[format]
	if serializer == nil {
		return "", &ExportError{Message: fmt.Sprintf("no serializer registered for %q", format)}
	}

	data, err := serializer.Serialize(ctx, draft, draft.SelectedTemplate)
	if err != nil {
		return "", &ExportError{Message: "failed to generate document", Cause: err}
	}

	path := filepath.Join(e.outDir, Filename(draft.PersonalDetails.FullName, serializer.Extension()))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", &ExportError{Message: "failed to write document", Cause: err}
	}
	return path, nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Filename derives the artifact name from the full name: whitespace runs
// become underscores and a Resume suffix is appended. A blank name falls
// back to the bare generic filename.
func Filename(fullName, extension string) string {
	if strings.TrimSpace(fullName) == "" {
		return "Resume." + extension
	}
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(fullName), "_") + "_Resume." + extension
}
