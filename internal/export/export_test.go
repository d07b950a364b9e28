package export

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-wizard/internal/types"
)

func exportableDraft() *types.ResumeDraft {
	draft := types.NewDraft()
	draft.PersonalDetails.FullName = "John Doe"
	draft.PersonalDetails.Email = "john@example.com"
	draft.PersonalDetails.Phone = "555-1234"
	draft.PersonalDetails.Location = "NYC"
	draft.WorkExperience = []types.WorkExperience{{
		ID:               "exp-1",
		Company:          "Acme",
		Title:            "Engineer",
		StartDate:        "2020-01",
		IsCurrentRole:    true,
		Responsibilities: "Built the core platform",
	}}
	draft.AIBullets["exp-1"] = []string{"Shipped the billing system", "Cut deploy time in half"}
	draft.Skills = []string{"Go", "SQL", "Docker"}
	return draft
}

// gatedSerializer blocks inside Serialize until released, for exercising the
// in-progress guard.
type gatedSerializer struct {
	gate chan struct{}
	data []byte
	err  error
}

func (s *gatedSerializer) Serialize(context.Context, *types.ResumeDraft, types.TemplateID) ([]byte, error) {
	if s.gate != nil {
		<-s.gate
	}
	return s.data, s.err
}

func (s *gatedSerializer) Extension() string { return "pdf" }

func TestExport_DOCXEndToEnd(t *testing.T) {
	dir := t.TempDir()
	exporter := New(WithOutputDir(dir))

	path, err := exporter.Export(context.Background(), exportableDraft(), FormatDOCX)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "John_Doe_Resume.docx"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	// DOCX files are zip archives.
	assert.Equal(t, []byte("PK"), data[:2])

	assert.Equal(t, StateDone, exporter.State())
	result := exporter.Result()
	assert.Equal(t, path, result.Path)
	assert.NoError(t, result.Err)
}

func TestExport_PreconditionFailure(t *testing.T) {
	tests := []struct {
		name  string
		patch func(*types.ResumeDraft)
	}{
		{"missing name", func(d *types.ResumeDraft) { d.PersonalDetails.FullName = "" }},
		{"missing email", func(d *types.ResumeDraft) { d.PersonalDetails.Email = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := exportableDraft()
			tt.patch(draft)

			exporter := New(WithOutputDir(t.TempDir()))
			_, err := exporter.Export(context.Background(), draft, FormatDOCX)

			var precondition *PreconditionError
			require.ErrorAs(t, err, &precondition)
			assert.Equal(t, StateIdle, exporter.State(), "a refused export leaves the exporter idle")
		})
	}
}

func TestExport_InProgressBlocksReinvocation(t *testing.T) {
	gate := make(chan struct{})
	exporter := New(
		WithOutputDir(t.TempDir()),
		WithSerializer(FormatPDF, &gatedSerializer{gate: gate, data: []byte("%PDF-")}),
	)

	done := make(chan error, 1)
	go func() {
		_, err := exporter.Export(context.Background(), exportableDraft(), FormatPDF)
		done <- err
	}()

	// Wait for the first export to take the in-progress slot.
	require.Eventually(t, func() bool {
		return exporter.State() == StateInProgress
	}, time.Second, time.Millisecond)

	_, err := exporter.Export(context.Background(), exportableDraft(), FormatPDF)
	assert.ErrorIs(t, err, ErrExportInProgress)

	close(gate)
	require.NoError(t, <-done)
	assert.Equal(t, StateDone, exporter.State())
}

func TestExport_SerializationFailureLeavesNoArtifact(t *testing.T) {
	dir := t.TempDir()
	cause := errors.New("render exploded")
	exporter := New(
		WithOutputDir(dir),
		WithSerializer(FormatPDF, &gatedSerializer{err: cause}),
	)

	_, err := exporter.Export(context.Background(), exportableDraft(), FormatPDF)

	var exportErr *ExportError
	require.ErrorAs(t, err, &exportErr)
	assert.ErrorIs(t, err, cause)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "a failed export must not leave a partial file")

	result := exporter.Result()
	assert.Error(t, result.Err)
	assert.Empty(t, result.Path)
}

func TestExport_UnsupportedFormat(t *testing.T) {
	exporter := New(WithOutputDir(t.TempDir()))
	_, err := exporter.Export(context.Background(), exportableDraft(), Format("rtf"))
	require.Error(t, err)
	assert.Equal(t, StateIdle, exporter.State())
}

func TestPDFSerializerChromePath(t *testing.T) {
	t.Setenv("CHROME_PATH", "/env/chrome")

	// A configured path wins over the environment.
	assert.Equal(t, "/opt/chrome", NewPDFSerializer("/opt/chrome").resolveChromePath())
	// Without one, the environment variable is the fallback.
	assert.Equal(t, "/env/chrome", NewPDFSerializer("").resolveChromePath())

	t.Setenv("CHROME_PATH", "")
	assert.Equal(t, "", NewPDFSerializer("").resolveChromePath())
}

func TestDOCXLayoutIgnoresTemplate(t *testing.T) {
	draft := exportableDraft()
	serializer := NewDOCXSerializer()

	executive, err := serializer.Serialize(context.Background(), draft, types.TemplateExecutive)
	require.NoError(t, err)
	canva, err := serializer.Serialize(context.Background(), draft, types.TemplateCanva)
	require.NoError(t, err)

	// The Word layout is fixed, so any valid template id yields the same
	// document body.
	assert.Equal(t, docxBody(t, executive), docxBody(t, canva))
}

// docxBody extracts word/document.xml from a serialized docx archive.
func docxBody(t *testing.T, data []byte) string {
	t.Helper()
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, file := range archive.File {
		if file.Name != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		require.NoError(t, err)
		defer rc.Close()
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(body)
	}
	t.Fatal("archive has no word/document.xml")
	return ""
}

func TestFilename(t *testing.T) {
	tests := []struct {
		fullName string
		ext      string
		want     string
	}{
		{"John Doe", "pdf", "John_Doe_Resume.pdf"},
		{"John   van  Doe", "docx", "John_van_Doe_Resume.docx"},
		{"", "pdf", "Resume.pdf"},
		{"   ", "pdf", "Resume.pdf"},
		{"Cher", "pdf", "Cher_Resume.pdf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Filename(tt.fullName, tt.ext))
	}
}
