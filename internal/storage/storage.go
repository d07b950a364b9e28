// Package storage persists resume drafts. A Storage implementation is a
// keyed blob store; the draft is serialized as JSON and checked against a
// JSON Schema on the way back in, so a corrupt or hand-edited state file
// degrades to a fresh draft instead of poisoning the process.
package storage

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-wizard/internal/types"
)

//go:embed draft.schema.json
var draftSchema string

// DefaultKey is the storage key for the single-draft CLI.
const DefaultKey = "resume-wizard-draft"

// ErrNotFound reports that no state exists under the requested key.
var ErrNotFound = errors.New("no saved draft found")

// CorruptStateError reports saved state that failed to decode or validate.
// Callers treat it as absence and start from defaults.
type CorruptStateError struct {
	Message string
	Cause   error
}

func (e *CorruptStateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("corrupt saved draft: %s: %v", e.Message, e.Cause)
	}
	return "corrupt saved draft: " + e.Message
}

func (e *CorruptStateError) Unwrap() error {
	return e.Cause
}

// Storage is the persistence capability: one blob per key.
type Storage interface {
	// Save writes the serialized draft under key, replacing any prior value.
	Save(ctx context.Context, key string, draft *types.ResumeDraft) error
	// Load reads the draft stored under key. Returns ErrNotFound when the
	// key is absent and a CorruptStateError when the payload fails to
	// decode or validate.
	Load(ctx context.Context, key string) (*types.ResumeDraft, error)
	// Close releases any resources held by the backend.
	Close() error
}

// LoadOrDefault loads the draft under key, substituting a fresh default
// draft when nothing is stored or the stored state is corrupt. Only
// backend failures (I/O, connectivity) are returned as errors.
func LoadOrDefault(ctx context.Context, s Storage, key string) (*types.ResumeDraft, error) {
	draft, err := s.Load(ctx, key)
	if err == nil {
		return draft, nil
	}
	var corrupt *CorruptStateError
	if errors.Is(err, ErrNotFound) || errors.As(err, &corrupt) {
		return types.NewDraft(), nil
	}
	return nil, err
}

// encodeDraft serializes a draft for storage.
func encodeDraft(draft *types.ResumeDraft) ([]byte, error) {
	data, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize draft: %w", err)
	}
	return data, nil
}

// decodeDraft validates stored bytes against the draft schema and
// deserializes them. Any failure is a CorruptStateError.
func decodeDraft(data []byte) (*types.ResumeDraft, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(draftSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, &CorruptStateError{Message: "not valid JSON", Cause: err}
	}
	if !result.Valid() {
		desc := result.Errors()[0]
		return nil, &CorruptStateError{
			Message: fmt.Sprintf("%s: %s", desc.Field(), desc.Description()),
		}
	}

	draft := types.NewDraft()
	if err := json.Unmarshal(data, draft); err != nil {
		return nil, &CorruptStateError{Message: "failed to deserialize", Cause: err}
	}
	if draft.AIBullets == nil {
		draft.AIBullets = map[string][]string{}
	}
	if !draft.SelectedTemplate.Valid() {
		draft.SelectedTemplate = types.DefaultTemplate
	}
	return draft, nil
}
