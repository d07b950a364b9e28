package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-wizard/internal/types"
)

// FileStore keeps one JSON file per key under a state directory. Writes go
// through a temp file and rename so a crash never leaves a torn state file.
type FileStore struct {
	dir string
}

// NewFileStore creates the state directory if needed and returns a store
// over it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Save(_ context.Context, key string, draft *types.ResumeDraft) error {
	data, err := encodeDraft(draft)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to stage draft: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write draft: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write draft: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		return fmt.Errorf("failed to replace draft: %w", err)
	}
	return nil
}

func (s *FileStore) Load(_ context.Context, key string) (*types.ResumeDraft, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read draft: %w", err)
	}
	return decodeDraft(data)
}

func (s *FileStore) Close() error {
	return nil
}
