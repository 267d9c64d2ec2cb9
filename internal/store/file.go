// Package store provides layout snapshot persistence backends: a JSON
// file, a SQLite database, and an in-memory store for tests. All of
// them satisfy dock.Store.
package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps the snapshot in a single file, written atomically via
// a temp file and rename.
type FileStore struct {
	path string
}

// NewFileStore creates the file's parent directory if needed.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create layout dir: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

// LoadLayout returns (nil, nil) when the file does not exist yet.
func (s *FileStore) LoadLayout() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read layout file: %w", err)
	}
	return data, nil
}

// SaveLayout writes the snapshot atomically.
func (s *FileStore) SaveLayout(data []byte) error {
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write layout file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace layout file: %w", err)
	}
	return nil
}
