package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// FileStorage keeps every key in one JSON file on disk, the way the
// browser build keeps them in local storage. Writes replace the file
// atomically (write to a sibling temp file, then rename) so an interrupted
// save never leaves a half-written document behind.
type FileStorage struct {
	mu   sync.Mutex
	fs   afero.Fs
	path string
}

// NewFileStorage creates a file-backed store at path on fs. Tests pass
// afero.NewMemMapFs(); the CLI passes afero.NewOsFs().
func NewFileStorage(fs afero.Fs, path string) *FileStorage {
	return &FileStorage{fs: fs, path: path}
}

func (s *FileStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, false, err
	}
	value, ok := doc[key]
	return value, ok, nil
}

func (s *FileStorage) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	doc[key] = json.RawMessage(value)

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode storage file: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create storage directory: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("write storage file: %w", err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace storage file: %w", err)
	}
	return nil
}

// read loads the whole key-value document. A missing file is an empty
// store; a file that exists but does not parse is reported, not discarded.
func (s *FileStorage) read() (map[string]json.RawMessage, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if os.IsNotExist(err) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read storage file: %w", err)
	}

	doc := map[string]json.RawMessage{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse storage file %s: %w", s.path, err)
		}
	}
	return doc, nil
}
