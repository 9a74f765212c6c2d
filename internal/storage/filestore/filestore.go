// Package filestore keeps save records in a single JSON document on local disk.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/GEON1999/PomoFarm/internal/logger"
	"github.com/GEON1999/PomoFarm/internal/utils"
)

// DefaultFileName is the save document inside the data directory
const DefaultFileName = "pomofarm_save.json"

// FileStore implements storage.RecordStore. Every write replaces the whole
// document atomically, so PutAll is all-or-nothing.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// New returns a store writing to dir/DefaultFileName
func New(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, DefaultFileName)}
}

// Path is the save document location
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read(ctx)
	if err != nil {
		return nil, false, err
	}
	data, ok := doc[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(data), true, nil
}

func (s *FileStore) PutAll(ctx context.Context, records map[string][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read(ctx)
	if err != nil {
		return err
	}
	for key, data := range records {
		if !json.Valid(data) {
			return fmt.Errorf("record %s is not valid JSON", key)
		}
		doc[key] = json.RawMessage(data)
	}
	return utils.SaveJSON(s.path, doc)
}

func (s *FileStore) DeleteAll(ctx context.Context, keys []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read(ctx)
	if err != nil {
		return err
	}
	for _, key := range keys {
		delete(doc, key)
	}
	if len(doc) == 0 {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to remove %s: %w", s.path, err)
		}
		return nil
	}
	return utils.SaveJSON(s.path, doc)
}

// read returns an empty document when the file does not exist yet.
// A document that is not a JSON object is treated as empty so a corrupt
// save never blocks startup.
func (s *FileStore) read(ctx context.Context) (map[string]json.RawMessage, error) {
	doc := make(map[string]json.RawMessage)

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		logger.FromContext(ctx).Warn("Save file is corrupt, ignoring it", "path", s.path, "error", err)
		return make(map[string]json.RawMessage), nil
	}
	return doc, nil
}
