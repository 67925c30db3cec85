package tokenstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

var _ Store = (*FileStore)(nil)

// FileStore persists credentials as a small JSON file, typically under
// ~/.legalaid. Reads are served from an in-memory copy loaded at
// construction; every mutation rewrites the file.
type FileStore struct {
	path string

	lock   sync.RWMutex
	values map[string]string
}

// NewFileStore opens the store backed by the given file. A missing or
// unreadable file yields an empty store rather than an error, so a
// fresh install and a corrupt file both behave as "logged out".
func NewFileStore(path string) *FileStore {
	s := &FileStore{
		path:   path,
		values: make(map[string]string),
	}
	s.load()
	return s
}

func (s *FileStore) Get(key string) string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.values[key]
}

func (s *FileStore) Set(key, value string) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.values[key] = value
	return s.persistLocked()
}

func (s *FileStore) Clear(key string) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	return s.persistLocked()
}

func (s *FileStore) ClearAll() error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if len(s.values) == 0 {
		return nil
	}
	s.values = make(map[string]string)
	return s.persistLocked()
}

func (s *FileStore) load() {
	b, err := os.ReadFile(s.path)
	if err != nil || len(b) == 0 {
		return
	}
	var decoded map[string]string
	if err := json.Unmarshal(b, &decoded); err != nil {
		return
	}
	s.values = decoded
}

func (s *FileStore) persistLocked() error {
	b, err := json.Marshal(s.values)
	if err != nil {
		return errors.Wrap(err, "error marshaling token store")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrapf(err, "error creating token store folder %s", filepath.Dir(s.path))
	}
	if err := os.WriteFile(s.path, b, 0o600); err != nil {
		return errors.Wrapf(err, "error writing token store file %s", s.path)
	}
	return nil
}
