package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

var _ StateRepo = (*FileStateRepo)(nil)

// FileStateRepo persists the session state as a JSON file alongside
// the token store file.
type FileStateRepo struct {
	path string
	lock sync.Mutex
}

func NewFileStateRepo(path string) *FileStateRepo {
	return &FileStateRepo{path: path}
}

func (r *FileStateRepo) Load() (State, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	b, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return State{}, nil
		}
		return State{}, errors.Wrapf(err, "error reading session state file %s", r.path)
	}
	var state State
	if err := json.Unmarshal(b, &state); err != nil {
		// A corrupt state file reads as logged out rather than wedging
		// the client.
		return State{}, nil
	}
	return state, nil
}

func (r *FileStateRepo) Save(state State) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	b, err := json.Marshal(state)
	if err != nil {
		return errors.Wrap(err, "error marshaling session state")
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o700); err != nil {
		return errors.Wrapf(err, "error creating session state folder %s", filepath.Dir(r.path))
	}
	if err := os.WriteFile(r.path, b, 0o600); err != nil {
		return errors.Wrapf(err, "error writing session state file %s", r.path)
	}
	return nil
}

func (r *FileStateRepo) Clear() error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "error deleting session state file %s", r.path)
	}
	return nil
}
