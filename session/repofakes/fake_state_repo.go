package repofakes

import (
	"sync"

	"github.com/nyayasetu/go-legalaid/session"
)

var _ session.StateRepo = (*FakeStateRepo)(nil)

// FakeStateRepo is an in-memory StateRepo for tests.
type FakeStateRepo struct {
	lock   sync.Mutex
	state  session.State
	stored bool
}

func NewFakeStateRepo() *FakeStateRepo {
	return &FakeStateRepo{}
}

func (r *FakeStateRepo) Load() (session.State, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if !r.stored {
		return session.State{}, nil
	}
	return r.state, nil
}

func (r *FakeStateRepo) Save(state session.State) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.state = state
	r.stored = true
	return nil
}

func (r *FakeStateRepo) Clear() error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.state = session.State{}
	r.stored = false
	return nil
}

// Stored reports whether any state is persisted. Test helper.
func (r *FakeStateRepo) Stored() bool {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.stored
}
