package session

// StateRepo persists the safe subset of the session (profile snapshot,
// role, authentication flag) across process restarts. Tokens never
// pass through here.
type StateRepo interface {
	// Load returns the persisted state, or the zero State when nothing
	// has been persisted yet.
	Load() (State, error)
	Save(state State) error
	// Clear removes the persisted state. Idempotent.
	Clear() error
}
