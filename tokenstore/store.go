package tokenstore

// Keys under which session credentials are stored. Values are opaque
// blobs; no validation of token contents happens at this layer.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
)

// Store is durable key-value storage for session credentials.
type Store interface {
	// Get returns the stored value, or "" when the key is absent or the
	// underlying storage is unavailable. It never fails.
	Get(key string) string

	// Set overwrites the value unconditionally. The write is durable
	// across process restarts.
	Set(key, value string) error

	// Clear removes a single key. Idempotent.
	Clear(key string) error

	// ClearAll removes every session-scoped key. Idempotent.
	ClearAll() error
}
