package apiclient

import (
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the backend, carried to the
// caller unchanged for page-level handling. Body holds the raw
// response so callers can decode endpoint-specific error shapes.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("received %d from API server", e.StatusCode)
}

// IsUnauthorized reports whether err is an APIError with HTTP 401.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}
