package session

import "github.com/nyayasetu/go-legalaid/users"

// State is the externally observable session: the authenticated user's
// profile snapshot, derived role, and authentication flag. Tokens are
// deliberately not part of it; they live in the token store under
// their own keys so they can be purged independently.
type State struct {
	User            *users.User    `json:"user,omitempty"`
	UserRole        users.RoleType `json:"userRole,omitempty"`
	IsAuthenticated bool           `json:"isAuthenticated"`
}

// Empty reports whether this is the logged-out state.
func (s State) Empty() bool {
	return s.User == nil && !s.IsAuthenticated
}
