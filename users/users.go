package users

import "strings"

// RoleType represents a user role. The backend currently mints only
// "user"; the type is left open so additional roles (an earlier
// revision carried "admin") can appear without restructuring callers.
type RoleType string

const (
	RoleUser RoleType = "user"
)

// User is the profile snapshot returned by the backend's auth
// endpoints. Field names follow the backend's JSON contract.
type User struct {
	ID          int64  `json:"id,omitempty"`           // Unique identifier for the user
	Email       string `json:"email,omitempty"`        // User's email address
	FirstName   string `json:"first_name,omitempty"`   // First name of the user
	LastName    string `json:"last_name,omitempty"`    // Last name of the user
	PhoneNumber string `json:"phone_number,omitempty"` // Phone number, if the backend returned one
}

// DisplayName returns the user's full name, falling back to the email
// address when no name was provided.
func (u *User) DisplayName() string {
	name := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if name == "" {
		return u.Email
	}
	return name
}

// IsValid reports whether the role is one the client recognises.
func (r RoleType) IsValid() bool {
	return r == RoleUser
}
