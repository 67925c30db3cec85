package users_test

import (
	"testing"

	"github.com/nyayasetu/go-legalaid/users"
	"github.com/stretchr/testify/require"
)

func TestValidatePasswordStrength(t *testing.T) {
	require.NoError(t, users.ValidatePasswordStrength("Password1"))

	require.Error(t, users.ValidatePasswordStrength("Pass1"))     // too short
	require.Error(t, users.ValidatePasswordStrength("password1")) // no uppercase
	require.Error(t, users.ValidatePasswordStrength("PASSWORD1")) // no lowercase
	require.Error(t, users.ValidatePasswordStrength("Passwords")) // no number
}

func TestDisplayName(t *testing.T) {
	u := &users.User{FirstName: "John", LastName: "Doe", Email: "user@example.com"}
	require.Equal(t, "John Doe", u.DisplayName())

	u = &users.User{FirstName: "John", Email: "user@example.com"}
	require.Equal(t, "John", u.DisplayName())

	u = &users.User{Email: "user@example.com"}
	require.Equal(t, "user@example.com", u.DisplayName())
}

func TestRoleTypeIsValid(t *testing.T) {
	require.True(t, users.RoleUser.IsValid())
	require.False(t, users.RoleType("superuser").IsValid())
}
