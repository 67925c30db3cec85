package token_test

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/nyayasetu/go-legalaid/token"
	"github.com/stretchr/testify/require"
)

const testSigningKey = "test-signing-key"

func signedToken(t *testing.T, claims jwtlib.MapClaims) string {
	t.Helper()
	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(testSigningKey))
	require.NoError(t, err)
	return signed
}

func TestIntrospectActiveToken(t *testing.T) {
	now := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	token.NowTimeFunc = func() time.Time { return now }
	defer func() { token.NowTimeFunc = time.Now }()

	raw := signedToken(t, jwtlib.MapClaims{
		"sub":   "42",
		"iat":   float64(now.Add(-time.Minute).Unix()),
		"exp":   float64(now.Add(15 * time.Minute).Unix()),
		"roles": []any{"user"},
	})

	introspection, err := token.Introspect(raw)
	require.NoError(t, err)
	require.True(t, introspection.Active)
	require.Equal(t, "42", *introspection.Sub)
	require.Equal(t, []string{"user"}, introspection.Roles)
	require.Equal(t, now.Add(15*time.Minute).Unix(), *introspection.Exp)
}

func TestIntrospectExpiredToken(t *testing.T) {
	now := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	token.NowTimeFunc = func() time.Time { return now }
	defer func() { token.NowTimeFunc = time.Now }()

	raw := signedToken(t, jwtlib.MapClaims{
		"exp": float64(now.Add(-time.Minute).Unix()),
	})

	introspection, err := token.Introspect(raw)
	require.NoError(t, err)
	require.False(t, introspection.Active)
}

func TestIntrospectEmptyToken(t *testing.T) {
	introspection, err := token.Introspect("  ")
	require.NoError(t, err)
	require.False(t, introspection.Active)
}

func TestIntrospectGarbageToken(t *testing.T) {
	introspection, err := token.Introspect("not-a-jwt")
	require.Error(t, err)
	require.False(t, introspection.Active)
}

func TestExpiresAt(t *testing.T) {
	exp := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	raw := signedToken(t, jwtlib.MapClaims{"exp": float64(exp.Unix())})

	got, ok := token.ExpiresAt(raw)
	require.True(t, ok)
	require.Equal(t, exp.Unix(), got.Unix())

	_, ok = token.ExpiresAt("opaque-token")
	require.False(t, ok)
}
