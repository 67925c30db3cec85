package token

import (
	"errors"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/nyayasetu/go-legalaid/internal/utils"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Introspection holds the claims the client can read out of the
// backend's JWT access token. The parse is unverified: the client has
// no signing keys, so Active is a local hint only. The backend's 401
// remains the authority on whether a token is still accepted.
type Introspection struct {
	Active bool     `json:"active"`          // False once the exp claim is in the past
	Exp    *int64   `json:"exp,omitempty"`   // Expiration
	Iat    *int64   `json:"iat,omitempty"`   // Issued at time
	Sub    *string  `json:"sub,omitempty"`   // User's unique ID
	Roles  []string `json:"roles,omitempty"` // Roles assigned to the user
}

// Introspect extracts claims from a raw access token without verifying
// its signature. An empty token yields an inactive introspection.
func Introspect(rawToken string) (*Introspection, error) {
	if strings.TrimSpace(rawToken) == "" {
		return &Introspection{Active: false}, nil
	}

	unverifiedToken, _, err := jwtlib.NewParser().ParseUnverified(rawToken, jwtlib.MapClaims{})
	if err != nil {
		return &Introspection{Active: false}, err
	}

	claims, ok := unverifiedToken.Claims.(jwtlib.MapClaims)
	if !ok {
		return &Introspection{Active: false}, errors.New("error extracting claims")
	}

	sub, _ := claims["sub"].(string)
	iat, _ := claims["iat"].(float64)
	exp, _ := claims["exp"].(float64)

	iatInt := int64(iat)
	expInt := int64(exp)

	var roles []string
	if claimRoles, ok := claims["roles"].([]any); ok {
		roles = utils.ToStringSlice(claimRoles)
	}

	active := true
	if expInt > 0 && NowTimeFunc().Unix() > expInt {
		active = false
	}

	return &Introspection{
		Active: active,
		Exp:    &expInt,
		Iat:    &iatInt,
		Sub:    &sub,
		Roles:  roles,
	}, nil
}

// ExpiresAt returns the token's expiry time. ok is false when the
// token could not be parsed or carries no exp claim.
func ExpiresAt(rawToken string) (expiry time.Time, ok bool) {
	introspection, err := Introspect(rawToken)
	if err != nil || introspection.Exp == nil || *introspection.Exp == 0 {
		return time.Time{}, false
	}
	return time.Unix(*introspection.Exp, 0), true
}
