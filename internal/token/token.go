// Package token decides whether a stored bearer token is still worth
// sending. The check is expiry-only: the client holds no verification keys,
// so the signature is deliberately not checked and server-side revocation
// cannot be detected here. The backend remains the authority; an optimistic
// pass here at worst costs one rejected request.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Valid reports whether raw looks like a JWT whose exp claim is in the
// future. Malformed input of any kind yields false, never an error.
func Valid(raw string) bool {
	return ValidAt(raw, time.Now())
}

// ValidAt is Valid evaluated against an explicit instant.
func ValidAt(raw string, now time.Time) bool {
	if raw == "" {
		return false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.After(now)
}
