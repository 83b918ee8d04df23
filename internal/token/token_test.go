package token

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user@test.local",
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func tokenWithoutExp(t *testing.T) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user@test.local",
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestValidAt(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"future expiry", signedToken(t, now.Add(time.Hour)), true},
		{"past expiry", signedToken(t, now.Add(-time.Hour)), false},
		{"expiry equal to now", signedToken(t, now), false},
		{"missing exp claim", tokenWithoutExp(t), false},
		{"empty string", "", false},
		{"not a jwt at all", "hello world", false},
		{"two segments only", "aaaa.bbbb", false},
		{"payload not base64url", "aaaa.!!notbase64!!.cccc", false},
		{
			"payload not json",
			"aaaa." + base64.RawURLEncoding.EncodeToString([]byte("not json")) + ".cccc",
			false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidAt(tc.token, now); got != tc.want {
				t.Fatalf("ValidAt(%q) = %v, want %v", tc.token, got, tc.want)
			}
		})
	}
}

func TestValidUsesCurrentTime(t *testing.T) {
	if !Valid(signedToken(t, time.Now().Add(time.Hour))) {
		t.Fatal("expected token expiring in an hour to be valid")
	}
	if Valid(signedToken(t, time.Now().Add(-time.Minute))) {
		t.Fatal("expected expired token to be invalid")
	}
}
