package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Messages surfaced to users when the backend gives us nothing better.
const (
	msgInvalidCredentials = "invalid credentials"
	msgServerUnreachable  = "unable to connect to server"
)

// Error is a normalized backend failure. Status 0 means the request never
// produced an HTTP response (connection refused, DNS failure, timeout).
type Error struct {
	Status  int
	Code    string
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Status == 0 {
		return msgServerUnreachable
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

func (e *Error) Unwrap() error { return e.cause }

// Unauthorized reports whether the failure was an HTTP 401.
func (e *Error) Unauthorized() bool { return e.Status == http.StatusUnauthorized }

// StatusOf extracts the HTTP status from err, or -1 when err is not an
// api.Error.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return -1
}

// normalizeAuthErr maps a request failure to the user-facing message the
// login and register flows present: 401 means bad credentials, an unreachable
// or erroring server gets a connectivity message, and anything else keeps the
// backend's own message when it sent one.
func normalizeAuthErr(err error, fallback string) error {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return err
	}
	normalized := &Error{Status: apiErr.Status, Code: apiErr.Code, cause: apiErr}
	switch {
	case apiErr.Status == http.StatusUnauthorized:
		normalized.Message = msgInvalidCredentials
	case apiErr.Status == 0 || apiErr.Status >= http.StatusInternalServerError:
		normalized.Message = msgServerUnreachable
	case apiErr.Message != "":
		normalized.Message = apiErr.Message
	default:
		normalized.Message = fallback
	}
	return normalized
}
