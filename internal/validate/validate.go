// Package validate holds the form checks run before any network call.
package validate

import (
	"fmt"
	"strings"
)

const minPasswordLength = 8

// Password returns the list of strength rules the password fails. A blank
// password passes: on profile updates an empty field means "keep the current
// password", and login/register enforce presence separately via Required.
func Password(password string) []string {
	trimmed := strings.TrimSpace(password)
	if trimmed == "" {
		return nil
	}

	var issues []string
	if len(trimmed) < minPasswordLength {
		issues = append(issues, fmt.Sprintf("at least %d characters", minPasswordLength))
	}
	if !strings.ContainsAny(trimmed, "0123456789") {
		issues = append(issues, "at least one digit")
	}
	if !strings.ContainsAny(trimmed, "abcdefghijklmnopqrstuvwxyz") {
		issues = append(issues, "at least one lowercase letter")
	}
	if !strings.ContainsAny(trimmed, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		issues = append(issues, "at least one uppercase letter")
	}
	if !strings.ContainsAny(trimmed, "@#$%^&+=!?.,:;()[]{}|-_~`") {
		issues = append(issues, "at least one special character")
	}
	return issues
}

// Required checks that every named field is non-blank and reports the first
// missing one.
func Required(fields map[string]string, order ...string) error {
	for _, name := range order {
		if strings.TrimSpace(fields[name]) == "" {
			return fmt.Errorf("%s is required", name)
		}
	}
	return nil
}
