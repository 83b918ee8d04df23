package validate

import (
	"strings"
	"testing"
)

func TestPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		issues   int
	}{
		{"strong password", "Str0ng!pass", 0},
		{"blank passes for profile updates", "", 0},
		{"whitespace only passes", "   ", 0},
		{"too short", "S1!a", 1},
		{"missing digit", "Strong!pass", 1},
		{"missing lowercase", "STRONG!PASS1", 1},
		{"missing uppercase", "str0ng!pass", 1},
		{"missing special", "Str0ngpass", 1},
		{"everything wrong", "abc", 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			issues := Password(tc.password)
			if len(issues) != tc.issues {
				t.Fatalf("Password(%q) = %d issues (%s), want %d",
					tc.password, len(issues), strings.Join(issues, "; "), tc.issues)
			}
		})
	}
}

func TestPasswordTrimsBeforeChecking(t *testing.T) {
	// Length is measured on the trimmed value.
	if issues := Password("  Str0ng!p  "); len(issues) != 0 {
		t.Fatalf("expected trimmed password to pass, got %v", issues)
	}
}

func TestRequired(t *testing.T) {
	fields := map[string]string{"email": "a@b.com", "password": "  "}
	err := Required(fields, "email", "password")
	if err == nil {
		t.Fatal("expected blank password to fail")
	}
	if got := err.Error(); got != "password is required" {
		t.Fatalf("unexpected message %q", got)
	}

	fields["password"] = "x"
	if err := Required(fields, "email", "password"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
