package errclass

import (
	"errors"
	"fmt"
	"net/url"
	"testing"
)

type customError struct{}

func (customError) Error() string { return "custom" }

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"plain errors.New", errors.New("x"), "errors_errorstring"},
		{"wrapped unwraps to innermost", fmt.Errorf("outer: %w", customError{}), "errclass_customerror"},
		{"url error", &url.Error{Op: "Get", Err: errors.New("refused")}, "errors_errorstring"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.err); got != tc.want {
				t.Fatalf("Classify(%v) = %q, want %q", tc.err, got, tc.want)
			}
		})
	}
}
