package cli

import (
	"errors"
	"fmt"
	"testing"
)

func TestCode(t *testing.T) {
	sentinel := errors.New("bad rule")
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"plain", sentinel, ExitFailure},
		{"usage", Usage(sentinel), ExitUsage},
		{"wrapped usage", fmt.Errorf("startup: %w", Usage(sentinel)), ExitUsage},
	}
	for _, tc := range cases {
		if got := Code(tc.err); got != tc.want {
			t.Errorf("%s: Code() = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestExitErrorUnwraps(t *testing.T) {
	sentinel := errors.New("bad rule")
	err := Usage(sentinel)
	if !errors.Is(err, sentinel) {
		t.Fatal("ExitError should unwrap to its cause")
	}
	if err.Error() != "bad rule" {
		t.Fatalf("Error() = %q", err.Error())
	}
}
