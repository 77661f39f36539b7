// Package cli holds process-level concerns shared by the command: exit codes
// and the errors that carry them.
package cli

import "errors"

const (
	// ExitOK is returned on normal completion and on a clean interrupt.
	ExitOK = 0
	// ExitFailure is returned when the run itself fails.
	ExitFailure = 1
	// ExitUsage is returned when arguments fail validation.
	ExitUsage = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	if e.Message == "" && e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying error to errors.Is.
func (e *ExitError) Unwrap() error { return e.Err }

// Usage wraps err as an argument validation failure.
func Usage(err error) *ExitError {
	return &ExitError{Code: ExitUsage, Message: err.Error(), Err: err}
}

// Code returns the exit code for err: ExitOK for nil, the carried code for an
// ExitError, ExitFailure otherwise.
func Code(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
