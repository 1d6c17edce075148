package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent failures the CLI owns.
// Semantic validation (does the board exist, is the vendor recognised by
// KiKit) is delegated to the external tools and surfaced verbatim.
var (
	// ErrInvalidInput indicates malformed or missing input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a required file does not exist.
	ErrNotFound = errors.New("not found")

	// ErrToolNotFound indicates an external tool could not be located or started.
	ErrToolNotFound = errors.New("tool not found")

	// ErrToolFailed indicates an external tool ran and exited non-zero.
	// The exit code is reported, never interpreted.
	ErrToolFailed = errors.New("tool failed")
)

// ExitError carries a child process exit code so main can propagate it
// as the process exit code unchanged. It unwraps to ErrToolFailed.
type ExitError struct {
	Code int
}

// NewExitError creates an ExitError for a non-zero child exit code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

// Error returns the error message.
func (e *ExitError) Error() string {
	return fmt.Sprintf("external tool exited with code %d", e.Code)
}

// Unwrap allows errors.Is(err, ErrToolFailed).
func (e *ExitError) Unwrap() error {
	return ErrToolFailed
}
