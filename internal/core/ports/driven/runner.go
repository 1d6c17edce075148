package driven

import (
	"context"
	"io"
)

// Command describes a single external process invocation.
type Command struct {
	// Name is the executable name or path. Bare names are resolved
	// against PathPrefix directories first, then the process PATH.
	Name string

	// Args are the command arguments, in order.
	Args []string

	// Dir is the working directory. Empty inherits the current one.
	Dir string

	// PathPrefix is prepended to the child's search path. Empty leaves
	// the search path untouched (identity).
	PathPrefix string

	// Stdout and Stderr receive the child's output. Nil discards.
	Stdout io.Writer
	Stderr io.Writer
}

// Runner executes external processes synchronously.
//
// Implementations must scope PathPrefix to the child process
// environment; the parent environment is never mutated.
type Runner interface {
	// LookPath resolves an executable name, consulting the prefix
	// directories before the process search path.
	LookPath(name, pathPrefix string) (string, error)

	// Run executes the command and blocks until it exits.
	// Returns the child's exit code. The error is non-nil only when
	// the process could not be located or started.
	Run(ctx context.Context, cmd Command) (int, error)
}
