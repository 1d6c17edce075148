package driving

import (
	"context"

	"github.com/fabworks/kifab/internal/core/domain"
)

// FabDriver invokes the external build-outputs program.
type FabDriver interface {
	// Invoke runs the program synchronously in the current working
	// directory and returns its exit code unchanged. The error is
	// non-nil only when the invocation itself is invalid or the
	// program could not be located or started.
	Invoke(ctx context.Context, inv domain.Invocation) (int, error)
}
