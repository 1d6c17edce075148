package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fabworks/kifab/internal/core/domain"
	"github.com/fabworks/kifab/internal/core/ports/driven"
	"github.com/fabworks/kifab/internal/core/ports/driving"
	"github.com/fabworks/kifab/internal/logger"
)

// Ensure Invoker implements the interface.
var _ driving.FabDriver = (*Invoker)(nil)

// Invoker builds the argument list for the build-outputs program and
// runs it synchronously. It performs no local recovery: locate/start
// failures surface as ErrToolNotFound, everything else is the child's
// exit code, unchanged.
type Invoker struct {
	runner driven.Runner
	stdout io.Writer
	stderr io.Writer
}

// NewInvoker creates a new invoker. Nil writers default to the process
// standard streams.
func NewInvoker(runner driven.Runner, stdout, stderr io.Writer) *Invoker {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Invoker{
		runner: runner,
		stdout: stdout,
		stderr: stderr,
	}
}

// Invoke runs the build-outputs program for the invocation.
func (v *Invoker) Invoke(ctx context.Context, inv domain.Invocation) (int, error) {
	if v.runner == nil {
		return 0, errors.New("runner not configured")
	}
	if err := inv.Validate(); err != nil {
		return 0, err
	}

	program := inv.ProgramOrDefault()

	// Resolve up front so a missing program fails before anything runs.
	resolved, err := v.runner.LookPath(program, inv.ToolPathPrefix)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", domain.ErrToolNotFound, program, err)
	}
	logger.Debug("resolved %s -> %s", program, resolved)

	args := inv.Args()
	fmt.Fprintf(v.stderr, ">> %s %s\n", program, strings.Join(args, " "))

	code, err := v.runner.Run(ctx, driven.Command{
		Name:       program,
		Args:       args,
		PathPrefix: inv.ToolPathPrefix,
		Stdout:     v.stdout,
		Stderr:     v.stderr,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", domain.ErrToolNotFound, program, err)
	}
	return code, nil
}
