package exec

import (
	"context"
	"errors"
	"fmt"
	"os"
	osexec "os/exec"
	"path/filepath"
	"strings"

	"github.com/fabworks/kifab/internal/core/ports/driven"
	"github.com/fabworks/kifab/internal/logger"
)

// Ensure Runner implements the interface.
var _ driven.Runner = (*Runner)(nil)

// Runner executes external processes synchronously.
type Runner struct{}

// NewRunner creates a new process runner.
func NewRunner() *Runner {
	return &Runner{}
}

// LookPath resolves an executable name. Prefix directories are
// consulted before the process PATH. Names containing a path separator
// are checked directly.
func (r *Runner) LookPath(name, pathPrefix string) (string, error) {
	if strings.ContainsRune(name, os.PathSeparator) || filepath.IsAbs(name) {
		if isExecutable(name) {
			return name, nil
		}
		return "", fmt.Errorf("%s is not an executable file", name)
	}

	for _, dir := range filepath.SplitList(pathPrefix) {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}

	return osexec.LookPath(name)
}

// Run executes the command and blocks until it exits.
// Returns the child's exit code; the error is non-nil only when the
// process could not be located or started.
func (r *Runner) Run(ctx context.Context, cmd driven.Command) (int, error) {
	name := cmd.Name
	if resolved, err := r.LookPath(name, cmd.PathPrefix); err == nil {
		name = resolved
	}

	c := osexec.CommandContext(ctx, name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdout = cmd.Stdout
	c.Stderr = cmd.Stderr
	if cmd.PathPrefix != "" {
		c.Env = prependPath(os.Environ(), cmd.PathPrefix)
	}

	logger.Debug(">> %s %s", cmd.Name, strings.Join(cmd.Args, " "))

	if err := c.Run(); err != nil {
		var exitErr *osexec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}
	return 0, nil
}

// isExecutable reports whether path is a regular file with an execute bit.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0111 != 0
}

// prependPath returns a copy of env with the PATH entry rewritten to
// "prefix<sep>previous". The input slice is not modified.
func prependPath(env []string, prefix string) []string {
	const key = "PATH="
	out := make([]string, 0, len(env)+1)
	found := false
	for _, kv := range env {
		if !found && strings.HasPrefix(kv, key) {
			out = append(out, key+prefix+string(os.PathListSeparator)+kv[len(key):])
			found = true
			continue
		}
		out = append(out, kv)
	}
	if !found {
		out = append(out, key+prefix)
	}
	return out
}
