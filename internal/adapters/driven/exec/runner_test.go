package exec

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabworks/kifab/internal/core/ports/driven"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test relies on sh")
	}
}

// writeScript creates an executable shell script in dir.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0700))
	return path
}

func TestRunner_Run_ZeroExitCode(t *testing.T) {
	skipOnWindows(t)
	r := NewRunner()

	code, err := r.Run(context.Background(), driven.Command{
		Name: "sh",
		Args: []string{"-c", "exit 0"},
	})

	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestRunner_Run_NonZeroExitCode(t *testing.T) {
	skipOnWindows(t)
	r := NewRunner()

	code, err := r.Run(context.Background(), driven.Command{
		Name: "sh",
		Args: []string{"-c", "exit 2"},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, code)
}

func TestRunner_Run_MissingExecutable(t *testing.T) {
	r := NewRunner()

	_, err := r.Run(context.Background(), driven.Command{
		Name: "kifab-does-not-exist",
	})

	assert.Error(t, err)
}

func TestRunner_Run_CapturesOutput(t *testing.T) {
	skipOnWindows(t)
	r := NewRunner()
	stdout := new(bytes.Buffer)

	code, err := r.Run(context.Background(), driven.Command{
		Name:   "sh",
		Args:   []string{"-c", "echo hello"},
		Stdout: stdout,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "hello\n", stdout.String())
}

func TestRunner_Run_ChildPathStartsWithPrefix(t *testing.T) {
	skipOnWindows(t)
	r := NewRunner()
	prefix := t.TempDir()
	stdout := new(bytes.Buffer)

	code, err := r.Run(context.Background(), driven.Command{
		Name:       "sh",
		Args:       []string{"-c", "echo $PATH"},
		PathPrefix: prefix,
		Stdout:     stdout,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, code)

	childPath := strings.TrimSpace(stdout.String())
	want := prefix + string(os.PathListSeparator) + os.Getenv("PATH")
	assert.Equal(t, want, childPath)
	// Parent PATH is untouched.
	assert.False(t, strings.HasPrefix(os.Getenv("PATH"), prefix+string(os.PathListSeparator)))
}

func TestRunner_Run_ResolvesBareNameFromPrefix(t *testing.T) {
	skipOnWindows(t)
	r := NewRunner()
	dir := t.TempDir()
	writeScript(t, dir, "kifab-fake-tool", "echo from-prefix")
	stdout := new(bytes.Buffer)

	code, err := r.Run(context.Background(), driven.Command{
		Name:       "kifab-fake-tool",
		PathPrefix: dir,
		Stdout:     stdout,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "from-prefix\n", stdout.String())
}

func TestRunner_LookPath_PrefixBeforePath(t *testing.T) {
	skipOnWindows(t)
	r := NewRunner()
	dir := t.TempDir()
	script := writeScript(t, dir, "sh", "exit 0")

	// With a prefix containing its own sh, the prefix copy wins.
	resolved, err := r.LookPath("sh", dir)
	require.NoError(t, err)
	assert.Equal(t, script, resolved)

	// Without a prefix, resolution falls back to PATH.
	resolved, err = r.LookPath("sh", "")
	require.NoError(t, err)
	assert.NotEqual(t, script, resolved)
}

func TestRunner_LookPath_MissingName(t *testing.T) {
	r := NewRunner()

	_, err := r.LookPath("kifab-does-not-exist", "")

	assert.Error(t, err)
}

func TestRunner_LookPath_ExplicitPath(t *testing.T) {
	skipOnWindows(t)
	r := NewRunner()
	dir := t.TempDir()
	script := writeScript(t, dir, "tool", "exit 0")

	resolved, err := r.LookPath(script, "")
	require.NoError(t, err)
	assert.Equal(t, script, resolved)

	_, err = r.LookPath(filepath.Join(dir, "missing"), "")
	assert.Error(t, err)
}

func TestPrependPath_AddsEntryWhenPathMissing(t *testing.T) {
	env := prependPath([]string{"HOME=/home/u"}, "/opt/bin")

	assert.Contains(t, env, "PATH=/opt/bin")
}

func TestPrependPath_DoesNotModifyInput(t *testing.T) {
	in := []string{"PATH=/usr/bin"}
	out := prependPath(in, "/opt/bin")

	assert.Equal(t, []string{"PATH=/usr/bin"}, in)
	assert.Contains(t, out[0], "/opt/bin")
}
