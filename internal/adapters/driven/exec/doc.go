// Package exec implements the driven.Runner port on top of os/exec.
//
// The search-path prefix is applied in two places: bare executable
// names are resolved against the prefix directories before the process
// PATH, and the child environment gets PATH rewritten to
// "prefix:PATH" so nested tool lookups (e.g. KiKit finding kicad-cli)
// see the same search path. The parent environment is never mutated.
package exec
