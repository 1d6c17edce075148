package domain

import "fmt"

// DefaultProgram is the build-outputs executable the fab driver invokes
// when no override is configured.
const DefaultProgram = "kifab-outputs"

// Invocation is the argument contract between the fab driver and the
// build-outputs program. Constructed once, executed once.
type Invocation struct {
	// Program is the build-outputs executable name or path.
	// Empty means DefaultProgram.
	Program string

	// Project is the design whose outputs are generated.
	Project Project

	// Vendor is the fabrication profile passed as the --kikit value.
	Vendor Vendor

	// ToolPathPrefix is prepended to the child process search path so
	// the program (and the tools it shells out to) can be located
	// without a fully-qualified path. Empty leaves the search path
	// untouched. The parent environment is never mutated.
	ToolPathPrefix string
}

// Validate enforces the two required values.
func (i Invocation) Validate() error {
	if i.Project.IsZero() {
		return fmt.Errorf("%w: project is required", ErrInvalidInput)
	}
	if i.Vendor == "" {
		return fmt.Errorf("%w: vendor is required", ErrInvalidInput)
	}
	return nil
}

// ProgramOrDefault returns the program to invoke.
func (i Invocation) ProgramOrDefault() string {
	if i.Program == "" {
		return DefaultProgram
	}
	return i.Program
}

// Args returns the argument list for the build-outputs program.
// The order is fixed: project file, timestamp suppression, ISO render,
// gerber archive, vendor profile.
func (i Invocation) Args() []string {
	return []string{
		"--project", i.Project.ProFile(),
		"--no-timestamp",
		"--iso",
		"--zip",
		"--kikit", i.Vendor.String(),
	}
}
