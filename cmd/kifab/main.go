// Command kifab standardises KiCad 9 project outputs and invokes the
// external build-outputs program with a vendor fabrication profile.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fabworks/kifab/internal/adapters/driving/cli"
	"github.com/fabworks/kifab/internal/core/domain"
)

// version is injected at build time via -ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)

	err := cli.Execute()
	if err == nil {
		return
	}

	// A child process exit code passes through unchanged; its own
	// output already explains the failure.
	var exitErr *domain.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
