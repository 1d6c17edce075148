package kicad

import (
	"fmt"
	"os"
	"runtime"

	"github.com/fabworks/kifab/internal/core/domain"
	"github.com/fabworks/kifab/internal/core/ports/driven"
)

// EnvKicadCLI overrides discovery of the kicad-cli executable.
const EnvKicadCLI = "KICAD_CLI"

// Default install location on Windows for KiCad 9.
const windowsDefaultCLI = `C:\Program Files\KiCad\9.0\bin\kicad-cli.exe`

// LocateCLI finds the kicad-cli executable: the KICAD_CLI environment
// variable wins, then the process search path, then the Windows
// default install location.
func LocateCLI(runner driven.Runner) (string, error) {
	if override := os.Getenv(EnvKicadCLI); override != "" {
		return override, nil
	}
	if path, err := runner.LookPath("kicad-cli", ""); err == nil {
		return path, nil
	}
	if runtime.GOOS == "windows" {
		if _, err := os.Stat(windowsDefaultCLI); err == nil {
			return windowsDefaultCLI, nil
		}
	}
	return "", fmt.Errorf("%w: kicad-cli not on PATH and %s not set", domain.ErrToolNotFound, EnvKicadCLI)
}
