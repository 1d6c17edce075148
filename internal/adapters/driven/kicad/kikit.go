package kicad

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fabworks/kifab/internal/core/domain"
	"github.com/fabworks/kifab/internal/core/ports/driven"
)

// Ensure KiKit implements the interface.
var _ driven.VendorPackager = (*KiKit)(nil)

// kikitArchiveName is what kikit fab writes into the output directory.
const kikitArchiveName = "gerbers.zip"

// KiKit produces vendor-ready fabrication packages via the kikit fab
// command.
type KiKit struct {
	runner driven.Runner
	stdout io.Writer
	stderr io.Writer
}

// NewKiKit creates a KiKit adapter.
func NewKiKit(runner driven.Runner, stdout, stderr io.Writer) *KiKit {
	return &KiKit{
		runner: runner,
		stdout: stdout,
		stderr: stderr,
	}
}

// Package runs kikit fab for the vendor and returns the archive path.
func (k *KiKit) Package(ctx context.Context, vendor domain.Vendor, pcb, outDir string) (string, error) {
	if _, err := k.runner.LookPath("kikit", ""); err != nil {
		return "", fmt.Errorf("%w: kikit: %v", domain.ErrToolNotFound, err)
	}

	code, err := k.runner.Run(ctx, driven.Command{
		Name:   "kikit",
		Args:   []string{"fab", vendor.String(), pcb, outDir},
		Stdout: k.stdout,
		Stderr: k.stderr,
	})
	if err != nil {
		return "", fmt.Errorf("%w: kikit: %v", domain.ErrToolNotFound, err)
	}
	if code != 0 {
		return "", fmt.Errorf("%w: kikit fab %s exited with code %d", domain.ErrToolFailed, vendor, code)
	}
	return filepath.Join(outDir, kikitArchiveName), nil
}
