package kicad

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fabworks/kifab/internal/core/domain"
	"github.com/fabworks/kifab/internal/core/ports/driven"
)

// Ensure CLI implements the interface.
var _ driven.BoardExporter = (*CLI)(nil)

// CLI drives kicad-cli export sub-commands through a process runner.
type CLI struct {
	runner driven.Runner
	bin    string
	stdout io.Writer
	stderr io.Writer
}

// NewCLI creates a kicad-cli adapter. bin is the resolved executable
// (see LocateCLI). The writers receive the tool's own output.
func NewCLI(runner driven.Runner, bin string, stdout, stderr io.Writer) *CLI {
	return &CLI{
		runner: runner,
		bin:    bin,
		stdout: stdout,
		stderr: stderr,
	}
}

// run executes one kicad-cli sub-command.
func (c *CLI) run(ctx context.Context, args ...string) error {
	code, err := c.runner.Run(ctx, driven.Command{
		Name:   c.bin,
		Args:   args,
		Stdout: c.stdout,
		Stderr: c.stderr,
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrToolNotFound, filepath.Base(c.bin), err)
	}
	if code != 0 {
		return fmt.Errorf("%w: %s %s exited with code %d",
			domain.ErrToolFailed, filepath.Base(c.bin), strings.Join(args[:2], " "), code)
	}
	return nil
}

// ExportStep writes a STEP 3D model of the board.
func (c *CLI) ExportStep(ctx context.Context, pcb, out string) error {
	return c.run(ctx, "pcb", "export", "step", "-o", out, pcb)
}

// ExportGLB writes a GLB 3D model of the board.
func (c *CLI) ExportGLB(ctx context.Context, pcb, out string) error {
	return c.run(ctx, "pcb", "export", "glb", "-o", out, pcb)
}

// Render writes a PNG render of the board for the given view.
// All renders use a transparent background; the isometric view adds
// perspective and a fixed rotation.
func (c *CLI) Render(ctx context.Context, pcb, out string, view domain.RenderView) error {
	switch view {
	case domain.RenderTop:
		return c.run(ctx, "pcb", "render", "-o", out, "--side", "top", "--background", "transparent", pcb)
	case domain.RenderBottom:
		return c.run(ctx, "pcb", "render", "-o", out, "--side", "bottom", "--background", "transparent", pcb)
	case domain.RenderSide:
		// "side" is the orthographic left view.
		return c.run(ctx, "pcb", "render", "-o", out, "--side", "left", "--background", "transparent", pcb)
	case domain.RenderISO:
		return c.run(ctx, "pcb", "render", "-o", out,
			"--background", "transparent", "--perspective",
			"--rotate", "-45,0,45", "--zoom", "1", pcb)
	default:
		return fmt.Errorf("%w: unknown render view %q", domain.ErrInvalidInput, view)
	}
}

// ExportSchematicPDF writes the schematic as PDF.
func (c *CLI) ExportSchematicPDF(ctx context.Context, sch, out string) error {
	return c.run(ctx, "sch", "export", "pdf", "-o", out, sch)
}

// RunERC writes an electrical rule check report.
func (c *CLI) RunERC(ctx context.Context, sch, out string) error {
	return c.run(ctx, "sch", "erc", "-o", out, sch)
}

// ExportBoardPDF writes a multi-page PDF of the given board layers.
func (c *CLI) ExportBoardPDF(ctx context.Context, pcb, out string, layers []string) error {
	return c.run(ctx, "pcb", "export", "pdf",
		"-o", out,
		"--layers", strings.Join(layers, ","),
		"--mode-multipage",
		pcb)
}

// RunDRC writes a design rule check report.
func (c *CLI) RunDRC(ctx context.Context, pcb, out string) error {
	return c.run(ctx, "pcb", "drc", "-o", out, "--format", "report", pcb)
}

// ExportGerbers writes gerbers using the saved board plot parameters,
// which keeps output repeatable across machines.
func (c *CLI) ExportGerbers(ctx context.Context, pcb, outDir string) error {
	return c.run(ctx, "pcb", "export", "gerbers", "-o", outDir, "--board-plot-params", pcb)
}

// ExportDrill writes Excellon drill files and a drill map.
func (c *CLI) ExportDrill(ctx context.Context, pcb, outDir string) error {
	return c.run(ctx, "pcb", "export", "drill", "-o", outDir, "--format", "excellon", "--generate-map", pcb)
}

// ExportPosition writes a component placement CSV (both sides, mm).
func (c *CLI) ExportPosition(ctx context.Context, pcb, out string) error {
	return c.run(ctx, "pcb", "export", "pos", "-o", out, "--format", "csv", "--units", "mm", "--side", "both", pcb)
}

// ExportBOM writes a grouped bill-of-materials CSV.
func (c *CLI) ExportBOM(ctx context.Context, sch, out string) error {
	return c.run(ctx, "sch", "export", "bom", "-o", out,
		"--fields", domain.BOMFields,
		"--labels", domain.BOMLabels,
		"--group-by", domain.BOMGroupBy,
		sch)
}
