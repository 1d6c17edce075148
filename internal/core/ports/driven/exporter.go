package driven

import (
	"context"

	"github.com/fabworks/kifab/internal/core/domain"
)

// BoardExporter drives the KiCad CLI export sub-commands.
// Paths are passed through unchanged; callers own directory creation.
type BoardExporter interface {
	// ExportStep writes a STEP 3D model of the board.
	ExportStep(ctx context.Context, pcb, out string) error

	// ExportGLB writes a GLB 3D model of the board.
	ExportGLB(ctx context.Context, pcb, out string) error

	// Render writes a PNG render of the board for the given view.
	Render(ctx context.Context, pcb, out string, view domain.RenderView) error

	// ExportSchematicPDF writes the schematic as PDF.
	ExportSchematicPDF(ctx context.Context, sch, out string) error

	// RunERC writes an electrical rule check report.
	RunERC(ctx context.Context, sch, out string) error

	// ExportBoardPDF writes a multi-page PDF of the given board layers.
	ExportBoardPDF(ctx context.Context, pcb, out string, layers []string) error

	// RunDRC writes a design rule check report.
	RunDRC(ctx context.Context, pcb, out string) error

	// ExportGerbers writes gerbers into outDir using the saved board
	// plot parameters.
	ExportGerbers(ctx context.Context, pcb, outDir string) error

	// ExportDrill writes Excellon drill files and a drill map into outDir.
	ExportDrill(ctx context.Context, pcb, outDir string) error

	// ExportPosition writes a component placement CSV (both sides, mm).
	ExportPosition(ctx context.Context, pcb, out string) error

	// ExportBOM writes a grouped bill-of-materials CSV.
	ExportBOM(ctx context.Context, sch, out string) error
}

// VendorPackager produces a vendor-ready fabrication package.
type VendorPackager interface {
	// Package runs the vendor profile against the board and returns
	// the path of the produced archive.
	Package(ctx context.Context, vendor domain.Vendor, pcb, outDir string) (string, error)
}
