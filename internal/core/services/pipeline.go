package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/fabworks/kifab/internal/core/domain"
	"github.com/fabworks/kifab/internal/core/ports/driven"
	"github.com/fabworks/kifab/internal/core/ports/driving"
	"github.com/fabworks/kifab/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driving.OutputPipeline = (*Pipeline)(nil)

// Pipeline sequences the export steps for a project: 3D models,
// renders, documentation, fabrication files and the optional vendor
// package. Steps run in a fixed order; the first failure aborts.
type Pipeline struct {
	exporter driven.BoardExporter
	packager driven.VendorPackager
	archiver driven.Archiver

	// Injectable for tests.
	now   func() time.Time
	newID func() string
}

// NewPipeline creates a new output pipeline.
// The packager and archiver are optional - the vendor and zip steps
// fail only when requested without them.
func NewPipeline(exporter driven.BoardExporter, packager driven.VendorPackager, archiver driven.Archiver) *Pipeline {
	return &Pipeline{
		exporter: exporter,
		packager: packager,
		archiver: archiver,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Generate runs the full output pipeline for the project.
//
//nolint:gocyclo // Orchestration function with necessary sequential steps
func (p *Pipeline) Generate(ctx context.Context, proj domain.Project, plan domain.OutputPlan) (*domain.RunReport, error) {
	if p.exporter == nil {
		return nil, errors.New("board exporter not configured")
	}
	if proj.IsZero() {
		return nil, fmt.Errorf("%w: project is required", domain.ErrInvalidInput)
	}
	plan = plan.WithDefaults()

	sch := proj.SchFile()
	pcb := proj.PcbFile()
	if _, err := os.Stat(sch); err != nil {
		return nil, fmt.Errorf("%w: schematic %s", domain.ErrNotFound, sch)
	}
	if _, err := os.Stat(pcb); err != nil {
		return nil, fmt.Errorf("%w: board %s", domain.ErrNotFound, pcb)
	}

	stem := proj.Stem()
	threeDDir := filepath.Join(plan.Root, domain.ThreeDDirName)
	picsDir := filepath.Join(plan.Root, domain.PicturesDirName)
	docsDir := filepath.Join(plan.Root, domain.DocsDirName)
	stamp := p.now().Format(domain.TimestampFormat)
	prodDir := filepath.Join(plan.Root, plan.ProdDir, plan.ProdFolder(proj, stamp))

	for _, dir := range []string{threeDDir, picsDir, docsDir, prodDir} {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}

	report := &domain.RunReport{
		RunID:         p.newID(),
		Project:       stem,
		ThreeDDir:     threeDDir,
		PicturesDir:   picsDir,
		DocsDir:       docsDir,
		ProductionDir: prodDir,
	}
	logger.Info("Starting output run %s for project %s", report.RunID, stem)

	// 1. 3D model(s)
	logger.Section("3D models")
	if err := p.exporter.ExportStep(ctx, pcb, filepath.Join(threeDDir, stem+".step")); err != nil {
		return nil, fmt.Errorf("export step: %w", err)
	}
	if plan.GLB {
		if err := p.exporter.ExportGLB(ctx, pcb, filepath.Join(threeDDir, stem+".glb")); err != nil {
			return nil, fmt.Errorf("export glb: %w", err)
		}
	}

	// 2. Renders
	logger.Section("Renders")
	views := domain.StandardRenderViews()
	if plan.ISO {
		views = append(views, domain.RenderISO)
	}
	for _, view := range views {
		out := filepath.Join(picsDir, fmt.Sprintf("%s_%s.png", stem, view))
		if err := p.exporter.Render(ctx, pcb, out, view); err != nil {
			return nil, fmt.Errorf("render %s: %w", view, err)
		}
	}

	// 3. Documentation
	logger.Section("Documentation")
	if err := p.exporter.ExportSchematicPDF(ctx, sch, filepath.Join(docsDir, stem+"_schematic.pdf")); err != nil {
		return nil, fmt.Errorf("export schematic pdf: %w", err)
	}
	if err := p.exporter.RunERC(ctx, sch, filepath.Join(docsDir, stem+"_erc.rpt")); err != nil {
		return nil, fmt.Errorf("erc: %w", err)
	}
	if err := p.exporter.ExportBoardPDF(ctx, pcb, filepath.Join(docsDir, stem+"_board_prints.pdf"), domain.DefaultPrintLayers()); err != nil {
		return nil, fmt.Errorf("export board prints: %w", err)
	}
	if !plan.SkipDRC {
		if err := p.exporter.RunDRC(ctx, pcb, filepath.Join(docsDir, stem+"_drc.rpt")); err != nil {
			return nil, fmt.Errorf("drc: %w", err)
		}
	}

	// 4. Fabrication
	logger.Section("Fabrication")
	gerbDir := filepath.Join(prodDir, "gerbers")
	drillDir := filepath.Join(prodDir, "drill")
	for _, dir := range []string{gerbDir, drillDir} {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := p.exporter.ExportGerbers(ctx, pcb, gerbDir); err != nil {
		return nil, fmt.Errorf("export gerbers: %w", err)
	}
	if err := p.exporter.ExportDrill(ctx, pcb, drillDir); err != nil {
		return nil, fmt.Errorf("export drill: %w", err)
	}
	if err := p.exporter.ExportPosition(ctx, pcb, filepath.Join(prodDir, stem+"_pos.csv")); err != nil {
		return nil, fmt.Errorf("export position: %w", err)
	}
	if err := p.exporter.ExportBOM(ctx, sch, filepath.Join(prodDir, stem+"_bom.csv")); err != nil {
		return nil, fmt.Errorf("export bom: %w", err)
	}
	if plan.ZipGerbers {
		if p.archiver == nil {
			return nil, errors.New("archiver not configured")
		}
		zipName := stem + "_gerbers.zip"
		if !plan.NoTimestamp {
			zipName = fmt.Sprintf("%s_gerbers_%s.zip", stem, stamp)
		}
		zipPath := filepath.Join(prodDir, zipName)
		if err := p.archiver.ZipDir(gerbDir, zipPath); err != nil {
			return nil, fmt.Errorf("zip gerbers: %w", err)
		}
		report.GerberZip = zipPath
	}

	// 5. Optional vendor package
	if plan.Vendor != "" {
		if p.packager == nil {
			return nil, errors.New("vendor packager not configured")
		}
		logger.Section("Vendor package")
		if !plan.Vendor.IsKnown() {
			logger.Warn("vendor %q has no known profile, passing through to KiKit", plan.Vendor)
		}
		vendorZip, err := p.packager.Package(ctx, plan.Vendor, pcb, prodDir)
		if err != nil {
			return nil, fmt.Errorf("vendor package: %w", err)
		}
		report.VendorZip = vendorZip
	}

	logger.Info("Output run %s complete", report.RunID)
	return report, nil
}
