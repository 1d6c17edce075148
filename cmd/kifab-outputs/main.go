// Command kifab-outputs is the headless build-outputs program the fab
// driver invokes. It exposes the output pipeline behind the flat flag
// interface of the invocation contract:
//
//	kifab-outputs --project <path>.kicad_pro [--root DIR] [--prod-dir DIR]
//	              [--iso] [--glb] [--zip] [--kikit VENDOR]
//	              [--skip-drc] [--no-timestamp] [--verbose]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/fabworks/kifab/internal/adapters/driven/archive"
	execrunner "github.com/fabworks/kifab/internal/adapters/driven/exec"
	"github.com/fabworks/kifab/internal/adapters/driven/kicad"
	"github.com/fabworks/kifab/internal/core/domain"
	"github.com/fabworks/kifab/internal/core/services"
	"github.com/fabworks/kifab/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "\nERROR: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		project     = flag.String("project", "", "path to .kicad_pro (or base path) of the project")
		root        = flag.String("root", ".", "repo root containing the output folders")
		prodDir     = flag.String("prod-dir", "", "production folder relative to root (default PRODUCTION)")
		iso         = flag.Bool("iso", false, "also render an isometric image")
		glb         = flag.Bool("glb", false, "also export a .glb 3D model")
		zipGerbers  = flag.Bool("zip", false, "zip gerbers into the production folder")
		kikitVendor = flag.String("kikit", "", "vendor for a KiKit fab package (e.g. jlcpcb)")
		skipDRC     = flag.Bool("skip-drc", false, "skip the DRC report")
		noTimestamp = flag.Bool("no-timestamp", false, "omit the timestamp tag from production outputs")
		verbose     = flag.Bool("verbose", false, "enable verbose logging")
	)
	flag.Parse()

	logger.SetVerbose(*verbose)

	if *project == "" {
		return fmt.Errorf("%w: --project is required", domain.ErrInvalidInput)
	}
	proj, err := domain.NewProject(*project)
	if err != nil {
		return err
	}

	runner := execrunner.NewRunner()
	bin, err := kicad.LocateCLI(runner)
	if err != nil {
		return err
	}

	exporter := kicad.NewCLI(runner, bin, os.Stdout, os.Stderr)
	packager := kicad.NewKiKit(runner, os.Stdout, os.Stderr)
	pipeline := services.NewPipeline(exporter, packager, archive.NewZipper())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Project: %s\n", proj.Stem())
	fmt.Printf("SCH:     %s\n", proj.SchFile())
	fmt.Printf("PCB:     %s\n", proj.PcbFile())

	report, err := pipeline.Generate(ctx, proj, domain.OutputPlan{
		Root:        *root,
		ProdDir:     *prodDir,
		ISO:         *iso,
		GLB:         *glb,
		ZipGerbers:  *zipGerbers,
		Vendor:      domain.Vendor(*kikitVendor),
		SkipDRC:     *skipDRC,
		NoTimestamp: *noTimestamp,
	})
	if err != nil {
		return err
	}

	fmt.Println("\nAll done")
	fmt.Printf("- 3D models:       %s\n", report.ThreeDDir)
	fmt.Printf("- Pictures:        %s\n", report.PicturesDir)
	fmt.Printf("- Documentation:   %s\n", report.DocsDir)
	fmt.Printf("- Production run:  %s\n", report.ProductionDir)
	if report.VendorZip != "" {
		fmt.Printf("- Vendor ZIP:      %s\n", report.VendorZip)
	}
	return nil
}
