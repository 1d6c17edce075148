package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/fabworks/kifab/internal/adapters/driven/archive"
	execrunner "github.com/fabworks/kifab/internal/adapters/driven/exec"
	"github.com/fabworks/kifab/internal/adapters/driven/kicad"
	"github.com/fabworks/kifab/internal/core/domain"
	"github.com/fabworks/kifab/internal/core/ports/driving"
	"github.com/fabworks/kifab/internal/core/services"
	"github.com/fabworks/kifab/internal/logger"
)

var (
	outProject     string
	outRoot        string
	outProdDir     string
	outISO         bool
	outGLB         bool
	outZip         bool
	outKikit       string
	outSkipDRC     bool
	outNoTimestamp bool
)

var outputsCmd = &cobra.Command{
	Use:   "outputs",
	Short: "Generate the standard output set for a project",
	Long: `Runs the full export pipeline against a KiCad 9 project:

  3D:   3D_MODEL/<proj>.step (+ optional .glb)
  Pics: PICTURES/<proj>_{top|bottom|side[|iso]}.png
  Docs: DOCUMENTATION/<proj>_schematic.pdf, _erc.rpt, _board_prints.pdf
  Fab:  PRODUCTION/<run>/{gerbers,drill,...} + optional ZIP and KiKit package

Requires kicad-cli; the KiKit step additionally requires kikit.`,
	RunE: runOutputs,
}

// registerOutputFlags binds the shared output options onto a command.
// The outputs and watch commands accept the same set.
func registerOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outProject, "project", "p", "", "project identifier (with or without .kicad_pro)")
	cmd.Flags().StringVar(&outRoot, "root", "", "repo root containing the output folders (default .)")
	cmd.Flags().StringVar(&outProdDir, "prod-dir", "", "production folder relative to root (default PRODUCTION)")
	cmd.Flags().BoolVar(&outISO, "iso", false, "also render an isometric image")
	cmd.Flags().BoolVar(&outGLB, "glb", false, "also export a .glb 3D model")
	cmd.Flags().BoolVar(&outZip, "zip", false, "zip gerbers into the production folder")
	cmd.Flags().StringVar(&outKikit, "kikit", "", "vendor for a KiKit fab package (e.g. jlcpcb)")
	cmd.Flags().BoolVar(&outSkipDRC, "skip-drc", false, "skip the DRC report")
	cmd.Flags().BoolVar(&outNoTimestamp, "no-timestamp", false, "omit the timestamp tag from production outputs")
}

func init() {
	registerOutputFlags(outputsCmd)
	rootCmd.AddCommand(outputsCmd)
}

// outputPlanFromFlags assembles the plan shared by outputs and watch.
func outputPlanFromFlags() domain.OutputPlan {
	return domain.OutputPlan{
		Root:        outRoot,
		ProdDir:     outProdDir,
		ISO:         outISO,
		GLB:         outGLB,
		ZipGerbers:  outZip,
		Vendor:      domain.Vendor(outKikit),
		SkipDRC:     outSkipDRC,
		NoTimestamp: outNoTimestamp,
	}
}

// buildPipeline returns the injected pipeline or wires the real one.
// Locating kicad-cli happens here so commands that never export
// (fab, vendors, version) work without KiCad installed.
func buildPipeline(cmd *cobra.Command) (driving.OutputPipeline, error) {
	if outputPipeline != nil {
		return outputPipeline, nil
	}

	runner := execrunner.NewRunner()
	bin, err := kicad.LocateCLI(runner)
	if err != nil {
		return nil, err
	}
	logger.Debug("using kicad-cli at %s", bin)

	exporter := kicad.NewCLI(runner, bin, cmd.OutOrStdout(), cmd.ErrOrStderr())
	packager := kicad.NewKiKit(runner, cmd.OutOrStdout(), cmd.ErrOrStderr())
	return services.NewPipeline(exporter, packager, archive.NewZipper()), nil
}

func runOutputs(cmd *cobra.Command, _ []string) error {
	if outProject == "" {
		return fmt.Errorf("%w: project is required (--project)", domain.ErrInvalidInput)
	}
	proj, err := domain.NewProject(outProject)
	if err != nil {
		return err
	}

	pipeline, err := buildPipeline(cmd)
	if err != nil {
		return err
	}

	plan := outputPlanFromFlags()
	if plan.Vendor != "" && !plan.Vendor.IsKnown() {
		cmd.PrintErrf("Warning: vendor %q has no known profile, passing through to KiKit.\n", plan.Vendor)
	}

	report, err := pipeline.Generate(cmd.Context(), proj, plan)
	if err != nil {
		return fmt.Errorf("generate outputs: %w", err)
	}

	printRunSummary(cmd, report)
	return nil
}

var (
	summaryTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	summaryLabelStyle = lipgloss.NewStyle().Width(16)
	summaryPathStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// printRunSummary prints where the run's outputs landed.
func printRunSummary(cmd *cobra.Command, report *domain.RunReport) {
	cmd.Println()
	cmd.Println(summaryTitleStyle.Render("All done"))

	rows := []struct{ label, path string }{
		{"3D models", report.ThreeDDir},
		{"Pictures", report.PicturesDir},
		{"Documentation", report.DocsDir},
		{"Production run", report.ProductionDir},
	}
	if report.GerberZip != "" {
		rows = append(rows, struct{ label, path string }{"Gerber ZIP", report.GerberZip})
	}
	if report.VendorZip != "" {
		rows = append(rows, struct{ label, path string }{"Vendor ZIP", report.VendorZip})
	}
	for _, row := range rows {
		cmd.Printf("  %s %s\n", summaryLabelStyle.Render(row.label), summaryPathStyle.Render(row.path))
	}
}
