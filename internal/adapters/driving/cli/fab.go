package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	configfile "github.com/fabworks/kifab/internal/adapters/driven/config/file"
	"github.com/fabworks/kifab/internal/core/domain"
)

var (
	fabProject  string
	fabVendor   string
	fabToolPath string
	fabProgram  string
)

var fabCmd = &cobra.Command{
	Use:   "fab",
	Short: "Invoke the build-outputs program with a vendor profile",
	Long: `Builds the argument list for the external build-outputs program and
runs it synchronously in the current directory. The program's exit code
becomes kifab's own exit code, unchanged.

Project and vendor fall back to the configured defaults. When no vendor
is available and stdin is a terminal, one is selected interactively.`,
	RunE: runFab,
}

func init() {
	fabCmd.Flags().StringVarP(&fabProject, "project", "p", "", "project identifier (with or without .kicad_pro)")
	fabCmd.Flags().StringVar(&fabVendor, "vendor", "", "fabrication vendor tag (e.g. jlcpcb)")
	fabCmd.Flags().StringVar(&fabToolPath, "tool-path", "", "directory prepended to the child search path")
	fabCmd.Flags().StringVar(&fabProgram, "program", "", "build-outputs program to invoke (default "+domain.DefaultProgram+")")
	rootCmd.AddCommand(fabCmd)
}

func runFab(cmd *cobra.Command, _ []string) error {
	if fabDriver == nil {
		return errors.New("fab driver not configured")
	}

	project := fallbackToConfig(fabProject, configfile.KeyProject)
	if project == "" {
		return fmt.Errorf("%w: project is required (--project or config)", domain.ErrInvalidInput)
	}

	vendor := fallbackToConfig(fabVendor, configfile.KeyVendor)
	if vendor == "" {
		selected, err := promptVendor()
		if err != nil {
			return err
		}
		vendor = selected
	}

	proj, err := domain.NewProject(project)
	if err != nil {
		return err
	}

	inv := domain.Invocation{
		Program:        fallbackToConfig(fabProgram, configfile.KeyProgram),
		Project:        proj,
		Vendor:         domain.Vendor(vendor),
		ToolPathPrefix: fallbackToConfig(fabToolPath, configfile.KeyToolPath),
	}

	code, err := fabDriver.Invoke(cmd.Context(), inv)
	if err != nil {
		return fmt.Errorf("invoke %s: %w", inv.ProgramOrDefault(), err)
	}
	if code != 0 {
		return domain.NewExitError(code)
	}
	return nil
}

// fallbackToConfig returns the flag value, or the configured default
// when the flag is unset.
func fallbackToConfig(flagValue, key string) string {
	if flagValue != "" {
		return flagValue
	}
	if configStore == nil {
		return ""
	}
	return configStore.GetString(key)
}

// promptVendor asks for a vendor interactively. Outside a terminal the
// vendor is simply missing input.
func promptVendor() (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("%w: vendor is required (--vendor or config)", domain.ErrInvalidInput)
	}

	vendors := domain.AllVendors()
	items := make([]string, len(vendors))
	for i, v := range vendors {
		items[i] = fmt.Sprintf("%s - %s", v, v.Description())
	}

	prompt := promptui.Select{
		Label: "Fabrication vendor",
		Items: items,
	}
	idx, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("select vendor: %w", err)
	}
	return vendors[idx].String(), nil
}
