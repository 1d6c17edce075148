// Package cli is the driving adapter exposing kifab over a cobra
// command tree. Commands talk to the core through the driving ports;
// package-level service variables allow tests to inject fakes.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/fabworks/kifab/internal/adapters/driven/config/file"
	execrunner "github.com/fabworks/kifab/internal/adapters/driven/exec"
	"github.com/fabworks/kifab/internal/core/ports/driven"
	"github.com/fabworks/kifab/internal/core/ports/driving"
	"github.com/fabworks/kifab/internal/core/services"
	"github.com/fabworks/kifab/internal/logger"
)

// version is set from main via SetVersion.
var version = "dev"

// Injected services. Nil values are constructed on first use so tests
// can substitute fakes before Execute.
var (
	fabDriver      driving.FabDriver
	outputPipeline driving.OutputPipeline
	configStore    driven.ConfigStore
)

var (
	verboseFlag   bool
	configDirFlag string
)

var rootCmd = &cobra.Command{
	Use:   "kifab",
	Short: "Standardise KiCad project outputs",
	Long: `kifab drives kicad-cli and KiKit to generate the standard output set
for a KiCad 9 project (3D models, renders, documentation, gerbers), and
invokes an external build-outputs program with a vendor fabrication profile.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initDependencies,
}

// initDependencies wires default implementations for anything not
// already injected.
func initDependencies(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	if configStore == nil {
		store, err := configfile.NewConfigStore(configDirFlag)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		configStore = store
	}
	if fabDriver == nil {
		fabDriver = services.NewInvoker(execrunner.NewRunner(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	}
	return nil
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "configuration directory (default ~/.kifab)")
}
