package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabworks/kifab/internal/logger"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "kifab", rootCmd.Use)
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, want := range []string{"fab", "outputs", "watch", "vendors", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestRootCmd_VerboseFlagEnablesLogger(t *testing.T) {
	injectServices(t, nil, nil, nil)
	t.Cleanup(func() { logger.SetVerbose(false) })

	_, err := execute(t, "version", "--verbose")

	require.NoError(t, err)
	assert.True(t, logger.IsVerbose())
}

func TestRootCmd_ConfigDirFlagCreatesStore(t *testing.T) {
	// Leave configStore nil so initDependencies builds the real one.
	prevConfig := configStore
	prevDriver := fabDriver
	configStore = nil
	t.Cleanup(func() {
		configStore = prevConfig
		fabDriver = prevDriver
	})

	dir := filepath.Join(t.TempDir(), "cfg")
	_, err := execute(t, "version", "--config-dir", dir)

	require.NoError(t, err)
	require.NotNil(t, configStore)
	assert.Equal(t, filepath.Join(dir, "config.toml"), configStore.Path())
}

func TestWatchCmd_SharesOutputFlags(t *testing.T) {
	for _, name := range []string{"project", "iso", "zip", "kikit", "no-timestamp"} {
		assert.NotNil(t, watchCmd.Flags().Lookup(name), "watch should accept --%s", name)
	}
}
