package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/fabworks/kifab/internal/core/domain"
)

// stubConfig is an in-memory driven.ConfigStore.
type stubConfig struct {
	values map[string]string
}

func (s *stubConfig) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *stubConfig) GetString(key string) string { return s.values[key] }

func (s *stubConfig) Set(key string, value any) error {
	if str, ok := value.(string); ok {
		s.values[key] = str
	}
	return nil
}

func (s *stubConfig) Save() error { return nil }
func (s *stubConfig) Load() error { return nil }
func (s *stubConfig) Path() string {
	return "/tmp/kifab-test/config.toml"
}

// stubDriver records the invocation and returns a canned exit code.
type stubDriver struct {
	exitCode int
	err      error
	got      *domain.Invocation
}

func (s *stubDriver) Invoke(_ context.Context, inv domain.Invocation) (int, error) {
	s.got = &inv
	return s.exitCode, s.err
}

// stubPipeline records the generate call and returns a canned report.
type stubPipeline struct {
	report *domain.RunReport
	err    error

	gotProject domain.Project
	gotPlan    domain.OutputPlan
}

func (s *stubPipeline) Generate(_ context.Context, proj domain.Project, plan domain.OutputPlan) (*domain.RunReport, error) {
	s.gotProject = proj
	s.gotPlan = plan
	if s.err != nil {
		return nil, s.err
	}
	return s.report, nil
}

// injectServices swaps the package-level services for fakes and
// restores them when the test finishes.
func injectServices(t *testing.T, driver *stubDriver, pipeline *stubPipeline, config *stubConfig) {
	t.Helper()

	prevDriver := fabDriver
	prevPipeline := outputPipeline
	prevConfig := configStore
	t.Cleanup(func() {
		fabDriver = prevDriver
		outputPipeline = prevPipeline
		configStore = prevConfig
	})

	if driver != nil {
		fabDriver = driver
	}
	if pipeline != nil {
		outputPipeline = pipeline
	}
	if config == nil {
		config = &stubConfig{values: map[string]string{}}
	}
	configStore = config
}

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		resetFlags()
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags clears flag state leaked between Execute calls.
func resetFlags() {
	fabProject, fabVendor, fabToolPath, fabProgram = "", "", "", ""
	outProject, outRoot, outProdDir, outKikit = "", "", "", ""
	outISO, outGLB, outZip, outSkipDRC, outNoTimestamp = false, false, false, false, false
	verboseFlag = false
	configDirFlag = ""
}
