package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/fabworks/kifab/internal/core/domain"
	"github.com/fabworks/kifab/internal/logger"
)

// watchDebounce coalesces the burst of write events editors produce
// on save into a single regeneration.
const watchDebounce = 500 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate outputs when the design changes",
	Long: `Watches the project's schematic and board files and reruns the output
pipeline after each save. Accepts the same options as the outputs
command. Stop with Ctrl-C.`,
	RunE: runWatch,
}

func init() {
	registerOutputFlags(watchCmd)
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
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

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the containing directories; editors replace files on save,
	// so watching the paths directly would lose them.
	watched := map[string]struct{}{}
	for _, f := range []string{proj.SchFile(), proj.PcbFile()} {
		dir := filepath.Dir(f)
		if _, ok := watched[dir]; ok {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		watched[dir] = struct{}{}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	regenerate := func() {
		cmd.Println("Regenerating outputs...")
		report, err := pipeline.Generate(ctx, proj, plan)
		if err != nil {
			cmd.PrintErrf("Regeneration failed: %v\n", err)
			return
		}
		printRunSummary(cmd, report)
	}

	cmd.Printf("Watching %s and %s (Ctrl-C to stop)\n", proj.SchFile(), proj.PcbFile())
	regenerate()

	debounce := time.NewTimer(watchDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}

	relevant := map[string]struct{}{
		filepath.Clean(proj.SchFile()): {},
		filepath.Clean(proj.PcbFile()): {},
	}

	for {
		select {
		case <-ctx.Done():
			cmd.Println("\nStopped.")
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			if _, ok := relevant[filepath.Clean(ev.Name)]; !ok {
				continue
			}
			logger.Debug("change event: %s", ev)
			debounce.Reset(watchDebounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error: %v", err)

		case <-debounce.C:
			regenerate()
		}
	}
}
