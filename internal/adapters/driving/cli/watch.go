package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/whatif-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/whatif-cli/internal/logger"
)

// watchSettle is the minimum wait after a change so editors finish writing.
const watchSettle = 50 * time.Millisecond

var (
	watchInterval time.Duration
	watchJSON     bool
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-simulate a decision file whenever it changes",
	Long: `Runs the decision in a TOML decision file, then runs it again every time
the file is saved. Bursts of changes are coalesced so a run happens at most
once per interval. Parse errors are reported and watching continues.

Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 500*time.Millisecond, "minimum time between runs")
	watchCmd.Flags().BoolVar(&watchJSON, "json", false, "output simulations as JSON")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	sim := simulatorFor(settings.Simulation.Seed)
	if sim == nil {
		return errors.New("simulator not configured")
	}

	path := args[0]
	run := func() error {
		d, err := file.LoadDecision(path)
		if err != nil {
			return err
		}
		result, err := sim.Simulate(cmd.Context(), d)
		if err != nil {
			return fmt.Errorf("simulation failed: %w", err)
		}
		if wantJSON(watchJSON) {
			return outputJSON(cmd, result)
		}
		renderSimulation(cmd.OutOrStdout(), result, outputWidth(cmd))
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	}

	report := func(err error) {
		cmd.PrintErrf("Error: %v\n", err)
	}

	cmd.PrintErrf("Watching %s (Ctrl+C to stop)\n", path)
	return watchFile(cmd.Context(), path, watchInterval, run, report)
}

// watchFile calls run once, then again after each change to path until ctx is
// done. Errors from run go to report and do not stop watching.
func watchFile(ctx context.Context, path string, interval time.Duration, run func() error, report func(error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	// Editors often replace the file by rename, so the directory is watched.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	limiter := rate.NewLimiter(rate.Every(max(interval, time.Millisecond)), 1)
	limiter.Allow()
	if err := run(); err != nil {
		report(err)
	}

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			logger.Debug("watch: %s", ev)
			if pending != nil {
				continue
			}
			r := limiter.Reserve()
			pending = time.After(max(r.Delay(), watchSettle))

		case <-pending:
			pending = nil
			if err := run(); err != nil {
				report(err)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch: %v", err)
		}
	}
}
