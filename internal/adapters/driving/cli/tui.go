package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/whatif-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/whatif-cli/internal/adapters/driving/tui"
)

var (
	tuiNoDelay bool
	tuiFile    string
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface.

Fill in the decision, explore both timelines, then tune how much each area
of life matters and watch the balance move.

Controls:
  Tab/Shift+Tab - Move between fields
  Ctrl+S        - Explore
  ↑/↓           - Select a category
  ←/→           - Change its importance
  s             - Save the decision
  r             - Start over
  Ctrl+O        - Saved decisions
  Esc           - Back
  Ctrl+C        - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().BoolVar(&tuiNoDelay, "no-delay", false, "skip the processing screen delay")
	tuiCmd.Flags().StringVarP(&tuiFile, "file", "f", "", "pre-fill the form from a TOML decision file")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if simulator == nil {
		return errors.New("simulator not configured")
	}

	app, err := tui.NewApp(tui.NewPorts(simulator, decisionService))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())
	if !tuiNoDelay {
		app.WithDelay(time.Duration(settings.Simulation.DelayMS) * time.Millisecond)
	}
	if tuiFile != "" {
		d, err := file.LoadDecision(tuiFile)
		if err != nil {
			return err
		}
		app.WithDecision(d)
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
