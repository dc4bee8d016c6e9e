package cli

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/whatif-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/whatif-cli/internal/core/domain"
)

var (
	simulateQuestion   string
	simulateActual     string
	simulateAlternate  string
	simulateContext    string
	simulateImportance = map[string]int{}
	simulateFile       string
	simulateJSON       bool
	simulateSeed       uint64
	simulateSave       bool
	simulateNoDelay    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Compare a decision with the path not taken",
	Long: `Generates two alternate timelines for a decision and compares them.

The decision comes from flags, from a TOML decision file (--file), or both;
flags override values read from the file.

Examples:
  whatif simulate -q "Should I have moved?" -a "I moved to Boston" -b "I stayed home"
  whatif simulate -f decision.toml --importance career=9 --json
  whatif simulate -f decision.toml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	f := simulateCmd.Flags()
	f.StringVarP(&simulateQuestion, "question", "q", "", "the decision you are curious about")
	f.StringVarP(&simulateActual, "actual", "a", "", "what you actually did")
	f.StringVarP(&simulateAlternate, "alternate", "b", "", "the alternative you did not take")
	f.StringVarP(&simulateContext, "context", "c", "", "optional context (age, location, job...)")
	f.StringToIntVar(&simulateImportance, "importance", simulateImportance, "category weights, e.g. career=8,finances=3")
	f.StringVarP(&simulateFile, "file", "f", "", "read the decision from a TOML file")
	f.BoolVar(&simulateJSON, "json", false, "output the simulation as JSON")
	f.Uint64Var(&simulateSeed, "seed", 0, "replay randomness deterministically (0 = fresh)")
	f.BoolVar(&simulateSave, "save", false, "save the decision for later replay")
	f.BoolVar(&simulateNoDelay, "no-delay", false, "skip the reveal delay")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	sim := simulatorFor(simulateSeed)
	if sim == nil {
		return errors.New("simulator not configured")
	}

	decision, err := decisionFromFlags()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	start := time.Now()
	result, err := sim.Simulate(ctx, decision)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	jsonOut := wantJSON(simulateJSON)
	if !jsonOut && !simulateNoDelay {
		cmd.PrintErrln("Exploring parallel timelines...")
		if err := reveal(ctx, start, time.Duration(settings.Simulation.DelayMS)*time.Millisecond); err != nil {
			return err
		}
	}

	if jsonOut {
		if err := outputJSON(cmd, result); err != nil {
			return err
		}
	} else {
		renderSimulation(cmd.OutOrStdout(), result, outputWidth(cmd))
	}

	if simulateSave {
		return saveDecision(cmd, result.Decision, jsonOut)
	}
	return nil
}

// decisionFromFlags merges the optional decision file with the flags.
func decisionFromFlags() (domain.Decision, error) {
	var d domain.Decision
	if simulateFile != "" {
		loaded, err := file.LoadDecision(simulateFile)
		if err != nil {
			return domain.Decision{}, err
		}
		d = loaded
	}

	override := func(dst *string, v string) {
		if strings.TrimSpace(v) != "" {
			*dst = v
		}
	}
	override(&d.Question, simulateQuestion)
	override(&d.ActualChoice, simulateActual)
	override(&d.AlternateChoice, simulateAlternate)
	override(&d.Context, simulateContext)

	return applyImportance(d, simulateImportance)
}

// applyImportance sets category weights by id. Defaults are applied first so
// that a weight can be given for any built-in category.
func applyImportance(d domain.Decision, weights map[string]int) (domain.Decision, error) {
	if len(weights) == 0 {
		return d, nil
	}
	out := d.Normalise()
	for _, id := range slices.Sorted(maps.Keys(weights)) {
		var err error
		out, err = out.WithImportance(domain.CategoryID(id), weights[id])
		if err != nil {
			return domain.Decision{}, fmt.Errorf("importance: %w", err)
		}
	}
	return out, nil
}

// reveal waits until delay has passed since start. It returns early with
// the context error when cancelled.
func reveal(ctx context.Context, start time.Time, delay time.Duration) error {
	rest := delay - time.Since(start)
	if rest <= 0 {
		return nil
	}
	timer := time.NewTimer(rest)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func saveDecision(cmd *cobra.Command, d domain.Decision, quiet bool) error {
	if decisionService == nil {
		return errors.New("decision service not configured")
	}
	saved, err := decisionService.Save(cmd.Context(), d)
	if err != nil {
		return fmt.Errorf("failed to save decision: %w", err)
	}
	if quiet {
		cmd.PrintErrf("Saved as %s\n", saved.ID)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nSaved as %s\n", saved.ID)
	return nil
}
