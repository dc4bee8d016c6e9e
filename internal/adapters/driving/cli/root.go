// Package cli provides the command-line interface for whatif.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/whatif-cli/internal/core/domain"
	"github.com/custodia-labs/whatif-cli/internal/core/ports/driven"
	"github.com/custodia-labs/whatif-cli/internal/core/ports/driving"
	"github.com/custodia-labs/whatif-cli/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Global flags.
var (
	verbose   bool
	configDir string
)

// Services injected by main.
var (
	simulator       driving.Simulator
	decisionService driving.DecisionService
	configStore     driven.ConfigStore
	settings        = domain.DefaultSettings()

	// bootstrap builds services once flags are parsed.
	bootstrap func(configDir string) error

	// simulatorFactory builds a seeded simulator for --seed.
	simulatorFactory func(seed uint64) driving.Simulator
)

var rootCmd = &cobra.Command{
	Use:   "whatif",
	Short: "Explore the path not taken",
	Long: `whatif imagines how a past decision might have played out differently.

Describe what you decided, what the alternative was, and optionally some
context. whatif generates two timelines of short insights across the areas
of life you care about, scores them, and shows where each path lands on a
single worse-to-better balance.

Results are illustrative and randomised. They are not predictions.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if bootstrap != nil {
			return bootstrap(configDir)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print pipeline steps to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.whatif)")
}

// SetServices injects the core services.
func SetServices(sim driving.Simulator, decisions driving.DecisionService) {
	simulator = sim
	decisionService = decisions
}

// SetConfigStore injects the settings store.
func SetConfigStore(store driven.ConfigStore) {
	configStore = store
}

// SetSettings sets the loaded settings.
func SetSettings(s domain.Settings) {
	settings = s.Normalise()
}

// SetBootstrap registers the function that wires services after flag parsing.
func SetBootstrap(fn func(configDir string) error) {
	bootstrap = fn
}

// SetSimulatorFactory registers the constructor used for explicit seeds.
func SetSimulatorFactory(fn func(seed uint64) driving.Simulator) {
	simulatorFactory = fn
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with a context.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// simulatorFor returns a simulator seeded with seed, or the shared one when
// seed is zero or no factory is registered.
func simulatorFor(seed uint64) driving.Simulator {
	if seed != 0 && simulatorFactory != nil {
		return simulatorFactory(seed)
	}
	return simulator
}
