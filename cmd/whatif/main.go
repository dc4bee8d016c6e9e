// Command whatif explores how a past decision might have played out.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/custodia-labs/whatif-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/whatif-cli/internal/adapters/driven/random"
	"github.com/custodia-labs/whatif-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/whatif-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/whatif-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/whatif-cli/internal/core/domain"
	"github.com/custodia-labs/whatif-cli/internal/core/ports/driven"
	"github.com/custodia-labs/whatif-cli/internal/core/ports/driving"
	"github.com/custodia-labs/whatif-cli/internal/core/services"
	"github.com/custodia-labs/whatif-cli/internal/logger"
)

// version is set via -ldflags at build time.
var version = "dev"

func main() {
	cli.SetVersion(version)

	var closers []func() error
	cli.SetBootstrap(func(configDir string) error {
		closeFn, err := bootstrap(configDir)
		if closeFn != nil {
			closers = append(closers, closeFn)
		}
		return err
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.ExecuteContext(ctx)
	stop()

	for _, c := range closers {
		if cerr := c(); cerr != nil {
			fmt.Fprintf(os.Stderr, "warning: closing store: %v\n", cerr)
		}
	}
	if err != nil {
		os.Exit(1)
	}
}

// bootstrap wires configuration, the engine and the saved-decision store.
// The returned function releases the store.
func bootstrap(configDir string) (func() error, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}

	settings, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v (using defaults)\n", err)
	}
	cli.SetConfigStore(store)
	cli.SetSettings(settings)
	settings = settings.Normalise()

	newSimulator := func(seed uint64) driving.Simulator {
		return services.NewSimulationService(nil, nil, random.FromSeed(seed))
	}
	sim := newSimulator(settings.Simulation.Seed)
	cli.SetSimulatorFactory(newSimulator)

	decisions, closeFn, err := openDecisionStore(settings.Storage, configDir)
	if err != nil {
		return nil, err
	}
	logger.Debug("storage backend: %s", settings.Storage.Backend)

	cli.SetServices(sim, services.NewDecisionService(decisions, sim))
	return closeFn, nil
}

func openDecisionStore(cfg domain.StorageSettings, configDir string) (driven.DecisionStore, func() error, error) {
	if cfg.Backend != domain.StorageSQLite {
		return memory.NewDecisionStore(), nil, nil
	}

	dataDir := cfg.DataDir
	if dataDir == "" && configDir != "" {
		dataDir = filepath.Join(configDir, "data")
	}
	db, err := sqlite.NewStore(dataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening decision store: %w", err)
	}
	return db.DecisionStore(), db.Close, nil
}
