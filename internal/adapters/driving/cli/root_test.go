package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/whatif-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/whatif-cli/internal/core/domain"
	"github.com/custodia-labs/whatif-cli/internal/core/ports/driving"
)

// testEnv holds the mocks installed by setupTestServices.
type testEnv struct {
	sim       *mockSimulator
	decisions *mockDecisionService
}

var env testEnv

// resetFlags restores every package flag variable to its default.
func resetFlags() {
	verbose = false
	configDir = ""

	simulateQuestion = ""
	simulateActual = ""
	simulateAlternate = ""
	simulateContext = ""
	simulateImportance = map[string]int{}
	simulateFile = ""
	simulateJSON = false
	simulateSeed = 0
	simulateSave = false
	simulateNoDelay = false

	categoriesJSON = false
	savedJSON = false
	configForce = false
	watchJSON = false
	watchInterval = 500 * time.Millisecond
	tuiNoDelay = false
	tuiFile = ""
}

// setupTestServices installs mocks and returns a cleanup function.
func setupTestServices() func() {
	prevSim, prevDec := simulator, decisionService
	prevStore, prevSettings := configStore, settings
	prevBoot, prevFactory := bootstrap, simulatorFactory

	sim := &mockSimulator{}
	env = testEnv{
		sim:       sim,
		decisions: &mockDecisionService{sim: sim},
	}
	simulator = env.sim
	decisionService = env.decisions
	configStore = memory.NewConfigStore()
	s := domain.DefaultSettings()
	s.Simulation.DelayMS = 0
	settings = s
	bootstrap = nil
	simulatorFactory = nil
	resetFlags()

	return func() {
		simulator, decisionService = prevSim, prevDec
		configStore, settings = prevStore, prevSettings
		bootstrap, simulatorFactory = prevBoot, prevFactory
		resetFlags()
	}
}

// execute runs the root command and returns stdout and stderr.
func execute(args ...string) (stdout, stderr string, err error) {
	return executeContext(context.Background(), args...)
}

func executeContext(ctx context.Context, args ...string) (stdout, stderr string, err error) {
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	// Subcommands keep the context of their first run unless it is reset.
	setContextAll(rootCmd, ctx)
	err = rootCmd.ExecuteContext(ctx)
	return out.String(), errOut.String(), err
}

func setContextAll(cmd *cobra.Command, ctx context.Context) {
	cmd.SetContext(ctx)
	for _, c := range cmd.Commands() {
		setContextAll(c, ctx)
	}
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "whatif", rootCmd.Use)
	assert.Contains(t, rootCmd.Long, "not predictions")
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	v := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, v)
	assert.Equal(t, "v", v.Shorthand)
	assert.Equal(t, "false", v.DefValue)

	dir := rootCmd.PersistentFlags().Lookup("config-dir")
	require.NotNil(t, dir)
	assert.Empty(t, dir.DefValue)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0, len(rootCmd.Commands()))
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	for _, want := range []string{"simulate", "categories", "saved", "watch", "config", "tui", "mcp", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCmd_BootstrapReceivesConfigDir(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	var got string
	SetBootstrap(func(dir string) error {
		got = dir
		return nil
	})

	_, _, err := execute("--config-dir", "/tmp/whatif-test", "version")

	require.NoError(t, err)
	assert.Equal(t, "/tmp/whatif-test", got)
}

func TestRootCmd_BootstrapError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	bootErr := errors.New("bad config")
	SetBootstrap(func(string) error { return bootErr })

	_, _, err := execute("categories")

	assert.ErrorIs(t, err, bootErr)
}

func TestSetSettings_Normalises(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	SetSettings(domain.Settings{Simulation: domain.SimulationSettings{DelayMS: -5}})

	assert.Equal(t, domain.DefaultDelayMS, settings.Simulation.DelayMS)
	assert.Equal(t, domain.StorageMemory, settings.Storage.Backend)
	assert.Equal(t, domain.OutputText, settings.Output.Format)
}

func TestSetServices(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	sim := &mockSimulator{}
	SetServices(sim, nil)

	assert.Equal(t, sim, simulator)
	assert.Nil(t, decisionService)
}

func TestSetConfigStore(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	store := memory.NewConfigStore()
	SetConfigStore(store)

	assert.Equal(t, store, configStore)
}

func TestSetVersion(t *testing.T) {
	original := version
	defer func() { version = original }()

	SetVersion("1.2.3")

	assert.Equal(t, "1.2.3", version)
}

func TestSimulatorFor(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	assert.Equal(t, driving.Simulator(env.sim), simulatorFor(0))
	assert.Equal(t, driving.Simulator(env.sim), simulatorFor(9), "no factory registered")

	SetSimulatorFactory(func(seed uint64) driving.Simulator {
		return &mockSimulator{seed: seed}
	})

	assert.Equal(t, driving.Simulator(env.sim), simulatorFor(0))
	seeded, ok := simulatorFor(9).(*mockSimulator)
	require.True(t, ok)
	assert.Equal(t, uint64(9), seeded.seed)
}
