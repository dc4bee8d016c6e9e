package domain

// StorageBackend selects where saved decisions live.
type StorageBackend string

// Available storage backends.
const (
	// StorageMemory keeps saved decisions for the lifetime of the process.
	StorageMemory StorageBackend = "memory"

	// StorageSQLite keeps saved decisions in a local SQLite database.
	StorageSQLite StorageBackend = "sqlite"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	return b == StorageMemory || b == StorageSQLite
}

// OutputFormat selects how the CLI renders simulations.
type OutputFormat string

// Available output formats.
const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

// IsValid returns true if the format is recognised.
func (f OutputFormat) IsValid() bool {
	return f == OutputText || f == OutputJSON
}

// DefaultDelayMS is the cosmetic processing delay before results are shown.
const DefaultDelayMS = 1500

// Settings is the user configuration for whatif.
type Settings struct {
	Simulation SimulationSettings `toml:"simulation"`
	Storage    StorageSettings    `toml:"storage"`
	Output     OutputSettings     `toml:"output"`
}

// SimulationSettings tunes how results are produced and revealed.
type SimulationSettings struct {
	// DelayMS is a presentation-only pause; it never affects results.
	DelayMS int `toml:"delay_ms"`

	// Seed replays randomness deterministically when non-zero.
	Seed uint64 `toml:"seed"`
}

// StorageSettings configures the saved-decision store.
type StorageSettings struct {
	Backend StorageBackend `toml:"backend"`

	// DataDir holds the SQLite database. Empty means ~/.whatif/data.
	DataDir string `toml:"data_dir"`
}

// OutputSettings configures CLI rendering.
type OutputSettings struct {
	Format OutputFormat `toml:"format"`

	// Width of the balance bar; 0 detects the terminal width.
	Width int `toml:"width"`
}

// DefaultSettings returns settings with sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		Simulation: SimulationSettings{DelayMS: DefaultDelayMS},
		Storage:    StorageSettings{Backend: StorageMemory},
		Output:     OutputSettings{Format: OutputText},
	}
}

// Normalise replaces invalid values with their defaults.
func (s Settings) Normalise() Settings {
	def := DefaultSettings()
	if s.Simulation.DelayMS < 0 {
		s.Simulation.DelayMS = def.Simulation.DelayMS
	}
	if !s.Storage.Backend.IsValid() {
		s.Storage.Backend = def.Storage.Backend
	}
	if !s.Output.Format.IsValid() {
		s.Output.Format = def.Output.Format
	}
	if s.Output.Width < 0 {
		s.Output.Width = 0
	}
	return s
}
