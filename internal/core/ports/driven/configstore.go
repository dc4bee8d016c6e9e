package driven

import "github.com/custodia-labs/whatif-cli/internal/core/domain"

// ConfigStore provides access to user settings.
// Implementations handle persistence (e.g., TOML files).
type ConfigStore interface {
	// Load reads settings from storage.
	// A missing file yields domain.DefaultSettings.
	Load() (domain.Settings, error)

	// Save persists settings.
	Save(settings domain.Settings) error

	// Path returns the configuration file path.
	Path() string
}
