package memory

import (
	"sync"

	"github.com/custodia-labs/whatif-cli/internal/core/domain"
	"github.com/custodia-labs/whatif-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is an in-memory implementation of driven.ConfigStore.
// It is used when no config directory is available and in tests.
type ConfigStore struct {
	mu       sync.RWMutex
	settings domain.Settings
}

// NewConfigStore creates a new in-memory config store holding the defaults.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		settings: domain.DefaultSettings(),
	}
}

// Load returns the current settings.
func (s *ConfigStore) Load() (domain.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings, nil
}

// Save replaces the current settings after normalising them.
func (s *ConfigStore) Save(settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings.Normalise()
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return ":memory:"
}
