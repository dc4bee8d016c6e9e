// Package tui provides an interactive terminal user interface for whatif.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/whatif-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Simulator generates timelines.
	Simulator driving.Simulator

	// Decisions manages saved decisions. Optional.
	Decisions driving.DecisionService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(simulator driving.Simulator, decisions driving.DecisionService) *Ports {
	return &Ports{
		Simulator: simulator,
		Decisions: decisions,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Simulator == nil {
		return ErrMissingSimulator
	}
	return nil
}
