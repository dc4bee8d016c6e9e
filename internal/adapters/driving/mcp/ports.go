package mcp

import (
	"github.com/custodia-labs/whatif-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Simulator runs the timeline pipeline.
	Simulator driving.Simulator

	// Decisions manages saved decisions.
	Decisions driving.DecisionService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Simulator == nil {
		return ErrMissingSimulator
	}
	// Decisions is optional; saved-decision tools report it as unavailable.
	return nil
}
