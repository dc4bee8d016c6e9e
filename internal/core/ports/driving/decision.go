package driving

import (
	"context"

	"github.com/custodia-labs/whatif-cli/internal/core/domain"
)

// DecisionService manages previously simulated decisions.
type DecisionService interface {
	// Save stores a decision for later replay.
	Save(ctx context.Context, decision domain.Decision) (*domain.SavedDecision, error)

	// Get retrieves a saved decision by ID.
	Get(ctx context.Context, id string) (*domain.SavedDecision, error)

	// List returns saved decisions, oldest first.
	List(ctx context.Context) ([]domain.SavedDecision, error)

	// Delete removes a saved decision.
	Delete(ctx context.Context, id string) error

	// Load re-simulates a saved decision with fresh randomness.
	Load(ctx context.Context, id string) (*domain.Simulation, error)
}
