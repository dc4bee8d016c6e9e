package driven

import (
	"context"

	"github.com/custodia-labs/whatif-cli/internal/core/domain"
)

// DecisionStore persists saved decisions.
type DecisionStore interface {
	// Save stores or updates a saved decision.
	Save(ctx context.Context, saved domain.SavedDecision) error

	// Get retrieves a saved decision by ID.
	Get(ctx context.Context, id string) (*domain.SavedDecision, error)

	// Delete removes a saved decision.
	Delete(ctx context.Context, id string) error

	// List returns all saved decisions, oldest first.
	List(ctx context.Context) ([]domain.SavedDecision, error)
}
