package driving

import (
	"context"

	"github.com/custodia-labs/whatif-cli/internal/core/domain"
)

// Simulator runs decisions through the timeline engine.
type Simulator interface {
	// Simulate generates both timelines for a decision.
	// Empty categories are replaced with the defaults.
	Simulate(ctx context.Context, decision domain.Decision) (*domain.Simulation, error)

	// AdjustImportance changes one category weight and regenerates both
	// timelines from scratch. The input decision is not modified.
	AdjustImportance(
		ctx context.Context,
		decision domain.Decision,
		categoryID domain.CategoryID,
		importance int,
	) (*domain.Simulation, error)

	// Categories returns the built-in category set.
	Categories() []domain.Category
}
