package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/whatif-cli/internal/core/catalog"
	"github.com/custodia-labs/whatif-cli/internal/core/domain"
	"github.com/custodia-labs/whatif-cli/internal/core/ports/driven"
	"github.com/custodia-labs/whatif-cli/internal/core/ports/driving"
	"github.com/custodia-labs/whatif-cli/internal/logger"
)

// Ensure SimulationService implements the interface.
var _ driving.Simulator = (*SimulationService)(nil)

// SimulationService runs the timeline pipeline.
// It holds no per-run state and is safe for concurrent use as long as the
// random factory returns independent sources.
type SimulationService struct {
	generator *Generator
	augmenter *Augmenter
	random    driven.RandomFactory
}

// NewSimulationService creates a simulation service.
// Nil generator or augmenter fall back to the built-in tables.
func NewSimulationService(
	generator *Generator,
	augmenter *Augmenter,
	random driven.RandomFactory,
) *SimulationService {
	if generator == nil {
		generator = NewGenerator(catalog.Default(), catalog.DefaultOverride())
	}
	if augmenter == nil {
		augmenter = NewAugmenter(nil)
	}
	return &SimulationService{
		generator: generator,
		augmenter: augmenter,
		random:    random,
	}
}

// Simulate generates both timelines for a decision.
func (s *SimulationService) Simulate(ctx context.Context, decision domain.Decision) (*domain.Simulation, error) {
	if s.random == nil {
		return nil, domain.ErrNotImplemented
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d := decision.Normalise()
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("validating decision: %w", err)
	}

	logger.Section("Simulation")
	logger.Debug("question: %q", d.Question)

	rng := s.random()
	actual, alternate, err := s.generator.Generate(d, rng)
	if err != nil {
		return nil, err
	}
	s.augmenter.Augment(d, &actual, &alternate, rng)

	sim := &domain.Simulation{
		Decision:  d,
		Actual:    timeline(domain.SideActual, actual),
		Alternate: timeline(domain.SideAlternate, alternate),
	}
	sim.Balance = MapBalance(sim.Actual.OverallSentiment, sim.Alternate.OverallSentiment)

	logger.Info("sentiment actual=%.2f alternate=%.2f (%s)",
		sim.Actual.OverallSentiment, sim.Alternate.OverallSentiment, sim.Balance.Comparison)
	return sim, nil
}

// AdjustImportance changes one category weight and regenerates from scratch.
func (s *SimulationService) AdjustImportance(
	ctx context.Context,
	decision domain.Decision,
	categoryID domain.CategoryID,
	importance int,
) (*domain.Simulation, error) {
	updated, err := decision.Normalise().WithImportance(categoryID, importance)
	if err != nil {
		return nil, fmt.Errorf("adjusting importance: %w", err)
	}
	logger.Debug("importance %s -> %d", categoryID, domain.ClampImportance(importance))
	return s.Simulate(ctx, updated)
}

// Categories returns the built-in category set.
func (s *SimulationService) Categories() []domain.Category {
	return domain.DefaultCategories()
}

func timeline(side domain.Side, insights []domain.Insight) domain.Timeline {
	if insights == nil {
		insights = []domain.Insight{}
	}
	return domain.Timeline{
		Side:             side,
		Insights:         insights,
		OverallSentiment: Aggregate(insights),
	}
}
