package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/whatif-cli/internal/core/domain"
	"github.com/custodia-labs/whatif-cli/internal/core/ports/driven"
	"github.com/custodia-labs/whatif-cli/internal/core/ports/driving"
)

// Ensure DecisionService implements the interface.
var _ driving.DecisionService = (*DecisionService)(nil)

// DecisionService manages saved decisions.
type DecisionService struct {
	store     driven.DecisionStore
	simulator driving.Simulator
	now       func() time.Time
}

// NewDecisionService creates a new decision service.
func NewDecisionService(store driven.DecisionStore, simulator driving.Simulator) *DecisionService {
	return &DecisionService{
		store:     store,
		simulator: simulator,
		now:       time.Now,
	}
}

// Save stores a decision for later replay.
// The stored copy has defaults applied so replays see the same categories.
func (s *DecisionService) Save(ctx context.Context, decision domain.Decision) (*domain.SavedDecision, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	d := decision.Normalise()
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("validating decision: %w", err)
	}

	saved := domain.SavedDecision{
		ID:        uuid.NewString(),
		Decision:  d,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.Save(ctx, saved); err != nil {
		return nil, fmt.Errorf("saving decision: %w", err)
	}
	return &saved, nil
}

// Get retrieves a saved decision by ID.
func (s *DecisionService) Get(ctx context.Context, id string) (*domain.SavedDecision, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.store.Get(ctx, id)
}

// List returns saved decisions, oldest first.
func (s *DecisionService) List(ctx context.Context) ([]domain.SavedDecision, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.List(ctx)
}

// Delete removes a saved decision.
func (s *DecisionService) Delete(ctx context.Context, id string) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	// Verify decision exists
	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

// Load re-simulates a saved decision with fresh randomness.
func (s *DecisionService) Load(ctx context.Context, id string) (*domain.Simulation, error) {
	if s.simulator == nil {
		return nil, domain.ErrNotImplemented
	}
	saved, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.simulator.Simulate(ctx, saved.Decision)
}
