package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/custodia-labs/whatif-cli/internal/core/domain"
	"github.com/custodia-labs/whatif-cli/internal/core/ports/driven"
)

// Ensure DecisionStore implements the interface.
var _ driven.DecisionStore = (*DecisionStore)(nil)

// DecisionStore is an in-memory implementation of driven.DecisionStore.
// Decisions are listed in the order they were first saved.
type DecisionStore struct {
	mu        sync.RWMutex
	decisions map[string]domain.SavedDecision
	order     []string
}

// NewDecisionStore creates a new in-memory decision store.
func NewDecisionStore() *DecisionStore {
	return &DecisionStore{
		decisions: make(map[string]domain.SavedDecision),
	}
}

// Save stores or updates a saved decision.
func (s *DecisionStore) Save(_ context.Context, saved domain.SavedDecision) error {
	if saved.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.decisions[saved.ID]; !ok {
		s.order = append(s.order, saved.ID)
	}
	s.decisions[saved.ID] = clone(saved)
	return nil
}

// Get retrieves a saved decision by ID.
func (s *DecisionStore) Get(_ context.Context, id string) (*domain.SavedDecision, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	saved, ok := s.decisions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	saved = clone(saved)
	return &saved, nil
}

// Delete removes a saved decision.
func (s *DecisionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.decisions[id]; !ok {
		return nil
	}
	delete(s.decisions, id)
	s.order = slices.DeleteFunc(s.order, func(v string) bool { return v == id })
	return nil
}

// List returns all saved decisions, oldest first.
func (s *DecisionStore) List(_ context.Context) ([]domain.SavedDecision, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.SavedDecision, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, clone(s.decisions[id]))
	}
	return result, nil
}

// clone detaches the category slice so callers cannot mutate stored state.
func clone(saved domain.SavedDecision) domain.SavedDecision {
	saved.Decision.Categories = slices.Clone(saved.Decision.Categories)
	return saved
}
