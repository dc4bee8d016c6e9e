package cli

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/custodia-labs/whatif-cli/internal/core/domain"
	"github.com/custodia-labs/whatif-cli/internal/core/ports/driving"
)

// mockSimulator returns a fixed pair of timelines for any valid decision.
type mockSimulator struct {
	mu    sync.Mutex
	last  domain.Decision
	calls int
	seed  uint64
}

var _ driving.Simulator = (*mockSimulator)(nil)

func (m *mockSimulator) Simulate(_ context.Context, d domain.Decision) (*domain.Simulation, error) {
	d = d.Normalise()
	if err := d.Validate(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.last = d
	m.calls++
	m.mu.Unlock()
	return testSimulation(d), nil
}

func (m *mockSimulator) AdjustImportance(
	ctx context.Context, d domain.Decision, id domain.CategoryID, importance int,
) (*domain.Simulation, error) {
	adjusted, err := d.Normalise().WithImportance(id, importance)
	if err != nil {
		return nil, err
	}
	return m.Simulate(ctx, adjusted)
}

func (m *mockSimulator) Categories() []domain.Category {
	return domain.DefaultCategories()
}

func (m *mockSimulator) lastDecision() domain.Decision {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

func testDecision() domain.Decision {
	return domain.Decision{
		Question:        "Should I have moved?",
		ActualChoice:    "I moved to Boston",
		AlternateChoice: "I stayed home",
	}
}

func testSimulation(d domain.Decision) *domain.Simulation {
	first := d.Categories[0].ID
	return &domain.Simulation{
		Decision: d,
		Actual: domain.Timeline{
			Side: domain.SideActual,
			Insights: []domain.Insight{
				{ID: "a1", CategoryID: first, Content: "New friendships took root", IsPositive: true, Impact: 8},
			},
			OverallSentiment: 10,
		},
		Alternate: domain.Timeline{
			Side: domain.SideAlternate,
			Insights: []domain.Insight{
				{ID: "b1", CategoryID: first, Content: "The routine wore thin", IsPositive: false, Impact: 4},
			},
			OverallSentiment: -10,
		},
		Balance: domain.Balance{
			ActualPosition:    100,
			AlternatePosition: 0,
			BalancePoint:      50,
			Comparison:        domain.ComparisonActualMuchBetter,
			Message:           domain.ComparisonActualMuchBetter.Message(),
		},
	}
}

// mockDecisionService keeps saved decisions in memory.
type mockDecisionService struct {
	sim   driving.Simulator
	items []domain.SavedDecision
}

var _ driving.DecisionService = (*mockDecisionService)(nil)

func (m *mockDecisionService) Save(_ context.Context, d domain.Decision) (*domain.SavedDecision, error) {
	saved := domain.SavedDecision{
		ID:        fmt.Sprintf("saved-%d", len(m.items)+1),
		Decision:  d.Normalise(),
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	m.items = append(m.items, saved)
	return &saved, nil
}

func (m *mockDecisionService) Get(_ context.Context, id string) (*domain.SavedDecision, error) {
	i := slices.IndexFunc(m.items, func(s domain.SavedDecision) bool { return s.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("saved decision %s: %w", id, domain.ErrNotFound)
	}
	saved := m.items[i]
	return &saved, nil
}

func (m *mockDecisionService) List(_ context.Context) ([]domain.SavedDecision, error) {
	return slices.Clone(m.items), nil
}

func (m *mockDecisionService) Delete(_ context.Context, id string) error {
	i := slices.IndexFunc(m.items, func(s domain.SavedDecision) bool { return s.ID == id })
	if i < 0 {
		return fmt.Errorf("saved decision %s: %w", id, domain.ErrNotFound)
	}
	m.items = slices.Delete(m.items, i, i+1)
	return nil
}

func (m *mockDecisionService) Load(ctx context.Context, id string) (*domain.Simulation, error) {
	saved, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return m.sim.Simulate(ctx, saved.Decision)
}
