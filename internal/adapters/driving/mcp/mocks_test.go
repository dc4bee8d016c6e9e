package mcp

import (
	"context"

	"github.com/custodia-labs/whatif-cli/internal/core/domain"
)

// mockSimulator is a mock implementation of driving.Simulator.
// It echoes the decision it receives so tests can inspect it.
type mockSimulator struct {
	last       domain.Decision
	adjustedID domain.CategoryID
	adjustedTo int
	err        error
}

func (m *mockSimulator) Simulate(_ context.Context, d domain.Decision) (*domain.Simulation, error) {
	m.last = d
	if m.err != nil {
		return nil, m.err
	}
	return testSimulation(d), nil
}

func (m *mockSimulator) AdjustImportance(
	_ context.Context,
	d domain.Decision,
	id domain.CategoryID,
	importance int,
) (*domain.Simulation, error) {
	m.last = d
	m.adjustedID = id
	m.adjustedTo = importance
	if m.err != nil {
		return nil, m.err
	}
	return testSimulation(d), nil
}

func (m *mockSimulator) Categories() []domain.Category {
	return domain.DefaultCategories()
}

// mockDecisionService is a mock implementation of driving.DecisionService.
type mockDecisionService struct {
	saved    []domain.SavedDecision
	decision *domain.SavedDecision
	err      error
}

func (m *mockDecisionService) Save(_ context.Context, d domain.Decision) (*domain.SavedDecision, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.SavedDecision{ID: "dec-new", Decision: d}, nil
}

func (m *mockDecisionService) Get(_ context.Context, _ string) (*domain.SavedDecision, error) {
	return m.decision, m.err
}

func (m *mockDecisionService) List(_ context.Context) ([]domain.SavedDecision, error) {
	return m.saved, m.err
}

func (m *mockDecisionService) Delete(_ context.Context, _ string) error {
	return m.err
}

func (m *mockDecisionService) Load(_ context.Context, _ string) (*domain.Simulation, error) {
	if m.err != nil {
		return nil, m.err
	}
	return testSimulation(m.decision.Decision), nil
}

func testDecision() domain.Decision {
	return domain.Decision{
		Question:        "Should I have moved?",
		ActualChoice:    "I moved",
		AlternateChoice: "I stayed",
		Categories:      domain.DefaultCategories(),
	}
}

func testSimulation(d domain.Decision) *domain.Simulation {
	return &domain.Simulation{
		Decision: d,
		Actual: domain.Timeline{
			Side: domain.SideActual,
			Insights: []domain.Insight{
				{ID: "i-1", CategoryID: domain.CategoryCareer, Content: "Great job", IsPositive: true, Impact: 8},
			},
			OverallSentiment: 10,
		},
		Alternate: domain.Timeline{
			Side: domain.SideAlternate,
			Insights: []domain.Insight{
				{ID: "i-2", CategoryID: domain.CategoryFinances, Content: "Less money", IsPositive: false, Impact: 3},
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
