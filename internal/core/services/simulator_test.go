package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/whatif-cli/internal/core/catalog"
	"github.com/custodia-labs/whatif-cli/internal/core/domain"
)

func TestNewSimulationService(t *testing.T) {
	svc := NewSimulationService(nil, nil, seededFactory(1))
	require.NotNil(t, svc)
	assert.NotNil(t, svc.generator)
	assert.NotNil(t, svc.augmenter)
}

func TestSimulationService_Simulate_NoRandom(t *testing.T) {
	svc := NewSimulationService(nil, nil, nil)

	sim, err := svc.Simulate(context.Background(), testDecision())
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	assert.Nil(t, sim)
}

func TestSimulationService_Simulate_AppliesDefaults(t *testing.T) {
	svc := NewSimulationService(nil, nil, seededFactory(1))

	sim, err := svc.Simulate(context.Background(), testDecision())

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCategories(), sim.Decision.Categories)
	assert.Len(t, sim.Actual.Insights, 11)
	assert.Len(t, sim.Alternate.Insights, 11)
	assert.Equal(t, domain.SideActual, sim.Actual.Side)
	assert.Equal(t, domain.SideAlternate, sim.Alternate.Side)
}

func TestSimulationService_Simulate_Validation(t *testing.T) {
	svc := NewSimulationService(nil, nil, seededFactory(1))

	tests := []struct {
		name    string
		mutate  func(*domain.Decision)
		wantErr error
	}{
		{"missing question", func(d *domain.Decision) { d.Question = "  " }, domain.ErrInvalidInput},
		{"missing actual", func(d *domain.Decision) { d.ActualChoice = "" }, domain.ErrInvalidInput},
		{"missing alternate", func(d *domain.Decision) { d.AlternateChoice = "" }, domain.ErrInvalidInput},
		{
			"duplicate category",
			func(d *domain.Decision) {
				d.Categories = []domain.Category{
					{ID: domain.CategoryCareer, Importance: 3},
					{ID: domain.CategoryCareer, Importance: 6},
				}
			},
			domain.ErrDuplicateCategory,
		},
		{
			"unknown category",
			func(d *domain.Decision) {
				d.Categories = []domain.Category{{ID: "hobbies", Importance: 5}}
			},
			domain.ErrUnknownCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := testDecision()
			tt.mutate(&d)

			sim, err := svc.Simulate(context.Background(), d)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, sim)
		})
	}
}

func TestSimulationService_Simulate_CancelledContext(t *testing.T) {
	svc := NewSimulationService(nil, nil, seededFactory(1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Simulate(ctx, testDecision())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSimulationService_Simulate_SeededReplay(t *testing.T) {
	d := testDecision()
	d.Context = "I moved to a new city for a job with my partner"

	first, err := NewSimulationService(nil, nil, seededFactory(99)).Simulate(context.Background(), d)
	require.NoError(t, err)
	second, err := NewSimulationService(nil, nil, seededFactory(99)).Simulate(context.Background(), d)
	require.NoError(t, err)

	require.Len(t, second.Actual.Insights, len(first.Actual.Insights))
	for i := range first.Actual.Insights {
		assert.Equal(t, first.Actual.Insights[i].Content, second.Actual.Insights[i].Content)
		assert.Equal(t, first.Actual.Insights[i].IsPositive, second.Actual.Insights[i].IsPositive)
		assert.Equal(t, first.Actual.Insights[i].Impact, second.Actual.Insights[i].Impact)
	}
	assert.Equal(t, first.Balance, second.Balance)
}

func TestSimulationService_Simulate_FreshRandomness(t *testing.T) {
	svc := NewSimulationService(nil, nil, freshFactory())
	d := testDecision()

	var contents []string
	for range 5 {
		sim, err := svc.Simulate(context.Background(), d)
		require.NoError(t, err)
		// Counts are structural and never vary between runs.
		assert.Len(t, sim.Actual.Insights, 11)
		var joined string
		for _, in := range sim.Actual.Insights {
			joined += in.Content
		}
		contents = append(contents, joined)
	}

	distinct := map[string]bool{}
	for _, c := range contents {
		distinct[c] = true
	}
	assert.Greater(t, len(distinct), 1)
}

func TestSimulationService_Simulate_SentimentMatchesInsights(t *testing.T) {
	svc := NewSimulationService(nil, nil, freshFactory())

	for range 20 {
		sim, err := svc.Simulate(context.Background(), testDecision())
		require.NoError(t, err)
		assert.Equal(t, Aggregate(sim.Actual.Insights), sim.Actual.OverallSentiment)
		assert.Equal(t, Aggregate(sim.Alternate.Insights), sim.Alternate.OverallSentiment)
		assert.Equal(t, MapBalance(sim.Actual.OverallSentiment, sim.Alternate.OverallSentiment), sim.Balance)
	}
}

func TestSimulationService_Simulate_InsightsBelongToDecision(t *testing.T) {
	svc := NewSimulationService(nil, nil, freshFactory())
	d := testDecision()
	d.Categories = []domain.Category{
		{ID: domain.CategoryCareer, Importance: 9},
		{ID: domain.CategoryFinances, Importance: 2},
	}
	d.Context = "young, moved abroad for work, left school, dating"

	sim, err := svc.Simulate(context.Background(), d)
	require.NoError(t, err)

	for _, in := range append(sim.Actual.Insights, sim.Alternate.Insights...) {
		assert.True(t, d.HasCategory(in.CategoryID), "unexpected category %s", in.CategoryID)
	}
	// The job rule fires; the others target categories not in the decision.
	assert.Len(t, sim.Actual.Insights, 3+1+1)
	assert.Len(t, sim.Alternate.Insights, 3+1)
}

func TestSimulationService_Simulate_SpecialCase(t *testing.T) {
	svc := NewSimulationService(nil, nil, freshFactory())
	override := catalog.DefaultOverride()

	sim, err := svc.Simulate(context.Background(), pinkHairDecision())
	require.NoError(t, err)

	for _, in := range sim.Actual.Insights {
		list, ok := override.Templates(domain.SideActual, in.CategoryID)
		require.True(t, ok)
		assert.Contains(t, list, in.Content)
		assert.GreaterOrEqual(t, in.Impact, 3)
		assert.LessOrEqual(t, in.Impact, 7)
	}
	for _, in := range sim.Alternate.Insights {
		list, ok := override.Templates(domain.SideAlternate, in.CategoryID)
		require.True(t, ok)
		assert.Contains(t, list, in.Content)
	}
}

func TestSimulationService_AdjustImportance(t *testing.T) {
	svc := NewSimulationService(nil, nil, seededFactory(5))
	d := testDecision()

	sim, err := svc.AdjustImportance(context.Background(), d, domain.CategoryFinances, 9)

	require.NoError(t, err)
	c, ok := sim.Decision.Category(domain.CategoryFinances)
	require.True(t, ok)
	assert.Equal(t, 9, c.Importance)
	assert.Len(t, sim.Actual.InsightsFor(domain.CategoryFinances), 3)
	assert.Len(t, sim.Alternate.InsightsFor(domain.CategoryFinances), 3)
	assert.Len(t, sim.Actual.Insights, 13)
	// Input is left untouched.
	assert.Empty(t, d.Categories)
}

func TestSimulationService_AdjustImportance_Saturates(t *testing.T) {
	svc := NewSimulationService(nil, nil, seededFactory(5))

	sim, err := svc.AdjustImportance(context.Background(), testDecision(), domain.CategoryCareer, 42)

	require.NoError(t, err)
	c, _ := sim.Decision.Category(domain.CategoryCareer)
	assert.Equal(t, domain.MaxImportance, c.Importance)
}

func TestSimulationService_AdjustImportance_UnknownCategory(t *testing.T) {
	svc := NewSimulationService(nil, nil, seededFactory(5))

	sim, err := svc.AdjustImportance(context.Background(), testDecision(), "hobbies", 5)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, sim)
}

func TestSimulationService_Categories(t *testing.T) {
	svc := NewSimulationService(nil, nil, nil)

	cats := svc.Categories()
	require.Len(t, cats, 6)
	assert.Equal(t, domain.CategoryMentalHealth, cats[0].ID)
}
