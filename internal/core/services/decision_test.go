package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/whatif-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/whatif-cli/internal/core/domain"
)

func newTestDecisionService() *DecisionService {
	sim := NewSimulationService(nil, nil, seededFactory(11))
	svc := NewDecisionService(memory.NewDecisionStore(), sim)
	svc.now = func() time.Time {
		return time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	}
	return svc
}

func TestDecisionService_NilStore(t *testing.T) {
	svc := NewDecisionService(nil, nil)
	ctx := context.Background()

	_, err := svc.Save(ctx, testDecision())
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	_, err = svc.Get(ctx, "id")
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	_, err = svc.List(ctx)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	err = svc.Delete(ctx, "id")
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	_, err = svc.Load(ctx, "id")
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}

func TestDecisionService_Save(t *testing.T) {
	svc := newTestDecisionService()

	saved, err := svc.Save(context.Background(), testDecision())

	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, time.UTC, saved.CreatedAt.Location())
	assert.Equal(t, 11, saved.CreatedAt.Hour())
	assert.Equal(t, domain.DefaultCategories(), saved.Decision.Categories)
}

func TestDecisionService_Save_Invalid(t *testing.T) {
	svc := newTestDecisionService()
	d := testDecision()
	d.Question = ""

	saved, err := svc.Save(context.Background(), d)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, saved)

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDecisionService_GetAndList(t *testing.T) {
	svc := newTestDecisionService()
	ctx := context.Background()

	first, err := svc.Save(ctx, testDecision())
	require.NoError(t, err)
	second, err := svc.Save(ctx, pinkHairDecision())
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	got, err := svc.Get(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "I dyed my hair pink", got.Decision.ActualChoice)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
}

func TestDecisionService_Get_EmptyID(t *testing.T) {
	svc := newTestDecisionService()

	_, err := svc.Get(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDecisionService_Get_NotFound(t *testing.T) {
	svc := newTestDecisionService()

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDecisionService_Delete(t *testing.T) {
	svc := newTestDecisionService()
	ctx := context.Background()
	saved, err := svc.Save(ctx, testDecision())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, saved.ID))

	_, err = svc.Get(ctx, saved.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDecisionService_Delete_NotFound(t *testing.T) {
	svc := newTestDecisionService()

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDecisionService_Load(t *testing.T) {
	svc := newTestDecisionService()
	ctx := context.Background()
	d := testDecision()
	d.Categories = []domain.Category{{ID: domain.CategoryCareer, Importance: 8}}
	saved, err := svc.Save(ctx, d)
	require.NoError(t, err)

	sim, err := svc.Load(ctx, saved.ID)

	require.NoError(t, err)
	assert.Equal(t, saved.Decision, sim.Decision)
	assert.Len(t, sim.Actual.Insights, 3)
	assert.Len(t, sim.Alternate.Insights, 3)
}

func TestDecisionService_Load_NoSimulator(t *testing.T) {
	svc := NewDecisionService(memory.NewDecisionStore(), nil)

	_, err := svc.Load(context.Background(), "id")
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}
