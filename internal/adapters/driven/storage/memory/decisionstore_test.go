package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/whatif-cli/internal/core/domain"
)

func testSaved(id string) domain.SavedDecision {
	return domain.SavedDecision{
		ID: id,
		Decision: domain.Decision{
			Question:        "Should I have taken the job?",
			ActualChoice:    "I took the job",
			AlternateChoice: "I stayed put",
			Context:         "I was 30",
			Categories:      domain.DefaultCategories(),
		},
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestNewDecisionStore(t *testing.T) {
	store := NewDecisionStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.decisions)
}

func TestDecisionStore_Save_Success(t *testing.T) {
	store := NewDecisionStore()
	ctx := context.Background()

	err := store.Save(ctx, testSaved("dec-1"))
	require.NoError(t, err)

	// Verify it was saved
	saved, err := store.Get(ctx, "dec-1")
	require.NoError(t, err)
	assert.Equal(t, "dec-1", saved.ID)
	assert.Equal(t, "I took the job", saved.Decision.ActualChoice)
	assert.Equal(t, "I was 30", saved.Decision.Context)
	assert.Len(t, saved.Decision.Categories, 6)
}

func TestDecisionStore_Save_EmptyID(t *testing.T) {
	store := NewDecisionStore()

	err := store.Save(context.Background(), testSaved(""))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDecisionStore_Save_Update(t *testing.T) {
	store := NewDecisionStore()
	ctx := context.Background()

	first := testSaved("dec-1")
	second := testSaved("dec-1")
	second.Decision.Question = "Updated question?"

	require.NoError(t, store.Save(ctx, first))
	require.NoError(t, store.Save(ctx, second))

	saved, err := store.Get(ctx, "dec-1")
	require.NoError(t, err)
	assert.Equal(t, "Updated question?", saved.Decision.Question)

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestDecisionStore_Get_NotFound(t *testing.T) {
	store := NewDecisionStore()

	saved, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, saved)
}

func TestDecisionStore_Get_ReturnsCopy(t *testing.T) {
	store := NewDecisionStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, testSaved("dec-1")))

	saved, err := store.Get(ctx, "dec-1")
	require.NoError(t, err)
	saved.Decision.Categories[0].Importance = 10

	again, err := store.Get(ctx, "dec-1")
	require.NoError(t, err)
	assert.Equal(t, 5, again.Decision.Categories[0].Importance)
}

func TestDecisionStore_Delete(t *testing.T) {
	store := NewDecisionStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, testSaved("dec-1")))

	require.NoError(t, store.Delete(ctx, "dec-1"))

	_, err := store.Get(ctx, "dec-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDecisionStore_Delete_NonExistent(t *testing.T) {
	store := NewDecisionStore()

	err := store.Delete(context.Background(), "missing")
	assert.NoError(t, err)
}

func TestDecisionStore_List_Empty(t *testing.T) {
	store := NewDecisionStore()

	all, err := store.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestDecisionStore_List_InsertionOrder(t *testing.T) {
	store := NewDecisionStore()
	ctx := context.Background()
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, store.Save(ctx, testSaved(id)))
	}
	require.NoError(t, store.Delete(ctx, "a"))
	require.NoError(t, store.Save(ctx, testSaved("a")))

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].ID)
	assert.Equal(t, "b", all[1].ID)
	assert.Equal(t, "a", all[2].ID)
}

func TestDecisionStore_ConcurrentAccess(t *testing.T) {
	store := NewDecisionStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = store.Save(ctx, testSaved(fmt.Sprintf("dec-%d", i)))
		}(i)
		go func() {
			defer wg.Done()
			_, _ = store.List(ctx)
		}()
	}
	wg.Wait()

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 50)
}
