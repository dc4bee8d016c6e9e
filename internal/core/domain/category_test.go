package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_InsightCount(t *testing.T) {
	tests := []struct {
		importance int
		want       int
	}{
		{0, 1},
		{1, 1},
		{3, 1},
		{4, 2},
		{7, 2},
		{8, 3},
		{10, 3},
	}

	for _, tt := range tests {
		c := Category{ID: CategoryCareer, Importance: tt.importance}
		assert.Equal(t, tt.want, c.InsightCount(), "importance %d", tt.importance)
	}
}

func TestClampImportance(t *testing.T) {
	assert.Equal(t, 1, ClampImportance(-4))
	assert.Equal(t, 1, ClampImportance(0))
	assert.Equal(t, 6, ClampImportance(6))
	assert.Equal(t, 10, ClampImportance(11))
}

func TestDefaultCategories(t *testing.T) {
	cats := DefaultCategories()

	assert.Len(t, cats, 6)
	ids := make([]CategoryID, len(cats))
	importances := make([]int, len(cats))
	for i, c := range cats {
		ids[i] = c.ID
		importances[i] = c.Importance
	}
	assert.Equal(t, BuiltinCategoryIDs, ids)
	assert.Equal(t, []int{5, 5, 3, 4, 5, 4}, importances)
}

func TestDefaultCategories_ReturnsFreshCopy(t *testing.T) {
	a := DefaultCategories()
	a[0].Importance = 10

	b := DefaultCategories()
	assert.Equal(t, 5, b[0].Importance)
}
