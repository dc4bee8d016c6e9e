package domain

// CategoryID is the stable key of a life category.
type CategoryID string

// Built-in category ids.
const (
	CategoryMentalHealth   CategoryID = "mental-health"
	CategoryRelationships  CategoryID = "relationships"
	CategoryFinances       CategoryID = "finances"
	CategoryCareer         CategoryID = "career"
	CategoryPersonalGrowth CategoryID = "personal-growth"
	CategorySelfImage      CategoryID = "self-image"
)

// Importance bounds for a category.
const (
	MinImportance = 1
	MaxImportance = 10
)

// BuiltinCategoryIDs lists every built-in category id in display order.
var BuiltinCategoryIDs = []CategoryID{
	CategoryMentalHealth,
	CategoryRelationships,
	CategoryFinances,
	CategoryCareer,
	CategoryPersonalGrowth,
	CategorySelfImage,
}

// Category is a life area weighted by how much it matters to the user.
type Category struct {
	// ID keys into the template catalog.
	ID CategoryID `json:"id"`

	// Name is the human-readable label.
	Name string `json:"name"`

	// Importance ranges from MinImportance to MaxImportance.
	Importance int `json:"importance"`
}

// InsightCount returns how many insights the category receives per path.
// Importance 1-3 yields one, 4-7 two, 8-10 three.
func (c Category) InsightCount() int {
	return max(1, c.Importance/4+1)
}

// ClampImportance saturates an importance value into the valid range.
func ClampImportance(importance int) int {
	return min(MaxImportance, max(MinImportance, importance))
}

// DefaultCategories returns a fresh copy of the built-in category set.
func DefaultCategories() []Category {
	return []Category{
		{ID: CategoryMentalHealth, Name: "Mental Health", Importance: 5},
		{ID: CategoryRelationships, Name: "Relationships", Importance: 5},
		{ID: CategoryFinances, Name: "Finances", Importance: 3},
		{ID: CategoryCareer, Name: "Career", Importance: 4},
		{ID: CategoryPersonalGrowth, Name: "Personal Growth", Importance: 5},
		{ID: CategorySelfImage, Name: "Self-image", Importance: 4},
	}
}
