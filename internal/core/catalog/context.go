package catalog

import "github.com/custodia-labs/whatif-cli/internal/core/domain"

// ContextRule appends one fixed insight when any keyword occurs in the
// lower-cased decision context. Keywords are literal substrings.
type ContextRule struct {
	Name     string
	Keywords []string
	Side     domain.Side
	Category domain.CategoryID
	Content  string
	Impact   int

	// AlwaysPositive skips the draw entirely.
	AlwaysPositive bool
	// PositiveAbove is the threshold a draw must exceed to be positive.
	PositiveAbove float64
}

var contextRules = []ContextRule{
	{
		Name:           "age",
		Keywords:       []string{"young", "old", "teenager", "twenties", "thirties", "forties", "age"},
		Side:           domain.SideActual,
		Category:       domain.CategoryPersonalGrowth,
		Content:        "This choice was particularly significant given your age at the time.",
		Impact:         7,
		AlwaysPositive: true,
	},
	{
		Name:          "location",
		Keywords:      []string{"city", "town", "country", "move", "relocate", "abroad"},
		Side:          domain.SideAlternate,
		Category:      domain.CategoryRelationships,
		Content:       "Your social connections would have developed very differently in another location.",
		Impact:        8,
		PositiveAbove: 0.5,
	},
	{
		Name:           "job",
		Keywords:       []string{"job", "career", "work", "profession", "company", "business"},
		Side:           domain.SideActual,
		Category:       domain.CategoryCareer,
		Content:        "This career choice has shaped your professional identity in significant ways.",
		Impact:         9,
		AlwaysPositive: true,
	},
	{
		Name:           "education",
		Keywords:       []string{"school", "college", "university", "degree", "study", "education"},
		Side:           domain.SideAlternate,
		Category:       domain.CategoryPersonalGrowth,
		Content:        "A different educational path would have exposed you to entirely different ideas and perspectives.",
		Impact:         7,
		AlwaysPositive: true,
	},
	{
		Name:          "relationship",
		Keywords:      []string{"dating", "marriage", "partner", "boyfriend", "girlfriend", "spouse", "divorce"},
		Side:          domain.SideActual,
		Category:      domain.CategoryRelationships,
		Content:       "This relationship decision has fundamentally shaped your interpersonal connections.",
		Impact:        9,
		PositiveAbove: 0.4,
	},
}

// ContextRules returns a copy of the built-in keyword rules in check order.
func ContextRules() []ContextRule {
	out := make([]ContextRule, len(contextRules))
	copy(out, contextRules)
	return out
}
