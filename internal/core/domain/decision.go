package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Decision describes a real choice and the hypothetical alternative.
type Decision struct {
	// Question is what the user is curious about.
	Question string `json:"question"`

	// ActualChoice is the path that was taken.
	ActualChoice string `json:"actual_choice"`

	// AlternateChoice is the path not taken.
	AlternateChoice string `json:"alternate_choice"`

	// Context is optional free text scanned for topical keywords.
	Context string `json:"context,omitempty"`

	// Categories are the weighted life areas, in display order.
	Categories []Category `json:"categories"`
}

// Normalise returns a copy with defaults applied and importances saturated.
// An empty category list is replaced with DefaultCategories.
// The receiver is never modified.
func (d Decision) Normalise() Decision {
	out := d
	if len(d.Categories) == 0 {
		out.Categories = DefaultCategories()
		return out
	}
	out.Categories = make([]Category, len(d.Categories))
	for i, c := range d.Categories {
		c.Importance = ClampImportance(c.Importance)
		out.Categories[i] = c
	}
	return out
}

// Validate checks the required text fields and category uniqueness.
func (d Decision) Validate() error {
	var missing []string
	if strings.TrimSpace(d.Question) == "" {
		missing = append(missing, "question")
	}
	if strings.TrimSpace(d.ActualChoice) == "" {
		missing = append(missing, "actual choice")
	}
	if strings.TrimSpace(d.AlternateChoice) == "" {
		missing = append(missing, "alternate choice")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidInput, strings.Join(missing, ", "))
	}

	seen := make(map[CategoryID]bool, len(d.Categories))
	for _, c := range d.Categories {
		if c.ID == "" {
			return fmt.Errorf("%w: category with empty id", ErrInvalidInput)
		}
		if seen[c.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateCategory, c.ID)
		}
		seen[c.ID] = true
	}
	return nil
}

// Category looks up a category by id.
func (d Decision) Category(id CategoryID) (Category, bool) {
	for _, c := range d.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// HasCategory reports whether the decision includes the category.
func (d Decision) HasCategory(id CategoryID) bool {
	_, ok := d.Category(id)
	return ok
}

// CategoryName returns the display name for id, or "" if absent.
func (d Decision) CategoryName(id CategoryID) string {
	c, _ := d.Category(id)
	return c.Name
}

// WithImportance returns a copy whose category id has the given importance.
// The value is saturated into the valid range. Returns ErrNotFound if the
// decision has no such category.
func (d Decision) WithImportance(id CategoryID, importance int) (Decision, error) {
	idx := slices.IndexFunc(d.Categories, func(c Category) bool { return c.ID == id })
	if idx < 0 {
		return Decision{}, fmt.Errorf("category %q: %w", id, ErrNotFound)
	}
	out := d
	out.Categories = slices.Clone(d.Categories)
	out.Categories[idx].Importance = ClampImportance(importance)
	return out, nil
}
