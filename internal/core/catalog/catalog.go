// Package catalog holds the read-only narrative templates used to build
// insights. Tables are validated once at construction; a catalog that
// misses a built-in category fails to build rather than failing later.
package catalog

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/whatif-cli/internal/core/domain"
)

// Templates holds the positive and negative fragments for one category.
type Templates struct {
	Positive []string
	Negative []string
}

// For returns the fragments of the requested polarity.
func (t Templates) For(positive bool) []string {
	if positive {
		return t.Positive
	}
	return t.Negative
}

// Catalog maps category ids to their templates.
// A Catalog is immutable after New returns.
type Catalog struct {
	entries map[domain.CategoryID]Templates
}

// New builds a catalog and checks that every built-in category has
// non-empty positive and negative lists.
func New(entries map[domain.CategoryID]Templates) (*Catalog, error) {
	c := &Catalog{entries: make(map[domain.CategoryID]Templates, len(entries))}
	for id, t := range entries {
		c.entries[id] = Templates{
			Positive: append([]string(nil), t.Positive...),
			Negative: append([]string(nil), t.Negative...),
		}
	}

	for _, id := range domain.BuiltinCategoryIDs {
		t, ok := c.entries[id]
		if !ok {
			return nil, fmt.Errorf("%w: missing category %q", domain.ErrInvalidCatalog, id)
		}
		if len(t.Positive) == 0 || len(t.Negative) == 0 {
			return nil, fmt.Errorf("%w: category %q needs positive and negative templates",
				domain.ErrInvalidCatalog, id)
		}
	}
	return c, nil
}

// Lookup returns the templates for a category.
// Returns ErrUnknownCategory if the catalog has no entry.
func (c *Catalog) Lookup(id domain.CategoryID) (Templates, error) {
	t, ok := c.entries[id]
	if !ok {
		return Templates{}, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, id)
	}
	return t, nil
}

// Has reports whether the catalog covers a category.
func (c *Catalog) Has(id domain.CategoryID) bool {
	_, ok := c.entries[id]
	return ok
}

// Size returns the number of categories covered.
func (c *Catalog) Size() int {
	return len(c.entries)
}

// Override is a curated template set that replaces the generic catalog
// when every trigger phrase appears in the actual choice.
type Override struct {
	// Name identifies the scenario in logs.
	Name string

	// Triggers are lower-case substrings that must all be present.
	Triggers []string

	// Actual holds wording for the path taken.
	Actual map[domain.CategoryID][]string

	// Alternate holds wording for the path not taken.
	Alternate map[domain.CategoryID][]string
}

// Matches reports whether the choice contains every trigger, case-insensitively.
func (o *Override) Matches(choice string) bool {
	if o == nil || len(o.Triggers) == 0 {
		return false
	}
	lower := strings.ToLower(choice)
	for _, trig := range o.Triggers {
		if !strings.Contains(lower, trig) {
			return false
		}
	}
	return true
}

// Templates returns the override list for a side and category, if any.
func (o *Override) Templates(side domain.Side, id domain.CategoryID) ([]string, bool) {
	if o == nil {
		return nil, false
	}
	table := o.Actual
	if side == domain.SideAlternate {
		table = o.Alternate
	}
	list, ok := table[id]
	if !ok || len(list) == 0 {
		return nil, false
	}
	return list, true
}

var (
	defaultCatalog  = mustNew(generalTemplates)
	defaultOverride = &Override{
		Name:      "pink hair",
		Triggers:  []string{"dye", "hair", "pink"},
		Actual:    pinkHairActual,
		Alternate: pinkHairAlternate,
	}
)

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

// DefaultOverride returns the built-in special-case override.
func DefaultOverride() *Override {
	return defaultOverride
}

func mustNew(entries map[domain.CategoryID]Templates) *Catalog {
	c, err := New(entries)
	if err != nil {
		panic(err)
	}
	return c
}
