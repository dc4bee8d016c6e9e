package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/custodia-labs/whatif-cli/internal/core/catalog"
	"github.com/custodia-labs/whatif-cli/internal/core/domain"
	"github.com/custodia-labs/whatif-cli/internal/core/ports/driven"
	"github.com/custodia-labs/whatif-cli/internal/logger"
)

// impactSpread is the width of the uniform impact draw, {0..4}.
const impactSpread = 5

// sideProfile holds the per-path polarity thresholds and impact offsets.
// The actual path is biased slightly favourable compared to the alternate.
type sideProfile struct {
	side domain.Side

	// A draw above these thresholds is positive.
	overrideThreshold float64
	generalThreshold  float64

	positiveBase int
	negativeBase int
}

var (
	actualProfile = sideProfile{
		side:              domain.SideActual,
		overrideThreshold: 0.3,
		generalThreshold:  0.4,
		positiveBase:      4,
		negativeBase:      3,
	}
	alternateProfile = sideProfile{
		side:              domain.SideAlternate,
		overrideThreshold: 0.4,
		generalThreshold:  0.45,
		positiveBase:      3,
		negativeBase:      3,
	}
)

// overrideImpactBase offsets override impacts into {3..7}.
const overrideImpactBase = 3

// Generator turns a decision into raw insights for both paths.
type Generator struct {
	catalog  *catalog.Catalog
	override *catalog.Override
	newID    func() string
}

// NewGenerator creates a generator. A nil override disables the special case.
func NewGenerator(c *catalog.Catalog, o *catalog.Override) *Generator {
	if c == nil {
		c = catalog.Default()
	}
	return &Generator{
		catalog:  c,
		override: o,
		newID:    uuid.NewString,
	}
}

// Generate produces the actual and alternate insight sequences.
// Output order is category order, then insight index within a category.
// Every category is checked before any insight is built, so an unknown
// category fails the whole call.
func (g *Generator) Generate(
	decision domain.Decision,
	rng driven.Random,
) (actual, alternate []domain.Insight, err error) {
	special := g.override.Matches(decision.ActualChoice)
	logger.Debug("special case %t for %q", special, decision.ActualChoice)

	if err := g.check(decision.Categories, special); err != nil {
		return nil, nil, err
	}

	for _, cat := range decision.Categories {
		n := cat.InsightCount()
		logger.Debug("category %s (importance %d) -> %d insights", cat.ID, cat.Importance, n)

		for i := 0; i < n; i++ {
			actual = append(actual, g.insight(cat.ID, i, special, actualProfile, rng))
			alternate = append(alternate, g.insight(cat.ID, i, special, alternateProfile, rng))
		}
	}
	return actual, alternate, nil
}

// check rejects categories that have neither catalog nor override templates.
func (g *Generator) check(categories []domain.Category, special bool) error {
	for _, cat := range categories {
		if g.catalog.Has(cat.ID) {
			continue
		}
		if special && g.hasOverride(cat.ID) {
			continue
		}
		return fmt.Errorf("generating insights: %w: %q", domain.ErrUnknownCategory, cat.ID)
	}
	return nil
}

func (g *Generator) hasOverride(id domain.CategoryID) bool {
	_, okActual := g.override.Templates(domain.SideActual, id)
	_, okAlt := g.override.Templates(domain.SideAlternate, id)
	return okActual && okAlt
}

// insight builds the i-th insight of a category for one path.
// Override content cycles by index; general content is drawn at random.
func (g *Generator) insight(
	id domain.CategoryID,
	i int,
	special bool,
	p sideProfile,
	rng driven.Random,
) domain.Insight {
	if special {
		if list, ok := g.override.Templates(p.side, id); ok {
			return domain.Insight{
				ID:         g.newID(),
				CategoryID: id,
				Content:    list[i%len(list)],
				IsPositive: above(rng, p.overrideThreshold),
				Impact:     rng.IntN(impactSpread) + overrideImpactBase,
			}
		}
	}

	// check guarantees the catalog entry exists here.
	tmpl, _ := g.catalog.Lookup(id)
	positive := above(rng, p.generalThreshold)
	list := tmpl.For(positive)
	content := list[rng.IntN(len(list))]

	base := p.negativeBase
	if positive {
		base = p.positiveBase
	}
	return domain.Insight{
		ID:         g.newID(),
		CategoryID: id,
		Content:    content,
		IsPositive: positive,
		Impact:     rng.IntN(impactSpread) + base,
	}
}

// above reports whether the next draw exceeds threshold, which happens
// with probability 1-threshold.
func above(rng driven.Random, threshold float64) bool {
	return rng.Float64() > threshold
}
