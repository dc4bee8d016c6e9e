package services

import (
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/whatif-cli/internal/core/catalog"
	"github.com/custodia-labs/whatif-cli/internal/core/domain"
	"github.com/custodia-labs/whatif-cli/internal/core/ports/driven"
	"github.com/custodia-labs/whatif-cli/internal/logger"
)

// Augmenter appends fixed insights triggered by keywords in the context.
type Augmenter struct {
	rules []catalog.ContextRule
	newID func() string
}

// NewAugmenter creates an augmenter. Nil rules use the built-in set.
func NewAugmenter(rules []catalog.ContextRule) *Augmenter {
	if rules == nil {
		rules = catalog.ContextRules()
	}
	return &Augmenter{rules: rules, newID: uuid.NewString}
}

// Augment appends to actual and alternate in place. Each rule fires at
// most once, independently of the others. An empty context is a no-op.
// Rules whose target category is not part of the decision are skipped.
func (a *Augmenter) Augment(
	decision domain.Decision,
	actual, alternate *[]domain.Insight,
	rng driven.Random,
) {
	if decision.Context == "" {
		return
	}
	text := strings.ToLower(decision.Context)

	for _, rule := range a.rules {
		if !containsAny(text, rule.Keywords) {
			continue
		}
		if !decision.HasCategory(rule.Category) {
			logger.Warn("context rule %s skipped: category %s not in decision", rule.Name, rule.Category)
			continue
		}
		logger.Debug("context rule %s matched -> %s/%s", rule.Name, rule.Side, rule.Category)

		in := domain.Insight{
			ID:         a.newID(),
			CategoryID: rule.Category,
			Content:    rule.Content,
			IsPositive: rule.AlwaysPositive || above(rng, rule.PositiveAbove),
			Impact:     rule.Impact,
		}
		if rule.Side == domain.SideAlternate {
			*alternate = append(*alternate, in)
		} else {
			*actual = append(*actual, in)
		}
	}
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
