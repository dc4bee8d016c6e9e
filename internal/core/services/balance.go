package services

import (
	"math"

	"github.com/custodia-labs/whatif-cli/internal/core/domain"
)

// Comparison thresholds on the raw sentiment difference.
const (
	similarBelow     = 2.0
	significantAbove = 5.0
)

// Position maps a sentiment in [-10, 10] onto [0, 100].
// Out-of-range input saturates.
func Position(sentiment float64) float64 {
	pos := (sentiment - domain.MinSentiment) / (domain.MaxSentiment - domain.MinSentiment) * 100
	return clamp(pos, 0, 100)
}

// Compare classifies diff = actual - alternate.
func Compare(actual, alternate float64) domain.Comparison {
	diff := actual - alternate
	switch {
	case math.Abs(diff) < similarBelow:
		return domain.ComparisonSimilar
	case diff > significantAbove:
		return domain.ComparisonActualMuchBetter
	case diff > 0:
		return domain.ComparisonActualBetter
	case math.Abs(diff) > significantAbove:
		return domain.ComparisonAlternateMuchBetter
	default:
		return domain.ComparisonAlternateBetter
	}
}

// MapBalance computes the axis coordinates and comparison for two sentiments.
func MapBalance(actual, alternate float64) domain.Balance {
	a := Position(actual)
	b := Position(alternate)
	cmp := Compare(actual, alternate)
	return domain.Balance{
		ActualPosition:    a,
		AlternatePosition: b,
		BalancePoint:      (a + b) / 2,
		Comparison:        cmp,
		Message:           cmp.Message(),
	}
}
