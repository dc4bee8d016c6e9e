package services

import "github.com/custodia-labs/whatif-cli/internal/core/domain"

// sentimentGain amplifies the mean signed impact.
const sentimentGain = 5

// Aggregate reduces insights to one sentiment in [-10, 10].
// The mean signed impact is multiplied by 5 and saturated.
// An empty sequence scores 0.
func Aggregate(insights []domain.Insight) float64 {
	if len(insights) == 0 {
		return 0
	}
	total := 0
	for _, in := range insights {
		total += in.SignedImpact()
	}
	score := float64(total) / float64(len(insights)) * sentimentGain
	return clamp(score, domain.MinSentiment, domain.MaxSentiment)
}

func clamp(v, lo, hi float64) float64 {
	return min(hi, max(lo, v))
}
