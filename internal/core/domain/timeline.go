package domain

// Sentiment bounds for a timeline.
const (
	MinSentiment = -10.0
	MaxSentiment = 10.0
)

// Side identifies one of the two compared paths.
type Side string

const (
	// SideActual is the path actually taken.
	SideActual Side = "actual"
	// SideAlternate is the hypothetical path.
	SideAlternate Side = "alternate"
)

// Timeline is the generated narrative of one path.
// OverallSentiment is always derived from Insights, never set on its own.
type Timeline struct {
	Side             Side      `json:"side"`
	Insights         []Insight `json:"insights"`
	OverallSentiment float64   `json:"overall_sentiment"`
}

// InsightsFor returns the insights of one category in generation order.
func (t Timeline) InsightsFor(id CategoryID) []Insight {
	var out []Insight
	for _, in := range t.Insights {
		if in.CategoryID == id {
			out = append(out, in)
		}
	}
	return out
}

// CountByCategory returns the number of insights per category.
func (t Timeline) CountByCategory() map[CategoryID]int {
	counts := make(map[CategoryID]int)
	for _, in := range t.Insights {
		counts[in.CategoryID]++
	}
	return counts
}

// Simulation is the full result of running a decision through the engine.
type Simulation struct {
	Decision  Decision `json:"decision"`
	Actual    Timeline `json:"actual"`
	Alternate Timeline `json:"alternate"`
	Balance   Balance  `json:"balance"`
}
