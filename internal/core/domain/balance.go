package domain

// Comparison classifies the gap between the two timelines.
type Comparison string

// Comparison outcomes, keyed on diff = actual - alternate.
const (
	// ComparisonSimilar is |diff| < 2.
	ComparisonSimilar Comparison = "similar"
	// ComparisonActualMuchBetter is diff > 5.
	ComparisonActualMuchBetter Comparison = "actual_significantly_better"
	// ComparisonActualBetter is 2 <= diff <= 5.
	ComparisonActualBetter Comparison = "actual_somewhat_better"
	// ComparisonAlternateMuchBetter is diff < -5.
	ComparisonAlternateMuchBetter Comparison = "alternate_significantly_better"
	// ComparisonAlternateBetter is -5 <= diff <= -2.
	ComparisonAlternateBetter Comparison = "alternate_somewhat_better"
)

// Message returns the human-readable sentence for the comparison.
func (c Comparison) Message() string {
	switch c {
	case ComparisonActualMuchBetter:
		return "Your actual choice appears significantly more favorable."
	case ComparisonActualBetter:
		return "Your actual choice seems somewhat better."
	case ComparisonAlternateMuchBetter:
		return "The path not taken might have been significantly better."
	case ComparisonAlternateBetter:
		return "The alternative path could have been somewhat better."
	default:
		return "Both paths seem to have similar outcomes."
	}
}

// Balance holds the one-dimensional coordinates of both timelines.
// Positions are percentages along a single axis, 0 to 100.
type Balance struct {
	ActualPosition    float64    `json:"actual_position"`
	AlternatePosition float64    `json:"alternate_position"`
	BalancePoint      float64    `json:"balance_point"`
	Comparison        Comparison `json:"comparison"`
	Message           string     `json:"message"`
}
