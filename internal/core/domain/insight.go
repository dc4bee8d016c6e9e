package domain

// Impact bounds for an insight.
const (
	MinImpact = 0
	MaxImpact = 10
)

// Insight is a single scored narrative statement attached to one category.
// Insights are immutable once generated.
type Insight struct {
	// ID is unique within a session; only used for stable rendering.
	ID string `json:"id"`

	// CategoryID references a category of the owning decision.
	CategoryID CategoryID `json:"category_id"`

	// Content is a catalog template, verbatim.
	Content string `json:"content"`

	// IsPositive is the polarity of the statement.
	IsPositive bool `json:"is_positive"`

	// Impact ranges from MinImpact to MaxImpact.
	Impact int `json:"impact"`
}

// SignedImpact returns +Impact for positive insights and -Impact otherwise.
func (i Insight) SignedImpact() int {
	if i.IsPositive {
		return i.Impact
	}
	return -i.Impact
}

// Trend classifies how strongly an insight moves its timeline.
type Trend int

const (
	// TrendFlat is a mid-range impact.
	TrendFlat Trend = iota
	// TrendRising is an impact of 7 or more.
	TrendRising
	// TrendFalling is an impact of 3 or less.
	TrendFalling
)

// String returns the string representation of the trend.
func (t Trend) String() string {
	switch t {
	case TrendRising:
		return "rising"
	case TrendFalling:
		return "falling"
	default:
		return "flat"
	}
}

// Trend returns the impact indicator shown next to an insight card.
func (i Insight) Trend() Trend {
	switch {
	case i.Impact >= 7:
		return TrendRising
	case i.Impact <= 3:
		return TrendFalling
	default:
		return TrendFlat
	}
}
