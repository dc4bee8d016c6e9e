package balance

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/whatif-cli/internal/core/domain"
)

func TestMarkers(t *testing.T) {
	tests := []struct {
		name                      string
		balance                   domain.Balance
		width                     int
		wantA, wantAlt, wantPoint int
	}{
		{
			name:    "extremes",
			balance: domain.Balance{ActualPosition: 100, AlternatePosition: 0, BalancePoint: 50},
			width:   21,
			wantA:   20, wantAlt: 0, wantPoint: 10,
		},
		{
			name:    "neutral",
			balance: domain.Balance{ActualPosition: 50, AlternatePosition: 50, BalancePoint: 50},
			width:   11,
			wantA:   5, wantAlt: 5, wantPoint: 5,
		},
		{
			name:    "out of range saturates",
			balance: domain.Balance{ActualPosition: 140, AlternatePosition: -3, BalancePoint: 68.5},
			width:   11,
			wantA:   10, wantAlt: 0, wantPoint: 7,
		},
		{
			name:    "narrow width is widened",
			balance: domain.Balance{ActualPosition: 100},
			width:   3,
			wantA:   MinWidth - 1, wantAlt: 0, wantPoint: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, alt, point := Markers(tt.balance, tt.width)
			assert.Equal(t, tt.wantA, a)
			assert.Equal(t, tt.wantAlt, alt)
			assert.Equal(t, tt.wantPoint, point)
		})
	}
}

func TestBar(t *testing.T) {
	b := domain.Balance{ActualPosition: 75, AlternatePosition: 25, BalancePoint: 50}

	bar := Bar(b, 21, nil)

	assert.Equal(t, 21, lipgloss.Width(bar))
	assert.Less(t, strings.Index(bar, AlternateGlyph), strings.Index(bar, BalanceGlyph))
	assert.Less(t, strings.Index(bar, BalanceGlyph), strings.Index(bar, ActualGlyph))
}

func TestBar_ActualWinsTie(t *testing.T) {
	b := domain.Balance{ActualPosition: 50, AlternatePosition: 50, BalancePoint: 50}

	bar := Bar(b, 11, nil)

	assert.Contains(t, bar, ActualGlyph)
	assert.NotContains(t, bar, AlternateGlyph)
	assert.NotContains(t, bar, BalanceGlyph)
}

func TestRender(t *testing.T) {
	sim := &domain.Simulation{
		Decision:  domain.Decision{ActualChoice: "I moved", AlternateChoice: "I stayed"},
		Actual:    domain.Timeline{OverallSentiment: 3.75},
		Alternate: domain.Timeline{OverallSentiment: -1.25},
		Balance: domain.Balance{
			ActualPosition:    68.75,
			AlternatePosition: 43.75,
			BalancePoint:      56.25,
			Comparison:        domain.ComparisonActualBetter,
			Message:           domain.ComparisonActualBetter.Message(),
		},
	}

	out := Render(sim, 60, nil)

	assert.Contains(t, out, "I moved")
	assert.Contains(t, out, "(+3.8)")
	assert.Contains(t, out, "I stayed")
	assert.Contains(t, out, "(-1.2)")
	assert.Contains(t, out, "Your actual choice seems somewhat better.")
	assert.Equal(t, 60, lipgloss.Width(strings.Split(out, "\n")[0]))
}
