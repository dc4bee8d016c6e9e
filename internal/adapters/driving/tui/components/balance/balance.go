// Package balance renders the one-dimensional balance bar shared by the
// TUI and the plain CLI output.
package balance

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/whatif-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/whatif-cli/internal/core/domain"
)

// Marker glyphs drawn on the bar.
const (
	ActualGlyph    = "●"
	AlternateGlyph = "◆"
	BalanceGlyph   = "│"
	trackGlyph     = "─"
)

// MinWidth is the narrowest bar that still separates the markers.
const MinWidth = 10

// Markers returns the cell index of each marker on a bar of the given width.
// A position p lands on cell round(p/100 * (width-1)).
func Markers(b domain.Balance, width int) (actual, alternate, point int) {
	width = max(width, MinWidth)
	return cell(b.ActualPosition, width), cell(b.AlternatePosition, width), cell(b.BalancePoint, width)
}

func cell(position float64, width int) int {
	p := min(100, max(0, position))
	return int(math.Round(p / 100 * float64(width-1)))
}

// Bar renders the track with the three markers. Side markers are drawn over
// the balance point when they share a cell; the actual marker wins a tie.
func Bar(b domain.Balance, width int, s *styles.Styles) string {
	if s == nil {
		s = styles.DefaultStyles()
	}
	width = max(width, MinWidth)
	a, alt, point := Markers(b, width)

	cells := make([]string, width)
	for i := range cells {
		cells[i] = s.Muted.Render(trackGlyph)
	}
	cells[point] = s.BalancePoint.Render(BalanceGlyph)
	cells[alt] = s.Alternate.Render(AlternateGlyph)
	cells[a] = s.Actual.Render(ActualGlyph)

	return strings.Join(cells, "")
}

// Render draws the labelled bar, a legend naming both choices and their
// sentiments, and the comparison message.
func Render(sim *domain.Simulation, width int, s *styles.Styles) string {
	if s == nil {
		s = styles.DefaultStyles()
	}
	left := s.Muted.Render("worse ")
	right := s.Muted.Render(" better")
	barWidth := width - lipgloss.Width(left) - lipgloss.Width(right)

	var b strings.Builder
	b.WriteString(left)
	b.WriteString(Bar(sim.Balance, barWidth, s))
	b.WriteString(right)
	b.WriteString("\n")

	b.WriteString(s.Actual.Render(ActualGlyph + " " + sim.Decision.ActualChoice))
	b.WriteString(s.Muted.Render(fmt.Sprintf(" (%+.1f)", sim.Actual.OverallSentiment)))
	b.WriteString("   ")
	b.WriteString(s.Alternate.Render(AlternateGlyph + " " + sim.Decision.AlternateChoice))
	b.WriteString(s.Muted.Render(fmt.Sprintf(" (%+.1f)", sim.Alternate.OverallSentiment)))
	b.WriteString("\n\n")

	b.WriteString(s.Title.Render(sim.Balance.Message))
	return b.String()
}
