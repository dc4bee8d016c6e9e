// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/whatif-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/whatif-cli/internal/core/domain"
)

// linesPerCard is the rendered height of one card including its border.
const linesPerCard = 4

// InsightList displays one timeline as a scrollable column of cards.
type InsightList struct {
	title    string
	timeline domain.Timeline
	decision domain.Decision
	offset   int
	styles   *styles.Styles
	width    int
	height   int
}

// NewInsightList creates a new insight list component.
func NewInsightList(s *styles.Styles) *InsightList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &InsightList{
		styles: s,
		width:  40,
		height: 20,
	}
}

// Init initialises the insight list.
func (l *InsightList) Init() tea.Cmd {
	return nil
}

// Update handles scrolling messages.
func (l *InsightList) Update(msg tea.Msg) (*InsightList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "pgup":
			l.ScrollUp()
		case "pgdown":
			l.ScrollDown()
		}
	}
	return l, nil
}

// View renders the insight list.
func (l *InsightList) View() string {
	alternate := l.timeline.Side == domain.SideAlternate
	header := l.styles.Side(alternate).Render(fmt.Sprintf("%s (%d)", l.title, len(l.timeline.Insights)))

	if len(l.timeline.Insights) == 0 {
		return header + "\n" + l.styles.Muted.Render("No insights")
	}

	lines := []string{header}
	end := min(len(l.timeline.Insights), l.offset+l.visibleCount())
	for i := l.offset; i < end; i++ {
		in := l.timeline.Insights[i]
		lines = append(lines, Card(in, l.decision.CategoryName(in.CategoryID), l.width, l.styles))
	}
	if end < len(l.timeline.Insights) {
		lines = append(lines, l.styles.Muted.Render(fmt.Sprintf("… %d more", len(l.timeline.Insights)-end)))
	}
	return strings.Join(lines, "\n")
}

func (l *InsightList) visibleCount() int {
	return max(1, (l.height-2)/linesPerCard)
}

// Card renders a single insight with category, polarity, impact and trend.
func Card(in domain.Insight, category string, width int, s *styles.Styles) string {
	if s == nil {
		s = styles.DefaultStyles()
	}
	sign := "−"
	if in.IsPositive {
		sign = "+"
	}
	head := s.Polarity(in.IsPositive).Render(fmt.Sprintf("%s%d", sign, in.Impact)) +
		" " + s.Normal.Render(category) +
		" " + s.Muted.Render(TrendGlyph(in.Trend()))

	inner := max(10, width-4)
	body := truncate(in.Content, inner)
	return s.Card.Width(inner + 2).Render(head + "\n" + body)
}

// TrendGlyph returns the arrow shown for an impact trend.
func TrendGlyph(t domain.Trend) string {
	switch t {
	case domain.TrendRising:
		return "↑"
	case domain.TrendFalling:
		return "↓"
	default:
		return "→"
	}
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	if width <= 1 || len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

// SetTimeline replaces the shown timeline and resets scrolling.
func (l *InsightList) SetTimeline(title string, d domain.Decision, t domain.Timeline) {
	l.title = title
	l.decision = d
	l.timeline = t
	l.offset = 0
}

// Timeline returns the shown timeline.
func (l *InsightList) Timeline() domain.Timeline {
	return l.timeline
}

// Offset returns the index of the first visible card.
func (l *InsightList) Offset() int {
	return l.offset
}

// ScrollUp moves the window up by one card.
func (l *InsightList) ScrollUp() {
	if l.offset > 0 {
		l.offset--
	}
}

// ScrollDown moves the window down by one card.
func (l *InsightList) ScrollDown() {
	if l.offset+l.visibleCount() < len(l.timeline.Insights) {
		l.offset++
	}
}

// SetSize sets the list dimensions.
func (l *InsightList) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// IsEmpty returns true if there are no insights.
func (l *InsightList) IsEmpty() bool {
	return len(l.timeline.Insights) == 0
}
