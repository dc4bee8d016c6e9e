// Package loading provides the view shown while timelines are generated.
package loading

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/whatif-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/whatif-cli/internal/core/domain"
)

// Title is the heading of the loading view.
const Title = "Exploring Parallel Timelines"

// View shows a spinner and the two choices being compared.
type View struct {
	styles   *styles.Styles
	spinner  spinner.Model
	decision domain.Decision
	width    int
	height   int
}

// NewView creates a new loading view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Title

	return &View{
		styles:  s,
		spinner: sp,
		width:   80,
		height:  24,
	}
}

// Init starts the spinner.
func (v *View) Init() tea.Cmd {
	return v.spinner.Tick
}

// Update advances the spinner.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(tick)
		return v, cmd
	}
	return v, nil
}

// View renders the loading screen.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.spinner.View())
	b.WriteString(" ")
	b.WriteString(v.styles.Title.Render(Title))
	b.WriteString("\n\n")

	if v.decision.Question != "" {
		b.WriteString(v.styles.Normal.Render(v.decision.Question))
		b.WriteString("\n\n")
	}
	b.WriteString(v.styles.Actual.Render(fmt.Sprintf("  Your path:      %s", v.decision.ActualChoice)))
	b.WriteString("\n")
	b.WriteString(v.styles.Alternate.Render(fmt.Sprintf("  The other path: %s", v.decision.AlternateChoice)))
	b.WriteString("\n")

	return b.String()
}

// SetDecision sets the decision being simulated.
func (v *View) SetDecision(d domain.Decision) {
	v.decision = d
}

// Decision returns the decision being simulated.
func (v *View) Decision() domain.Decision {
	return v.decision
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}
