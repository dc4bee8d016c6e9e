// Package results provides the side-by-side timeline comparison view.
package results

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/whatif-cli/internal/adapters/driving/tui/components/balance"
	"github.com/custodia-labs/whatif-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/whatif-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/whatif-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/whatif-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/whatif-cli/internal/core/domain"
)

// Column titles for the two timelines.
const (
	ActualTitle    = "Your Path"
	AlternateTitle = "The Other Path"
)

// sideBySideWidth is the narrowest terminal that shows both columns together.
const sideBySideWidth = 80

// View shows a simulation: the balance bar, category sliders and both
// timelines.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	sim      *domain.Simulation
	selected int
	// decision holds the requested weights, which run ahead of sim while
	// an adjustment is in flight.
	decision  domain.Decision
	actual    *list.InsightList
	alternate *list.InsightList
	width     int
	height    int
}

// NewView creates a new results view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:    s,
		keymap:    km,
		actual:    list.NewInsightList(s),
		alternate: list.NewInsightList(s),
		width:     80,
		height:    24,
	}
	v.layout()
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || v.sim == nil {
		return v, nil
	}

	keyStr := keyMsg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewForm}
		}
	case keymap.Matches(keyStr, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(keyStr, v.keymap.Down):
		if v.selected < len(v.decision.Categories)-1 {
			v.selected++
		}
	case keymap.Matches(keyStr, v.keymap.Increase):
		return v, v.adjust(1)
	case keymap.Matches(keyStr, v.keymap.Decrease):
		return v, v.adjust(-1)
	case keymap.Matches(keyStr, v.keymap.Save):
		d := v.decision
		return v, func() tea.Msg {
			return messages.SaveRequested{Decision: d}
		}
	case keymap.Matches(keyStr, v.keymap.Reset):
		return v, func() tea.Msg {
			return messages.ResetRequested{}
		}
	case keyStr == "pgup", keyStr == "pgdown":
		v.actual.Update(msg)
		v.alternate.Update(msg)
	}
	return v, nil
}

// adjust emits an importance change for the selected category. Nothing is
// emitted when the weight is already at its bound. Successive presses build
// on the requested weights, not on the last completed simulation.
func (v *View) adjust(delta int) tea.Cmd {
	cats := v.decision.Categories
	if v.selected >= len(cats) {
		return nil
	}
	c := cats[v.selected]
	next := domain.ClampImportance(c.Importance + delta)
	if next == c.Importance {
		return nil
	}
	d := v.decision
	updated, err := d.WithImportance(c.ID, next)
	if err != nil {
		return nil
	}
	v.decision = updated
	return func() tea.Msg {
		return messages.ImportanceAdjusted{Decision: d, CategoryID: c.ID, Importance: next}
	}
}

// View renders the results.
func (v *View) View() string {
	if v.sim == nil {
		return v.styles.Muted.Render("No simulation yet.")
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("What if: " + v.sim.Decision.Question))
	b.WriteString("\n\n")
	b.WriteString(balance.Render(v.sim, min(v.width, 100), v.styles))
	b.WriteString("\n\n")
	b.WriteString(v.renderSliders())
	b.WriteString("\n")

	if v.width >= sideBySideWidth {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, v.actual.View(), "  ", v.alternate.View()))
	} else {
		b.WriteString(v.actual.View())
		b.WriteString("\n\n")
		b.WriteString(v.alternate.View())
	}
	return b.String()
}

func (v *View) renderSliders() string {
	var b strings.Builder
	b.WriteString(v.styles.Muted.Render("Importance"))
	b.WriteString("\n")
	for i, c := range v.decision.Categories {
		filled := strings.Repeat("■", c.Importance)
		empty := strings.Repeat("□", domain.MaxImportance-c.Importance)
		line := fmt.Sprintf("%-14s %s%s %2d", c.Name, filled, empty, c.Importance)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// SetSimulation replaces the shown simulation. The selected category is kept
// so that repeated adjustments stay on the same slider.
func (v *View) SetSimulation(sim *domain.Simulation) {
	v.sim = sim
	if sim == nil {
		v.selected = 0
		v.decision = domain.Decision{}
		return
	}
	v.decision = sim.Decision
	if v.selected >= len(sim.Decision.Categories) {
		v.selected = max(0, len(sim.Decision.Categories)-1)
	}
	v.actual.SetTimeline(ActualTitle, sim.Decision, sim.Actual)
	v.alternate.SetTimeline(AlternateTitle, sim.Decision, sim.Alternate)
}

// Simulation returns the shown simulation.
func (v *View) Simulation() *domain.Simulation {
	return v.sim
}

// Decision returns the decision with the requested weights.
func (v *View) Decision() domain.Decision {
	return v.decision
}

// Selected returns the index of the selected category.
func (v *View) Selected() int {
	return v.selected
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.layout()
}

func (v *View) layout() {
	listHeight := max(6, v.height-18)
	if v.width >= sideBySideWidth {
		colWidth := (v.width - 2) / 2
		v.actual.SetSize(colWidth, listHeight)
		v.alternate.SetSize(colWidth, listHeight)
		return
	}
	v.actual.SetSize(v.width, listHeight/2)
	v.alternate.SetSize(v.width, listHeight/2)
}
