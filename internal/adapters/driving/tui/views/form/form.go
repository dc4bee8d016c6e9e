// Package form provides the decision input view for the TUI.
package form

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/whatif-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/whatif-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/whatif-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/whatif-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/whatif-cli/internal/core/domain"
)

// Field indices in tab order.
const (
	FieldQuestion = iota
	FieldActual
	FieldAlternate
	FieldContext
)

// View collects a decision from the user.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	fields []*input.Field
	focus  int

	// categories carries weights from a previous run so that editing the
	// text keeps the slider positions.
	categories []domain.Category

	err    error
	width  int
	height int
}

// NewView creates a new form view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles: s,
		keymap: km,
		fields: []*input.Field{
			input.NewField(s, "What decision are you curious about?", "Should I have moved to a new city?", true),
			input.NewField(s, "What did you actually do?", "I moved to Boston", true),
			input.NewField(s, "What was the alternative?", "I stayed in my hometown", true),
			input.NewField(s, "Any context? (age, location, job...)", "I was 25 and had a job offer", false),
		},
		width:  80,
		height: 24,
	}
}

// Init focuses the first field.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.setFocus(v.focus), v.fields[0].Init())
}

// Update handles messages for the form view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, v.updateFocused(msg)
	}

	keyStr := keyMsg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Submit):
		return v, v.submit()
	case keyStr == "enter":
		if v.focus == len(v.fields)-1 {
			return v, v.submit()
		}
		return v, v.setFocus(v.focus + 1)
	case keymap.Matches(keyStr, v.keymap.NextField):
		return v, v.setFocus((v.focus + 1) % len(v.fields))
	case keymap.Matches(keyStr, v.keymap.PrevField):
		return v, v.setFocus((v.focus + len(v.fields) - 1) % len(v.fields))
	}

	return v, v.updateFocused(msg)
}

func (v *View) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.fields[v.focus], cmd = v.fields[v.focus].Update(msg)
	return cmd
}

func (v *View) setFocus(i int) tea.Cmd {
	for _, f := range v.fields {
		f.Blur()
	}
	v.focus = i
	return v.fields[i].Focus()
}

// submit validates and emits a simulation request.
func (v *View) submit() tea.Cmd {
	d := v.Decision()
	if err := d.Validate(); err != nil {
		v.err = err
		return nil
	}
	v.err = nil
	return func() tea.Msg {
		return messages.SimulationRequested{Decision: d}
	}
}

// View renders the form.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("What If?"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Explore the path not taken."))
	b.WriteString("\n\n")

	for _, f := range v.fields {
		b.WriteString(f.View())
		b.WriteString("\n")
	}

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(v.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[tab] next field  [enter] next / explore  [ctrl+s] explore  [ctrl+o] saved"))
	return b.String()
}

// Decision returns the decision described by the current field values.
func (v *View) Decision() domain.Decision {
	return domain.Decision{
		Question:        strings.TrimSpace(v.fields[FieldQuestion].Value()),
		ActualChoice:    strings.TrimSpace(v.fields[FieldActual].Value()),
		AlternateChoice: strings.TrimSpace(v.fields[FieldAlternate].Value()),
		Context:         strings.TrimSpace(v.fields[FieldContext].Value()),
		Categories:      v.categories,
	}
}

// SetDecision fills the form from a decision.
func (v *View) SetDecision(d domain.Decision) {
	v.fields[FieldQuestion].SetValue(d.Question)
	v.fields[FieldActual].SetValue(d.ActualChoice)
	v.fields[FieldAlternate].SetValue(d.AlternateChoice)
	v.fields[FieldContext].SetValue(d.Context)
	v.categories = d.Categories
	v.err = nil
}

// Reset clears every field and forgets category weights.
func (v *View) Reset() tea.Cmd {
	for _, f := range v.fields {
		f.Reset()
	}
	v.categories = nil
	v.err = nil
	return v.setFocus(FieldQuestion)
}

// Focus returns the index of the focused field.
func (v *View) Focus() int {
	return v.focus
}

// Err returns the last validation error.
func (v *View) Err() error {
	return v.err
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	for _, f := range v.fields {
		f.SetWidth(min(width, 80))
	}
}
