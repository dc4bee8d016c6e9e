// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/whatif-cli/internal/adapters/driving/tui/styles"
)

// Field wraps a bubbles textinput with a label and form styling.
type Field struct {
	label     string
	required  bool
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewField creates a new labelled input. Fields start blurred.
func NewField(s *styles.Styles, label, placeholder string, required bool) *Field {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 512
	ti.Width = 50

	return &Field{
		label:     label,
		required:  required,
		textinput: ti,
		styles:    s,
		width:     60,
	}
}

// Init initialises the field.
func (f *Field) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (f *Field) Update(msg tea.Msg) (*Field, tea.Cmd) {
	var cmd tea.Cmd
	f.textinput, cmd = f.textinput.Update(msg)
	return f, cmd
}

// View renders the label above the input.
func (f *Field) View() string {
	label := f.label
	if f.required {
		label += " *"
	}
	labelStyle := f.styles.Muted
	if f.Focused() {
		labelStyle = f.styles.Title
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(label),
		f.styles.InputField.Render(f.textinput.View()),
	)
}

// Label returns the field label.
func (f *Field) Label() string {
	return f.label
}

// Required reports whether the field must be filled in.
func (f *Field) Required() bool {
	return f.required
}

// Value returns the current input value.
func (f *Field) Value() string {
	return f.textinput.Value()
}

// SetValue sets the input value.
func (f *Field) SetValue(value string) {
	f.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (f *Field) Focus() tea.Cmd {
	return f.textinput.Focus()
}

// Blur removes focus from the input.
func (f *Field) Blur() {
	f.textinput.Blur()
}

// Focused returns whether the input is focused.
func (f *Field) Focused() bool {
	return f.textinput.Focused()
}

// SetWidth sets the width of the input.
func (f *Field) SetWidth(width int) {
	f.width = width
	// Account for border and padding
	inputWidth := width - 6
	if inputWidth < 20 {
		inputWidth = 20
	}
	f.textinput.Width = inputWidth
}

// Width returns the current width.
func (f *Field) Width() int {
	return f.width
}

// Reset clears the input.
func (f *Field) Reset() {
	f.textinput.Reset()
}
