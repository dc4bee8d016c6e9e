// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette and styling for the TUI.
type Theme struct {
	// Primary is the main accent colour, also used for the balance point.
	Primary lipgloss.Color

	// Actual marks the path that was taken.
	Actual lipgloss.Color

	// Alternate marks the path not taken.
	Alternate lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Error indicates negative outcomes and problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Actual:     lipgloss.Color("#3B82F6"), // Blue
		Alternate:  lipgloss.Color("#F59E0B"), // Amber
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Success:    lipgloss.Color("#A6E3A1"), // Green
		Error:      lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#45475A"), // Border gray
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for highlighted items.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Success style for success messages.
	Success lipgloss.Style

	// Actual style for the taken path.
	Actual lipgloss.Style

	// Alternate style for the path not taken.
	Alternate lipgloss.Style

	// BalancePoint style for the midpoint marker.
	BalancePoint lipgloss.Style

	// Positive style for favourable insights.
	Positive lipgloss.Style

	// Negative style for unfavourable insights.
	Negative lipgloss.Style

	// InputField style for input areas.
	InputField lipgloss.Style

	// Card style for insight cards.
	Card lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Actual: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Actual),

		Alternate: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Alternate),

		BalancePoint: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Positive: lipgloss.NewStyle().
			Foreground(theme.Success),

		Negative: lipgloss.NewStyle().
			Foreground(theme.Error),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#181825")).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Side returns the style for a timeline side.
func (s *Styles) Side(alternate bool) lipgloss.Style {
	if alternate {
		return s.Alternate
	}
	return s.Actual
}

// Polarity returns the style for an insight's polarity.
func (s *Styles) Polarity(positive bool) lipgloss.Style {
	if positive {
		return s.Positive
	}
	return s.Negative
}
