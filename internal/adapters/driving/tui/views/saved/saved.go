// Package saved provides the view listing stored decisions.
package saved

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/whatif-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/whatif-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/whatif-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/whatif-cli/internal/core/domain"
	"github.com/custodia-labs/whatif-cli/internal/core/ports/driving"
)

// View lists saved decisions for replay or deletion.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	decisions driving.DecisionService
	ctx       context.Context

	items    []domain.SavedDecision
	selected int
	loading  bool
	err      error
	width    int
	height   int
}

// NewView creates a new saved decisions view.
func NewView(s *styles.Styles, km *keymap.KeyMap, decisions driving.DecisionService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:    s,
		keymap:    km,
		decisions: decisions,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context used for service calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the saved decisions.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.load()
}

func (v *View) load() tea.Cmd {
	svc := v.decisions
	ctx := v.ctx
	return func() tea.Msg {
		if svc == nil {
			return messages.SavedLoaded{Err: ErrNoDecisionService}
		}
		items, err := svc.List(ctx)
		return messages.SavedLoaded{Decisions: items, Err: err}
	}
}

func (v *View) remove(id string) tea.Cmd {
	svc := v.decisions
	ctx := v.ctx
	return func() tea.Msg {
		if svc == nil {
			return messages.SavedRemoved{ID: id, Err: ErrNoDecisionService}
		}
		return messages.SavedRemoved{ID: id, Err: svc.Delete(ctx, id)}
	}
}

// Update handles messages for the saved view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.SavedLoaded:
		v.loading = false
		v.err = msg.Err
		v.items = msg.Decisions
		if v.selected >= len(v.items) {
			v.selected = max(0, len(v.items)-1)
		}
		return v, nil

	case messages.SavedRemoved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.loading = true
		return v, v.load()

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()
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
		if v.selected < len(v.items)-1 {
			v.selected++
		}
	case keymap.Matches(keyStr, v.keymap.Select):
		if item, ok := v.SelectedItem(); ok {
			id := item.ID
			return v, func() tea.Msg {
				return messages.SavedSelected{ID: id}
			}
		}
	case keymap.Matches(keyStr, v.keymap.Delete):
		if item, ok := v.SelectedItem(); ok {
			return v, v.remove(item.ID)
		}
	}
	return v, nil
}

// View renders the saved decisions list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Saved Decisions"))
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %v", v.err)))
		b.WriteString("\n")
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading..."))
		b.WriteString("\n")
	case len(v.items) == 0:
		b.WriteString(v.styles.Muted.Render("No saved decisions. Press s on a result to save it."))
		b.WriteString("\n")
	default:
		for i, item := range v.items {
			line := fmt.Sprintf("%s  %s", item.CreatedAt.Local().Format("2006-01-02 15:04"), item.Decision.Question)
			if i == v.selected {
				b.WriteString(v.styles.Selected.Render("> " + line))
			} else {
				b.WriteString(v.styles.Normal.Render("  " + line))
			}
			b.WriteString("\n")
			b.WriteString(v.styles.Muted.Render(fmt.Sprintf("    %s / %s",
				item.Decision.ActualChoice, item.Decision.AlternateChoice)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[enter] replay  [d] delete  [esc] back"))
	return b.String()
}

// Items returns the loaded decisions.
func (v *View) Items() []domain.SavedDecision {
	return v.items
}

// SelectedItem returns the highlighted decision, if any.
func (v *View) SelectedItem() (domain.SavedDecision, bool) {
	if v.selected < 0 || v.selected >= len(v.items) {
		return domain.SavedDecision{}, false
	}
	return v.items[v.selected], true
}

// Err returns the last load or delete error.
func (v *View) Err() error {
	return v.err
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}
