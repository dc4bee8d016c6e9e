package loading

import (
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/whatif-cli/internal/core/domain"
)

func TestNewView(t *testing.T) {
	v := NewView(nil)

	require.NotNil(t, v)
	assert.NotNil(t, v.Init())
}

func TestView_Update_IgnoresKeys(t *testing.T) {
	v := NewView(nil)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestView_Update_SpinnerTick(t *testing.T) {
	v := NewView(nil)

	_, cmd := v.Update(v.spinner.Tick())

	assert.NotNil(t, cmd)
}

func TestView_Update_ForeignTickIgnored(t *testing.T) {
	v := NewView(nil)

	_, cmd := v.Update(spinner.TickMsg{ID: 999999})

	assert.Nil(t, cmd)
}

func TestView_View(t *testing.T) {
	v := NewView(nil)
	v.SetDecision(domain.Decision{
		Question:        "Should I have moved?",
		ActualChoice:    "I moved",
		AlternateChoice: "I stayed",
	})

	view := v.View()

	assert.Contains(t, view, Title)
	assert.Contains(t, view, "Should I have moved?")
	assert.Contains(t, view, "I moved")
	assert.Contains(t, view, "I stayed")
	assert.Equal(t, "I moved", v.Decision().ActualChoice)
}
