package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/whatif-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/whatif-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/whatif-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/whatif-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/whatif-cli/internal/adapters/driving/tui/views/form"
	"github.com/custodia-labs/whatif-cli/internal/adapters/driving/tui/views/loading"
	"github.com/custodia-labs/whatif-cli/internal/adapters/driving/tui/views/results"
	"github.com/custodia-labs/whatif-cli/internal/adapters/driving/tui/views/saved"
	"github.com/custodia-labs/whatif-cli/internal/core/domain"
	"github.com/custodia-labs/whatif-cli/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// delay is the minimum time the loading view is shown for a new
	// simulation. Importance adjustments skip it.
	delay time.Duration

	styles *styles.Styles
	keymap *keymap.KeyMap

	formView    *form.View
	loadingView *loading.View
	resultsView *results.View
	savedView   *saved.View
	statusBar   *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// sim is the simulation on screen, nil before the first run.
	sim *domain.Simulation

	// seq numbers simulation requests. Completions for anything but the
	// latest request are dropped.
	seq uint64

	// err holds the last error that occurred.
	err error

	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		formView:    form.NewView(s, km),
		loadingView: loading.NewView(s),
		resultsView: results.NewView(s, km),
		savedView:   saved.NewView(s, km, ports.Decisions),
		statusBar:   status.NewBar(s, km),
		currentView: messages.ViewForm,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.savedView.WithContext(ctx)
	return a
}

// WithDelay sets the minimum loading time for new simulations.
func (a *App) WithDelay(d time.Duration) *App {
	a.delay = max(0, d)
	return a
}

// WithDecision pre-fills the form.
func (a *App) WithDecision(d domain.Decision) *App {
	a.formView.SetDecision(d)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("whatif - Alternate Timelines"),
		a.formView.Init(),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.SimulationRequested:
		a.err = nil
		a.loadingView.SetDecision(msg.Decision)
		a.setView(messages.ViewLoading)
		d := msg.Decision
		return a, tea.Batch(a.loadingView.Init(), a.simulate(func(ctx context.Context) (*domain.Simulation, error) {
			return a.ports.Simulator.Simulate(ctx, d)
		}, true))

	case messages.ImportanceAdjusted:
		d, id, imp := msg.Decision, msg.CategoryID, msg.Importance
		return a, a.simulate(func(ctx context.Context) (*domain.Simulation, error) {
			return a.ports.Simulator.AdjustImportance(ctx, d, id, imp)
		}, false)

	case messages.SavedSelected:
		if a.ports.Decisions == nil {
			return a, a.fail(saved.ErrNoDecisionService)
		}
		a.err = nil
		a.setView(messages.ViewLoading)
		id := msg.ID
		return a, tea.Batch(a.loadingView.Init(), a.simulate(func(ctx context.Context) (*domain.Simulation, error) {
			return a.ports.Decisions.Load(ctx, id)
		}, true))

	case messages.SimulationCompleted:
		return a.handleCompleted(msg)

	case messages.SaveRequested:
		return a, a.save(msg.Decision)

	case messages.DecisionSaved:
		if msg.Err != nil {
			return a, a.fail(msg.Err)
		}
		a.statusBar.SetMessage("Saved as " + shortID(msg.Saved.ID))
		return a, nil

	case messages.ResetRequested:
		a.seq++
		a.sim = nil
		a.resultsView.SetSimulation(nil)
		a.setView(messages.ViewForm)
		return a, a.formView.Reset()

	case messages.ViewChanged:
		return a, a.setView(msg.View)

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(msg.Err.Error())
		return a, nil

	case messages.SavedLoaded, messages.SavedRemoved:
		var cmd tea.Cmd
		a.savedView, cmd = a.savedView.Update(msg)
		return a, cmd

	case spinner.TickMsg:
		if a.currentView != messages.ViewLoading {
			return a, nil
		}
		var cmd tea.Cmd
		a.loadingView, cmd = a.loadingView.Update(msg)
		return a, cmd
	}

	if a.currentView == messages.ViewForm {
		var cmd tea.Cmd
		a.formView, cmd = a.formView.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()
	if keymap.Matches(keyStr, a.keymap.Quit) {
		return a, tea.Quit
	}

	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewForm:
		if keymap.Matches(keyStr, a.keymap.Saved) {
			return a, a.setView(messages.ViewSaved)
		}
		if keymap.Matches(keyStr, a.keymap.Back) && a.sim != nil {
			return a, a.setView(messages.ViewResults)
		}
		a.formView, cmd = a.formView.Update(msg)
	case messages.ViewResults:
		if keymap.Matches(keyStr, a.keymap.Saved) {
			return a, a.setView(messages.ViewSaved)
		}
		a.resultsView, cmd = a.resultsView.Update(msg)
	case messages.ViewSaved:
		a.savedView, cmd = a.savedView.Update(msg)
	case messages.ViewLoading:
		// Keys other than quit are ignored while generating.
	}
	return a, cmd
}

func (a *App) handleCompleted(msg messages.SimulationCompleted) (tea.Model, tea.Cmd) {
	if msg.Seq != a.seq {
		logger.Debug("dropping stale simulation %d (latest %d)", msg.Seq, a.seq)
		return a, nil
	}
	if msg.Err != nil {
		logger.Warn("simulation failed: %v", msg.Err)
		if a.currentView == messages.ViewLoading {
			a.setView(messages.ViewForm)
		}
		return a, a.fail(msg.Err)
	}

	a.err = nil
	a.sim = msg.Simulation
	a.resultsView.SetSimulation(msg.Simulation)
	a.formView.SetDecision(msg.Simulation.Decision)
	a.setView(messages.ViewResults)
	return a, nil
}

// setView switches the active view and updates the status bar.
func (a *App) setView(v messages.ViewType) tea.Cmd {
	a.currentView = v
	switch v {
	case messages.ViewForm:
		a.statusBar.SetState(status.StateEditing)
	case messages.ViewLoading:
		a.statusBar.SetState(status.StateSimulating)
	case messages.ViewResults:
		a.statusBar.SetState(status.StateResults)
	case messages.ViewSaved:
		a.statusBar.SetState(status.StateSaved)
		return a.savedView.Init()
	}
	return nil
}

// fail records an error and shows it in the status bar.
func (a *App) fail(err error) tea.Cmd {
	a.err = err
	a.statusBar.SetState(status.StateError)
	a.statusBar.SetMessage(err.Error())
	return nil
}

// simulate runs fn off the update loop. When withDelay is set the result is
// held back until the configured delay has elapsed since the start.
func (a *App) simulate(fn func(ctx context.Context) (*domain.Simulation, error), withDelay bool) tea.Cmd {
	a.seq++
	seq := a.seq
	ctx := a.ctx
	delay := a.delay
	return func() tea.Msg {
		start := time.Now()
		sim, err := fn(ctx)
		if withDelay && err == nil {
			if rest := delay - time.Since(start); rest > 0 {
				timer := time.NewTimer(rest)
				defer timer.Stop()
				select {
				case <-timer.C:
				case <-ctx.Done():
					return messages.SimulationCompleted{Seq: seq, Err: ctx.Err()}
				}
			}
		}
		return messages.SimulationCompleted{Seq: seq, Simulation: sim, Err: err}
	}
}

func (a *App) save(d domain.Decision) tea.Cmd {
	if a.ports.Decisions == nil {
		return a.fail(saved.ErrNoDecisionService)
	}
	svc := a.ports.Decisions
	ctx := a.ctx
	return func() tea.Msg {
		s, err := svc.Save(ctx, d)
		return messages.DecisionSaved{Saved: s, Err: err}
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// View implements tea.Model.
func (a *App) View() string {
	var body string
	switch a.currentView {
	case messages.ViewLoading:
		body = a.loadingView.View()
	case messages.ViewResults:
		body = a.resultsView.View()
	case messages.ViewSaved:
		body = a.savedView.View()
	default:
		body = a.formView.View()
	}
	return body + "\n\n" + a.statusBar.View()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the currently active view.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Simulation returns the simulation on screen.
func (a *App) Simulation() *domain.Simulation {
	return a.sim
}

// Err returns the last error.
func (a *App) Err() error {
	return a.err
}

// StatusMessage returns the status bar message.
func (a *App) StatusMessage() string {
	return a.statusBar.Message()
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	// Leave room for the status bar.
	viewHeight := max(1, height-2)
	a.formView.SetDimensions(width, viewHeight)
	a.loadingView.SetDimensions(width, viewHeight)
	a.resultsView.SetDimensions(width, viewHeight)
	a.savedView.SetDimensions(width, viewHeight)
	a.statusBar.SetWidth(width)
}
