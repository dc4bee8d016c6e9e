// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/whatif-cli/internal/core/domain"
)

// SimulationRequested asks the app to run a decision through the engine.
type SimulationRequested struct {
	Decision domain.Decision
}

// ImportanceAdjusted asks the app to regenerate with a new category weight.
type ImportanceAdjusted struct {
	Decision   domain.Decision
	CategoryID domain.CategoryID
	Importance int
}

// SimulationCompleted carries a finished simulation back to the model.
// Seq identifies the request that produced it.
type SimulationCompleted struct {
	Seq        uint64
	Simulation *domain.Simulation
	Err        error
}

// SaveRequested asks the app to persist the current decision.
type SaveRequested struct {
	Decision domain.Decision
}

// DecisionSaved signals a decision was saved.
type DecisionSaved struct {
	Saved *domain.SavedDecision
	Err   error
}

// SavedLoaded carries the list of saved decisions from the service.
type SavedLoaded struct {
	Decisions []domain.SavedDecision
	Err       error
}

// SavedSelected signals a saved decision should be replayed.
type SavedSelected struct {
	ID string
}

// SavedRemoved signals a saved decision was deleted.
type SavedRemoved struct {
	ID  string
	Err error
}

// ResetRequested discards the current simulation and clears the form.
type ResetRequested struct{}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewForm is the decision input form.
	ViewForm ViewType = iota
	// ViewLoading is the processing screen shown while simulating.
	ViewLoading
	// ViewResults shows both timelines and the balance.
	ViewResults
	// ViewSaved lists saved decisions.
	ViewSaved
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewForm:
		return "form"
	case ViewLoading:
		return "loading"
	case ViewResults:
		return "results"
	case ViewSaved:
		return "saved"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}
