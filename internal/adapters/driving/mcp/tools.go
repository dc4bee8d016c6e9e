package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/whatif-cli/internal/core/domain"
)

// DecisionInput describes a decision in tool calls.
type DecisionInput struct {
	Question        string         `json:"question" jsonschema:"what the user is curious about"`
	ActualChoice    string         `json:"actual_choice" jsonschema:"the path that was taken"`
	AlternateChoice string         `json:"alternate_choice" jsonschema:"the path not taken"`
	Context         string         `json:"context,omitempty" jsonschema:"optional background such as age, location or job"`
	Categories      []string       `json:"categories,omitempty" jsonschema:"category ids to include (default all six)"`
	Importance      map[string]int `json:"importance,omitempty" jsonschema:"importance 1-10 keyed by category id"`
}

// AdjustInput is the input schema for the adjust_importance tool.
type AdjustInput struct {
	Decision   DecisionInput `json:"decision" jsonschema:"the decision to regenerate"`
	CategoryID string        `json:"category_id" jsonschema:"the category to reweight"`
	Importance int           `json:"importance" jsonschema:"new importance, saturated into 1-10"`
}

// SavedInput identifies a saved decision.
type SavedInput struct {
	ID string `json:"id" jsonschema:"the saved decision id"`
}

// SimulationOutput is the output schema for simulation tools.
type SimulationOutput struct {
	Question   string            `json:"question"`
	Actual     TimelineOutput    `json:"actual"`
	Alternate  TimelineOutput    `json:"alternate"`
	Comparison domain.Comparison `json:"comparison"`
	Message    string            `json:"message"`
	Balance    domain.Balance    `json:"balance"`
}

// TimelineOutput summarises one timeline.
type TimelineOutput struct {
	Choice    string          `json:"choice"`
	Sentiment float64         `json:"sentiment"`
	Insights  []InsightOutput `json:"insights"`
}

// InsightOutput represents a single insight.
type InsightOutput struct {
	Category string `json:"category"`
	Content  string `json:"content"`
	Positive bool   `json:"positive"`
	Impact   int    `json:"impact"`
	Trend    string `json:"trend"`
}

// SaveOutput is the output schema for the save_decision tool.
type SaveOutput struct {
	ID string `json:"id"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "simulate",
		Description: "Generate the actual and alternate timelines for a life decision",
	}, s.handleSimulate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "adjust_importance",
		Description: "Change one category's importance and regenerate both timelines",
	}, s.handleAdjust)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "save_decision",
		Description: "Save a decision so it can be replayed later",
	}, s.handleSave)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "run_saved",
		Description: "Re-run a saved decision with fresh randomness",
	}, s.handleRunSaved)
}

// handleSimulate handles the simulate tool invocation.
func (s *Server) handleSimulate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DecisionInput,
) (*mcp.CallToolResult, SimulationOutput, error) {
	d, err := input.toDecision()
	if err != nil {
		return nil, SimulationOutput{}, err
	}
	sim, err := s.ports.Simulator.Simulate(ctx, d)
	if err != nil {
		return nil, SimulationOutput{}, err
	}
	return nil, toOutput(sim), nil
}

// handleAdjust handles the adjust_importance tool invocation.
func (s *Server) handleAdjust(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AdjustInput,
) (*mcp.CallToolResult, SimulationOutput, error) {
	d, err := input.Decision.toDecision()
	if err != nil {
		return nil, SimulationOutput{}, err
	}
	sim, err := s.ports.Simulator.AdjustImportance(ctx, d, domain.CategoryID(input.CategoryID), input.Importance)
	if err != nil {
		return nil, SimulationOutput{}, err
	}
	return nil, toOutput(sim), nil
}

// handleSave handles the save_decision tool invocation.
func (s *Server) handleSave(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DecisionInput,
) (*mcp.CallToolResult, SaveOutput, error) {
	if s.ports.Decisions == nil {
		return nil, SaveOutput{}, errors.New("saved decisions are not available")
	}
	d, err := input.toDecision()
	if err != nil {
		return nil, SaveOutput{}, err
	}
	saved, err := s.ports.Decisions.Save(ctx, d)
	if err != nil {
		return nil, SaveOutput{}, err
	}
	return nil, SaveOutput{ID: saved.ID}, nil
}

// handleRunSaved handles the run_saved tool invocation.
func (s *Server) handleRunSaved(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SavedInput,
) (*mcp.CallToolResult, SimulationOutput, error) {
	if s.ports.Decisions == nil {
		return nil, SimulationOutput{}, errors.New("saved decisions are not available")
	}
	sim, err := s.ports.Decisions.Load(ctx, input.ID)
	if err != nil {
		return nil, SimulationOutput{}, err
	}
	return nil, toOutput(sim), nil
}

// toDecision builds a decision from tool input. The category list defaults
// to the built-in set; importance overrides must name a listed category.
func (in DecisionInput) toDecision() (domain.Decision, error) {
	d := domain.Decision{
		Question:        in.Question,
		ActualChoice:    in.ActualChoice,
		AlternateChoice: in.AlternateChoice,
		Context:         in.Context,
		Categories:      domain.DefaultCategories(),
	}

	if len(in.Categories) > 0 {
		byID := make(map[domain.CategoryID]domain.Category)
		for _, c := range d.Categories {
			byID[c.ID] = c
		}
		selected := make([]domain.Category, 0, len(in.Categories))
		for _, id := range in.Categories {
			c, ok := byID[domain.CategoryID(id)]
			if !ok {
				return domain.Decision{}, fmt.Errorf("%w: %s", domain.ErrUnknownCategory, id)
			}
			selected = append(selected, c)
		}
		d.Categories = selected
	}

	for id, importance := range in.Importance {
		updated, err := d.WithImportance(domain.CategoryID(id), importance)
		if err != nil {
			return domain.Decision{}, err
		}
		d = updated
	}
	return d, nil
}

func toOutput(sim *domain.Simulation) SimulationOutput {
	return SimulationOutput{
		Question:   sim.Decision.Question,
		Actual:     toTimeline(sim.Decision, sim.Decision.ActualChoice, sim.Actual),
		Alternate:  toTimeline(sim.Decision, sim.Decision.AlternateChoice, sim.Alternate),
		Comparison: sim.Balance.Comparison,
		Message:    sim.Balance.Message,
		Balance:    sim.Balance,
	}
}

func toTimeline(d domain.Decision, choice string, t domain.Timeline) TimelineOutput {
	out := TimelineOutput{
		Choice:    choice,
		Sentiment: t.OverallSentiment,
		Insights:  make([]InsightOutput, len(t.Insights)),
	}
	for i, in := range t.Insights {
		out.Insights[i] = InsightOutput{
			Category: d.CategoryName(in.CategoryID),
			Content:  in.Content,
			Positive: in.IsPositive,
			Impact:   in.Impact,
			Trend:    in.Trend().String(),
		}
	}
	return out
}
