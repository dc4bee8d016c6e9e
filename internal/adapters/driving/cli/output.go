package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/whatif-cli/internal/adapters/driving/tui/components/balance"
	"github.com/custodia-labs/whatif-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/whatif-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/whatif-cli/internal/core/domain"
)

// fallbackWidth is used when the output is not a terminal.
const fallbackWidth = 60

// outputWidth returns the configured width, the terminal width, or the
// fallback, in that order.
func outputWidth(cmd *cobra.Command) int {
	if settings.Output.Width > 0 {
		return settings.Output.Width
	}
	if f, ok := cmd.OutOrStdout().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return fallbackWidth
}

// wantJSON reports whether JSON output was requested by flag or settings.
func wantJSON(flag bool) bool {
	return flag || settings.Output.Format == domain.OutputJSON
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// renderSimulation writes the balance bar followed by both timelines.
func renderSimulation(w io.Writer, sim *domain.Simulation, width int) {
	s := styles.DefaultStyles()

	fmt.Fprintf(w, "What if: %s\n\n", sim.Decision.Question)
	fmt.Fprintln(w, balance.Render(sim, width, s))
	fmt.Fprintln(w)

	renderTimeline(w, "Your Path", sim.Decision.ActualChoice, sim.Decision, sim.Actual, width, s)
	fmt.Fprintln(w)
	renderTimeline(w, "The Other Path", sim.Decision.AlternateChoice, sim.Decision, sim.Alternate, width, s)
}

func renderTimeline(
	w io.Writer, title, choice string, d domain.Decision, t domain.Timeline, width int, s *styles.Styles,
) {
	header := fmt.Sprintf("%s: %s (%+.1f)", title, choice, t.OverallSentiment)
	fmt.Fprintln(w, s.Side(t.Side == domain.SideAlternate).Render(header))
	fmt.Fprintln(w, strings.Repeat("─", min(width, len([]rune(header)))))
	for _, in := range t.Insights {
		fmt.Fprintln(w, list.Card(in, d.CategoryName(in.CategoryID), width, s))
	}
}

// renderDecision prints the inputs of a decision.
func renderDecision(w io.Writer, d domain.Decision) {
	fmt.Fprintf(w, "Question:    %s\n", d.Question)
	fmt.Fprintf(w, "Actual:      %s\n", d.ActualChoice)
	fmt.Fprintf(w, "Alternate:   %s\n", d.AlternateChoice)
	if d.Context != "" {
		fmt.Fprintf(w, "Context:     %s\n", d.Context)
	}
	fmt.Fprintln(w, "Categories:")
	for _, c := range d.Categories {
		fmt.Fprintf(w, "  %-16s %-16s %2d\n", c.ID, c.Name, c.Importance)
	}
}
