package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/whatif-cli/internal/adapters/driven/config/file"
)

var savedJSON bool

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "Manage saved decisions",
	Long: `List, show, replay, export or delete saved decisions.

Only the decision is stored. Replaying regenerates both timelines with fresh
randomness. Saved decisions outlive the process only with the sqlite
storage backend.`,
}

var savedListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved decisions, oldest first",
	Args:  cobra.NoArgs,
	RunE:  runSavedList,
}

var savedShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a saved decision",
	Args:  cobra.ExactArgs(1),
	RunE:  runSavedShow,
}

var savedRunCmd = &cobra.Command{
	Use:   "run [id]",
	Short: "Re-simulate a saved decision",
	Args:  cobra.ExactArgs(1),
	RunE:  runSavedRun,
}

var savedDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a saved decision",
	Args:  cobra.ExactArgs(1),
	RunE:  runSavedDelete,
}

var savedExportCmd = &cobra.Command{
	Use:   "export [id] [path]",
	Short: "Write a saved decision as a TOML decision file",
	Long: `Writes the decision in the format read by simulate --file and watch.
Without a path the file is printed to stdout.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSavedExport,
}

func init() {
	savedCmd.PersistentFlags().BoolVar(&savedJSON, "json", false, "output as JSON")

	savedCmd.AddCommand(savedListCmd)
	savedCmd.AddCommand(savedShowCmd)
	savedCmd.AddCommand(savedRunCmd)
	savedCmd.AddCommand(savedDeleteCmd)
	savedCmd.AddCommand(savedExportCmd)
	rootCmd.AddCommand(savedCmd)
}

func requireDecisionService() error {
	if decisionService == nil {
		return errors.New("decision service not configured")
	}
	return nil
}

func runSavedList(cmd *cobra.Command, _ []string) error {
	if err := requireDecisionService(); err != nil {
		return err
	}

	items, err := decisionService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list saved decisions: %w", err)
	}

	if wantJSON(savedJSON) {
		return outputJSON(cmd, items)
	}

	out := cmd.OutOrStdout()
	if len(items) == 0 {
		fmt.Fprintln(out, "No saved decisions.")
		return nil
	}
	for _, item := range items {
		fmt.Fprintf(out, "%s  %s  %s\n", item.ID, item.CreatedAt.Local().Format("2006-01-02 15:04"), item.Decision.Question)
	}
	fmt.Fprintf(out, "\nTotal: %d saved decisions\n", len(items))
	return nil
}

func runSavedShow(cmd *cobra.Command, args []string) error {
	if err := requireDecisionService(); err != nil {
		return err
	}

	item, err := decisionService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get saved decision: %w", err)
	}

	if wantJSON(savedJSON) {
		return outputJSON(cmd, item)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID:          %s\n", item.ID)
	fmt.Fprintf(out, "Saved:       %s\n", item.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	renderDecision(out, item.Decision)
	return nil
}

func runSavedRun(cmd *cobra.Command, args []string) error {
	if err := requireDecisionService(); err != nil {
		return err
	}

	result, err := decisionService.Load(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to replay saved decision: %w", err)
	}

	if wantJSON(savedJSON) {
		return outputJSON(cmd, result)
	}
	renderSimulation(cmd.OutOrStdout(), result, outputWidth(cmd))
	return nil
}

func runSavedDelete(cmd *cobra.Command, args []string) error {
	if err := requireDecisionService(); err != nil {
		return err
	}

	if err := decisionService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete saved decision: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
	return nil
}

func runSavedExport(cmd *cobra.Command, args []string) error {
	if err := requireDecisionService(); err != nil {
		return err
	}

	item, err := decisionService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get saved decision: %w", err)
	}

	if len(args) == 2 {
		if err := file.SaveDecision(args[1], item.Decision); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", item.ID, args[1])
		return nil
	}

	data, err := file.EncodeDecision(item.Decision)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
