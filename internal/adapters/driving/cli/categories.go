package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var categoriesJSON bool

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the built-in life categories",
	Long: `Lists the life areas every decision is scored on, with their default
importance. Use the ids with simulate --importance.`,
	Args: cobra.NoArgs,
	RunE: runCategories,
}

func init() {
	categoriesCmd.Flags().BoolVar(&categoriesJSON, "json", false, "output categories as JSON")
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	if simulator == nil {
		return errors.New("simulator not configured")
	}

	cats := simulator.Categories()
	if wantJSON(categoriesJSON) {
		return outputJSON(cmd, cats)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-16s %-16s %s\n", "ID", "NAME", "IMPORTANCE")
	for _, c := range cats {
		fmt.Fprintf(out, "%-16s %-16s %d\n", c.ID, c.Name, c.Importance)
	}
	return nil
}
