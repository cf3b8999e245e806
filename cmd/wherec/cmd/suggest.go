package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trialforge/whereclause/internal/clause"
	"github.com/trialforge/whereclause/internal/metadata"
)

var suggestCheckRefs bool

var suggestCmd = &cobra.Command{
	Use:   "suggest <expression.json>",
	Short: "Print advisory suggestions for an expression",
	Long: `Suggest prints validation warnings and pattern-based advisories
(performance, list chunking, date handling). Suggestions never block any
operation. With --check-refs, dataset and variable names are also
cross-checked against the bundled metadata catalog.`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)
	suggestCmd.Flags().BoolVar(&suggestCheckRefs, "check-refs", false, "cross-check dataset/variable names against metadata")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	expr, err := readExpression(args[0])
	if err != nil {
		return err
	}

	suggestions := clause.Suggest(expr)
	if suggestCheckRefs {
		catalog := metadata.NewSampleCatalog()
		suggestions = append(suggestions, clause.CheckReferences(expr, catalog.Snapshot())...)
	}

	if len(suggestions) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no suggestions")
		return nil
	}
	for _, s := range suggestions {
		fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", s)
	}
	return nil
}
