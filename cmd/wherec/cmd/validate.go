package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trialforge/whereclause/internal/clause"
)

var validateCmd = &cobra.Command{
	Use:   "validate <expression.json>",
	Short: "Validate an expression tree",
	Long: `Validate checks the expression structurally and semantically and
prints every error and warning found. Exit status is nonzero when the
expression has errors; warnings alone do not fail validation.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	expr, err := readExpression(args[0])
	if err != nil {
		return err
	}

	result := clause.Validate(expr)
	for _, msg := range result.Errors {
		fmt.Fprintf(cmd.OutOrStdout(), "error: %s\n", msg)
	}
	for _, msg := range result.Warnings {
		fmt.Fprintf(cmd.OutOrStdout(), "warning: %s\n", msg)
	}

	if !result.IsValid {
		return fmt.Errorf("expression has %d error(s)", len(result.Errors))
	}
	fmt.Fprintln(cmd.OutOrStdout(), "valid")
	return nil
}
