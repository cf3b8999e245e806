package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trialforge/whereclause/internal/clause"
)

var describeTree bool

var describeCmd = &cobra.Command{
	Use:   "describe <expression.json>",
	Short: "Render a human-readable description of an expression",
	Args:  cobra.ExactArgs(1),
	RunE:  runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().BoolVar(&describeTree, "tree", false, "render the full tree as one infix expression")
}

func runDescribe(cmd *cobra.Command, args []string) error {
	expr, err := readExpression(args[0])
	if err != nil {
		return err
	}

	render := clause.Describe
	if describeTree {
		render = clause.DescribeTree
	}

	text, err := render(expr)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
