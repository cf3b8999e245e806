package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trialforge/whereclause/internal/clause"
	"github.com/trialforge/whereclause/internal/types"
)

var (
	generateTarget string
	generateTable  string
	generateFrame  string
	generateAsTree bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <expression.json>",
	Short: "Transpile an expression into an executable filter snippet",
	Long: `Generate emits a filter program for the chosen target language.
Condition leaves are combined with an implicit AND; --tree instead emits
the full recursive boolean expression honoring AND/OR/NOT structure.
The expression must validate without errors first.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&generateTarget, "target", "", "target language (sas, r, python, sql); defaults from config")
	generateCmd.Flags().StringVar(&generateTable, "table", "", "SQL table / SAS input dataset name; defaults from config")
	generateCmd.Flags().StringVar(&generateFrame, "frame", "", "R / pandas data frame name; defaults from config")
	generateCmd.Flags().BoolVar(&generateAsTree, "tree", false, "emit the recursive boolean expression instead of a flattened program")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if generateTarget == "" {
		generateTarget = cfg.DefaultTarget
	}
	if generateTable == "" {
		generateTable = cfg.Table
	}
	if generateFrame == "" {
		generateFrame = cfg.Frame
	}

	target, err := clause.ParseTarget(generateTarget)
	if err != nil {
		return err
	}

	expr, err := readExpression(args[0])
	if err != nil {
		return err
	}

	if result := clause.Validate(expr); !result.IsValid {
		for _, msg := range result.Errors {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %s\n", msg)
		}
		return fmt.Errorf("expression has %d error(s); fix them before generating code", len(result.Errors))
	}

	var out string
	if generateAsTree {
		out, err = clause.GenerateTree(expr, target, generateFrame)
	} else {
		source := generateTable
		if target == clause.TargetR || target == clause.TargetPython {
			source = generateFrame
		}
		out, err = clause.GenerateProgram(flattenConditions(expr), target, source)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// flattenConditions collects every condition leaf in tree order for the
// implicit-AND program form.
func flattenConditions(e *types.Expression) []*types.Condition {
	var conds []*types.Condition
	var walk func(*types.Expression)
	walk = func(node *types.Expression) {
		if node.IsEmpty() {
			return
		}
		if node.Condition != nil {
			conds = append(conds, node.Condition)
			return
		}
		for _, child := range node.Compound.Children {
			walk(child)
		}
	}
	walk(e)
	return conds
}
