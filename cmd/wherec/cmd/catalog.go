package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trialforge/whereclause/internal/metadata"
)

var (
	catalogDomain string
	catalogType   string
	catalogLimit  int
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the bundled dataset metadata catalog",
}

var catalogDatasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List datasets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		datasets, err := metadata.NewSampleCatalog().ListDatasets(catalogDomain)
		if err != nil {
			return err
		}
		for _, ds := range datasets {
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s %-6s %s\n", ds.Name, ds.Domain, ds.Label)
		}
		return nil
	},
}

var catalogVariablesCmd = &cobra.Command{
	Use:   "variables <dataset>",
	Short: "List a dataset's variables",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		variables, err := metadata.NewSampleCatalog().ListVariables(args[0], catalogType)
		if err != nil {
			return err
		}
		for _, v := range variables {
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-5s %s\n", v.Name, v.Type, v.Label)
		}
		return nil
	},
}

var catalogValuesCmd = &cobra.Command{
	Use:   "values <dataset> <variable>",
	Short: "List sample values for a variable",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := metadata.NewSampleCatalog().ListValues(args[0], args[1], catalogLimit)
		if err != nil {
			return err
		}
		for _, v := range values {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogDatasetsCmd, catalogVariablesCmd, catalogValuesCmd)

	catalogDatasetsCmd.Flags().StringVar(&catalogDomain, "domain", "", "restrict to one domain class (SDTM, ADaM)")
	catalogVariablesCmd.Flags().StringVar(&catalogType, "type", "", "restrict to one variable type (Char, Num)")
	catalogValuesCmd.Flags().IntVar(&catalogLimit, "limit", 20, "maximum number of values")
}
