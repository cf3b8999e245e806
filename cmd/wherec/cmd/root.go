// Package cmd implements the wherec command line interface.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trialforge/whereclause/internal/core/config"
	"github.com/trialforge/whereclause/internal/types"
)

var (
	configFile string
	dbURL      string
)

var rootCmd = &cobra.Command{
	Use:   "wherec",
	Short: "Where-clause expression engine for clinical-trial datasets",
	Long: `wherec validates, describes, and transpiles structured where-clause
expressions over CDISC datasets into SAS, R, Python/pandas, and SQL,
and manages a library of reusable expression templates.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&dbURL, "db-url", "", "template library database URL (sqlite://path or postgres://...)")
}

func Execute() error {
	return rootCmd.Execute()
}

// loadConfig resolves configuration with the --db-url flag taking
// precedence over environment and file values.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if dbURL != "" {
		cfg.DBURL = dbURL
	}
	return cfg, nil
}

// readExpression loads an expression tree from a JSON file.
func readExpression(path string) (*types.Expression, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read expression file: %w", err)
	}
	var expr types.Expression
	if err := json.Unmarshal(data, &expr); err != nil {
		return nil, fmt.Errorf("failed to parse expression JSON: %w", err)
	}
	return &expr, nil
}
