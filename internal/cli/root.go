// Package cli is the offline command line front end of the calculators.
package cli

import (
	"github.com/segyhp/islamicfin-engine/internal/config"
	"github.com/segyhp/islamicfin-engine/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCommand builds the islamicfin command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "islamicfin",
		Short: "Islamic finance calculators",
		Long: `Run the Islamic finance calculators from the command line.
Requests are the same JSON documents the HTTP API accepts; results are
printed as JSON.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			decimal.MarshalJSONWithoutQuotes = true
		},
	}

	root.PersistentFlags().String("log-level", "", "Override LOG_LEVEL")

	root.AddCommand(newCalcCommand())
	root.AddCommand(newPricesCommand())
	root.AddCommand(newOperationsCommand())
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

func loadConfig(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	// Diagnostics go to stderr in console form; stdout carries the JSON result.
	cfg.Logging.Format = "console"

	zl, err := logger.New(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}
	return cfg, zl, nil
}
