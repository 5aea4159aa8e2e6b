// Package commands implements the patterns CLI, one subcommand per demo.
package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/comalice/storex/internal/logger"
)

var (
	logLevel  string
	logFormat string

	log = zap.NewNop().Sugar()
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "patterns",
		Short:        "Garage-themed design pattern demos",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = logger.New(logLevel, logger.ParseFormat(logFormat, logger.FormatPretty)).
				Named(logger.ComponentPatterns).Sugar()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = log.Sync()
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "INFO", "DEBUG, INFO, WARN or ERROR")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "PRETTY", "CONSOLE, JSON or PRETTY")

	root.AddCommand(
		builderCmd(),
		chainCmd(),
		interpreterCmd(),
		mediatorCmd(),
		stateCmd(),
		strategyCmd(),
	)
	return root
}
