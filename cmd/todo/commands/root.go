package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/comalice/storex/internal/config"
	"github.com/comalice/storex/internal/logger"
	"github.com/comalice/storex/internal/todo"
)

var (
	configPath string
	logLevel   string
	logFormat  string

	cfg = config.Default()
	log = zap.NewNop()
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "todo",
		Short:        "To-do list driven by a unidirectional data flow store",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.Log.Format = logFormat
			}
			log = logger.New(cfg.Log.Level, logger.ParseFormat(cfg.Log.Format, logger.FormatConsole))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if log != nil {
				_ = log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "INFO", "DEBUG, INFO, WARN or ERROR")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "CONSOLE", "CONSOLE, JSON or PRETTY")

	root.AddCommand(demoCmd(), runCmd())
	return root
}

func seedState() todo.State {
	return todo.State{Items: append([]string(nil), cfg.Todo.Seed...)}
}
