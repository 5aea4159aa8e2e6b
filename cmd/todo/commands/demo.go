package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/comalice/storex/internal/logger"
	"github.com/comalice/storex/internal/todo"
	"github.com/comalice/storex/internal/todo/tableview"
)

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted to-do session and print every render",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), seedState(), cfg.Todo.Fetcher())
		},
	}
}

// runDemo drives a controller without a run loop, so the load blocks for
// the fetcher's delay and every step renders in order.
func runDemo(out io.Writer, initial todo.State, fetcher todo.Fetcher) error {
	c := tableview.New(initial,
		tableview.WithOutput(out),
		tableview.WithFetcher(fetcher),
		tableview.WithMinTextLength(cfg.Todo.MinTextLength),
		tableview.WithLogger(log.Named(logger.ComponentController).Sugar()),
	)

	steps := []struct {
		say string
		do  func()
	}{
		{"type \"Wa\"", func() { c.InputChanged("Wa") }},
		{"type \"Wash the car\"", func() { c.InputChanged("Wash the car") }},
		{"add", c.AddPressed},
		{"load", c.Load},
		{"remove 1", func() { c.SelectRow(1) }},
	}
	for _, step := range steps {
		if _, err := fmt.Fprintf(out, "\n$ %s\n", step.say); err != nil {
			return err
		}
		step.do()
	}
	return nil
}
