package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/comalice/storex/internal/logger"
	"github.com/comalice/storex/internal/runloop"
	"github.com/comalice/storex/internal/todo/tableview"
)

const runHelp = `commands:
  type <text>   set the input text
  add           add the input as a to-do
  remove <n>    remove the to-do in row n (0-based)
  load          fetch to-dos in the background
  show          render the list again
  quit          exit`

var errQuit = errors.New("quit")

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Interactive to-do session reading commands from stdin",
		Long:  "Interactive to-do session reading commands from stdin.\n\n" + runHelp,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runSession(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runSession owns the loop goroutine. The stdin reader only submits jobs,
// waiting for queue space, and never writes to out itself.
func runSession(ctx context.Context, in io.Reader, out io.Writer) error {
	loop := runloop.New(
		runloop.WithQueueSize(cfg.Todo.QueueSize),
		runloop.WithLogger(log.Named(logger.ComponentRunLoop).Sugar()),
	)
	c := tableview.New(seedState(),
		tableview.WithLoop(loop),
		tableview.WithOutput(out),
		tableview.WithFetcher(cfg.Todo.Fetcher()),
		tableview.WithMinTextLength(cfg.Todo.MinTextLength),
		tableview.WithLogger(log.Named(logger.ComponentController).Sugar()),
	)
	fmt.Fprintln(out, runHelp)

	go readCommands(ctx, loop, in, func(line string) {
		if err := execute(c, line, out); err != nil {
			if errors.Is(err, errQuit) {
				loop.Stop()
				return
			}
			fmt.Fprintf(out, "error: %v\n", err)
		}
	})

	return loop.Run(ctx)
}

// execute applies one command line to c. It must run on the loop goroutine.
func execute(c *tableview.Controller, line string, out io.Writer) error {
	verb, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	switch verb {
	case "":
		return nil
	case "type":
		c.InputChanged(rest)
	case "add":
		if !c.AddEnabled() {
			return fmt.Errorf("input %q is too short to add", c.InputText())
		}
		c.AddPressed()
	case "remove":
		row, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil {
			return fmt.Errorf("remove: %w", err)
		}
		if row < 0 || row >= len(c.Rows()) {
			return fmt.Errorf("remove: no row %d", row)
		}
		c.SelectRow(row)
	case "load":
		c.Load()
	case "show":
		return c.Render(out)
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q", verb)
	}
	return nil
}

// readCommands submits handle(line) to loop for every line of in, then stops
// the loop at EOF. It returns early once the loop is stopped or ctx ends.
func readCommands(ctx context.Context, loop *runloop.Loop, in io.Reader, handle func(line string)) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if err := loop.Submit(ctx, func() { handle(line) }); err != nil {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		log.Warn("Failed to read commands", zap.Error(err))
	}
	_ = loop.Submit(ctx, loop.Stop)
}
