package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/comalice/storex/internal/patterns/mediator"
)

func mediatorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mediator",
		Short: "Relay parts requests between nearby mechanics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runMediator(cmd.OutOrStdout())
			return nil
		},
	}
}

func runMediator(out io.Writer) {
	rm := &mediator.RequestMediator{}
	mechanics := []*mediator.Mechanic{
		mediator.NewMechanic("Joe Murphy", mediator.Location{X: 0, Y: 0}, rm),
		mediator.NewMechanic("Mike Fulton", mediator.Location{X: 20, Y: 25}, rm),
		mediator.NewMechanic("Steve Brimington", mediator.Location{X: 45, Y: 10}, rm),
		mediator.NewMechanic("Linda Park", mediator.Location{X: 120, Y: 80}, rm),
	}
	for _, m := range mechanics {
		rm.AddMechanic(m)
	}

	mechanics[0].Send("Anyone have spare brake pads?", mediator.Part{Name: "Brake pads", Price: 15.22})
	mechanics[3].Send("Need a hand with a transmission")

	for _, m := range mechanics {
		fmt.Fprintf(out, "%s received %d request(s)\n", m.Name, len(m.Received))
		for _, r := range m.Received {
			fmt.Fprintf(out, "  from %s: %s\n", r.Mechanic.Name, r.Message)
		}
	}
}
