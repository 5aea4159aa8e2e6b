package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/comalice/storex/internal/patterns/state"
)

func stateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Walk a quote through its states",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runState(cmd.OutOrStdout())
			return nil
		},
	}
}

func runState(out io.Writer) {
	c := state.NewContext()
	fmt.Fprintln(out, c.MessageToCustomer())

	c.ChangeToPending()
	fmt.Fprintln(out, c.MessageToCustomer())

	price := 66.25
	c.ChangeToReady(price)
	fmt.Fprintln(out, c.MessageToCustomer())

	if _, ok := c.Receipt(); !ok {
		fmt.Fprintln(out, "(no receipt yet)")
	}

	joe := state.Mechanic{Name: "Joe Murphy"}
	c.ChangeToBooked(price, joe)
	fmt.Fprintln(out, c.MessageToCustomer())

	c.ChangeToCompleted(price, joe, state.Receipt{Delivered: true, Total: price, CustomerName: "John Lee"})
	fmt.Fprintln(out, c.MessageToCustomer())
}
