package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/comalice/storex/internal/patterns/strategy"
)

func strategyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategy",
		Short: "Order parts from a supplier chosen by car type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStrategy(cmd.OutOrStdout())
		},
	}
}

func runStrategy(out io.Writer) error {
	joe := strategy.Mechanic{ID: 6653, Name: "Joe Stevenson"}
	mike := strategy.Mechanic{ID: 7785, Name: "Mike Rove"}
	sam := strategy.Mechanic{ID: 5421, Name: "Sam Warren"}

	parts := strategy.NewPartsNStuff()
	parts.AddApprovedMechanic(joe.ID)

	m := strategy.NewOrderManager(map[strategy.CarType]strategy.Supplier{
		strategy.Asian:    parts,
		strategy.European: parts,
		strategy.Domestic: strategy.OpenSupplier{Label: "Main Street Auto"},
	}, log)

	orders := []*strategy.Order{
		m.GenerateOrder(joe, []strategy.Part{
			{Name: "Brake pads", Price: 15.22},
			{Name: "Brake Fluid", Price: 18.99},
		}, strategy.Asian),
		m.GenerateOrder(mike, []strategy.Part{
			{Name: "5 qt Synthetic Oil", Price: 15.99},
			{Name: "Standard Filters", Price: 8.49},
		}, strategy.European),
		m.GenerateOrder(sam, []strategy.Part{
			{Name: "Engine Coolant", Price: 18.99},
		}, strategy.Domestic),
	}
	for _, o := range orders {
		supplier, err := m.FulfillOrder(o)
		if err != nil {
			return err
		}
		signed := ""
		if o.Signature != nil {
			signed = " (supervisor signed)"
		}
		fmt.Fprintf(out, "order %d for %s, %v car, $%.2f: %s%s\n",
			o.ID, o.Mechanic.Name, o.CarType, o.Total(), supplier, signed)
	}
	return nil
}
