package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/comalice/storex/internal/patterns/builder"
)

func builderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "builder",
		Short: "Build service quotes step by step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuilder(cmd.OutOrStdout())
		},
	}
}

func runBuilder(out io.Writer) error {
	catalog, err := builder.DefaultCatalog()
	if err != nil {
		return err
	}
	service := func(name string) builder.Service {
		s, ok := catalog.Service(name)
		if !ok {
			panic("catalog has no service " + name)
		}
		return s
	}
	mechanic := func(name string) builder.Mechanic {
		m, ok := catalog.Mechanic(name)
		if !ok {
			panic("catalog has no mechanic " + name)
		}
		return m
	}

	b := builder.NewQuoteBuilder(catalog)
	fmt.Fprintf(out, "empty builder valid: %v\n", b.Valid())

	b.SetCustomer(builder.Customer{Name: "Reza Shirazian", Address: "N Rengstorff Ave Mountain View", Email: "reza@example.com"})
	b.AddService(service("Brake Inspection"))
	b.AddService(service("Battery Inspection"))
	b.AddService(service("Oil Change"))
	b.SetCar("Honda")
	b.AssignMechanic()
	quote, err := b.Result()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, quote)

	b.SetCustomer(builder.Customer{Name: "Sarah Khosravani", Address: "S Rengstorff Mountain View", Email: "sarah@example.com"})
	b.SetCar("Toyota")
	b.AddService(service("Brake Pad Replacement"))
	for _, name := range []string{"Mike Fulton", "Steve Brimington"} {
		b.SetMechanic(mechanic(name))
		fmt.Fprintf(out, "with %s valid: %v\n", name, b.Valid())
	}
	b.AddService(service("Timing Belt Replacement"))
	fmt.Fprintf(out, "after adding timing belt valid: %v\n", b.Valid())
	b.AssignMechanic()
	quote, err = b.Result()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, quote)
	return nil
}
