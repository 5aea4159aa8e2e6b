package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/comalice/storex/internal/patterns/interpreter"
)

const defaultFormula = "labour * hours + parts"

func interpreterCmd() *cobra.Command {
	vars := map[string]string{}
	cmd := &cobra.Command{
		Use:   "interpreter [formula]",
		Short: "Evaluate a pricing formula",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formula := defaultFormula
			if len(args) == 1 {
				formula = args[0]
			}
			return runInterpreter(cmd.OutOrStdout(), formula, vars)
		},
	}
	cmd.Flags().StringToStringVar(&vars, "var", nil, "variable definitions, e.g. --var labour=80,hours=1.5")
	return cmd
}

// runInterpreter binds each variable to a parsed formula, so definitions may
// refer to one another.
func runInterpreter(out io.Writer, formula string, defs map[string]string) error {
	vars := map[string]interpreter.Expression{
		"labour": interpreter.Number(80),
		"hours":  interpreter.Number(1.5),
		"parts":  interpreter.MustParse("oil + filter"),
		"oil":    interpreter.Number(30),
		"filter": interpreter.Number(10),
	}
	for name, def := range defs {
		e, err := interpreter.Parse(def)
		if err != nil {
			return fmt.Errorf("variable %s: %w", name, err)
		}
		vars[interpreter.Trim(name)] = e
	}
	if err := interpreter.CheckVariables(vars); err != nil {
		return err
	}

	e, err := interpreter.Parse(formula)
	if err != nil {
		return err
	}
	log.Debugw("Parsed formula", "formula", formula, "expression", fmt.Sprintf("%#v", e))
	fmt.Fprintf(out, "%s = %g\n", formula, e.Interpret(vars))
	return nil
}
