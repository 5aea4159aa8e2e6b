package tableview

import (
	"fmt"
	"io"
	"text/tabwriter"
)

const (
	sectionInput = "input"
	sectionToDos = "todos"
)

// Render writes the current view as a two-section table.
func (c *Controller) Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	button := "[add: disabled]"
	if c.addEnabled {
		button = "[add: enabled]"
	}

	fmt.Fprintf(tw, "%s\t%s\n", c.title, button)
	fmt.Fprintf(tw, "SECTION\tROW\tTEXT\n")
	fmt.Fprintf(tw, "%s\t0\t> %s_\n", sectionInput, c.input)
	for i, item := range c.rows {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", sectionToDos, i, item)
	}
	if len(c.rows) == 0 {
		fmt.Fprintf(tw, "%s\t-\t(type at least %d characters and add a to-do)\n", sectionToDos, c.minText)
	}
	fmt.Fprintln(tw)

	return tw.Flush()
}
