package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/bowlsplit/internal/cli/output"
	"github.com/leapstack-labs/bowlsplit/internal/pins"
)

// NewColumnsCommand creates the columns command.
func NewColumnsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "columns",
		Short: "Show how pins map onto lane columns",
		Long: `Display the fixed pin-to-column layout used to detect splits.

Viewed from above, the ten pins occupy seven vertical columns. A leave is a
split when the head pin is down and an empty column separates two occupied
ones.

Output adapts to environment:
  - Terminal/Piped: table
  - JSON/YAML: Machine-readable format`,
		Example: `  # Show the layout
  bowlsplit columns

  # Output as JSON
  bowlsplit columns --output json`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return judgeAsPins(cmd, args)
			}
			return runColumns(cmd)
		},
	}

	return cmd
}

func runColumns(cmd *cobra.Command) error {
	r := NewCommandContext(cmd).Renderer

	if r.IsStructured() {
		return r.Structured(columnsOutput())
	}
	return columnsText(r)
}

func columnsOutput() output.ColumnsOutput {
	out := output.ColumnsOutput{
		Pins:    make([]output.ColumnEntry, 0, pins.MaxPin),
		Columns: make([][]int, 0, pins.ColumnCount),
	}
	for pin := pins.HeadPin; pin <= pins.MaxPin; pin++ {
		col, _ := pins.Column(pin)
		out.Pins = append(out.Pins, output.ColumnEntry{Pin: pin, Column: col})
	}
	for col := 0; col < pins.ColumnCount; col++ {
		out.Columns = append(out.Columns, pins.PinsInColumn(col))
	}
	return out
}

// columnsText prints one row per column, listing its pins front to back.
func columnsText(r *output.Renderer) error {
	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	if r.Styled() {
		t.Style().Color.Header = text.Colors{text.Bold, text.FgHiBlue}
	}
	t.AppendHeader(table.Row{"Column", "Pins"})

	for col := 0; col < pins.ColumnCount; col++ {
		ps := pins.PinsInColumn(col)
		names := make([]string, len(ps))
		for i, p := range ps {
			names[i] = fmt.Sprintf("%d", p)
		}
		t.AppendRow(table.Row{col, strings.Join(names, ", ")})
	}

	t.Render()
	r.Println(r.Styles().Muted.Render(fmt.Sprintf("(%d pins, %d columns)", pins.MaxPin, pins.ColumnCount)))
	return nil
}
