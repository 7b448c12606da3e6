package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/pqinspect/record"
)

// GridFormatter writes rows as a bordered table.
type GridFormatter struct {
	writer io.Writer
}

// NewGridFormatter creates a new bordered table formatter
func NewGridFormatter(w io.Writer) *GridFormatter {
	return &GridFormatter{writer: w}
}

// SetOutput sets the output writer
func (g *GridFormatter) SetOutput(w io.Writer) {
	g.writer = w
}

// Format renders the header and rows with tablewriter. Headers are printed
// as given and cells are never wrapped.
func (g *GridFormatter) Format(columns []string, rows []record.Row) error {
	table := tablewriter.NewWriter(g.writer)
	table.SetHeader(columns)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, row := range rows {
		table.Append(row.Values(columns))
	}
	table.Render()
	return nil
}
