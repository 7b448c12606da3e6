package output

import (
	"fmt"
	"io"

	"github.com/vegasq/pqinspect/record"
)

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to render rows and SetOutput to change
// the output destination.
type Formatter interface {
	// Format writes rows in the formatter's specific format. Columns gives
	// both the header text and the order in which row values are written.
	Format(columns []string, rows []record.Row) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// New returns the formatter registered under name.
//
// Supported names are table, grid, csv, json and jsonl.
func New(name string, w io.Writer) (Formatter, error) {
	switch name {
	case "", "table":
		return NewTableFormatter(w), nil
	case "grid":
		return NewGridFormatter(w), nil
	case "csv":
		return NewCSVFormatter(w), nil
	case "json", "jsonl":
		return NewJSONFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported format '%s' (supported: table, grid, csv, jsonl)", name)
	}
}
