package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/pqinspect/record"
)

// CSVFormatter outputs rows as CSV format
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes a header record followed by one record per row, columns in
// the given order.
func (c *CSVFormatter) Format(columns []string, rows []record.Row) error {
	csvWriter := csv.NewWriter(c.writer)

	if err := csvWriter.Write(columns); err != nil {
		return err
	}

	for _, row := range rows {
		values := row.Values(columns)
		for i, v := range values {
			values[i] = sanitize(v)
		}
		if err := csvWriter.Write(values); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}

// sanitize guards against CSV injection by prefixing characters that could
// trigger formula execution in spreadsheet applications. Numeric values are
// left alone so negative numbers stay readable.
func sanitize(val string) string {
	if val == "" {
		return val
	}
	switch val[0] {
	case '-', '+':
		if isNumeric(val) {
			return val
		}
	case '=', '@', '\t', '\r', '\n', '|':
	default:
		return val
	}
	return "'" + strings.ReplaceAll(val, "'", "''")
}

func isNumeric(val string) bool {
	if len(val) < 2 {
		return false
	}
	for _, r := range val[1:] {
		if (r < '0' || r > '9') && r != '.' && r != 'e' && r != 'E' && r != '+' && r != '-' {
			return false
		}
	}
	return true
}
