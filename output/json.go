package output

import (
	"encoding/json"
	"io"

	"github.com/vegasq/pqinspect/record"
)

// JSONFormatter outputs rows as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes rows as JSON Lines (one JSON object per line). Values are
// the rendered strings, keyed by column name. Columns the row lacks are
// left out of its object.
func (j *JSONFormatter) Format(columns []string, rows []record.Row) error {
	encoder := json.NewEncoder(j.writer)
	for _, row := range rows {
		obj := make(map[string]string, len(columns))
		for _, name := range columns {
			if f, ok := row.Get(name); ok {
				obj[name] = f.String()
			}
		}
		if err := encoder.Encode(obj); err != nil {
			return err
		}
	}
	return nil
}
