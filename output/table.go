package output

import (
	"bufio"
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/vegasq/pqinspect/record"
)

// cellWidth measures cells with East Asian ambiguous runes counted as one
// column, whatever the locale or RUNEWIDTH_EASTASIAN say.
var cellWidth = &runewidth.Condition{EastAsianWidth: false}

// TableFormatter writes rows as a plain, left-aligned text table.
//
// Every cell is padded with spaces to one more than the widest entry of its
// column, header included. Lines keep their trailing padding.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new plain table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format writes the header line followed by one line per row.
func (t *TableFormatter) Format(columns []string, rows []record.Row) error {
	widths := ColumnWidths(columns, rows)

	bw := bufio.NewWriter(t.writer)
	writeLine(bw, columns, widths)
	for _, row := range rows {
		writeLine(bw, row.Values(columns), widths)
	}
	return bw.Flush()
}

// ColumnWidths returns, for each column, the display width of its widest
// entry among the header and every row value.
func ColumnWidths(columns []string, rows []record.Row) []int {
	widths := make([]int, len(columns))
	for i, name := range columns {
		widths[i] = cellWidth.StringWidth(name)
	}
	for _, row := range rows {
		for i, name := range columns {
			if w := cellWidth.StringWidth(row.Value(name)); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func writeLine(bw *bufio.Writer, values []string, widths []int) {
	for i, v := range values {
		_, _ = bw.WriteString(cellWidth.FillRight(v, widths[i]+1))
	}
	_ = bw.WriteByte('\n')
}
