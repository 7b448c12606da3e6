// Package output renders materialized rows.
//
// The default TableFormatter prints a plain, space-aligned table. The
// GridFormatter draws the same data with borders, and the CSV and JSON Lines
// formatters emit machine-readable forms of the rendered values.
//
// # Basic Usage
//
//	formatter, err := output.New("table", os.Stdout)
//	if err != nil {
//	    return err
//	}
//	if err := formatter.Format(columns, rows); err != nil {
//	    return err
//	}
//
// Columns gives the header text and the order in which each row's values
// are written. Every row is expected to carry a value for every column;
// a missing value renders as an empty cell.
//
// # Table Layout
//
// Each cell of the plain table is left-aligned and padded with spaces to one
// more than the widest entry in its column. Widths are display widths, so
// wide runes take two cells.
package output
