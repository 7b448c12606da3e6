package record

import (
	"fmt"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/pqinspect/reader"
)

// DefaultMaxRows is the number of rows gathered from a file by default.
const DefaultMaxRows = 10

// Group is a row group that can decode rows from its start.
type Group interface {
	NumRows() int64
	ReadRows(n int) ([]parquet.Row, error)
}

// Source hands out the row groups of a file in order.
type Source interface {
	NextRowGroup() (Group, bool)
}

// FromReader adapts an open reader to a Source.
func FromReader(r *reader.Reader) Source {
	return readerSource{r: r}
}

type readerSource struct {
	r *reader.Reader
}

func (s readerSource) NextRowGroup() (Group, bool) {
	g, ok := s.r.NextRowGroup()
	if !ok {
		return nil, false
	}
	return g, true
}

// Materialize gathers up to limit rows from src, spanning as many row groups
// as needed. Each row carries one field per column in cols plus the row
// ordinal, counted from 1 across the whole file.
//
// A decode or formatting error aborts the gathering and no rows are
// returned.
func Materialize(src Source, cols []reader.Column, limit int) ([]Row, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows := make([]Row, 0, limit)
	for len(rows) < limit {
		g, ok := src.NextRowGroup()
		if !ok {
			break
		}

		want := limit - len(rows)
		if n := g.NumRows(); n < int64(want) {
			want = int(n)
		}
		if want == 0 {
			continue
		}

		records, err := g.ReadRows(want)
		if err != nil {
			return nil, fmt.Errorf("read row group: %w", err)
		}
		for _, rec := range records {
			if len(rows) == limit {
				break
			}
			row, err := buildRow(rec, cols, len(rows)+1)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func buildRow(rec parquet.Row, cols []reader.Column, ordinal int) (Row, error) {
	byColumn := make([][]parquet.Value, len(cols))
	for _, v := range rec {
		if c := v.Column(); c >= 0 && c < len(byColumn) {
			byColumn[c] = append(byColumn[c], v)
		}
	}

	fields := make([]Field, 0, len(cols)+1)
	for _, col := range cols {
		var values []parquet.Value
		if col.Index >= 0 && col.Index < len(byColumn) {
			values = byColumn[col.Index]
		}
		text, err := FormatValue(values, col)
		if err != nil {
			return Row{}, err
		}
		fields = append(fields, NewSchemaField(col.Name, text))
	}
	fields = append(fields, NewOrdinalField(ordinal))
	return NewRow(fields...), nil
}
