package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"
)

// Options configures how parquet files are opened.
//
// The zero value uses the parquet-go defaults.
type Options struct {
	// ReadBufferSize is the size of the buffer used when reading pages.
	// Zero keeps the library default.
	ReadBufferSize int
	// SkipPageIndex avoids loading column and offset indexes from the footer.
	SkipPageIndex bool
	// SkipBloomFilters avoids loading bloom filter headers.
	SkipBloomFilters bool
}

func (o Options) fileOptions() []parquet.FileOption {
	opts := []parquet.FileOption{
		parquet.SkipPageIndex(o.SkipPageIndex),
		parquet.SkipBloomFilters(o.SkipBloomFilters),
	}
	if o.ReadBufferSize > 0 {
		opts = append(opts, parquet.ReadBufferSize(o.ReadBufferSize))
	}
	return opts
}

// Reader reads a single parquet file.
//
// It maintains both an OS file handle and a parquet file handle to enable
// proper resource cleanup. A Reader is not safe for concurrent use.
type Reader struct {
	file    *os.File
	pqFile  *parquet.File
	columns []Column
	next    int
}

// Open opens the parquet file at path.
//
// The file is opened and its footer is parsed. When the path does not exist
// the returned error satisfies errors.Is(err, fs.ErrNotExist).
//
// Example:
//
//	r, err := reader.Open("data.parquet", reader.Options{})
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
func Open(path string, opts Options) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size(), opts.fileOptions()...)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	return &Reader{
		file:    file,
		pqFile:  pqFile,
		columns: leafColumns(pqFile.Schema()),
	}, nil
}

// Schema returns the parquet file schema.
func (r *Reader) Schema() *parquet.Schema {
	return r.pqFile.Schema()
}

// NumRows returns the total number of rows recorded in the footer.
func (r *Reader) NumRows() int64 {
	return r.pqFile.NumRows()
}

// Columns returns the leaf columns of the schema in column-index order.
func (r *Reader) Columns() []Column {
	return r.columns
}

// ColumnNames returns the display name of every leaf column, in schema order.
func (r *Reader) ColumnNames() []string {
	names := make([]string, len(r.columns))
	for i, c := range r.columns {
		names[i] = c.Name
	}
	return names
}

// NextRowGroup returns the next unread row group, or false once every row
// group of the file has been handed out.
func (r *Reader) NextRowGroup() (*RowGroup, bool) {
	groups := r.pqFile.RowGroups()
	if r.next >= len(groups) {
		return nil, false
	}
	rg := groups[r.next]
	r.next++
	return &RowGroup{rg: rg}, true
}

// Close releases the underlying file handle. It is safe to call Close
// multiple times.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// RowGroup is one row group of an open parquet file.
type RowGroup struct {
	rg parquet.RowGroup
}

// NumRows returns the number of rows stored in the row group.
func (g *RowGroup) NumRows() int64 {
	return g.rg.NumRows()
}

// ReadRows decodes at most n rows from the start of the row group.
//
// Rows are returned in storage order and are detached from the page
// buffers, so they stay valid after ReadRows returns.
func (g *RowGroup) ReadRows(n int) ([]parquet.Row, error) {
	if total := g.rg.NumRows(); int64(n) > total {
		n = int(total)
	}
	if n <= 0 {
		return nil, nil
	}

	rows := g.rg.Rows()
	defer func() { _ = rows.Close() }()

	out := make([]parquet.Row, 0, n)
	buf := make([]parquet.Row, n)
	for len(out) < n {
		read, err := rows.ReadRows(buf[:n-len(out)])
		for _, row := range buf[:read] {
			out = append(out, row.Clone())
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		if read == 0 {
			break
		}
	}
	return out, nil
}
