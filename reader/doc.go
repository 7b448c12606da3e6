// Package reader opens Apache Parquet files and exposes their schema and
// row groups to the rest of pqinspect.
//
// # Basic Usage
//
// Opening a file and walking its row groups:
//
//	r, err := reader.Open("data.parquet", reader.Options{})
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	for {
//	    rg, ok := r.NextRowGroup()
//	    if !ok {
//	        break
//	    }
//	    rows, err := rg.ReadRows(10)
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(len(rows))
//	}
//
// # Schema Introspection
//
// Columns lists the leaf columns in display order and WriteSchema prints an
// indented dump of the whole schema tree:
//
//	for _, c := range r.Columns() {
//	    fmt.Printf("%s: %s\n", c.Name, c.Kind)
//	}
//	_ = reader.WriteSchema(os.Stdout, r.Schema())
//
// # Resource Management
//
// Always call Close() when done reading to release the file handle. A
// missing path is reported with an error that satisfies
// errors.Is(err, fs.ErrNotExist).
//
// The package uses github.com/parquet-go/parquet-go for the underlying
// parquet file operations.
package reader
