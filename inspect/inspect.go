// Package inspect prints the schema and the first rows of parquet files.
//
// Inspect never returns an error: every failure is reported as one line on
// the error writer naming the file, and the caller moves on to the next
// file.
package inspect

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/vegasq/pqinspect/internal/config"
	"github.com/vegasq/pqinspect/output"
	"github.com/vegasq/pqinspect/reader"
	"github.com/vegasq/pqinspect/record"
)

// NoDataMessage is printed instead of a table when a file has no rows.
const NoDataMessage = "No row-level data found."

// Inspector inspects parquet files with a fixed configuration.
//
// An Inspector reuses one formatter across files and is not safe for
// concurrent use.
type Inspector struct {
	cfg       config.Config
	logger    log.Logger
	formatter output.Formatter
}

// New returns an Inspector. A nil logger discards log output.
func New(cfg config.Config, logger log.Logger) (*Inspector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	formatter, err := output.New(cfg.Format, io.Discard)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Inspector{cfg: cfg, logger: logger, formatter: formatter}, nil
}

// Inspect inspects the file at path with the default configuration.
func Inspect(path string, out, errOut io.Writer) {
	i := &Inspector{
		cfg:       config.Default(),
		logger:    log.NewNopLogger(),
		formatter: output.NewTableFormatter(io.Discard),
	}
	i.Inspect(path, out, errOut)
}

// Inspect writes the file announcement, the schema and up to MaxRows rows of
// the file at path to out. Failures go to errOut. The file is always closed
// before Inspect returns.
func (i *Inspector) Inspect(path string, out, errOut io.Writer) {
	logger := log.With(i.logger, "file", path)
	fmt.Fprintf(out, "Inspecting file '%s'\n", path)

	r, err := reader.Open(path, i.cfg.ReaderOptions())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(errOut, "Unable to find file '%s'\n", path)
			return
		}
		fmt.Fprintf(errOut, "Unable to open file '%s', message = '%s'\n", path, err)
		return
	}
	defer func() {
		if err := r.Close(); err != nil {
			level.Warn(logger).Log("msg", "failed to close file", "err", err)
		}
	}()
	level.Debug(logger).Log("msg", "opened file", "rows", r.NumRows(), "columns", len(r.Columns()))
	for _, c := range r.Columns() {
		level.Debug(logger).Log("msg", "column", "path", strings.Join(c.Path, "."), "kind", c.Kind,
			"logical", c.Logical, "repeated", c.Repeated, "primitive", c.Primitive)
	}

	if err := reader.WriteSchema(out, r.Schema()); err != nil {
		reportFailure(errOut, path, err)
		return
	}

	if err := i.dumpData(r, out, logger); err != nil {
		reportFailure(errOut, path, err)
	}
}

func (i *Inspector) dumpData(r *reader.Reader, out io.Writer, logger log.Logger) error {
	src := &loggedSource{src: record.FromReader(r), logger: logger}
	rows, err := record.Materialize(src, r.Columns(), i.cfg.MaxRows)
	if err != nil {
		return err
	}
	level.Info(logger).Log("msg", "materialized rows", "rows", len(rows), "row_groups", src.groups)

	if len(rows) == 0 {
		_, err := fmt.Fprintln(out, NoDataMessage)
		return err
	}

	columns := append([]string{record.RowFieldName}, r.ColumnNames()...)
	i.formatter.SetOutput(out)
	return i.formatter.Format(columns, rows)
}

func reportFailure(errOut io.Writer, path string, err error) {
	if errors.Is(err, record.ErrUnsupportedType) {
		fmt.Fprintf(errOut, "Unsupported column type in file '%s', message = '%s'\n", path, err)
		return
	}
	fmt.Fprintf(errOut, "Exception encountered inspecting file '%s', message = '%s'\n", path, err)
}

// loggedSource logs every row group handed to the materializer.
type loggedSource struct {
	src    record.Source
	logger log.Logger
	groups int
}

func (s *loggedSource) NextRowGroup() (record.Group, bool) {
	g, ok := s.src.NextRowGroup()
	if !ok {
		return nil, false
	}
	level.Debug(s.logger).Log("msg", "reading row group", "index", s.groups, "rows", g.NumRows())
	s.groups++
	return g, true
}
