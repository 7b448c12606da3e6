package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/vegasq/pqinspect/inspect"
	"github.com/vegasq/pqinspect/internal/config"
	"github.com/vegasq/pqinspect/internal/logging"
	"github.com/vegasq/pqinspect/output"
	"github.com/vegasq/pqinspect/reader"
	"github.com/vegasq/pqinspect/record"
)

var (
	configFlag   = flag.String("config", "", "Path to a YAML config file")
	formatFlag   = flag.String("f", "table", "Output format: table, grid, csv, jsonl")
	rowsFlag     = flag.Int("n", record.DefaultMaxRows, "Maximum number of rows to print per file")
	logLevelFlag = flag.String("log-level", "warn", "Log level: debug, info, warn, error, none")
	schemaFlag   = flag.Bool("schema", false, "List leaf column metadata instead of inspecting data")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file.parquet>...\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Dumps the schema and the first rows of Parquet files.\n\n")
		fmt.Fprintf(os.Stderr, "IMPORTANT: All flags must come BEFORE file arguments.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s data.parquet\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -n 5 -f grid a.parquet b.parquet\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --schema -f csv data.parquet\n", os.Args[0])
	}

	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *schemaFlag {
		for _, path := range flag.Args() {
			handleSchemaMode(path, cfg, os.Stdout, os.Stderr)
		}
		return
	}

	inspector, err := inspect.New(*cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	run(inspector, flag.Args(), os.Stdout, os.Stderr, logger)
}

// run inspects every path in order. A failure on one file never stops the
// remaining ones.
func run(inspector *inspect.Inspector, paths []string, stdout, stderr io.Writer, logger log.Logger) {
	for _, path := range paths {
		func() {
			defer func() {
				if r := recover(); r != nil {
					fmt.Fprintf(stderr, "Uncaught exception while processing '%s', message is '%v'\n", path, r)
					level.Error(logger).Log("msg", "panic while inspecting file", "file", path, "panic", r)
				}
			}()
			inspector.Inspect(path, stdout, stderr)
		}()
	}
}

// loadConfig reads the config file and environment, then applies the flags
// that were set explicitly on the command line.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "f":
			cfg.Format = *formatFlag
		case "n":
			cfg.MaxRows = *rowsFlag
		case "log-level":
			cfg.LogLevel = *logLevelFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// handleSchemaMode lists the leaf columns of path with the configured
// formatter.
func handleSchemaMode(path string, cfg *config.Config, stdout, stderr io.Writer) {
	infos, err := reader.ExtractSchemaInfo(path, cfg.ReaderOptions())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(stderr, "Unable to find file '%s'\n", path)
		} else {
			fmt.Fprintf(stderr, "Unable to open file '%s', message = '%s'\n", path, err)
		}
		return
	}

	columns := []string{"name", "type", "physical_type", "logical_type", "required", "optional", "repeated"}
	rows := make([]record.Row, len(infos))
	for i, info := range infos {
		rows[i] = record.NewRow(
			record.NewSchemaField("name", info.Name),
			record.NewSchemaField("type", info.Type),
			record.NewSchemaField("physical_type", info.PhysicalType),
			record.NewSchemaField("logical_type", info.LogicalType),
			record.NewSchemaField("required", strconv.FormatBool(info.Required)),
			record.NewSchemaField("optional", strconv.FormatBool(info.Optional)),
			record.NewSchemaField("repeated", strconv.FormatBool(info.Repeated)),
		)
	}

	formatter, err := output.New(cfg.Format, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return
	}
	if err := formatter.Format(columns, rows); err != nil {
		fmt.Fprintf(stderr, "Error formatting output: %v\n", err)
	}
}
