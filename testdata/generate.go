//go:build ignore

// generate writes the sample files used when trying pqinspect by hand:
//
//	go run testdata/generate.go
package main

import (
	"math"
	"os"
	"strconv"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/parquet-go/parquet-go"
)

type Score struct {
	ID    int32   `parquet:"id"`
	Name  string  `parquet:"name"`
	Score float64 `parquet:"score"`
}

type Address struct {
	Street string `parquet:"street"`
	City   string `parquet:"city"`
}

type User struct {
	ID      int64    `parquet:"id"`
	Name    string   `parquet:"name"`
	Nick    *string  `parquet:"nick,optional"`
	Active  bool     `parquet:"active"`
	Ratio   float32  `parquet:"ratio"`
	Tags    []string `parquet:"tags"`
	Address Address  `parquet:"address"`
}

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))

	scores := []Score{
		{ID: 1, Name: "alice", Score: 95.5},
		{ID: 2, Name: "bob", Score: math.NaN()},
		{ID: 3, Name: "charlie", Score: 88.7},
	}

	many := make([]Score, 25)
	for i := range many {
		many[i] = Score{ID: int32(i + 1), Name: "user" + strconv.Itoa(i+1), Score: float64(i) * 1.5}
	}

	nick := "ally"
	users := []User{
		{ID: 1, Name: "alice", Nick: &nick, Active: true, Ratio: 0.5, Tags: []string{"admin"}, Address: Address{"1 Main St", "Springfield"}},
		{ID: 2, Name: "bob", Active: false, Ratio: float32(math.NaN()), Address: Address{"2 Side St", "Shelbyville"}},
	}

	files := []struct {
		name      string
		write     func(*os.File) error
		groupSize int
	}{
		{"scores.parquet", func(f *os.File) error { return write(f, scores, 0) }, 0},
		{"many.parquet", func(f *os.File) error { return write(f, many, 4) }, 4},
		{"empty.parquet", func(f *os.File) error { return write(f, []Score{}, 0) }, 0},
		{"users.parquet", func(f *os.File) error { return write(f, users, 0) }, 0},
	}

	for _, file := range files {
		f, err := os.Create(file.name)
		if err != nil {
			level.Error(logger).Log("msg", "failed to create file", "file", file.name, "err", err)
			os.Exit(1)
		}
		if err := file.write(f); err != nil {
			_ = f.Close()
			level.Error(logger).Log("msg", "failed to write file", "file", file.name, "err", err)
			os.Exit(1)
		}
		if err := f.Close(); err != nil {
			level.Error(logger).Log("msg", "failed to close file", "file", file.name, "err", err)
			os.Exit(1)
		}
		level.Info(logger).Log("msg", "generated file", "file", file.name, "row_group_size", file.groupSize)
	}
}

// write stores rows in f, flushing a row group every groupSize rows.
func write[T any](f *os.File, rows []T, groupSize int) error {
	w := parquet.NewGenericWriter[T](f)
	if groupSize <= 0 {
		groupSize = max(len(rows), 1)
	}
	for start := 0; start < len(rows); start += groupSize {
		if _, err := w.Write(rows[start:min(start+groupSize, len(rows))]); err != nil {
			return err
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}
	return w.Close()
}
