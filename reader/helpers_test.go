package reader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/require"
)

// writeParquet writes rows to dir/name, starting a new row group every
// groupSize rows. A groupSize of zero keeps every row in one group.
func writeParquet[T any](t *testing.T, dir, name string, rows []T, groupSize int) string {
	t.Helper()
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	require.NoError(t, err)

	writer := parquet.NewGenericWriter[T](f)
	if groupSize <= 0 {
		groupSize = len(rows)
	}
	for start := 0; start < len(rows); start += groupSize {
		end := min(start+groupSize, len(rows))
		_, err := writer.Write(rows[start:end])
		require.NoError(t, err)
		require.NoError(t, writer.Flush())
	}
	require.NoError(t, writer.Close())
	require.NoError(t, f.Close())
	return path
}
