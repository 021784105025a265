package combine_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxopath/taxopath/combine"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func readTSV(t *testing.T, name string) []string {
	t.Helper()
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestBatchWriter_SplitsAtBatchSize(t *testing.T) {
	dir := t.TempDir()
	w := combine.NewBatchWriter(dir, 2, quietLogger())
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		w.Add([]string{id, "root"})
	}
	w.Flush()

	assert.Equal(t, 3, w.Batches())
	assert.Equal(t, int64(5), w.Rows())

	assert.Len(t, readTSV(t, filepath.Join(dir, "batch_1.tsv")), 2)
	assert.Len(t, readTSV(t, filepath.Join(dir, "batch_2.tsv")), 2)
	// Final batch is short.
	assert.Equal(t, []string{"e\troot"}, readTSV(t, filepath.Join(dir, "batch_3.tsv")))
}

func TestBatchWriter_NoHeaderTabDelimited(t *testing.T) {
	dir := t.TempDir()
	w := combine.NewBatchWriter(dir, 10, quietLogger())
	w.Add([]string{"A", "B", "D"})
	w.Add([]string{"A", "C", "D"})
	w.Flush()

	lines := readTSV(t, filepath.Join(dir, "batch_1.tsv"))
	assert.Equal(t, []string{"A\tB\tD", "A\tC\tD"}, lines)
}

func TestBatchWriter_FlushOnEmptyBufferWritesNothing(t *testing.T) {
	dir := t.TempDir()
	w := combine.NewBatchWriter(dir, 2, quietLogger())
	w.Add([]string{"a"})
	w.Add([]string{"b"}) // flushes batch 1
	w.Flush()            // nothing buffered: no batch 2
	w.Flush()

	assert.Equal(t, 1, w.Batches())
	_, err := os.Stat(filepath.Join(dir, "batch_2.tsv"))
	assert.True(t, os.IsNotExist(err))
}

func TestBatchWriter_WriteFailureIsNotFatal(t *testing.T) {
	// Point the writer at a directory that does not exist: every batch
	// write fails, yet Add/Flush must keep going and keep counting.
	dir := filepath.Join(t.TempDir(), "missing", "deeper")
	w := combine.NewBatchWriter(dir, 1, quietLogger())
	w.Add([]string{"a"})
	w.Add([]string{"b"})
	w.Flush()

	assert.Equal(t, 2, w.Batches())
	assert.Equal(t, int64(2), w.Rows())
}

func TestBatchWriter_DefaultSize(t *testing.T) {
	w := combine.NewBatchWriter(t.TempDir(), 0, nil)
	for i := 0; i < 100; i++ {
		w.Add([]string{"n"})
	}
	w.Flush()
	assert.Equal(t, 1, w.Batches(), "100 rows fit one default-size batch")
}
