// Package combine: size-bounded TSV batch persistence.
package combine

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// DefaultBatchSize is the row bound of one batch file when the caller does
// not configure one.
const DefaultBatchSize = 50_000

// BatchWriter accumulates path rows and flushes them as numbered
// tab-separated files batch_1.tsv, batch_2.tsv, … under Dir.
//
// A batch that fails to write is reported through the logger and its rows
// are dropped; the writer keeps accepting rows. The batch counter still
// advances past a failed batch so file numbering stays aligned with the
// run summary.
//
// Not safe for concurrent use; the pipeline is strictly sequential.
type BatchWriter struct {
	dir  string
	size int
	log  *slog.Logger

	buf     [][]string
	batches int
	rows    int64
}

// NewBatchWriter returns a BatchWriter flushing into dir every size rows.
// size < 1 falls back to DefaultBatchSize. A nil logger means slog.Default.
func NewBatchWriter(dir string, size int, log *slog.Logger) *BatchWriter {
	if size < 1 {
		size = DefaultBatchSize
	}
	if log == nil {
		log = slog.Default()
	}
	return &BatchWriter{
		dir:  dir,
		size: size,
		log:  log,
		buf:  make([][]string, 0, size),
	}
}

// Add buffers one path row, flushing a full batch to disk when the buffer
// reaches the batch size.
func (w *BatchWriter) Add(path []string) {
	w.buf = append(w.buf, path)
	w.rows++
	if len(w.buf) >= w.size {
		w.flush()
	}
}

// Flush writes any remaining buffered rows as a final, possibly short,
// batch. Call once after the source is exhausted.
func (w *BatchWriter) Flush() {
	if len(w.buf) > 0 {
		w.flush()
	}
}

// Batches reports how many batch files were started (including failed ones).
func (w *BatchWriter) Batches() int { return w.batches }

// Rows reports how many rows were accepted via Add.
func (w *BatchWriter) Rows() int64 { return w.rows }

// flush writes the current buffer as the next numbered batch and resets it.
// Write failures are logged and swallowed: one lost batch must not abort
// the remainder of the node's output.
func (w *BatchWriter) flush() {
	w.batches++
	name := filepath.Join(w.dir, fmt.Sprintf("batch_%d.tsv", w.batches))

	if err := writeTSV(name, w.buf); err != nil {
		w.log.Error("batch write failed, dropping batch",
			"file", name, "rows", len(w.buf), "error", err)
	} else {
		w.log.Debug("batch written", "file", name, "rows", len(w.buf))
	}
	w.buf = w.buf[:0]
}

// writeTSV renders rows as tab-separated records with no header.
func writeTSV(name string, rows [][]string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(f)
	cw.Comma = '\t'
	if err = cw.WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
