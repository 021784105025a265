// Package extract: streaming property-triple extraction from a JSON dump.
package extract

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/taxopath/taxopath/combine"
)

var (
	// ErrOpenDump indicates the dump file could not be opened.
	ErrOpenDump = errors.New("extract: cannot open dump")

	// ErrBadArchive indicates the dump is not a valid gzip stream.
	ErrBadArchive = errors.New("extract: dump is not gzip")

	// ErrWriteBatch indicates a triple batch file could not be written.
	ErrWriteBatch = errors.New("extract: cannot write batch")
)

// DefaultEntitiesPerBatch is how many dump entities feed one batch file.
const DefaultEntitiesPerBatch = 50_000

// Config parameterizes one extraction run.
type Config struct {
	// DumpPath is the gzipped JSON dump file.
	DumpPath string

	// OutDir receives batch_<i>.tsv files; created if missing.
	OutDir string

	// Property is the claim property to extract, e.g. "P31".
	Property string

	// EntitiesPerBatch bounds entities per batch file;
	// < 1 falls back to DefaultEntitiesPerBatch.
	EntitiesPerBatch int

	// Dummy stops after the first full batch; used for quick smoke runs
	// against multi-terabyte dumps.
	Dummy bool
}

// Stats summarizes an extraction run.
type Stats struct {
	Entities int64
	Triples  int64
	BadLines int64
	Batches  int
	Elapsed  time.Duration
}

// claim mirrors just enough of the dump's claim shape. Value stays raw
// because its type varies per property; only entity references decode.
type claim struct {
	MainSnak struct {
		SnakType  string `json:"snaktype"`
		DataValue struct {
			Value json.RawMessage `json:"value"`
		} `json:"datavalue"`
	} `json:"mainsnak"`
}

// entity is one dump line.
type entity struct {
	ID     string             `json:"id"`
	Claims map[string][]claim `json:"claims"`
}

// triple is one extracted (entity, property, value) record.
type triple struct {
	entityID string
	valueID  string
}

// Run streams the dump at cfg.DumpPath and writes triple batches under
// cfg.OutDir. Lines that fail to decode are counted in Stats.BadLines and
// skipped. The run log (run_<property>.log, next to OutDir) records the
// outcome; its write failure is logged but not fatal.
func Run(ctx context.Context, cfg Config, log *slog.Logger) (Stats, error) {
	start := time.Now()
	if cfg.Property == "" {
		cfg.Property = "P31"
	}
	if cfg.EntitiesPerBatch < 1 {
		cfg.EntitiesPerBatch = DefaultEntitiesPerBatch
	}
	if log == nil {
		log = slog.Default()
	}

	var stats Stats

	f, err := os.Open(cfg.DumpPath)
	if err != nil {
		return stats, fmt.Errorf("%w: %s: %v", ErrOpenDump, cfg.DumpPath, err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return stats, fmt.Errorf("%w: %s: %v", ErrBadArchive, cfg.DumpPath, err)
	}
	defer gz.Close()

	if err = os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return stats, fmt.Errorf("extract: output dir: %w", err)
	}

	var (
		buf           []triple
		entitiesInBuf int
		r             = bufio.NewReaderSize(gz, 1<<20)
	)

scan:
	for {
		if err = ctx.Err(); err != nil {
			return stats, fmt.Errorf("extract: cancelled: %w", err)
		}

		line, readErr := r.ReadString('\n')
		line = strings.TrimSpace(line)

		switch {
		case line == "" || line == "[" || line == "]":
			// Array brackets and blank lines carry no entity.
		default:
			var e entity
			if uerr := sonic.Unmarshal([]byte(strings.TrimSuffix(line, ",")), &e); uerr != nil {
				stats.BadLines++
				log.Debug("skipping undecodable line", "error", uerr)
			} else {
				stats.Entities++
				entitiesInBuf++
				for _, c := range e.Claims[cfg.Property] {
					if c.MainSnak.SnakType != "value" {
						continue
					}
					var ref struct {
						ID string `json:"id"`
					}
					if json.Unmarshal(c.MainSnak.DataValue.Value, &ref) == nil && ref.ID != "" {
						buf = append(buf, triple{entityID: e.ID, valueID: ref.ID})
						stats.Triples++
					}
				}
				if entitiesInBuf >= cfg.EntitiesPerBatch {
					if err = writeBatch(cfg, stats.Batches, buf); err != nil {
						return stats, err
					}
					log.Info("batch written", "batch", stats.Batches, "triples", len(buf))
					stats.Batches++
					buf, entitiesInBuf = buf[:0], 0
					if cfg.Dummy {
						break scan
					}
				}
			}
		}

		if readErr != nil {
			if readErr != io.EOF {
				return stats, fmt.Errorf("extract: read dump: %w", readErr)
			}
			break
		}
	}

	// Remainder that never filled a batch.
	if entitiesInBuf > 0 {
		if err = writeBatch(cfg, stats.Batches, buf); err != nil {
			return stats, err
		}
		log.Info("final batch written", "batch", stats.Batches, "triples", len(buf))
		stats.Batches++
	}

	stats.Elapsed = time.Since(start)
	writeRunLog(cfg, stats, log)
	return stats, nil
}

// writeBatch persists one batch as batch_<idx>.tsv with a header row.
func writeBatch(cfg Config, idx int, triples []triple) error {
	name := filepath.Join(cfg.OutDir, fmt.Sprintf("batch_%d.tsv", idx))
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteBatch, name, err)
	}
	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "entity_id\tproperty_id\tvalue_id")
	for _, t := range triples {
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.entityID, cfg.Property, t.valueID)
	}
	if err = w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("%w: %s: %v", ErrWriteBatch, name, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteBatch, name, err)
	}
	return nil
}

// writeRunLog records the run outcome next to the output directory.
func writeRunLog(cfg Config, stats Stats, log *slog.Logger) {
	name := filepath.Join(filepath.Dir(cfg.OutDir), fmt.Sprintf("run_%s.log", cfg.Property))
	var b strings.Builder
	fmt.Fprintf(&b, "Processing completed in %s\n", combine.FormatDuration(stats.Elapsed))
	fmt.Fprintf(&b, "Total entities processed: %d\n", stats.Entities)
	fmt.Fprintf(&b, "%s output directory: %s\n", cfg.Property, cfg.OutDir)
	fmt.Fprintf(&b, "Lines with JSON decoding errors: %d\n", stats.BadLines)
	if err := os.WriteFile(name, []byte(b.String()), 0o644); err != nil {
		log.Warn("run log write failed", "file", name, "error", err)
	}
}
