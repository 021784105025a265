// Package combine: per-seed run summary record and persistence.
package combine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Summary is the per-seed-node statistics record written next to the
// node's batch files.
type Summary struct {
	Node           string
	RawUpward      int
	UniqueUpward   int
	RawDownward    int
	UniqueDownward int
	Combined       int64
	Batches        int
	BatchSize      int
	Direction      Direction
	Elapsed        time.Duration
	MemoryMB       float64
}

// Render returns the flat-text form of the summary, one field per line.
func (s Summary) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Class: %s\n", s.Node)
	fmt.Fprintf(&b, "Initial Upward Paths: %d\n", s.RawUpward)
	fmt.Fprintf(&b, "Unique Upward Paths: %d\n", s.UniqueUpward)
	fmt.Fprintf(&b, "Initial Downward Paths: %d\n", s.RawDownward)
	fmt.Fprintf(&b, "Unique Downward Paths: %d\n", s.UniqueDownward)
	fmt.Fprintf(&b, "Combined Paths: %d\n", s.Combined)
	fmt.Fprintf(&b, "Number of Batches: %d\n", s.Batches)
	fmt.Fprintf(&b, "Batch Size: %d\n", s.BatchSize)
	fmt.Fprintf(&b, "Direction: %s\n", s.Direction)
	fmt.Fprintf(&b, "Time Taken: %s\n", FormatDuration(s.Elapsed))
	fmt.Fprintf(&b, "Memory Usage: %.2f MB\n", s.MemoryMB)
	return b.String()
}

// Write persists the summary as <dir>/<node>.log.
func (s Summary) Write(dir string) error {
	name := filepath.Join(dir, s.Node+".log")
	if err := os.WriteFile(name, []byte(s.Render()), 0o644); err != nil {
		return fmt.Errorf("combine: write summary %s: %w", name, err)
	}
	return nil
}

// FormatDuration renders d as "N day(s), N hour(s), N minute(s),
// S.SS second(s)", omitting leading zero units (seconds always appear).
func FormatDuration(d time.Duration) string {
	secs := d.Seconds()
	days := int(secs / 86400)
	secs -= float64(days) * 86400
	hours := int(secs / 3600)
	secs -= float64(hours) * 3600
	minutes := int(secs / 60)
	secs -= float64(minutes) * 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d day(s)", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hour(s)", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d minute(s)", minutes))
	}
	parts = append(parts, fmt.Sprintf("%.2f second(s)", secs))
	return strings.Join(parts, ", ")
}
