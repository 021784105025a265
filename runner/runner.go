// Package runner: top-N seed-node iteration and per-node pipeline.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/taxopath/taxopath/combine"
	"github.com/taxopath/taxopath/hierarchy"
	"github.com/taxopath/taxopath/pathgen"
	"github.com/taxopath/taxopath/pathtrie"
)

// DefaultNumClasses is how many top-ranked seed nodes a run processes when
// the caller does not say otherwise.
const DefaultNumClasses = 10

// Config holds everything a run needs. Zero numeric bounds mean
// "unbounded", matching pathgen.
type Config struct {
	// ChildToParents is the path of the persisted child→parents JSON file.
	ChildToParents string

	// ClassCounts is the path of the ranked node-count JSON file; its file
	// order is the rank order.
	ClassCounts string

	// OutDir is the root output directory; each seed node gets a
	// subdirectory named after it.
	OutDir string

	// NumClasses caps how many top-ranked nodes are processed.
	// < 1 falls back to DefaultNumClasses.
	NumClasses int

	// MinDepth / MaxDepth bound emitted path length in nodes (inclusive).
	MinDepth int
	MaxDepth int

	// MaxPathsPerClass caps raw path generation per node per direction and
	// is also the pre-dedup sampling bound.
	MaxPathsPerClass int

	// BatchSize is the row bound per batch file; < 1 falls back to
	// combine.DefaultBatchSize.
	BatchSize int

	// Direction selects upward, downward, or both. An unknown value makes
	// every node a no-op (zero paths, zero batches) rather than an error.
	Direction combine.Direction

	// Seed seeds the run's RNG; 0 seeds from the clock.
	Seed int64
}

// Runner executes path-extraction runs. Create with New.
type Runner struct {
	cfg Config
	log *slog.Logger
	rng *rand.Rand
}

// New returns a Runner over cfg, applying defaults for unset fields.
// A nil logger means slog.Default.
func New(cfg Config, log *slog.Logger) *Runner {
	if cfg.NumClasses < 1 {
		cfg.NumClasses = DefaultNumClasses
	}
	if cfg.BatchSize < 1 {
		cfg.BatchSize = combine.DefaultBatchSize
	}
	if log == nil {
		log = slog.Default()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Runner{
		cfg: cfg,
		log: log,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Run executes the whole pipeline: load inputs, invert the relation, then
// process the top-N ranked seed nodes in order. Input failures abort
// before any node is touched; per-node output failures are recovered
// locally and logged.
func (r *Runner) Run(ctx context.Context) error {
	start := time.Now()

	// 1. Load inputs; any failure here is fatal.
	childToParents, err := hierarchy.LoadMapping(r.cfg.ChildToParents)
	if err != nil {
		return fmt.Errorf("runner: child-to-parents mapping: %w", err)
	}
	ranked, err := hierarchy.LoadRanking(r.cfg.ClassCounts)
	if err != nil {
		return fmt.Errorf("runner: class counts: %w", err)
	}
	if err = os.MkdirAll(r.cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("runner: output dir: %w", err)
	}

	// 2. Derive the downward relation once; read-only afterwards.
	parentToChildren := hierarchy.Invert(childToParents)
	r.log.Info("hierarchy loaded",
		"children", len(childToParents),
		"parents", len(parentToChildren),
		"ranked_nodes", len(ranked))

	// 3. Walk the ranked list in file order.
	limit := r.cfg.NumClasses
	if limit > len(ranked) {
		limit = len(ranked)
	}
	var totalPaths int64
	for idx, rk := range ranked[:limit] {
		if err = ctx.Err(); err != nil {
			return fmt.Errorf("runner: cancelled after %d node(s): %w", idx, err)
		}
		sum := r.processNode(ctx, rk, childToParents, parentToChildren)
		totalPaths += sum.Combined
		r.log.Info("seed node done",
			"rank", idx+1,
			"node", rk.Node,
			"count", rk.Count,
			"combined_paths", sum.Combined,
			"batches", sum.Batches,
			"elapsed", combine.FormatDuration(sum.Elapsed),
			"memory_mb", fmt.Sprintf("%.2f", sum.MemoryMB))
	}

	r.log.Info("run complete",
		"nodes", limit,
		"total_paths", totalPaths,
		"elapsed", combine.FormatDuration(time.Since(start)))
	return nil
}

// processNode runs the generate→sample→dedup→combine→batch pipeline for
// one seed node. Everything it allocates dies with the call, which is what
// bounds peak memory to one node's working set.
func (r *Runner) processNode(ctx context.Context, rk hierarchy.Ranked, up, down hierarchy.Mapping) combine.Summary {
	start := time.Now()
	node := rk.Node

	nodeDir := filepath.Join(r.cfg.OutDir, node)
	if err := os.MkdirAll(nodeDir, 0o755); err != nil {
		// Batch writes below will fail and be dropped one by one; the node
		// still produces a log line and the run continues.
		r.log.Error("node output dir", "node", node, "error", err)
	}

	genOpts := []pathgen.Option{
		pathgen.WithContext(ctx),
		pathgen.WithRand(r.rng),
		pathgen.WithMinDepth(r.cfg.MinDepth),
		pathgen.WithMaxDepth(r.cfg.MaxDepth),
		pathgen.WithMaxPaths(r.cfg.MaxPathsPerClass),
	}

	sum := combine.Summary{
		Node:      node,
		BatchSize: r.cfg.BatchSize,
		Direction: r.cfg.Direction,
	}

	var uniqueUp, uniqueDown [][]string
	if r.cfg.Direction.Wants(combine.Upward) {
		raw := pathgen.Collect(pathgen.Paths(node, up, genOpts...))
		raw = combine.SampleN(raw, r.cfg.MaxPathsPerClass, r.rng)
		uniqueUp = dedup(raw)
		sum.RawUpward, sum.UniqueUpward = len(raw), len(uniqueUp)
		r.log.Debug("upward paths", "node", node, "raw", len(raw), "unique", len(uniqueUp))
	}
	if r.cfg.Direction.Wants(combine.Downward) {
		raw := pathgen.Collect(pathgen.Paths(node, down, genOpts...))
		raw = combine.SampleN(raw, r.cfg.MaxPathsPerClass, r.rng)
		uniqueDown = dedup(raw)
		sum.RawDownward, sum.UniqueDownward = len(raw), len(uniqueDown)
		r.log.Debug("downward paths", "node", node, "raw", len(raw), "unique", len(uniqueDown))
	}

	w := combine.NewBatchWriter(nodeDir, r.cfg.BatchSize, r.log)
	switch r.cfg.Direction {
	case combine.Both:
		combine.Shuffle(uniqueUp, r.rng)
		combine.Shuffle(uniqueDown, r.rng)
		for row := range combine.Product(uniqueUp, uniqueDown) {
			w.Add(row)
		}
	case combine.Upward:
		combine.Shuffle(uniqueUp, r.rng)
		for _, p := range uniqueUp {
			w.Add(combine.Reversed(p))
		}
	case combine.Downward:
		combine.Shuffle(uniqueDown, r.rng)
		for _, p := range uniqueDown {
			w.Add(p)
		}
	default:
		r.log.Warn("invalid direction, skipping combination",
			"node", node, "direction", string(r.cfg.Direction))
	}
	w.Flush()

	sum.Combined = w.Rows()
	sum.Batches = w.Batches()
	sum.Elapsed = time.Since(start)
	sum.MemoryMB = processMemoryMB()

	if err := sum.Write(nodeDir); err != nil {
		r.log.Error("summary write failed", "node", node, "error", err)
	}
	return sum
}

// dedup filters raw paths through a fresh per-call trie.
func dedup(raw [][]string) [][]string {
	tr := pathtrie.New()
	for _, p := range raw {
		tr.Insert(p)
	}
	return tr.Paths()
}
