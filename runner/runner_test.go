package runner_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxopath/taxopath/combine"
	"github.com/taxopath/taxopath/hierarchy"
	"github.com/taxopath/taxopath/runner"
)

// writeInputs persists the diamond hierarchy (B→A, C→A, D→{B,C}) and a
// ranking file, returning their paths plus a fresh output dir.
func writeInputs(t *testing.T, ranking string) (c2p, counts, out string) {
	t.Helper()
	dir := t.TempDir()
	c2p = filepath.Join(dir, "child_to_parents.json")
	counts = filepath.Join(dir, "class_counts.json")
	out = filepath.Join(dir, "extracted_paths")
	require.NoError(t, os.WriteFile(c2p,
		[]byte(`{"B":["A"],"C":["A"],"D":["B","C"]}`), 0o644))
	require.NoError(t, os.WriteFile(counts, []byte(ranking), 0o644))
	return c2p, counts, out
}

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// batchRows reads every batch file under dir and returns all rows, sorted.
func batchRows(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var rows []string
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), "batch_") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		require.NoError(t, err)
		for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
			rows = append(rows, line)
		}
	}
	sort.Strings(rows)
	return rows
}

func TestRun_UpwardFromSeedD(t *testing.T) {
	c2p, counts, out := writeInputs(t, `{"D":7}`)
	r := runner.New(runner.Config{
		ChildToParents: c2p,
		ClassCounts:    counts,
		OutDir:         out,
		NumClasses:     1,
		Direction:      combine.Upward,
		Seed:           11,
	}, quiet())
	require.NoError(t, r.Run(context.Background()))

	// Raw upward paths D→B→A and D→C→A, reversed on output.
	nodeDir := filepath.Join(out, "D")
	assert.Equal(t, []string{"A\tB\tD", "A\tC\tD"}, batchRows(t, nodeDir))

	data, err := os.ReadFile(filepath.Join(nodeDir, "D.log"))
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "Class: D\n")
	assert.Contains(t, text, "Initial Upward Paths: 2\n")
	assert.Contains(t, text, "Unique Upward Paths: 2\n")
	assert.Contains(t, text, "Combined Paths: 2\n")
	assert.Contains(t, text, "Number of Batches: 1\n")
	assert.Contains(t, text, "Direction: upward\n")
}

func TestRun_DownwardFromRootWithMaxDepth(t *testing.T) {
	c2p, counts, out := writeInputs(t, `{"A":100}`)
	r := runner.New(runner.Config{
		ChildToParents: c2p,
		ClassCounts:    counts,
		OutDir:         out,
		NumClasses:     1,
		MaxDepth:       2,
		Direction:      combine.Downward,
		Seed:           11,
	}, quiet())
	require.NoError(t, r.Run(context.Background()))

	// Depth-2-bounded downward paths from A: branches toward D are
	// truncated at the ceiling, leaving the 2-node prefixes.
	assert.Equal(t, []string{"A\tB", "A\tC"}, batchRows(t, filepath.Join(out, "A")))
}

func TestRun_BothCrossProduct(t *testing.T) {
	c2p, counts, out := writeInputs(t, `{"B":50}`)
	r := runner.New(runner.Config{
		ChildToParents: c2p,
		ClassCounts:    counts,
		OutDir:         out,
		NumClasses:     1,
		Direction:      combine.Both,
		Seed:           5,
	}, quiet())
	require.NoError(t, r.Run(context.Background()))

	// Seed B: one unique upward path B→A, one downward B→D.
	// Cross product: reverse(U) minus seed + D = ["A","B","D"].
	assert.Equal(t, []string{"A\tB\tD"}, batchRows(t, filepath.Join(out, "B")))

	data, err := os.ReadFile(filepath.Join(out, "B", "B.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Combined Paths: 1\n")
}

func TestRun_BatchSizeSplitsOutput(t *testing.T) {
	c2p, counts, out := writeInputs(t, `{"D":7}`)
	r := runner.New(runner.Config{
		ChildToParents: c2p,
		ClassCounts:    counts,
		OutDir:         out,
		NumClasses:     1,
		BatchSize:      1,
		Direction:      combine.Upward,
		Seed:           11,
	}, quiet())
	require.NoError(t, r.Run(context.Background()))

	nodeDir := filepath.Join(out, "D")
	for _, name := range []string{"batch_1.tsv", "batch_2.tsv"} {
		_, err := os.Stat(filepath.Join(nodeDir, name))
		assert.NoError(t, err, name)
	}
}

func TestRun_RespectsRankingOrderAndNumClasses(t *testing.T) {
	c2p, counts, out := writeInputs(t, `{"D":7,"B":5,"A":1}`)
	r := runner.New(runner.Config{
		ChildToParents: c2p,
		ClassCounts:    counts,
		OutDir:         out,
		NumClasses:     2,
		Direction:      combine.Upward,
		Seed:           11,
	}, quiet())
	require.NoError(t, r.Run(context.Background()))

	for _, node := range []string{"D", "B"} {
		_, err := os.Stat(filepath.Join(out, node))
		assert.NoError(t, err, node)
	}
	_, err := os.Stat(filepath.Join(out, "A"))
	assert.True(t, os.IsNotExist(err), "third-ranked node must not be processed")
}

func TestRun_InvalidDirectionIsNoOp(t *testing.T) {
	c2p, counts, out := writeInputs(t, `{"D":7}`)
	r := runner.New(runner.Config{
		ChildToParents: c2p,
		ClassCounts:    counts,
		OutDir:         out,
		NumClasses:     1,
		Direction:      combine.Direction("sideways"),
		Seed:           11,
	}, quiet())
	require.NoError(t, r.Run(context.Background()))

	nodeDir := filepath.Join(out, "D")
	assert.Empty(t, batchRows(t, nodeDir), "no batches for invalid direction")

	data, err := os.ReadFile(filepath.Join(nodeDir, "D.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Combined Paths: 0\n")
	assert.Contains(t, string(data), "Number of Batches: 0\n")
}

func TestRun_MissingInputsAreFatal(t *testing.T) {
	dir := t.TempDir()
	r := runner.New(runner.Config{
		ChildToParents: filepath.Join(dir, "nope.json"),
		ClassCounts:    filepath.Join(dir, "nope2.json"),
		OutDir:         filepath.Join(dir, "out"),
		Direction:      combine.Upward,
	}, quiet())
	err := r.Run(context.Background())
	assert.ErrorIs(t, err, hierarchy.ErrOpenInput)

	// Fatal before any node: no output dir created.
	_, statErr := os.Stat(filepath.Join(dir, "out"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_MalformedMappingIsFatal(t *testing.T) {
	dir := t.TempDir()
	c2p := filepath.Join(dir, "c2p.json")
	counts := filepath.Join(dir, "counts.json")
	require.NoError(t, os.WriteFile(c2p, []byte(`{"B": 3}`), 0o644))
	require.NoError(t, os.WriteFile(counts, []byte(`{"D":1}`), 0o644))

	r := runner.New(runner.Config{
		ChildToParents: c2p,
		ClassCounts:    counts,
		OutDir:         filepath.Join(dir, "out"),
		Direction:      combine.Upward,
	}, quiet())
	assert.ErrorIs(t, r.Run(context.Background()), hierarchy.ErrDecodeMapping)
}

func TestRun_CancelledContext(t *testing.T) {
	c2p, counts, out := writeInputs(t, `{"D":7}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := runner.New(runner.Config{
		ChildToParents: c2p,
		ClassCounts:    counts,
		OutDir:         out,
		NumClasses:     1,
		Direction:      combine.Upward,
	}, quiet())
	assert.ErrorIs(t, r.Run(ctx), context.Canceled)
}

func TestRun_MaxPathsPerClassBoundsRawCount(t *testing.T) {
	dir := t.TempDir()
	c2p := filepath.Join(dir, "c2p.json")
	counts := filepath.Join(dir, "counts.json")
	// S has 6 parents, each a root: 6 raw upward paths without a cap.
	require.NoError(t, os.WriteFile(c2p,
		[]byte(`{"S":["p1","p2","p3","p4","p5","p6"]}`), 0o644))
	require.NoError(t, os.WriteFile(counts, []byte(`{"S":9}`), 0o644))
	out := filepath.Join(dir, "out")

	r := runner.New(runner.Config{
		ChildToParents:   c2p,
		ClassCounts:      counts,
		OutDir:           out,
		NumClasses:       1,
		MaxPathsPerClass: 4,
		Direction:        combine.Upward,
		Seed:             23,
	}, quiet())
	require.NoError(t, r.Run(context.Background()))

	rows := batchRows(t, filepath.Join(out, "S"))
	assert.Len(t, rows, 4)

	data, err := os.ReadFile(filepath.Join(out, "S", "S.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Initial Upward Paths: 4\n")
}
