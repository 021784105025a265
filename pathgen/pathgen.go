// Package pathgen implements bounded, cycle-safe DFS path enumeration.
package pathgen

import (
	"iter"
	"math/rand"
	"slices"
	"time"

	"github.com/taxopath/taxopath/hierarchy"
)

// frame pairs a frontier node with the path that reached it.
type frame struct {
	node string
	path []string
}

// Paths returns a lazy, finite, single-pass sequence of complete acyclic
// paths from start over adj. A path is complete when its frontier node has
// no adjacency entries, or when it reaches the MaxDepth ceiling (the
// ceiling truncates the branch, it does not discard it). The sequence
// honors the depth and count bounds and the cancellation context
// configured via opts; see GenOptions.
//
// Neighbor expansion order is randomized per node per visit, so when
// MaxPaths truncates the search the surviving subset differs across seeds.
// The sequence is not restartable: range over it once.
func Paths(start string, adj hierarchy.Mapping, opts ...Option) iter.Seq[[]string] {
	// 1. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	rng := o.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// 2. Build the push-down automaton lazily inside the sequence.
	return func(yield func([]string) bool) {
		stack := []frame{{node: start, path: []string{start}}}
		emitted := 0

		for len(stack) > 0 {
			// Count cap: abandon the remaining frontier.
			if o.MaxPaths > 0 && emitted >= o.MaxPaths {
				return
			}
			// Cancellation check, once per frame.
			select {
			case <-o.Ctx.Done():
				return
			default:
			}

			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			// A path completes when its frontier has no adjacency entries,
			// or when it reaches the depth ceiling: the ceiling truncates
			// rather than abandons, so a capped branch still yields its
			// prefix. Emit if it clears the depth floor.
			next := adj[f.node]
			if len(next) == 0 || (o.MaxDepth > 0 && len(f.path) >= o.MaxDepth) {
				if o.MinDepth == 0 || len(f.path) >= o.MinDepth {
					if !yield(f.path) {
						return
					}
					emitted++
				}
				continue
			}

			// Randomized expansion via an index permutation: the shared
			// adjacency slice is never mutated, unlike an in-place shuffle.
			for _, i := range rng.Perm(len(next)) {
				nb := next[i]
				if slices.Contains(f.path, nb) {
					continue // cycle through bad data; refuse to revisit
				}
				ext := make([]string, len(f.path)+1)
				copy(ext, f.path)
				ext[len(f.path)] = nb
				stack = append(stack, frame{node: nb, path: ext})
			}
		}
	}
}

// Collect drains seq into a slice. Convenience for callers that need the
// whole path set at once (sampling and deduplication do).
func Collect(seq iter.Seq[[]string]) [][]string {
	return slices.Collect(seq)
}
