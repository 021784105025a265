// Package pathgen: options for bounded DFS path generation.
package pathgen

import (
	"context"
	"math/rand"
)

// Option configures optional behavior of path generation.
// Use with Paths(start, adj, opts...).
type Option func(*GenOptions)

// GenOptions holds configurable parameters for path generation.
// The zero values of the numeric bounds mean "unbounded".
type GenOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	// A cancelled context stops the sequence at the next frame.
	Ctx context.Context

	// MinDepth is the inclusive lower bound on the node count of emitted
	// paths. Complete paths shorter than MinDepth are silently dropped.
	// 0 means no lower bound.
	MinDepth int

	// MaxDepth is the inclusive upper bound on the node count of any path.
	// A path reaching it is emitted as complete without being extended
	// further, so deep branches contribute their MaxDepth-node prefix.
	// 0 means no upper bound.
	MaxDepth int

	// MaxPaths caps the number of complete paths the sequence emits.
	// Once reached, the remaining frontier is abandoned unexplored.
	// 0 means no cap.
	MaxPaths int

	// Rand randomizes neighbor expansion order per visit. Defaults to a
	// time-seeded source; pass a fixed-seed source for deterministic tests.
	Rand *rand.Rand
}

// DefaultOptions returns GenOptions with a background context, no depth or
// count bounds, and a time-seeded RNG allocated lazily by Paths.
func DefaultOptions() GenOptions {
	return GenOptions{
		Ctx:      context.Background(),
		MinDepth: 0,
		MaxDepth: 0,
		MaxPaths: 0,
		Rand:     nil,
	}
}

// WithContext returns an Option that sets the cancellation context.
// Passing nil has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *GenOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMinDepth returns an Option that drops complete paths with fewer than
// n nodes. Values < 1 disable the bound.
func WithMinDepth(n int) Option {
	return func(o *GenOptions) {
		if n > 0 {
			o.MinDepth = n
		}
	}
}

// WithMaxDepth returns an Option that completes paths at n nodes instead
// of extending them further. Values < 1 disable the bound.
func WithMaxDepth(n int) Option {
	return func(o *GenOptions) {
		if n > 0 {
			o.MaxDepth = n
		}
	}
}

// WithMaxPaths returns an Option that stops the sequence after n complete
// paths. Values < 1 disable the cap.
func WithMaxPaths(n int) Option {
	return func(o *GenOptions) {
		if n > 0 {
			o.MaxPaths = n
		}
	}
}

// WithRand provides an explicit RNG for neighbor-order randomization.
// Panics on nil to surface programmer error early.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("pathgen: WithRand(nil)")
	}
	return func(o *GenOptions) {
		o.Rand = r
	}
}
