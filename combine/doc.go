// Package combine turns per-seed unique path sets into persisted training
// batches.
//
// What:
//
//   - Direction: upward / downward / both, parsed from the CLI surface.
//   - SampleN: uniform pre-deduplication sampling of raw path sets.
//   - Shuffle: in-place Fisher–Yates over a path set with an explicit RNG.
//   - Product: the upward×downward cross combination as a lazy sequence —
//     reverse(U) with the seed dropped from its tail, concatenated with D
//     (seed retained), so the seed appears exactly once, at the junction.
//   - Reversed: the upward single-direction rendering (root first,
//     seed last).
//   - BatchWriter: accumulates rows and flushes size-bounded tab-separated
//     batch files; a failed batch is logged and dropped, never fatal.
//   - Summary: the per-seed run record and its flat-text persistence.
//
// Why:
//   - In "both" mode the combined set is |U|×|D| rows; Product streams it
//     so peak memory stays at one batch buffer regardless of product size.
//   - Sampling happens before uniqueness filtering, so the post-dedup count
//     may undercut the sampling cap; that is the intended budget semantics.
//
// All randomness flows through explicitly passed *rand.Rand handles.
package combine
