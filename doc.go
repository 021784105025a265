// Package taxopath turns class hierarchies into path-shaped training data:
// bounded depth-first path enumeration from the most frequent seed nodes,
// trie-based deduplication, upward/downward combination, and shuffled
// size-bounded TSV batch output.
//
// What you get:
//
//	• Cycle-safe path generation with min/max depth and per-class caps
//	• Exact deduplication that keeps only complete (non-prefix) paths
//	• Streaming upward×downward combination with bounded memory
//	• Per-seed batch files and summary logs, plus a dump-triple extractor
//
// Everything is organized under small focused packages:
//
//	hierarchy/ — mapping load/invert and ranked-node parsing
//	pathgen/   — bounded DFS path enumeration (lazy iter.Seq)
//	pathtrie/  — complete-path deduplication
//	combine/   — direction handling, sampling, cross product, batch output
//	runner/    — top-N seed orchestration
//	extract/   — property-triple extraction from gzipped JSON dumps
//	cmd/       — the taxopath CLI
//
// Use the taxopath binary for end-to-end runs, or import the packages
// directly to embed any stage in your own pipeline.
package taxopath
