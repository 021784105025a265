// Package runner orchestrates a full path-extraction run.
//
// What:
//
//   - Runner: loads the child→parents mapping and the ranked node list,
//     derives the parent→children mapping once, then iterates the top-N
//     ranked seed nodes strictly sequentially. Per node it generates,
//     samples, deduplicates, combines, and batches paths, and writes the
//     per-node summary.
//
// Resource model: each iteration's path sets, trie, and batch buffer are
// local to that iteration and unreachable once it returns, so peak memory
// stays at roughly one node's working set no matter how many seeds are
// processed. The two adjacency mappings are the only state shared across
// iterations, and they are read-only after inversion.
//
// Telemetry: wall-clock time per node and in aggregate, plus process RSS
// sampled at the end of each node (gopsutil).
//
// Failure policy: unreadable or malformed inputs abort before any node is
// processed; everything after that point is recovered locally — a failed
// batch or summary write is logged and the run moves on.
package runner
