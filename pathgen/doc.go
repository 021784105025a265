// Package pathgen enumerates acyclic paths through a hierarchy.Mapping
// using an explicit-stack depth-first traversal.
//
// What:
//
//   - Paths(start, adj, opts...): lazy sequence of complete paths from
//     start over adj, where a path is complete when its frontier node has
//     no adjacency entries (a root when walking child→parents, a leaf when
//     walking parent→children) or when it reaches the depth ceiling.
//   - Limits: WithMinDepth drops complete paths under the floor;
//     WithMaxDepth truncates branches at the ceiling, emitting the prefix
//     (both bounds are inclusive node counts); WithMaxPaths caps how many
//     complete paths the sequence produces before abandoning the
//     remaining frontier.
//   - WithRand injects the RNG that randomizes neighbor expansion order;
//     WithContext allows cancellation.
//
// Why:
//   - When WithMaxPaths truncates the search, randomized expansion order
//     turns the cap into uniform-ish sampling of the reachable path space
//     instead of a lexicographic prefix of it. This is a sampling policy:
//     which paths are found first is intentionally non-deterministic across
//     seeds.
//   - Cycle safety is structural, not diagnostic: a node already on the
//     in-progress path is never pushed again, so bad data cannot cause
//     non-termination, but no cycle is ever reported.
//
// Complexity: O(P·L) time for P emitted paths of average length L, plus the
// abandoned frontier; memory is O(depth of the deepest live branch × L).
//
// Errors: none. A start node with no adjacency yields a single-node path
// (subject to the depth bounds). Bounds of zero mean "unbounded".
package pathgen
