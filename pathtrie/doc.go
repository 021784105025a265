// Package pathtrie deduplicates path sets with a prefix tree.
//
// What:
//
//   - Trie: insert node-identifier sequences, then recover the set of
//     unique complete paths. Two inserts of the same sequence yield one
//     recovered path.
//
// Semantics of "complete": a recovered path ends at a tree node whose
// terminal flag is set AND that has no children. Consequently a path that
// is a strict prefix of another inserted path is NOT recovered — its
// terminal node gained a child and stopped being a leaf. This mirrors the
// behavior of collecting only full-length branches and is pinned by tests;
// callers that need prefix retention must use separate tries per length.
//
// Traversal is iterative over an explicit stack, so recovery depth is
// bounded by heap, not by goroutine stack growth on very deep hierarchies.
//
// Output order is unstable (map iteration); shuffle or sort downstream.
//
// Complexity: Insert is O(L) per path of length L; Paths is O(N) over the
// N tree nodes.
package pathtrie
