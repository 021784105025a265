// Package hierarchy loads and manipulates the class-hierarchy relation that
// the rest of the toolkit traverses.
//
// What:
//
//   - Mapping: node → adjacent nodes, in either direction
//     (child→parents as loaded, parent→children after Invert)
//   - Invert: transpose a child→parents Mapping into parent→children,
//     deduplicating and sorting children for determinism
//   - LoadMapping / SaveMapping: JSON persistence of a Mapping
//   - LoadRanking: order-preserving parse of the node→count ranking file
//
// Why:
//   - The path generator needs both directions of the relation; only the
//     child→parents half is persisted, so the other half is derived once
//     per run and then treated as read-only.
//   - Ranking order in the counts file is authoritative (top-N selection
//     iterates it as-is), so the parse must not go through a Go map.
//
// Errors:
//
//   - ErrOpenInput      input file could not be opened
//   - ErrDecodeMapping  mapping file is not a JSON object of string arrays
//   - ErrDecodeRanking  ranking file is not a JSON object of numbers
//
// Complexity: Invert is O(V + E log E) (sorting children per parent);
// loading is linear in file size.
package hierarchy
