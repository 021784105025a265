// Package combine: recombination of upward and downward path sets.
package combine

import "iter"

// Reversed returns a new slice with path's nodes in reverse order.
// Upward paths are generated seed-first; reversing puts the root first and
// the seed last, which is the emitted orientation for single-direction
// upward runs.
func Reversed(path []string) []string {
	out := make([]string, len(path))
	for i, id := range path {
		out[len(path)-1-i] = id
	}
	return out
}

// Product streams the full cross combination of an upward and a downward
// unique path set: for every U and D, reverse(U) with its last element
// dropped (the seed, which both halves share) followed by D. The seed
// therefore appears exactly once per row, at index len(U)-1.
//
// The product is never materialized; rows are built one at a time, so
// |U|×|D| output costs O(row) memory. Either input empty yields an empty
// sequence.
func Product(upward, downward [][]string) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		for _, up := range upward {
			head := Reversed(up)
			head = head[:len(head)-1] // drop the seed; downward keeps it
			for _, down := range downward {
				row := make([]string, 0, len(head)+len(down))
				row = append(row, head...)
				row = append(row, down...)
				if !yield(row) {
					return
				}
			}
		}
	}
}
