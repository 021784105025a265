// Package hierarchy: core Mapping type and relation inversion.
package hierarchy

import "sort"

// Mapping relates each node to the nodes adjacent to it in one direction of
// the hierarchy relation. Keys and values are opaque node identifiers.
// A Mapping is read-only once handed to the traversal layer.
type Mapping map[string][]string

// Invert transposes a child→parents Mapping into a parent→children Mapping.
//
// Every (child, parent) edge of the input appears as (parent, child) in the
// output exactly once, regardless of duplicate occurrences in the input.
// Children lists are sorted so the derived mapping is deterministic; any
// randomization happens later, at traversal time.
//
// An empty (or nil) input yields an empty Mapping. Invert never fails.
func Invert(childToParents Mapping) Mapping {
	// 1. Collect children per parent into sets to drop duplicates.
	seen := make(map[string]map[string]struct{}, len(childToParents))
	var child, parent string
	var parents []string
	for child, parents = range childToParents {
		for _, parent = range parents {
			set, ok := seen[parent]
			if !ok {
				set = make(map[string]struct{})
				seen[parent] = set
			}
			set[child] = struct{}{}
		}
	}

	// 2. Flatten each set into a sorted slice.
	out := make(Mapping, len(seen))
	for parent, set := range seen {
		children := make([]string, 0, len(set))
		for child = range set {
			children = append(children, child)
		}
		sort.Strings(children)
		out[parent] = children
	}

	return out
}
