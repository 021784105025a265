// Package pathtrie: prefix-tree storage and recovery of unique paths.
package pathtrie

// node is one prefix-tree vertex: child edges keyed by node identifier,
// plus a flag marking that an inserted path ends here.
type node struct {
	children map[string]*node
	terminal bool
}

func newNode() *node {
	return &node{children: make(map[string]*node)}
}

// Trie stores path sequences for uniqueness filtering.
// The zero value is not usable; call New.
type Trie struct {
	root *node
}

// New returns an empty Trie.
func New() *Trie {
	return &Trie{root: newNode()}
}

// Insert adds path to the trie, marking its final node terminal.
// Inserting the same sequence twice is a no-op. Empty paths are ignored.
func (t *Trie) Insert(path []string) {
	if len(path) == 0 {
		return
	}
	cur := t.root
	for _, id := range path {
		next, ok := cur.children[id]
		if !ok {
			next = newNode()
			cur.children[id] = next
		}
		cur = next
	}
	cur.terminal = true
}

// traverseFrame pairs a tree node with the partial path that reached it.
type traverseFrame struct {
	n    *node
	path []string
}

// Paths recovers every unique complete path: sequences whose final node is
// terminal and childless. Order is unstable. See the package documentation
// for the prefix-shadowing consequence of this definition.
func (t *Trie) Paths() [][]string {
	var out [][]string
	stack := []traverseFrame{{n: t.root, path: nil}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.n.terminal && len(f.n.children) == 0 {
			out = append(out, f.path)
			continue
		}
		for id, child := range f.n.children {
			// Full-slice expression forces a copy on append, so sibling
			// frames never alias each other's backing arrays.
			ext := append(f.path[:len(f.path):len(f.path)], id)
			stack = append(stack, traverseFrame{n: child, path: ext})
		}
	}

	return out
}
