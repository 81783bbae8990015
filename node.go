package lexicon

// Node is a single node of the prefix tree. It owns an ordered collection
// of child nodes, unique and ascending by character, plus a flag marking
// whether the path from the root down to it spells a complete word.
type Node struct {
	value    byte
	children []*Node
	word     bool
}

// Value returns the character this node represents. The root carries a
// zero sentinel that never takes part in comparisons.
func (n *Node) Value() byte { return n.value }

// IsWord reports whether the path ending at this node is a stored word.
func (n *Node) IsWord() bool { return n.word }

// SetIsWord marks or unmarks the node as the end of a word. It has no
// other side effect.
func (n *Node) SetIsWord(word bool) { n.word = word }

// indexOf returns the position of the first child whose character is >= c,
// which doubles as the insertion point on a miss. The branching factor is
// bounded by the alphabet, so a linear scan is adequate.
func (n *Node) indexOf(c byte) int {
	i := 0
	for i < len(n.children) && n.children[i].value < c {
		i++
	}
	return i
}

// Child returns the child keyed by c, if present. It never mutates the tree.
func (n *Node) Child(c byte) (*Node, bool) {
	i := n.indexOf(c)
	if i < len(n.children) && n.children[i].value == c {
		return n.children[i], true
	}
	return nil, false
}

// HasChild reports whether a child keyed by c exists.
func (n *Node) HasChild(c byte) bool {
	_, ok := n.Child(c)
	return ok
}

// AddChild returns the child keyed by c, creating it first if it does not
// exist. A new child is inserted at the position that keeps the children
// sorted, so iteration order stays ascending without ever re-sorting.
func (n *Node) AddChild(c byte) *Node {
	i := n.indexOf(c)
	if i < len(n.children) && n.children[i].value == c {
		return n.children[i]
	}
	child := &Node{value: c}
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
	return child
}

// Children returns the direct children in ascending character order. The
// slice is a fresh copy on every call, so a caller can hold one across
// later insertions.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}
