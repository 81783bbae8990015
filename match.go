package lexicon

// Match returns every stored word matching pattern. Patterns combine
// literal characters with three wildcards, consumed left to right:
//
//	_  exactly one character, any value
//	?  zero or one character
//	*  zero or more characters
//
// Any other pattern character matches itself; there is no invalid
// pattern. The walk explores the cross product of pattern positions and
// tree positions, so patterns heavy on ? and * fan out combinatorially.
// That cost is accepted rather than bounded.
func (lx *Lexicon) Match(pattern string) []string {
	// ? and * can reach the same terminal node along different branch
	// choices, so hits are deduplicated.
	seen := make(map[string]struct{})
	var out []string
	var walk func(n *Node, prefix, pattern string)
	walk = func(n *Node, prefix, pattern string) {
		if len(pattern) == 0 {
			if n.IsWord() {
				if _, dup := seen[prefix]; !dup {
					seen[prefix] = struct{}{}
					out = append(out, prefix)
				}
			}
			return
		}
		rest := pattern[1:]
		switch pattern[0] {
		case '_':
			for _, child := range n.children {
				walk(child, prefix+string(child.value), rest)
			}
		case '?':
			walk(n, prefix, rest)
			for _, child := range n.children {
				walk(child, prefix+string(child.value), rest)
			}
		case '*':
			walk(n, prefix, rest)
			for _, child := range n.children {
				// pattern does not advance: * keeps consuming
				walk(child, prefix+string(child.value), pattern)
			}
		default:
			if child, ok := n.Child(pattern[0]); ok {
				walk(child, prefix+string(child.value), rest)
			}
		}
	}
	walk(lx.root, "", pattern)
	return out
}
