package lexicon

// Suggest returns every stored word of the same length as target whose
// character-by-character mismatch count against target is at most
// maxDistance. Distance counts substitutions only, so every candidate has
// exactly target's length; insertions and deletions never qualify.
//
// The search is a pruned depth-first walk: a subtree is abandoned as soon
// as the mismatch count of the prefix alone exceeds maxDistance. Without
// the cut-off the walk would degenerate into a full enumeration.
//
// Each trie path is unique, so the result is duplicate-free by
// construction. It happens to come out in ascending order because the
// children are walked ascending, but callers should treat it as a set.
func (lx *Lexicon) Suggest(target string, maxDistance int) []string {
	var out []string
	var walk func(n *Node, prefix string, mismatches int)
	walk = func(n *Node, prefix string, mismatches int) {
		if mismatches > maxDistance {
			return
		}
		if len(prefix) == len(target) {
			if n.IsWord() {
				out = append(out, prefix)
			}
			return
		}
		for _, child := range n.children {
			d := mismatches
			if child.value != target[len(prefix)] {
				d++
			}
			walk(child, prefix+string(child.value), d)
		}
	}
	walk(lx.root, "", 0)
	return out
}
