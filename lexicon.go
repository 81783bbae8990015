package lexicon

// Dictionary is the contract shared by every word store in this package.
// The trie-backed Lexicon is the primary implementation; HashDict
// satisfies the same contract with a flat map for comparison and
// cross-checking.
type Dictionary interface {
	Add(word string) bool
	AddAll(words ...string) int
	Remove(word string) bool
	Contains(word string) bool
	ContainsPrefix(prefix string) bool
	Len() int
	Words() []string
	Suggest(target string, maxDistance int) []string
	Match(pattern string) []string
}

// Lexicon is an in-memory word dictionary backed by a prefix tree. Words
// are compared byte-wise and are expected to be lowercased already; the
// loaders in this package take care of that for wordlist files.
//
// A Lexicon is not safe for concurrent use without external locking.
type Lexicon struct {
	root *Node
	size int
}

var _ Dictionary = (*Lexicon)(nil)

// New creates an empty lexicon.
func New() *Lexicon {
	return &Lexicon{root: &Node{}}
}

// Add inserts word, creating any missing nodes on the way down. It
// reports whether the word was newly added; adding a word that is already
// present is a no-op returning false.
func (lx *Lexicon) Add(word string) bool {
	node := lx.root
	for i := 0; i < len(word); i++ {
		node = node.AddChild(word[i])
	}
	if node.IsWord() {
		return false
	}
	node.SetIsWord(true)
	lx.size++
	return true
}

// AddAll inserts every word and returns how many were newly added.
func (lx *Lexicon) AddAll(words ...string) int {
	added := 0
	for _, w := range words {
		if lx.Add(w) {
			added++
		}
	}
	return added
}

// walk descends from the root following word one character per level and
// returns the final node, or nil if the path leaves the tree.
func (lx *Lexicon) walk(word string) *Node {
	node := lx.root
	for i := 0; i < len(word); i++ {
		next, ok := node.Child(word[i])
		if !ok {
			return nil
		}
		node = next
	}
	return node
}

// Remove clears word's terminal flag and reports whether the word was
// present. If any character on the path has no matching child the word
// cannot be stored, and nothing is touched. Nodes are never deleted, so a
// branch emptied by removals keeps existing as a prefix path.
func (lx *Lexicon) Remove(word string) bool {
	node := lx.walk(word)
	if node == nil || !node.IsWord() {
		return false
	}
	node.SetIsWord(false)
	lx.size--
	return true
}

// Contains reports whether word is stored in the lexicon.
func (lx *Lexicon) Contains(word string) bool {
	node := lx.walk(word)
	return node != nil && node.IsWord()
}

// ContainsPrefix reports whether prefix is the prefix of any path in the
// tree, stored word or not. The empty prefix is always present since the
// root is always reachable.
func (lx *Lexicon) ContainsPrefix(prefix string) bool {
	return lx.walk(prefix) != nil
}

// Len returns the number of stored words in O(1). The count is maintained
// incrementally by Add and Remove, never recomputed by traversal.
func (lx *Lexicon) Len() int { return lx.size }

// Words returns a snapshot of every stored word in ascending
// lexicographic order. Sortedness falls out of the children ordering: a
// pre-order walk that emits a terminal node before descending into its
// children visits words already sorted. Mutating the lexicon afterwards
// does not affect a slice that was already returned.
func (lx *Lexicon) Words() []string {
	words := make([]string, 0, lx.size)
	var walk func(n *Node, prefix string)
	walk = func(n *Node, prefix string) {
		if n.IsWord() {
			words = append(words, prefix)
		}
		for _, child := range n.children {
			walk(child, prefix+string(child.value))
		}
	}
	walk(lx.root, "")
	return words
}
