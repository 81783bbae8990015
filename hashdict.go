package lexicon

import (
	"sort"
	"strings"
)

// HashDict is a map-backed Dictionary. Every query is a linear scan over
// the stored words, so it only suits small sets; it exists as a plain
// reference implementation of the contract for comparison against the
// tree. Unlike Lexicon it forgets prefixes once their last word is
// removed, since there is no tree to leave a dead branch in.
type HashDict struct {
	words map[string]struct{}
}

var _ Dictionary = (*HashDict)(nil)

// NewHashDict creates an empty hash-backed dictionary.
func NewHashDict() *HashDict {
	return &HashDict{words: make(map[string]struct{})}
}

// Add inserts word and reports whether it was newly added.
func (d *HashDict) Add(word string) bool {
	if _, ok := d.words[word]; ok {
		return false
	}
	d.words[word] = struct{}{}
	return true
}

// AddAll inserts every word and returns how many were newly added.
func (d *HashDict) AddAll(words ...string) int {
	added := 0
	for _, w := range words {
		if d.Add(w) {
			added++
		}
	}
	return added
}

// Remove deletes word and reports whether it was present.
func (d *HashDict) Remove(word string) bool {
	if _, ok := d.words[word]; !ok {
		return false
	}
	delete(d.words, word)
	return true
}

// Contains reports whether word is stored.
func (d *HashDict) Contains(word string) bool {
	_, ok := d.words[word]
	return ok
}

// ContainsPrefix reports whether any stored word starts with prefix.
func (d *HashDict) ContainsPrefix(prefix string) bool {
	if prefix == "" {
		return true
	}
	for w := range d.words {
		if strings.HasPrefix(w, prefix) {
			return true
		}
	}
	return false
}

// Len returns the number of stored words.
func (d *HashDict) Len() int { return len(d.words) }

// Words returns the stored words in ascending order.
func (d *HashDict) Words() []string {
	out := make([]string, 0, len(d.words))
	for w := range d.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Suggest returns every stored word of target's length within maxDistance
// substitutions of it, by scanning the whole set.
func (d *HashDict) Suggest(target string, maxDistance int) []string {
	var out []string
	for w := range d.words {
		if len(w) != len(target) {
			continue
		}
		mismatches := 0
		for i := 0; i < len(w); i++ {
			if w[i] != target[i] {
				mismatches++
			}
		}
		if mismatches <= maxDistance {
			out = append(out, w)
		}
	}
	sort.Strings(out)
	return out
}

// Match returns every stored word matching the wildcard pattern, by
// scanning the whole set.
func (d *HashDict) Match(pattern string) []string {
	var out []string
	for w := range d.words {
		if matchWord(pattern, w) {
			out = append(out, w)
		}
	}
	sort.Strings(out)
	return out
}

// matchWord checks a single word against the wildcard pattern with plain
// recursion over both strings; same semantics as Lexicon.Match, no tree.
func matchWord(pattern, word string) bool {
	if pattern == "" {
		return word == ""
	}
	rest := pattern[1:]
	switch pattern[0] {
	case '_':
		return word != "" && matchWord(rest, word[1:])
	case '?':
		if matchWord(rest, word) {
			return true
		}
		return word != "" && matchWord(rest, word[1:])
	case '*':
		if matchWord(rest, word) {
			return true
		}
		return word != "" && matchWord(pattern, word[1:])
	default:
		return word != "" && word[0] == pattern[0] && matchWord(rest, word[1:])
	}
}
