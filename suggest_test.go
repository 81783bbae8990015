package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	t.Run("one substitution, same length only", func(t *testing.T) {
		lx := New()
		lx.AddAll("cat", "bat", "cot", "dog")
		assert.ElementsMatch(t, []string{"cat", "bat", "cot"}, lx.Suggest("cat", 1))
	})

	t.Run("distance zero is exact membership", func(t *testing.T) {
		lx := New()
		lx.AddAll("cat", "bat")
		assert.Equal(t, []string{"cat"}, lx.Suggest("cat", 0))
		assert.Empty(t, lx.Suggest("cut", 0))
	})

	t.Run("length mismatches never qualify", func(t *testing.T) {
		lx := New()
		lx.AddAll("cat", "cats", "ca", "catalog")
		assert.Equal(t, []string{"cat"}, lx.Suggest("cat", 3))
	})

	t.Run("distance caps at the whole word", func(t *testing.T) {
		lx := New()
		lx.AddAll("cat", "dog", "pig")
		assert.ElementsMatch(t, []string{"cat", "dog", "pig"}, lx.Suggest("cow", 3))
	})

	t.Run("target absent from the lexicon", func(t *testing.T) {
		lx := New()
		lx.AddAll("cat", "bat")
		assert.ElementsMatch(t, []string{"cat", "bat"}, lx.Suggest("rat", 1))
	})

	t.Run("removed words are not suggested", func(t *testing.T) {
		lx := New()
		lx.AddAll("cat", "bat")
		lx.Remove("bat")
		assert.Equal(t, []string{"cat"}, lx.Suggest("cat", 1))
	})

	t.Run("empty lexicon", func(t *testing.T) {
		lx := New()
		assert.Empty(t, lx.Suggest("cat", 2))
	})

	t.Run("negative distance matches nothing", func(t *testing.T) {
		lx := New()
		lx.Add("cat")
		assert.Empty(t, lx.Suggest("cat", -1))
	})
}
