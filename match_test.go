package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	t.Run("underscore consumes exactly one character", func(t *testing.T) {
		lx := New()
		lx.AddAll("cat", "car", "can", "dog")
		assert.ElementsMatch(t, []string{"cat", "car", "can"}, lx.Match("ca_"))
		assert.Empty(t, lx.Match("ca__"))
	})

	t.Run("question mark consumes zero or one", func(t *testing.T) {
		lx := New()
		lx.AddAll("cat", "car", "can", "dog")
		assert.Equal(t, []string{"cat"}, lx.Match("c?t"))

		lx.Add("ct")
		assert.ElementsMatch(t, []string{"cat", "ct"}, lx.Match("c?t"))
	})

	t.Run("star consumes zero or more", func(t *testing.T) {
		lx := New()
		lx.AddAll("cat", "car", "can", "dog")
		assert.Equal(t, []string{"dog"}, lx.Match("*og"))
		assert.ElementsMatch(t, []string{"can", "car", "cat", "dog"}, lx.Match("*"))
		assert.ElementsMatch(t, []string{"can", "car", "cat"}, lx.Match("c*"))
		assert.ElementsMatch(t, []string{"can", "car", "cat"}, lx.Match("*a*"))
	})

	t.Run("star in the middle", func(t *testing.T) {
		lx := New()
		lx.AddAll("dog", "dg", "drag", "debug", "dig")
		assert.ElementsMatch(t, []string{"dog", "dg", "drag", "debug", "dig"}, lx.Match("d*g"))
		assert.Empty(t, lx.Match("d*x"))
	})

	t.Run("duplicate branch choices collapse to one hit", func(t *testing.T) {
		lx := New()
		lx.Add("banana")
		assert.Equal(t, []string{"banana"}, lx.Match("*a*"))
		assert.Equal(t, []string{"banana"}, lx.Match("**"))
		assert.Equal(t, []string{"banana"}, lx.Match("?*banana"))
	})

	t.Run("literal pattern is exact membership", func(t *testing.T) {
		lx := New()
		lx.AddAll("cat", "cater")
		assert.Equal(t, []string{"cat"}, lx.Match("cat"))
		assert.Empty(t, lx.Match("ca"))
		assert.Empty(t, lx.Match("bat"))
	})

	t.Run("unrecognized characters are literals", func(t *testing.T) {
		lx := New()
		lx.AddAll("no-op", "noop")
		assert.Equal(t, []string{"no-op"}, lx.Match("no-op"))
		assert.ElementsMatch(t, []string{"no-op", "noop"}, lx.Match("no*op"))
	})

	t.Run("empty pattern matches only the empty word", func(t *testing.T) {
		lx := New()
		lx.Add("cat")
		assert.Empty(t, lx.Match(""))
		lx.Add("")
		assert.Equal(t, []string{""}, lx.Match(""))
	})

	t.Run("removed words do not match", func(t *testing.T) {
		lx := New()
		lx.AddAll("cat", "car")
		lx.Remove("car")
		assert.Equal(t, []string{"cat"}, lx.Match("ca_"))
	})
}
