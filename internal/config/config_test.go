package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "localhost:8080", cfg.Server.Addr())
		assert.False(t, cfg.Server.Debug)
		assert.Equal(t, 2, cfg.Lexicon.MaxDistance)
		assert.Empty(t, cfg.Lexicon.Wordlist)
	})

	t.Run("config file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
server:
  host: 0.0.0.0
  port: 9090
lexicon:
  wordlist: /usr/share/dict/words
  max_distance: 1
`), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "0.0.0.0:9090", cfg.Server.Addr())
		assert.Equal(t, "/usr/share/dict/words", cfg.Lexicon.Wordlist)
		assert.Equal(t, 1, cfg.Lexicon.MaxDistance)
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server:\n  port: -1\n"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)

		require.NoError(t, os.WriteFile(path, []byte("lexicon:\n  max_distance: -2\n"), 0o644))
		_, err = Load(path)
		assert.Error(t, err)
	})
}
