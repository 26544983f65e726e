package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDocumentPath(t *testing.T) {
	t.Run("フラグが最優先されること", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "/env/config.json")

		path, err := ResolveDocumentPath("/flag/config.json")
		require.NoError(t, err)
		assert.Equal(t, filepath.Clean("/flag/config.json"), path)
	})

	t.Run("環境変数が使われること", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "/env/config.json")

		path, err := ResolveDocumentPath("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Clean("/env/config.json"), path)
	})

	t.Run("デフォルトはホームディレクトリ配下", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		t.Setenv("HOME", "/home/tester")

		path, err := ResolveDocumentPath("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/home/tester", ".config", "OpenFit", "config.json"), path)
	})
}
