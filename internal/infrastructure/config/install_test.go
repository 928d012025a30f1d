package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/void-browser/void/assets"
)

func TestResolveInstallDir(t *testing.T) {
	noMaterialize := func(string) error {
		t.Fatal("materialize should not run")
		return nil
	}

	t.Run("env override wins", func(t *testing.T) {
		env := t.TempDir()
		dir, err := resolveInstallDir(env, t.TempDir(), t.TempDir(), noMaterialize)
		require.NoError(t, err)
		assert.Equal(t, env, dir)
	})

	t.Run("executable dir with start page", func(t *testing.T) {
		exeDir := t.TempDir()
		page := filepath.Join(exeDir, filepath.FromSlash(assets.StartPage))
		require.NoError(t, os.MkdirAll(filepath.Dir(page), 0o755))
		require.NoError(t, os.WriteFile(page, []byte("<html></html>"), 0o644))

		dir, err := resolveInstallDir("", exeDir, t.TempDir(), noMaterialize)
		require.NoError(t, err)
		assert.Equal(t, exeDir, dir)
	})

	t.Run("falls back to embedded copy", func(t *testing.T) {
		dataDir := filepath.Join(t.TempDir(), "void")
		dir, err := resolveInstallDir("", t.TempDir(), dataDir, assets.Materialize)
		require.NoError(t, err)
		assert.Equal(t, dataDir, dir)
		assert.True(t, hasStartPage(dataDir))
	})

	t.Run("materialize failure", func(t *testing.T) {
		_, err := resolveInstallDir("", "", t.TempDir(), func(string) error {
			return errors.New("read-only")
		})
		assert.ErrorContains(t, err, "install start page")
	})
}
