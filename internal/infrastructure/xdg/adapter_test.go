package xdg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_DownloadDir(t *testing.T) {
	adapter := New()

	t.Run("returns XDG_DOWNLOAD_DIR when set", func(t *testing.T) {
		t.Setenv("XDG_DOWNLOAD_DIR", "/custom/downloads")

		dir, err := adapter.DownloadDir()

		require.NoError(t, err)
		assert.Equal(t, "/custom/downloads", dir)
	})

	t.Run("falls back to ~/Downloads when XDG_DOWNLOAD_DIR not set", func(t *testing.T) {
		t.Setenv("XDG_DOWNLOAD_DIR", "")

		dir, err := adapter.DownloadDir()

		require.NoError(t, err)

		home, err := os.UserHomeDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "Downloads"), dir)
	})
}

func TestAdapter_ProfileDirs(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	t.Setenv("XDG_CACHE_HOME", "/xdg/cache")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")

	adapter := New()

	tests := []struct {
		name string
		fn   func() (string, error)
		want string
	}{
		{"config", adapter.ConfigDir, "/xdg/config/void"},
		{"data", adapter.DataDir, "/xdg/data/void"},
		{"cache", adapter.CacheDir, "/xdg/cache/void"},
		{"profile data", adapter.ProfileDataDir, "/xdg/data/void/profile"},
		{"profile cache", adapter.ProfileCacheDir, "/xdg/cache/void/profile"},
		{"filter store", adapter.FilterStoreDir, "/xdg/cache/void/filters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
