package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/void-browser/void/internal/cli"
)

type fakePaths struct {
	root string
	fail error
}

func (p fakePaths) dir(name string) (string, error) {
	if p.fail != nil {
		return "", p.fail
	}
	return filepath.Join(p.root, name), nil
}

func (p fakePaths) ConfigDir() (string, error)       { return p.dir("config") }
func (p fakePaths) DataDir() (string, error)         { return p.dir("data") }
func (p fakePaths) CacheDir() (string, error)        { return p.dir("cache") }
func (p fakePaths) ProfileDataDir() (string, error)  { return p.dir("data/profile") }
func (p fakePaths) ProfileCacheDir() (string, error) { return p.dir("cache/profile") }
func (p fakePaths) FilterStoreDir() (string, error)  { return p.dir("cache/filters") }
func (p fakePaths) DownloadDir() (string, error)     { return p.dir("downloads") }

func TestPrepareStartup(t *testing.T) {
	root := t.TempDir()
	install := t.TempDir()
	t.Setenv("VOID_INSTALL_DIR", install)

	settingsPath := filepath.Join(root, "settings.json")
	require.NoError(t, os.WriteFile(settingsPath, []byte(`{"sidebar_width": 250}`), 0o644))
	app, err := cli.NewApp(cli.Options{SettingsPath: settingsPath})
	require.NoError(t, err)

	res, err := prepareStartup(context.Background(), app, fakePaths{root: root})
	require.NoError(t, err)

	assert.Equal(t, 250, res.settings.SidebarWidth)
	assert.Equal(t, install, res.installDir)
	for _, dir := range []string{"config", "data/profile", "cache/profile", "cache/filters"} {
		assert.DirExists(t, filepath.Join(root, dir))
	}
}

func TestPrepareStartup_DirectoryFailure(t *testing.T) {
	t.Setenv("VOID_INSTALL_DIR", t.TempDir())
	app, err := cli.NewApp(cli.Options{SettingsPath: filepath.Join(t.TempDir(), "s.json")})
	require.NoError(t, err)

	_, err = prepareStartup(context.Background(), app, fakePaths{fail: errors.New("no home")})
	assert.EqualError(t, err, "no home")
}

func TestFormatRlimit(t *testing.T) {
	assert.Equal(t, "1024", formatRlimit(1024))
}
