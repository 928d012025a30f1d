package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/void-browser/void/internal/cli"
	"github.com/void-browser/void/internal/domain/build"
)

// execute runs the root command with args and returns stdout and the exit code.
func execute(t *testing.T, args ...string) (string, int) {
	t.Helper()
	options = cli.Options{}
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		runGUI = nil
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	code := Execute()
	return out.String(), code
}

func TestRoot_PassesURLToGUI(t *testing.T) {
	settings := filepath.Join(t.TempDir(), "settings.json")

	var gotURL string
	var gotApp *cli.App
	SetGUIRunner(func(a *cli.App, initialURL string) int {
		gotApp = a
		gotURL = initialURL
		return 3
	})

	_, code := execute(t, "--settings", settings, "example.com")

	assert.Equal(t, 3, code)
	assert.Equal(t, "example.com", gotURL)
	require.NotNil(t, gotApp)
	assert.Equal(t, settings, gotApp.Store.Path())
}

func TestRoot_NoURLOpensHome(t *testing.T) {
	called := false
	SetGUIRunner(func(_ *cli.App, initialURL string) int {
		called = true
		assert.Empty(t, initialURL)
		return 0
	})

	_, code := execute(t, "--settings", filepath.Join(t.TempDir(), "s.json"))

	assert.Zero(t, code)
	assert.True(t, called)
}

func TestRoot_RejectsExtraArgs(t *testing.T) {
	SetGUIRunner(func(*cli.App, string) int { return 0 })

	_, code := execute(t, "--settings", filepath.Join(t.TempDir(), "s.json"), "a.com", "b.com")
	assert.Equal(t, 1, code)
}

func TestSettingsPath(t *testing.T) {
	settings := filepath.Join(t.TempDir(), "settings.json")

	out, code := execute(t, "settings", "path", "--settings", settings)

	assert.Zero(t, code)
	assert.Equal(t, settings, strings.TrimSpace(out))
}

func TestSettingsShow_FillsDefaults(t *testing.T) {
	settings := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(settings, []byte(`{"sidebar_width": 333}`), 0o644))

	out, code := execute(t, "settings", "show", "--settings", settings)

	assert.Zero(t, code)
	assert.Contains(t, out, "333")
	assert.Contains(t, out, "auto_collapse")
	assert.Contains(t, out, "engine")
}

func TestSettingsSchema_IsJSON(t *testing.T) {
	out, code := execute(t, "settings", "schema", "--settings", filepath.Join(t.TempDir(), "s.json"))
	require.Zero(t, code)

	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &schema))
	assert.Contains(t, out, "sidebar_width")
}

func TestVersion(t *testing.T) {
	SetBuildInfo(build.Info{Version: "v1.2.3", Commit: "deadbeef"})
	t.Cleanup(func() { SetBuildInfo(build.Info{}) })

	out, code := execute(t, "version", "--settings", filepath.Join(t.TempDir(), "s.json"))

	assert.Zero(t, code)
	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, "deadbeef")
}
