package cli

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/void-browser/void/internal/logging"
)

func TestNewApp_UsesSettingsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	app, err := NewApp(Options{SettingsPath: path})
	require.NoError(t, err)

	assert.Equal(t, path, app.Store.Path())
	assert.NotNil(t, app.Theme)
}

func TestNewApp_LogLevelFlagWinsOverEnv(t *testing.T) {
	t.Setenv("VOID_LOG_LEVEL", "error")

	app, err := NewApp(Options{SettingsPath: filepath.Join(t.TempDir(), "s.json"), LogLevel: "debug"})
	require.NoError(t, err)

	assert.Equal(t, zerolog.DebugLevel, logging.FromContext(app.Context()).GetLevel())
}

func TestNewApp_RejectsUnknownLogFormat(t *testing.T) {
	_, err := NewApp(Options{SettingsPath: filepath.Join(t.TempDir(), "s.json"), LogFormat: "xml"})
	assert.ErrorContains(t, err, "unknown log format")
}
