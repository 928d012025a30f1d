package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/void-browser/void/internal/cli/styles"
	"github.com/void-browser/void/internal/domain/build"
	"github.com/void-browser/void/internal/domain/entity"
)

func TestSettingsRenderer_RenderSettings(t *testing.T) {
	r := styles.NewSettingsRenderer(styles.NewTheme())
	s := entity.DefaultSettings()
	s.SidebarWidth = 300
	s.Tracker = false

	out := r.RenderSettings("/tmp/void/settings.json", s, true)

	for _, want := range []string{"settings.json", "sidebar_width", "300", "engine", "tracker", "off", "auto_collapse", "file"} {
		assert.Contains(t, out, want)
	}
}

func TestSettingsRenderer_MarksDefaults(t *testing.T) {
	r := styles.NewSettingsRenderer(styles.NewTheme())

	out := r.RenderSettings("/nowhere/settings.json", entity.DefaultSettings(), false)
	assert.Contains(t, out, "defaults")
}

func TestSettingsRenderer_RenderError(t *testing.T) {
	r := styles.NewSettingsRenderer(styles.NewTheme())

	out := r.RenderError(errors.New("permission denied"))
	require.Contains(t, out, "Settings error")
	require.Contains(t, out, "permission denied")
}

func TestVersionRenderer_Render(t *testing.T) {
	r := styles.NewVersionRenderer(styles.NewTheme())

	out := r.Render(build.Info{Version: "v0.3.0", Commit: "abc123", BuildDate: "2026-10-01", GoVersion: "go1.25.3"})
	for _, want := range []string{"v0.3.0", "abc123", "2026-10-01", "go1.25.3", build.RepoURL()} {
		assert.Contains(t, out, want)
	}
}
