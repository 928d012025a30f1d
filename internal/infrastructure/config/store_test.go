package config

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/void-browser/void/internal/domain/entity"
)

func newTestStore(t *testing.T, content string) *SettingsStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	store, err := NewSettingsStore(path)
	require.NoError(t, err)
	return store
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	store := newTestStore(t, "")
	assert.Equal(t, entity.DefaultSettings(), store.Load(context.Background()))
}

func TestLoad_PartialDocumentsMergeOverDefaults(t *testing.T) {
	tests := []struct {
		name    string
		content string
		mutate  func(*entity.Settings)
	}{
		{
			name:    "empty object",
			content: `{}`,
			mutate:  func(*entity.Settings) {},
		},
		{
			name:    "width only",
			content: `{"sidebar_width": 300}`,
			mutate:  func(s *entity.Settings) { s.SidebarWidth = 300 },
		},
		{
			name:    "booleans only",
			content: `{"tracker": false, "dnt": true, "auto_collapse": true}`,
			mutate: func(s *entity.Settings) {
				s.Tracker = false
				s.DNT = true
				s.AutoCollapse = true
			},
		},
		{
			name:    "homepage pair",
			content: `{"homepage": "url", "homepage_url": "https://start.example"}`,
			mutate: func(s *entity.Settings) {
				s.Homepage = entity.HomepageURL
				s.HomepageURL = "https://start.example"
			},
		},
		{
			name:    "unknown keys ignored",
			content: `{"engine": "https://s.example/?q=%s", "theme": "dark"}`,
			mutate:  func(s *entity.Settings) { s.Engine = "https://s.example/?q=%s" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t, tt.content)
			want := entity.DefaultSettings()
			tt.mutate(&want)
			assert.Equal(t, want, store.Load(context.Background()))
		})
	}
}

func TestLoad_Normalizes(t *testing.T) {
	store := newTestStore(t, `{"sidebar_width": 10, "homepage": "nowhere"}`)
	got := store.Load(context.Background())
	assert.Equal(t, entity.MinSidebarWidth, got.SidebarWidth)
	assert.Equal(t, entity.HomepageVoid, got.Homepage)

	store = newTestStore(t, `{"sidebar_width": 4000}`)
	assert.Equal(t, entity.MaxSidebarWidth, store.Load(context.Background()).SidebarWidth)
}

func TestLoad_MalformedFileYieldsDefaults(t *testing.T) {
	for _, content := range []string{`{"sidebar_width": `, `not json at all`, `{"sidebar_width": "wide"}`} {
		store := newTestStore(t, content)
		assert.Equal(t, entity.DefaultSettings(), store.Load(context.Background()), content)
	}
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Setenv("VOID_SIDEBAR_WIDTH", "333")
	t.Setenv("VOID_TRACKER", "false")

	store := newTestStore(t, `{"dnt": true}`)
	got := store.Load(context.Background())
	assert.Equal(t, 333, got.SidebarWidth)
	assert.False(t, got.Tracker)
	assert.True(t, got.DNT)
}

func TestSave_WritesWholeDocument(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "void")
	store, err := NewSettingsStore(filepath.Join(dir, "settings.json"))
	require.NoError(t, err)

	s := entity.DefaultSettings()
	s.SidebarWidth = 999
	s.Homepage = entity.HomepageCustom
	s.HomepageURL = "https://custom.example"
	require.NoError(t, store.Save(context.Background(), s))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Len(t, raw, 7)
	assert.EqualValues(t, 400, raw["sidebar_width"])
	assert.Equal(t, "custom", raw["homepage"])
	assert.True(t, strings.HasPrefix(string(data), "{\n  \"sidebar_width\""))

	reloaded := store.Load(context.Background())
	assert.Equal(t, 400, reloaded.SidebarWidth)
	assert.Equal(t, "https://custom.example", reloaded.HomepageURL)
	assert.Equal(t, reloaded, store.Current())
}

func TestSave_ErrorWhenDirectoryUnwritable(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	store, err := NewSettingsStore(filepath.Join(blocker, "settings.json"))
	require.NoError(t, err)
	assert.Error(t, store.Save(context.Background(), entity.DefaultSettings()))
}

func TestReload_SkipsOwnWrites(t *testing.T) {
	store := newTestStore(t, "")
	log := testLogger()
	require.NoError(t, store.Save(context.Background(), entity.DefaultSettings()))

	_, changed := store.reload(log)
	assert.False(t, changed)

	external := `{"sidebar_width": 250, "auto_collapse": true}`
	require.NoError(t, os.WriteFile(store.Path(), []byte(external), 0o644))

	got, changed := store.reload(log)
	require.True(t, changed)
	assert.Equal(t, 250, got.SidebarWidth)
	assert.True(t, got.AutoCollapse)

	_, changed = store.reload(log)
	assert.False(t, changed, "identical content is not a change")
}

func TestReload_IgnoresMalformedChange(t *testing.T) {
	store := newTestStore(t, `{"sidebar_width": 250}`)
	store.Load(context.Background())

	require.NoError(t, os.WriteFile(store.Path(), []byte(`{`), 0o644))
	_, changed := store.reload(testLogger())
	assert.False(t, changed)
	assert.Equal(t, 250, store.Current().SidebarWidth)
}

func TestGetXDGDirs(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", "/x/config")
	t.Setenv("XDG_DATA_HOME", "/x/data")
	t.Setenv("XDG_CACHE_HOME", "/x/cache")

	dirs, err := GetXDGDirs()
	require.NoError(t, err)
	assert.Equal(t, "/x/config/void", dirs.ConfigHome)
	assert.Equal(t, "/x/data/void", dirs.DataHome)
	assert.Equal(t, "/x/cache/void", dirs.CacheHome)

	file, err := GetSettingsFile()
	require.NoError(t, err)
	assert.Equal(t, "/x/config/void/settings.json", file)

	profile, err := GetProfileDataDir()
	require.NoError(t, err)
	assert.Equal(t, "/x/data/void/profile", profile)
}

func TestGetXDGDirs_DevMode(t *testing.T) {
	t.Setenv("ENV", "dev")
	cwd, err := os.Getwd()
	require.NoError(t, err)

	dirs, err := GetXDGDirs()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, ".dev", "void"), dirs.ConfigHome)
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, "Void Browser Settings", schema["title"])

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{"sidebar_width", "engine", "homepage", "homepage_url", "tracker", "dnt", "auto_collapse"} {
		assert.Contains(t, props, key)
	}
	width := props["sidebar_width"].(map[string]any)
	assert.EqualValues(t, 160, width["minimum"])
	assert.EqualValues(t, 400, width["maximum"])
}
