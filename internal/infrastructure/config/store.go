package config

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/void-browser/void/internal/application/port"
	"github.com/void-browser/void/internal/domain/entity"
	"github.com/void-browser/void/internal/logging"
)

// envPrefix is prepended to settings keys for environment overrides (VOID_SIDEBAR_WIDTH).
const envPrefix = "VOID"

// SettingsStore reads and writes the settings document as JSON.
// The in-memory document is guarded because the file watcher runs on its own goroutine.
type SettingsStore struct {
	path  string
	viper *viper.Viper

	mu        sync.RWMutex
	current   entity.Settings
	lastSaved []byte
	watching  bool
}

var _ port.SettingsStore = (*SettingsStore)(nil)

// NewSettingsStore creates a store for path, or for the XDG settings file when path is empty.
func NewSettingsStore(path string) (*SettingsStore, error) {
	if path == "" {
		p, err := GetSettingsFile()
		if err != nil {
			return nil, fmt.Errorf("failed to determine settings file: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		path = p
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve settings path %s: %w", path, err)
	}

	return &SettingsStore{
		path:    abs,
		viper:   newViper(abs),
		current: entity.DefaultSettings(),
	}, nil
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// setDefaults registers every key so missing keys and env overrides resolve.
func setDefaults(v *viper.Viper) {
	d := entity.DefaultSettings()
	v.SetDefault("sidebar_width", d.SidebarWidth)
	v.SetDefault("engine", d.Engine)
	v.SetDefault("homepage", string(d.Homepage))
	v.SetDefault("homepage_url", d.HomepageURL)
	v.SetDefault("tracker", d.Tracker)
	v.SetDefault("dnt", d.DNT)
	v.SetDefault("auto_collapse", d.AutoCollapse)
}

// Path returns the settings file location.
func (s *SettingsStore) Path() string { return s.path }

// Current returns the last loaded or saved document.
func (s *SettingsStore) Current() entity.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Load reads the settings file. Keys present in the file win over defaults;
// a missing, unreadable or malformed file yields defaults.
func (s *SettingsStore) Load(ctx context.Context) entity.Settings {
	log := logging.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.read(log)
	if err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("using default settings")
		settings = defaultsWithEnv()
	}
	s.current = settings

	log.Debug().
		Str("path", s.path).
		Int("sidebar_width", settings.SidebarWidth).
		Str("homepage", string(settings.Homepage)).
		Bool("tracker", settings.Tracker).
		Msg("settings loaded")
	return settings
}

// read must be called with s.mu held.
func (s *SettingsStore) read(log *zerolog.Logger) (entity.Settings, error) {
	if err := s.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return entity.Settings{}, fmt.Errorf("read %s: %w", s.path, err)
		}
		log.Debug().Str("path", s.path).Msg("settings file not found, using defaults")
	}

	var settings entity.Settings
	if err := s.viper.Unmarshal(&settings); err != nil {
		return entity.Settings{}, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return settings.Normalize(), nil
}

// defaultsWithEnv resolves defaults plus environment overrides without a file.
func defaultsWithEnv() entity.Settings {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	setDefaults(v)

	var settings entity.Settings
	if err := v.Unmarshal(&settings); err != nil {
		return entity.DefaultSettings()
	}
	return settings.Normalize()
}

// Save overwrites the settings file with the whole document.
func (s *SettingsStore) Save(ctx context.Context, settings entity.Settings) error {
	settings = settings.Normalize()

	data, err := Marshal(settings)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("write settings %s: %w", s.path, err)
	}
	s.current = settings
	s.lastSaved = data

	logging.FromContext(ctx).Debug().Str("path", s.path).Msg("settings saved")
	return nil
}

// Marshal encodes settings as indented JSON in field order.
func Marshal(settings entity.Settings) ([]byte, error) {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	return append(data, '\n'), nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Watch reloads the document when the file changes outside the browser and
// passes it to onChange. Writes made by Save are ignored. onChange runs on
// the watcher goroutine; callers re-post to the UI thread.
func (s *SettingsStore) Watch(ctx context.Context, onChange func(entity.Settings)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.watching {
		return nil
	}
	// viper watches the parent directory, which must exist.
	if err := os.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return fmt.Errorf("prepare settings directory: %w", err)
	}

	log := logging.FromContext(ctx)
	s.viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("settings file changed")

		next, changed := s.reload(log)
		if changed && onChange != nil {
			onChange(next)
		}
	})
	s.viper.WatchConfig()
	s.watching = true
	return nil
}

// reload re-reads the file after a change event. It reports false for
// events caused by Save and for unreadable files.
func (s *SettingsStore) reload(log *zerolog.Logger) (entity.Settings, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read changed settings")
		return entity.Settings{}, false
	}
	if s.isOwnWrite(data) {
		log.Debug().Msg("skipping reload (triggered by own Save)")
		return entity.Settings{}, false
	}

	settings, err := s.read(log)
	if err != nil {
		log.Warn().Err(err).Msg("ignoring malformed settings change")
		return entity.Settings{}, false
	}
	if settings == s.current {
		return settings, false
	}
	s.current = settings
	return settings, true
}

// isOwnWrite must be called with s.mu held.
func (s *SettingsStore) isOwnWrite(data []byte) bool {
	return s.lastSaved != nil && bytes.Equal(data, s.lastSaved)
}
