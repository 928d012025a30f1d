package port

import (
	"context"

	"github.com/void-browser/void/internal/domain/entity"
)

// SettingsStore loads and persists the settings document.
type SettingsStore interface {
	// Load returns the stored settings, falling back to defaults.
	Load(ctx context.Context) entity.Settings
	// Save overwrites the stored document.
	Save(ctx context.Context, s entity.Settings) error
	Path() string
}

// TrackerToggle switches the tracker filter on or off.
type TrackerToggle interface {
	SetEnabled(enabled bool)
	Enabled() bool
}

// EventEmitter pushes named events to page script.
type EventEmitter interface {
	Emit(ctx context.Context, name string, detail any) error
}
