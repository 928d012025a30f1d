package ui

import (
	"context"

	"github.com/void-browser/void/internal/application/port"
	"github.com/void-browser/void/internal/domain/entity"
	"github.com/void-browser/void/internal/infrastructure/config"
	"github.com/void-browser/void/internal/infrastructure/filtering"
	"github.com/void-browser/void/internal/ui/theme"
)

// Dependencies holds everything the window needs that is prepared before
// GTK starts.
type Dependencies struct {
	Ctx        context.Context
	InitialURL string // URL to open on startup (optional)

	Store    *config.SettingsStore
	Settings entity.Settings

	// InstallDir roots the bundled pages and local path resolution.
	InstallDir string
	Paths      port.XDGPaths

	Tracker *filtering.TrackerFilter
	Theme   *theme.Manager
}

// Validate checks that all required dependencies are present.
func (d *Dependencies) Validate() error {
	if d.Ctx == nil {
		return ErrMissingDependency("Ctx")
	}
	if d.Store == nil {
		return ErrMissingDependency("Store")
	}
	if d.InstallDir == "" {
		return ErrMissingDependency("InstallDir")
	}
	if d.Paths == nil {
		return ErrMissingDependency("Paths")
	}
	if d.Tracker == nil {
		return ErrMissingDependency("Tracker")
	}
	if d.Theme == nil {
		return ErrMissingDependency("Theme")
	}
	return nil
}

// DependencyError represents a missing dependency error.
type DependencyError struct {
	Name string
}

func (e DependencyError) Error() string {
	return "missing required dependency: " + e.Name
}

// ErrMissingDependency creates an error for a missing dependency.
func ErrMissingDependency(name string) error {
	return DependencyError{Name: name}
}
