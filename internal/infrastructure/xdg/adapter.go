// Package xdg exposes the config package's directory helpers through port.XDGPaths.
package xdg

import (
	"os"
	"path/filepath"

	"github.com/void-browser/void/internal/application/port"
	"github.com/void-browser/void/internal/infrastructure/config"
)

// Adapter implements port.XDGPaths using config.GetXDGDirs().
type Adapter struct{}

// New creates a new XDG paths adapter.
func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) ConfigDir() (string, error) {
	return config.GetConfigDir()
}

func (a *Adapter) DataDir() (string, error) {
	return config.GetDataDir()
}

func (a *Adapter) CacheDir() (string, error) {
	return config.GetCacheDir()
}

func (a *Adapter) ProfileDataDir() (string, error) {
	return config.GetProfileDataDir()
}

func (a *Adapter) ProfileCacheDir() (string, error) {
	return config.GetProfileCacheDir()
}

func (a *Adapter) FilterStoreDir() (string, error) {
	return config.GetFilterStoreDir()
}

// DownloadDir returns $XDG_DOWNLOAD_DIR, falling back to ~/Downloads.
func (a *Adapter) DownloadDir() (string, error) {
	if dir := os.Getenv("XDG_DOWNLOAD_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Downloads"), nil
}

var _ port.XDGPaths = (*Adapter)(nil)
