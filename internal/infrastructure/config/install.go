package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/void-browser/void/assets"
)

// InstallDirEnv overrides the directory bundled pages are loaded from.
const InstallDirEnv = "VOID_INSTALL_DIR"

// ResolveInstallDir returns the directory that local paths and the start page
// resolve against: $VOID_INSTALL_DIR, else the executable's directory when it
// ships void-hub, else the data directory holding a copy of the embedded page.
func ResolveInstallDir() (string, error) {
	exeDir := ""
	if exe, err := os.Executable(); err == nil {
		exeDir = filepath.Dir(exe)
	}
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return resolveInstallDir(os.Getenv(InstallDirEnv), exeDir, dataDir, assets.Materialize)
}

func resolveInstallDir(envDir, exeDir, dataDir string, materialize func(string) error) (string, error) {
	if envDir != "" {
		return filepath.Abs(envDir)
	}
	if exeDir != "" && hasStartPage(exeDir) {
		return exeDir, nil
	}
	if err := os.MkdirAll(dataDir, dirPerm); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	if err := materialize(dataDir); err != nil {
		return "", fmt.Errorf("install start page: %w", err)
	}
	return dataDir, nil
}

func hasStartPage(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(assets.StartPage)))
	return err == nil && !info.IsDir()
}
