// Package assets holds files embedded into the void binary.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// BridgeScript installs window.__voidBridge and window.void in bundled pages.
//
//go:embed bridge.js
var BridgeScript string

// VoidHub contains the bundled start page.
//
//go:embed void-hub/*
var VoidHub embed.FS

// StartPage is the start page path relative to the install directory.
const StartPage = "void-hub/index.html"

// Materialize writes the bundled start page under dir, overwriting stale copies.
func Materialize(dir string) error {
	return fs.WalkDir(VoidHub, "void-hub", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := VoidHub.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read embedded %s: %w", path, err)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", target, err)
		}
		return nil
	})
}
