package url

import (
	"errors"
	"fmt"
	neturl "net/url"
	"path/filepath"
	"strings"
)

// ErrPathEscapesRoot is returned when a relative path resolves outside its root.
var ErrPathEscapesRoot = errors.New("path escapes install directory")

// ResolveLocalPath resolves rel against root and returns a file:// URL.
// A leading "/" is taken as root-relative. The resolved path must stay inside root.
func ResolveLocalPath(root, rel string) (string, error) {
	path, err := ContainedPath(root, rel)
	if err != nil {
		return "", err
	}
	return FileURL(path), nil
}

// ContainedPath joins rel onto root and rejects results outside root.
func ContainedPath(root, rel string) (string, error) {
	if root == "" {
		return "", fmt.Errorf("resolve %q: empty root", rel)
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve root %q: %w", root, err)
	}

	rel = strings.TrimLeft(filepath.FromSlash(rel), string(filepath.Separator))
	joined := filepath.Join(absRoot, rel)

	inside, err := filepath.Rel(absRoot, joined)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", rel, err)
	}
	if inside == ".." || strings.HasPrefix(inside, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("resolve %q: %w", rel, ErrPathEscapesRoot)
	}
	return joined, nil
}

// FileURL converts an absolute filesystem path into a file:// URL.
func FileURL(path string) string {
	u := neturl.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}
