// Package download holds filename rules for saving downloads.
package download

import (
	"fmt"
	"mime"
	"net/url"
	"path/filepath"
	"strings"
	"unicode"
)

// DefaultFilename is used when no valid filename can be determined.
const DefaultFilename = "download"

// maxFilenameBytes keeps names under the common 255-byte filesystem limit.
const maxFilenameBytes = 240

// SanitizeFilename reduces name to a safe base name.
// Directory components and control characters are removed.
func SanitizeFilename(name string) string {
	// filepath.Base only splits on the native separator.
	name = strings.ReplaceAll(name, "\\", "/")
	clean := filepath.Base(strings.TrimSpace(name))

	clean = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, clean)

	clean = strings.TrimLeft(clean, ".")
	if clean == "" || clean == "/" {
		return DefaultFilename
	}
	if len(clean) > maxFilenameBytes {
		ext := filepath.Ext(clean)
		if len(ext) > 16 {
			ext = ""
		}
		clean = truncateBytes(strings.TrimSuffix(clean, ext), maxFilenameBytes-len(ext)) + ext
	}
	return clean
}

func truncateBytes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !isRuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func isRuneStart(b byte) bool { return b&0xC0 != 0x80 }

// SuggestFilename picks the name offered in the save dialog.
// The server-suggested name wins, then the last URI path segment,
// and an extension is inferred from the MIME type when missing.
func SuggestFilename(suggested, uri, mimeType string) string {
	name := SanitizeFilename(suggested)
	if name == DefaultFilename && strings.TrimSpace(suggested) == "" {
		name = SanitizeFilename(filenameFromURI(uri))
	}
	if filepath.Ext(name) == "" {
		if ext := ExtensionFromMimeType(mimeType); ext != "" {
			name += ext
		}
	}
	return name
}

// preferredExtensions pins MIME types whose system extension list is
// ordered alphabetically (text/html would yield .ehtml).
var preferredExtensions = map[string]string{
	"text/html":                ".html",
	"text/plain":               ".txt",
	"text/xml":                 ".xml",
	"application/xhtml+xml":    ".xhtml",
	"image/jpeg":               ".jpg",
	"image/svg+xml":            ".svg",
	"audio/mpeg":               ".mp3",
	"video/mp4":                ".mp4",
	"application/octet-stream": ".bin",
}

// ExtensionFromMimeType returns a file extension for mimeType, or "".
// Parameters such as "; charset=binary" are ignored.
func ExtensionFromMimeType(mimeType string) string {
	if mimeType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil || mediaType == "" {
		return ""
	}
	if ext, ok := preferredExtensions[mediaType]; ok {
		return ext
	}
	exts, err := mime.ExtensionsByType(mediaType)
	if err != nil || len(exts) == 0 {
		return ""
	}
	return exts[0]
}

func filenameFromURI(uri string) string {
	if uri == "" {
		return ""
	}
	parsed, err := url.Parse(uri)
	if err != nil {
		return filepath.Base(uri)
	}
	base := filepath.Base(parsed.Path)
	if base == "." || base == "/" {
		return ""
	}
	return base
}

// UniqueFilename appends _(N) to filename until exists reports a free path in dir.
func UniqueFilename(dir, filename string, exists func(path string) bool) string {
	if !exists(filepath.Join(dir, filename)) {
		return filename
	}
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)
	for i := 1; i < 1000; i++ {
		candidate := fmt.Sprintf("%s_(%d)%s", base, i, ext)
		if !exists(filepath.Join(dir, candidate)) {
			return candidate
		}
	}
	return filename
}
