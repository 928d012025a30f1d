// Package url resolves user input and local asset paths into loadable URLs.
package url

import (
	"regexp"
	"strings"
)

var schemePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*://`)

// opaqueSchemes are schemes written without "//".
var opaqueSchemes = []string{"about:", "data:", "javascript:"}

// HasScheme reports whether input starts with a scheme prefix.
func HasScheme(input string) bool {
	if schemePattern.MatchString(input) {
		return true
	}
	lower := strings.ToLower(input)
	for _, prefix := range opaqueSchemes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// IsLocalPath reports whether input is a path to resolve against the install directory.
func IsLocalPath(input string) bool {
	return strings.HasPrefix(input, "/") ||
		strings.HasPrefix(input, "./") ||
		strings.HasPrefix(input, "../")
}

// Normalize prepends https:// to input lacking a scheme.
// Input with a scheme is returned unchanged. No host validation is done.
func Normalize(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if HasScheme(input) {
		return input
	}
	return "https://" + input
}

// ResolveInput turns URL bar text into a URL to load.
// Empty input yields "". file:// URLs are kept verbatim, paths starting
// with /, ./ or ../ resolve under root, everything else goes through Normalize.
func ResolveInput(input, root string) (string, error) {
	input = strings.TrimSpace(input)
	switch {
	case input == "":
		return "", nil
	case strings.HasPrefix(strings.ToLower(input), "file://"):
		return input, nil
	case IsLocalPath(input):
		return ResolveLocalPath(root, input)
	default:
		return Normalize(input), nil
	}
}
