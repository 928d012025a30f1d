// Package theme provides GTK CSS styling for UI components.
package theme

import (
	"fmt"
	"strings"
)

// Palette holds semantic color tokens for theming.
type Palette struct {
	Window  string // Window and sidebar background
	Toolbar string // Title strip background
	Hover   string // Hovered and active rows
	Text    string
	Muted   string
	Danger  string // Close button hover
}

// DefaultPalette returns Void's dark palette.
func DefaultPalette() Palette {
	return Palette{
		Window:  "#2b2b2b",
		Toolbar: "#1e1e1e",
		Hover:   "#3c3c3c",
		Text:    "#ffffff",
		Muted:   "#9a9a9a",
		Danger:  "#c42b1c",
	}
}

// ToCSSVars renders the palette as GTK @define-color rules.
func (p Palette) ToCSSVars() string {
	var sb strings.Builder
	for _, c := range []struct{ name, value string }{
		{"void_window", p.Window},
		{"void_toolbar", p.Toolbar},
		{"void_hover", p.Hover},
		{"void_text", p.Text},
		{"void_muted", p.Muted},
		{"void_danger", p.Danger},
	} {
		fmt.Fprintf(&sb, "@define-color %s %s;\n", c.name, c.value)
	}
	return sb.String()
}
