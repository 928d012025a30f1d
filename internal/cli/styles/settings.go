package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/void-browser/void/internal/domain/entity"
)

// SettingsRenderer renders the settings document for `void settings`.
type SettingsRenderer struct {
	theme *Theme
}

// NewSettingsRenderer creates a new settings renderer with the given theme.
func NewSettingsRenderer(theme *Theme) *SettingsRenderer {
	return &SettingsRenderer{theme: theme}
}

// RenderSettings renders every key of s. exists reports whether the file
// is on disk; otherwise the values shown are the defaults.
func (r *SettingsRenderer) RenderSettings(path string, s entity.Settings, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Normal

	source := r.theme.Badge.Render("file")
	if !exists {
		source = r.theme.BadgeMuted.Render("defaults")
	}

	rows := []struct{ key, value string }{
		{"sidebar_width", strconv.Itoa(s.SidebarWidth)},
		{"engine", s.Engine},
		{"homepage", string(s.Homepage)},
		{"homepage_url", s.HomepageURL},
		{"tracker", r.onOff(s.Tracker)},
		{"dnt", r.onOff(s.DNT)},
		{"auto_collapse", r.onOff(s.AutoCollapse)},
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row.key))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s %s\n\n", iconStyle.Render(IconConfig), keyStyle.Render(path), source)
	for _, row := range rows {
		value := row.value
		if value == "" {
			value = keyStyle.Render("(empty)")
		} else {
			value = valStyle.Render(value)
		}
		fmt.Fprintf(&sb, "%s %s  %s\n",
			iconStyle.Render(IconCursor),
			keyStyle.Render(fmt.Sprintf("%-*s", width, row.key)),
			value,
		)
	}

	return r.theme.Box.Render(strings.TrimRight(sb.String(), "\n"))
}

func (r *SettingsRenderer) onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// RenderPath renders the settings file location.
func (r *SettingsRenderer) RenderPath(path string) string {
	return r.theme.Normal.Render(path)
}

// RenderError renders an error message.
func (r *SettingsRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Settings error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
