package theme

import "strings"

// CSS class names shared with the widgets.
const (
	ClassWindow       = "void-window"
	ClassTitleStrip   = "void-titlebar"
	ClassTitle        = "void-title"
	ClassNavButton    = "void-nav-button"
	ClassWindowButton = "void-window-button"
	ClassCloseWindow  = "void-close-window"
	ClassURLBar       = "void-urlbar"
	ClassSidebar      = "void-sidebar"
	ClassTabEntry     = "void-tab"
	ClassTabActive    = "void-tab-active"
	ClassTabCompact   = "void-tab-compact"
	ClassTabClose     = "void-tab-close"
)

// GenerateCSS creates the GTK4 stylesheet for p.
func GenerateCSS(p Palette) string {
	var sb strings.Builder

	sb.WriteString("/* Theme colors */\n")
	sb.WriteString(p.ToCSSVars())
	sb.WriteString("\n")

	sb.WriteString(`.void-window {
  background-color: @void_window;
  color: @void_text;
}

.void-titlebar {
  background-color: @void_toolbar;
  padding: 0 8px;
  min-height: 36px;
}

.void-title {
  font-family: "Segoe UI", sans-serif;
  font-weight: bold;
  font-size: 10pt;
  color: @void_text;
  margin-right: 8px;
}

.void-nav-button, .void-window-button {
  background: none;
  border: none;
  box-shadow: none;
  color: @void_text;
  min-width: 28px;
  min-height: 28px;
  border-radius: 4px;
}

.void-nav-button:hover, .void-window-button:hover {
  background-color: @void_hover;
}

.void-close-window:hover {
  background-color: @void_danger;
}

.void-urlbar {
  background-color: @void_window;
  color: @void_text;
  border: 1px solid @void_hover;
  border-radius: 6px;
  min-height: 26px;
}

.void-sidebar {
  background-color: @void_window;
  border-right: 1px solid @void_toolbar;
}

.void-tab {
  padding: 6px 8px;
  border-radius: 6px;
  margin: 2px 6px;
  color: @void_muted;
}

.void-tab:hover, .void-tab-active {
  background-color: @void_hover;
  color: @void_text;
}

.void-tab-compact {
  padding: 6px 0;
}

.void-tab-close {
  background: none;
  border: none;
  box-shadow: none;
  min-width: 18px;
  min-height: 18px;
  padding: 0;
  color: @void_muted;
}

.void-tab-close:hover {
  color: @void_text;
}
`)
	return sb.String()
}
