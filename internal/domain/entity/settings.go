package entity

import "strings"

// HomepageMode selects what a new tab opens.
type HomepageMode string

const (
	// HomepageVoid opens the bundled start page.
	HomepageVoid HomepageMode = "void"
	// HomepageURL opens Settings.HomepageURL.
	HomepageURL HomepageMode = "url"
	// HomepageCustom opens Settings.HomepageURL, set from the start page's custom field.
	HomepageCustom HomepageMode = "custom"
)

// Valid reports whether m is a known homepage mode.
func (m HomepageMode) Valid() bool {
	switch m {
	case HomepageVoid, HomepageURL, HomepageCustom:
		return true
	}
	return false
}

const (
	MinSidebarWidth     = 160
	MaxSidebarWidth     = 400
	DefaultSidebarWidth = 220
	// CollapsedSidebarWidth is the sidebar width while auto-collapsed.
	CollapsedSidebarWidth = 56
	DefaultSearchEngine   = "https://duckduckgo.com/?q=%s"
)

// Settings is the persisted browser settings document.
type Settings struct {
	// SidebarWidth is the expanded sidebar width in pixels (160-400).
	SidebarWidth int `mapstructure:"sidebar_width" json:"sidebar_width" jsonschema:"minimum=160,maximum=400,default=220"`
	// Engine is the search URL template, %s is replaced by the query.
	Engine string `mapstructure:"engine" json:"engine" jsonschema:"default=https://duckduckgo.com/?q=%s"`
	// Homepage selects the page new tabs open.
	Homepage HomepageMode `mapstructure:"homepage" json:"homepage" jsonschema:"enum=void,enum=url,enum=custom,default=void"`
	// HomepageURL is used when Homepage is url or custom.
	HomepageURL string `mapstructure:"homepage_url" json:"homepage_url"`
	// Tracker enables the tracker filter.
	Tracker bool `mapstructure:"tracker" json:"tracker" jsonschema:"default=true"`
	// DNT exposes the Do-Not-Track preference to pages.
	DNT bool `mapstructure:"dnt" json:"dnt"`
	// AutoCollapse shrinks the sidebar to icons when the pointer leaves it.
	AutoCollapse bool `mapstructure:"auto_collapse" json:"auto_collapse"`
}

// DefaultSettings returns the settings used for missing keys.
func DefaultSettings() Settings {
	return Settings{
		SidebarWidth: DefaultSidebarWidth,
		Engine:       DefaultSearchEngine,
		Homepage:     HomepageVoid,
		HomepageURL:  "",
		Tracker:      true,
		DNT:          false,
		AutoCollapse: false,
	}
}

// ClampSidebarWidth bounds w to [MinSidebarWidth, MaxSidebarWidth].
func ClampSidebarWidth(w int) int {
	if w < MinSidebarWidth {
		return MinSidebarWidth
	}
	if w > MaxSidebarWidth {
		return MaxSidebarWidth
	}
	return w
}

// Normalize clamps the width and replaces unknown homepage modes.
// The engine template is kept exactly as stored.
func (s Settings) Normalize() Settings {
	s.SidebarWidth = ClampSidebarWidth(s.SidebarWidth)
	s.Homepage = HomepageMode(strings.ToLower(strings.TrimSpace(string(s.Homepage))))
	if !s.Homepage.Valid() {
		s.Homepage = HomepageVoid
	}
	s.HomepageURL = strings.TrimSpace(s.HomepageURL)
	return s
}

// HomeTarget returns the URL new tabs open, or "" when the bundled start
// page should be used.
func (s Settings) HomeTarget() string {
	if s.Homepage == HomepageVoid {
		return ""
	}
	return s.HomepageURL
}
