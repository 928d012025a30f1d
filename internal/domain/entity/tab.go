package entity

import (
	"fmt"
	"unicode/utf8"
)

// TabID uniquely identifies a tab for its whole lifetime.
// Callbacks capture the ID, never the position, so closing a tab
// never requires rebinding the callbacks of the remaining ones.
type TabID string

// MaxTitleRunes is the length at which sidebar titles are truncated.
const MaxTitleRunes = 20

// DefaultTabLabel is shown until the page reports a title.
const DefaultTabLabel = "New Tab"

// Tab represents a browser tab in the sidebar.
type Tab struct {
	ID       TabID
	Title    string // Page title, falls back to Label then URI
	Label    string // Label given at creation time
	URI      string
	HasIcon  bool
	Position int // Position in the sidebar (0-indexed)
}

// NewTab creates a tab with the given ID and creation label.
func NewTab(id TabID, label string) *Tab {
	if label == "" {
		label = DefaultTabLabel
	}
	return &Tab{ID: id, Label: label}
}

// DisplayTitle returns the title shown in the sidebar, truncated to MaxTitleRunes.
func (t *Tab) DisplayTitle() string {
	title := t.Title
	if title == "" {
		title = t.Label
	}
	if title == "" {
		title = t.URI
	}
	if title == "" {
		title = DefaultTabLabel
	}
	return TruncateTitle(title, MaxTitleRunes)
}

// TruncateTitle cuts s to at most max runes.
func TruncateTitle(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}

// TabList manages an ordered collection of tabs.
type TabList struct {
	Tabs        []*Tab
	ActiveTabID TabID
	nextID      uint64
}

// NewTabList creates an empty tab list.
func NewTabList() *TabList {
	return &TabList{
		Tabs: make([]*Tab, 0),
	}
}

// NextID issues a new stable tab identifier.
func (tl *TabList) NextID() TabID {
	tl.nextID++
	return TabID(fmt.Sprintf("tab-%d", tl.nextID))
}

// Add appends a tab to the list.
func (tl *TabList) Add(tab *Tab) {
	tab.Position = len(tl.Tabs)
	tl.Tabs = append(tl.Tabs, tab)
	if tl.ActiveTabID == "" {
		tl.ActiveTabID = tab.ID
	}
}

// Remove removes a tab by ID and reindexes positions.
// When the active tab is removed the tab now at min(index, count-1) becomes active.
func (tl *TabList) Remove(id TabID) bool {
	for i, tab := range tl.Tabs {
		if tab.ID != id {
			continue
		}
		tl.Tabs = append(tl.Tabs[:i], tl.Tabs[i+1:]...)
		for j := i; j < len(tl.Tabs); j++ {
			tl.Tabs[j].Position = j
		}
		if len(tl.Tabs) == 0 {
			tl.ActiveTabID = ""
			return true
		}
		if tl.ActiveTabID == id {
			tl.ActiveTabID = tl.Tabs[min(i, len(tl.Tabs)-1)].ID
		}
		return true
	}
	return false
}

// Find returns a tab by ID.
func (tl *TabList) Find(id TabID) *Tab {
	for _, tab := range tl.Tabs {
		if tab.ID == id {
			return tab
		}
	}
	return nil
}

// At returns the tab at index, or nil when out of range.
func (tl *TabList) At(index int) *Tab {
	if index < 0 || index >= len(tl.Tabs) {
		return nil
	}
	return tl.Tabs[index]
}

// IndexOf returns the position of the tab, or -1.
func (tl *TabList) IndexOf(id TabID) int {
	for i, tab := range tl.Tabs {
		if tab.ID == id {
			return i
		}
	}
	return -1
}

// ActiveTab returns the currently active tab.
func (tl *TabList) ActiveTab() *Tab {
	return tl.Find(tl.ActiveTabID)
}

// ActiveIndex returns the position of the active tab, or -1.
func (tl *TabList) ActiveIndex() int {
	return tl.IndexOf(tl.ActiveTabID)
}

// IsActive reports whether id is the active tab.
func (tl *TabList) IsActive(id TabID) bool {
	return id != "" && tl.ActiveTabID == id
}

// Count returns the number of tabs.
func (tl *TabList) Count() int {
	return len(tl.Tabs)
}
