package port

import "time"

// TabEntryCallbacks are invoked by a sidebar entry on user interaction.
type TabEntryCallbacks struct {
	OnSelect func()
	OnClose  func()
}

// TabEntryView is one row in the sidebar tab list.
type TabEntryView interface {
	SetTitle(title string)
	// SetIcon shows icon, or the placeholder when icon is nil.
	SetIcon(icon Favicon)
	SetActive(active bool)
	// SetCompact hides the label and close button.
	SetCompact(compact bool)
}

// Sidebar is the vertical tab list.
type Sidebar interface {
	AddEntry(title string, cb TabEntryCallbacks) TabEntryView
	RemoveEntry(entry TabEntryView)
	SetWidth(width int)
	Width() int
}

// URLBar is the address entry.
type URLBar interface {
	SetText(text string)
	Text() string
}

// SurfaceHost stacks tab surfaces and shows one at a time.
type SurfaceHost interface {
	Attach(key string, s Surface)
	Present(key string)
	Remove(key string)
}

// Animator drives a width animation on the main loop.
// step receives each intermediate width; done runs once the target is reached.
type Animator interface {
	Animate(from, to int, duration time.Duration, step func(width int), done func()) (cancel func())
}

// Scheduler runs f once after d on the main loop.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) (cancel func())
}
