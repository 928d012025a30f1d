// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (WebKit, GTK, etc.).
package port

import "context"

// LoadEvent represents page load state transitions.
type LoadEvent int

const (
	// LoadStarted indicates navigation has begun.
	LoadStarted LoadEvent = iota
	// LoadRedirected indicates a redirect occurred.
	LoadRedirected
	// LoadCommitted indicates content is being received.
	LoadCommitted
	// LoadFinished indicates the page has fully loaded.
	LoadFinished
)

// String returns a human-readable representation of the load event.
func (e LoadEvent) String() string {
	switch e {
	case LoadStarted:
		return "started"
	case LoadRedirected:
		return "redirected"
	case LoadCommitted:
		return "committed"
	case LoadFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Favicon is a page icon in the toolkit's image type (a gdk.Paintabler for
// GTK). Use cases pass it through untouched.
type Favicon any

// SurfaceCallbacks defines callback handlers for surface events.
// Implementations invoke these on the main thread.
type SurfaceCallbacks struct {
	OnTitleChanged func(title string)
	OnURIChanged   func(uri string)
	// OnIconChanged delivers the page favicon, nil when it has none.
	OnIconChanged func(icon Favicon)
	OnLoadChanged func(event LoadEvent)
}

// Surface is one tab's web rendering surface.
type Surface interface {
	LoadURI(uri string)
	URI() string
	Title() string

	GoBack()
	GoForward()
	Reload()

	// SetCallbacks replaces the event callbacks. nil clears them.
	SetCallbacks(cb *SurfaceCallbacks)
	// Detach stops any load in progress and clears callbacks.
	Detach()
	// Destroy releases the surface. It must not be used afterwards.
	Destroy()
	IsDestroyed() bool
}

// SurfaceFactory creates surfaces bound to the shared browsing profile.
type SurfaceFactory interface {
	Create(ctx context.Context) (Surface, error)
}
