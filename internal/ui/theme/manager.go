package theme

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/void-browser/void/internal/logging"
)

// Manager installs the application stylesheet on a display.
type Manager struct {
	palette     Palette
	cssProvider *gtk.CSSProvider
}

// NewManager creates a manager for palette.
func NewManager(palette Palette) *Manager {
	return &Manager{palette: palette}
}

// ApplyToDisplay loads the generated CSS for the display.
func (m *Manager) ApplyToDisplay(ctx context.Context, display *gdk.Display) {
	log := logging.FromContext(ctx)

	if display == nil {
		log.Warn().Msg("cannot apply theme: display is nil")
		return
	}

	if m.cssProvider == nil {
		m.cssProvider = gtk.NewCSSProvider()
	}
	m.cssProvider.LoadFromString(GenerateCSS(m.palette))
	gtk.StyleContextAddProviderForDisplay(display, m.cssProvider, gtk.STYLE_PROVIDER_PRIORITY_APPLICATION)

	log.Debug().Msg("theme CSS applied to display")
}
