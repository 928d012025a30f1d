// Package component provides reusable GTK UI components.
package component

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/diamondburned/gotk4/pkg/pango"

	"github.com/void-browser/void/internal/application/port"
	"github.com/void-browser/void/internal/domain/entity"
	"github.com/void-browser/void/internal/ui/theme"
)

const (
	iconPlaceholder = "web-browser-symbolic"
	faviconSize     = 16
)

// TabEntry is one row of the sidebar: icon, title and close button.
type TabEntry struct {
	row   *gtk.Box
	icon  *gtk.Image
	label *gtk.Label
	close *gtk.Button

	compact bool
}

var _ port.TabEntryView = (*TabEntry)(nil)

// NewTabEntry creates a row; cb fires on click and close.
func NewTabEntry(title string, cb port.TabEntryCallbacks) *TabEntry {
	e := &TabEntry{
		row:   gtk.NewBox(gtk.OrientationHorizontal, 8),
		icon:  gtk.NewImageFromIconName(iconPlaceholder),
		label: gtk.NewLabel(entity.TruncateTitle(title, entity.MaxTitleRunes)),
		close: gtk.NewButtonFromIconName("window-close-symbolic"),
	}

	e.row.AddCSSClass(theme.ClassTabEntry)
	e.row.SetFocusable(false)

	e.icon.SetPixelSize(faviconSize)

	e.label.SetXAlign(0)
	e.label.SetHExpand(true)
	e.label.SetEllipsize(pango.EllipsizeEnd)
	e.label.SetMaxWidthChars(entity.MaxTitleRunes)

	// Prevent focus stealing from the web view.
	e.close.SetFocusOnClick(false)
	e.close.SetCanFocus(false)
	e.close.AddCSSClass(theme.ClassTabClose)
	e.close.SetTooltipText("Close tab")

	e.row.Append(e.icon)
	e.row.Append(e.label)
	e.row.Append(e.close)

	click := gtk.NewGestureClick()
	click.SetButton(1)
	click.ConnectReleased(func(_ int, _, _ float64) {
		if cb.OnSelect != nil {
			cb.OnSelect()
		}
	})
	e.row.AddController(click)

	middle := gtk.NewGestureClick()
	middle.SetButton(2)
	middle.ConnectReleased(func(_ int, _, _ float64) {
		if cb.OnClose != nil {
			cb.OnClose()
		}
	})
	e.row.AddController(middle)

	e.close.ConnectClicked(func() {
		if cb.OnClose != nil {
			cb.OnClose()
		}
	})

	return e
}

// Widget returns the row for packing.
func (e *TabEntry) Widget() gtk.Widgetter { return e.row }

func (e *TabEntry) SetTitle(title string) {
	e.label.SetText(entity.TruncateTitle(title, entity.MaxTitleRunes))
	e.row.SetTooltipText(title)
}

// SetIcon shows the page favicon. Values that are not paintables fall back
// to the placeholder.
func (e *TabEntry) SetIcon(icon port.Favicon) {
	if paintable, ok := icon.(gdk.Paintabler); ok && paintable != nil {
		e.icon.SetFromPaintable(paintable)
		return
	}
	e.icon.SetFromIconName(iconPlaceholder)
}

func (e *TabEntry) SetActive(active bool) {
	if active {
		e.row.AddCSSClass(theme.ClassTabActive)
	} else {
		e.row.RemoveCSSClass(theme.ClassTabActive)
	}
}

// SetCompact hides the title and close button for the collapsed sidebar.
func (e *TabEntry) SetCompact(compact bool) {
	if e.compact == compact {
		return
	}
	e.compact = compact
	e.label.SetVisible(!compact)
	e.close.SetVisible(!compact)
	if compact {
		e.row.AddCSSClass(theme.ClassTabCompact)
		e.row.SetHAlign(gtk.AlignCenter)
	} else {
		e.row.RemoveCSSClass(theme.ClassTabCompact)
		e.row.SetHAlign(gtk.AlignFill)
	}
}
