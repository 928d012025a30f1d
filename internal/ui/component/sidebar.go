package component

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/void-browser/void/internal/application/port"
	"github.com/void-browser/void/internal/domain/entity"
	"github.com/void-browser/void/internal/ui/theme"
)

// Sidebar is the vertical tab list on the left of the window.
type Sidebar struct {
	root   *gtk.Box
	list   *gtk.Box
	scroll *gtk.ScrolledWindow
	width  int

	onEnter func()
	onLeave func()
}

var _ port.Sidebar = (*Sidebar)(nil)

// NewSidebar creates an empty sidebar at width.
func NewSidebar(width int) *Sidebar {
	s := &Sidebar{
		root:   gtk.NewBox(gtk.OrientationVertical, 0),
		list:   gtk.NewBox(gtk.OrientationVertical, 0),
		scroll: gtk.NewScrolledWindow(),
	}
	s.root.AddCSSClass(theme.ClassSidebar)
	s.root.SetVExpand(true)
	s.root.SetHExpand(false)

	s.scroll.SetPolicy(gtk.PolicyNever, gtk.PolicyAutomatic)
	s.scroll.SetVExpand(true)
	s.scroll.SetChild(s.list)
	s.root.Append(s.scroll)

	motion := gtk.NewEventControllerMotion()
	motion.ConnectEnter(func(_, _ float64) {
		if s.onEnter != nil {
			s.onEnter()
		}
	})
	motion.ConnectLeave(func() {
		if s.onLeave != nil {
			s.onLeave()
		}
	})
	s.root.AddController(motion)

	s.SetWidth(width)
	return s
}

// Widget returns the sidebar root.
func (s *Sidebar) Widget() gtk.Widgetter { return s.root }

// SetHoverHandlers sets pointer enter and leave callbacks.
func (s *Sidebar) SetHoverHandlers(onEnter, onLeave func()) {
	s.onEnter = onEnter
	s.onLeave = onLeave
}

func (s *Sidebar) AddEntry(title string, cb port.TabEntryCallbacks) port.TabEntryView {
	entry := NewTabEntry(title, cb)
	s.list.Append(entry.Widget())
	return entry
}

func (s *Sidebar) RemoveEntry(view port.TabEntryView) {
	if entry, ok := view.(*TabEntry); ok {
		s.list.Remove(entry.Widget())
	}
}

// SetWidth resizes the sidebar; widths below the collapsed width are raised to it.
func (s *Sidebar) SetWidth(width int) {
	s.width = max(width, entity.CollapsedSidebarWidth)
	s.root.SetSizeRequest(s.width, -1)
}

func (s *Sidebar) Width() int { return s.width }
