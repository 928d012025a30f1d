package window

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/void-browser/void/internal/domain/entity"
	"github.com/void-browser/void/internal/logging"
)

// chrome turns pointer input on the frameless window into move and resize
// gestures and hands them to the compositor. The window's size request keeps
// compositor resizes at or above the minimum size.
type chrome struct {
	ctx        context.Context
	win        *gtk.ApplicationWindow
	titleStrip *gtk.Box
	tracker    *entity.ChromeTracker
	cursor     string
}

func attachChrome(ctx context.Context, win *gtk.ApplicationWindow, titleStrip *gtk.Box) *chrome {
	c := &chrome{
		ctx:        ctx,
		win:        win,
		titleStrip: titleStrip,
		tracker:    entity.NewChromeTracker(),
		cursor:     entity.EdgeNone.Cursor(),
	}

	// Edges are checked before any child sees the press.
	edges := gtk.NewGestureClick()
	edges.SetButton(1)
	edges.SetPropagationPhase(gtk.PhaseCapture)
	edges.ConnectPressed(func(_ int, x, y float64) {
		c.press(&edges.GestureSingle, x, y, false)
	})
	edges.ConnectReleased(func(_ int, _, _ float64) { c.tracker.Release() })
	win.AddController(edges)

	// Buttons in the strip claim their own presses, so this only sees the
	// empty strip and the title label.
	drag := gtk.NewGestureClick()
	drag.SetButton(1)
	drag.ConnectPressed(func(n int, x, y float64) {
		if n == 2 {
			c.toggleMaximize()
			return
		}
		wx, wy, ok := titleStrip.TranslateCoordinates(win, x, y)
		if !ok {
			return
		}
		c.press(&drag.GestureSingle, wx, wy, true)
	})
	drag.ConnectReleased(func(_ int, _, _ float64) { c.tracker.Release() })
	titleStrip.AddController(drag)

	motion := gtk.NewEventControllerMotion()
	motion.ConnectMotion(c.motion)
	motion.ConnectLeave(func() { c.setCursor(entity.EdgeNone.Cursor()) })
	win.AddController(motion)

	return c
}

func (c *chrome) rect() entity.Rect {
	return entity.Rect{W: c.win.Width(), H: c.win.Height()}
}

func (c *chrome) press(gesture *gtk.GestureSingle, x, y float64, inTitleStrip bool) {
	if c.win.IsMaximized() {
		return
	}
	local := entity.Point{X: x, Y: y}
	kind := c.tracker.Press(local, local, c.rect(), inTitleStrip)
	if kind == entity.GestureNone {
		return
	}
	gesture.SetState(gtk.EventSequenceClaimed)

	// The compositor owns the grab after the handoff and no release reaches us.
	defer c.tracker.Release()

	toplevel := c.toplevel()
	device := gesture.CurrentEventDevice()
	if toplevel == nil || device == nil {
		logging.FromContext(c.ctx).Debug().
			Bool("toplevel", toplevel != nil).
			Msg("cannot hand gesture to compositor, dropping it")
		return
	}

	button := int(gesture.CurrentButton())
	timestamp := gesture.CurrentEventTime()
	switch kind {
	case entity.GestureDrag:
		toplevel.BeginMove(device, button, x, y, timestamp)
	case entity.GestureResize:
		toplevel.BeginResize(surfaceEdge(c.tracker.Edge()), device, button, x, y, timestamp)
	}
}

func (c *chrome) motion(x, y float64) {
	rect := c.rect()
	c.setCursor(c.tracker.Cursor(entity.Point{X: x, Y: y}, rect.W, rect.H))
}

func (c *chrome) setCursor(name string) {
	if name == c.cursor {
		return
	}
	c.cursor = name
	c.win.SetCursorFromName(name)
}

func (c *chrome) toggleMaximize() {
	if c.win.IsMaximized() {
		c.win.Unmaximize()
	} else {
		c.win.Maximize()
	}
}

func (c *chrome) toplevel() *gdk.Toplevel {
	surface := c.win.Surface()
	if surface == nil {
		return nil
	}
	// The surface of a GtkWindow is always a GdkToplevel.
	return &gdk.Toplevel{Surface: *gdk.BaseSurface(surface)}
}

func surfaceEdge(e entity.Edge) gdk.SurfaceEdge {
	switch e {
	case entity.EdgeNorthWest:
		return gdk.SurfaceEdgeNorthWest
	case entity.EdgeNorth:
		return gdk.SurfaceEdgeNorth
	case entity.EdgeNorthEast:
		return gdk.SurfaceEdgeNorthEast
	case entity.EdgeEast:
		return gdk.SurfaceEdgeEast
	case entity.EdgeSouthEast:
		return gdk.SurfaceEdgeSouthEast
	case entity.EdgeSouth:
		return gdk.SurfaceEdgeSouth
	case entity.EdgeSouthWest:
		return gdk.SurfaceEdgeSouthWest
	default:
		return gdk.SurfaceEdgeWest
	}
}
