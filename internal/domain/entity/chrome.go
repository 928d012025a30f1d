package entity

// Edge identifies the window edge or corner grabbed by a resize gesture.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeNorthWest
	EdgeNorth
	EdgeNorthEast
	EdgeEast
	EdgeSouthEast
	EdgeSouth
	EdgeSouthWest
	EdgeWest
)

const (
	// ResizeMargin is the distance from a window edge that grabs a resize.
	ResizeMargin = 8
	// MinWindowWidth and MinWindowHeight bound any interactive resize.
	MinWindowWidth  = 800
	MinWindowHeight = 500
)

// Cursor returns the CSS cursor name shown while hovering the edge.
func (e Edge) Cursor() string {
	switch e {
	case EdgeNorthWest:
		return "nw-resize"
	case EdgeNorth:
		return "n-resize"
	case EdgeNorthEast:
		return "ne-resize"
	case EdgeEast:
		return "e-resize"
	case EdgeSouthEast:
		return "se-resize"
	case EdgeSouth:
		return "s-resize"
	case EdgeSouthWest:
		return "sw-resize"
	case EdgeWest:
		return "w-resize"
	default:
		return "default"
	}
}

func (e Edge) String() string {
	if e == EdgeNone {
		return "none"
	}
	return e.Cursor()
}

func (e Edge) west() bool  { return e == EdgeNorthWest || e == EdgeWest || e == EdgeSouthWest }
func (e Edge) east() bool  { return e == EdgeNorthEast || e == EdgeEast || e == EdgeSouthEast }
func (e Edge) north() bool { return e == EdgeNorthWest || e == EdgeNorth || e == EdgeNorthEast }
func (e Edge) south() bool { return e == EdgeSouthWest || e == EdgeSouth || e == EdgeSouthEast }

// HitTest returns the edge under a pointer at window-local (x, y) for a
// window of the given size. Corners win over edges.
func HitTest(x, y float64, width, height int) Edge {
	if x < 0 || y < 0 || x > float64(width) || y > float64(height) {
		return EdgeNone
	}
	west := x < ResizeMargin
	east := x >= float64(width-ResizeMargin)
	north := y < ResizeMargin
	south := y >= float64(height-ResizeMargin)

	switch {
	case north && west:
		return EdgeNorthWest
	case north && east:
		return EdgeNorthEast
	case south && west:
		return EdgeSouthWest
	case south && east:
		return EdgeSouthEast
	case north:
		return EdgeNorth
	case south:
		return EdgeSouth
	case west:
		return EdgeWest
	case east:
		return EdgeEast
	default:
		return EdgeNone
	}
}

// GestureKind is the kind of pointer gesture in progress.
type GestureKind int

const (
	GestureNone GestureKind = iota
	GestureDrag
	GestureResize
)

// ChromeTracker follows drag and resize gestures on a frameless window.
// Only one gesture is active at a time.
type ChromeTracker struct {
	kind GestureKind

	dragAnchor *Point

	edge        Edge
	startPoint  Point
	startRect   Rect
	currentRect Rect
}

// NewChromeTracker creates an idle tracker.
func NewChromeTracker() *ChromeTracker {
	return &ChromeTracker{}
}

// Gesture returns the active gesture kind.
func (c *ChromeTracker) Gesture() GestureKind { return c.kind }

// Edge returns the edge of the active resize, or EdgeNone.
func (c *ChromeTracker) Edge() Edge { return c.edge }

// DragAnchor returns the last pointer position of an active drag, or nil.
func (c *ChromeTracker) DragAnchor() *Point {
	if c.dragAnchor == nil {
		return nil
	}
	p := *c.dragAnchor
	return &p
}

// Press starts a gesture. local is the pointer in window coordinates,
// global in screen coordinates, rect the current window geometry.
// inTitleStrip reports whether the press landed on the draggable title strip.
// The returned kind is GestureNone when the press starts nothing.
func (c *ChromeTracker) Press(local, global Point, rect Rect, inTitleStrip bool) GestureKind {
	if c.kind != GestureNone {
		return GestureNone
	}
	if edge := HitTest(local.X, local.Y, rect.W, rect.H); edge != EdgeNone {
		c.kind = GestureResize
		c.edge = edge
		c.startPoint = global
		c.startRect = rect
		c.currentRect = rect
		return c.kind
	}
	if inTitleStrip {
		c.kind = GestureDrag
		anchor := global
		c.dragAnchor = &anchor
		return c.kind
	}
	return GestureNone
}

// Motion advances the active gesture to the pointer at global.
// For a drag it returns the window moved by the delta since the last
// motion; for a resize the rectangle recomputed from the anchor geometry.
// ok is false when no gesture is active.
func (c *ChromeTracker) Motion(global Point, rect Rect) (next Rect, ok bool) {
	switch c.kind {
	case GestureDrag:
		delta := global.Sub(*c.dragAnchor)
		anchor := global
		c.dragAnchor = &anchor
		return Rect{
			X: rect.X + int(delta.X),
			Y: rect.Y + int(delta.Y),
			W: rect.W,
			H: rect.H,
		}, true
	case GestureResize:
		c.currentRect = ResizeRect(c.startRect, c.edge, global.Sub(c.startPoint))
		return c.currentRect, true
	default:
		return rect, false
	}
}

// Release ends any active gesture.
func (c *ChromeTracker) Release() {
	c.kind = GestureNone
	c.dragAnchor = nil
	c.edge = EdgeNone
}

// Cursor returns the cursor name for a pointer hovering at local while no
// gesture is active. During a resize it keeps the resize cursor.
func (c *ChromeTracker) Cursor(local Point, width, height int) string {
	if c.kind == GestureResize {
		return c.edge.Cursor()
	}
	return HitTest(local.X, local.Y, width, height).Cursor()
}

// ResizeRect applies a pointer delta to start for the grabbed edge and
// clamps to the minimum window size, keeping the opposite edge fixed.
func ResizeRect(start Rect, edge Edge, delta Point) Rect {
	r := start
	dx, dy := int(delta.X), int(delta.Y)

	if edge.east() {
		r.W = max(start.W+dx, MinWindowWidth)
	}
	if edge.west() {
		r.W = max(start.W-dx, MinWindowWidth)
		r.X = start.Right() - r.W
	}
	if edge.south() {
		r.H = max(start.H+dy, MinWindowHeight)
	}
	if edge.north() {
		r.H = max(start.H-dy, MinWindowHeight)
		r.Y = start.Bottom() - r.H
	}
	return r
}
