// Package entity defines domain entities for the browser.
package entity

// Point is a pointer position in global (screen) coordinates.
type Point struct {
	X, Y float64
}

// Sub returns the delta p - o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Rect represents the window's position and size.
type Rect struct {
	X, Y int // Top-left position
	W, H int // Width and height
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= float64(r.X) && p.X < float64(r.Right()) &&
		p.Y >= float64(r.Y) && p.Y < float64(r.Bottom())
}
