package model

// Point is a coordinate, in pixels: absolute screen space or
// display-local, depending on the caller (see Bounds.Local/Absolute).
type Point struct {
	X, Y float64
}

// Size is a width/height pair, in pixels.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle in pixel coordinates. Window frames
// read from and written to the platform are in absolute screen space.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x-coordinate of the rectangle's right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y-coordinate of the rectangle's bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the geometric center of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p falls within the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Bounds describes a display: its absolute origin, its full size, and the
// height of the menubar strip at the top (spec.md §3 Display). Size
// includes the menubar; callers subtract MenubarHeight themselves.
type Bounds struct {
	Origin        Point
	Size          Size
	MenubarHeight float64
}

// Width is a convenience accessor used throughout the reshuffle engine.
func (b Bounds) Width() float64 { return b.Size.W }

// Height is a convenience accessor used throughout the reshuffle engine.
func (b Bounds) Height() float64 { return b.Size.H }

// Local converts an absolute screen point into display-local coordinates
// by subtracting the display's origin (spec.md §4.3 update_frame).
func (b Bounds) Local(p Point) Point {
	return Point{X: p.X - b.Origin.X, Y: p.Y - b.Origin.Y}
}

// Absolute converts a display-local point back to absolute screen space.
func (b Bounds) Absolute(p Point) Point {
	return Point{X: p.X + b.Origin.X, Y: p.Y + b.Origin.Y}
}
