// Package geometry provides the rectangle math used by collision detection.
// It is deliberately independent of any rendering toolkit: callers supply
// screen-space rectangles and pointer coordinates, nothing more.
package geometry

// Point is a position in screen space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle in screen space.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the right edge coordinate.
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Bottom returns the bottom edge coordinate.
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{
		X: r.Left + r.Width/2,
		Y: r.Top + r.Height/2,
	}
}

// VerticalMid returns the vertical midpoint coordinate. A pointer below this
// line means "insert after" during hover resolution.
func (r Rect) VerticalMid() float64 {
	return r.Top + r.Height/2
}

// Contains reports whether the point lies within the rectangle, edges
// inclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right() &&
		p.Y >= r.Top && p.Y <= r.Bottom()
}

// Intersects reports whether two rectangles overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.Left < o.Right() && o.Left < r.Right() &&
		r.Top < o.Bottom() && o.Top < r.Bottom()
}

// DistanceSq returns the squared distance between two points. Squared
// distance preserves ordering, so closest-center comparisons skip the sqrt.
func DistanceSq(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
