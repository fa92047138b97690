// Package core provides fundamental types and utilities shared by the game and
// its host. It contains no external dependencies (especially no Bubble Tea) to
// keep game logic pure and testable.
package core

// Rect represents an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned bounding box in world units. Y grows downwards.
type Box struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// OverlapsX reports whether the horizontal extents of two boxes intersect.
// Touching edges do not overlap.
func (b Box) OverlapsX(other Box) bool {
	return b.X < other.Right() && b.Right() > other.X
}

// Intersects returns true if this box overlaps with another (standard AABB test).
func (b Box) Intersects(other Box) bool {
	return b.OverlapsX(other) && b.Y < other.Bottom() && b.Bottom() > other.Y
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
