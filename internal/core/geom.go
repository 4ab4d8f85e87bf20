// Package core provides fundamental types and utilities shared by the game
// and the platform layer. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// Rect represents an axis-aligned bounding box used for collision detection.
// Coordinates are integer pixels in window space.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() int {
	return r.X
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() int {
	return r.Y
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// CenterX returns the x-coordinate of the center.
func (r Rect) CenterX() int {
	return r.X + r.W/2
}

// CenterY returns the y-coordinate of the center.
func (r Rect) CenterY() int {
	return r.Y + r.H/2
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.CenterX(), r.CenterY()
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection; touching edges do not overlap.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// IntersectsAny returns the index of the first rectangle in rects that
// overlaps r, or -1 if none does.
func (r Rect) IntersectsAny(rects []Rect) int {
	for i, other := range rects {
		if r.Intersects(other) {
			return i
		}
	}
	return -1
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inflate returns the rectangle grown by dw and dh in total, keeping its
// center in place.
func (r Rect) Inflate(dw, dh int) Rect {
	return Rect{
		X: r.X - dw/2,
		Y: r.Y - dh/2,
		W: r.W + dw,
		H: r.H + dh,
	}
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
