// Package core provides the engine-free primitives shared by the game rules
// and the terminal platform: geometry, the screen buffer, input frames and
// step results. It has no external dependencies (especially no Bubble Tea)
// so the rules stay pure and testable.
package core

import "math"

// Rect is an axis-aligned bounding box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAt snaps a world-space position to the cell grid and returns a rectangle
// of the given size anchored there.
func RectAt(x, y float64, w, h int) Rect {
	return NewRect(int(math.Floor(x)), int(math.Floor(y)), w, h)
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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

// Repeat loops t so that it is never larger than length and never smaller than 0.
// A non-positive length yields 0.
func Repeat(t, length float64) float64 {
	if length <= 0 {
		return 0
	}
	r := t - math.Floor(t/length)*length
	if r >= length {
		r = 0
	}
	return r
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
