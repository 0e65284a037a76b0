// Package core provides the types shared by every simulation and the platform:
// grid points, rectangles, commands and the colored screen buffer.
// It has no external dependencies so game logic stays pure and testable.
package core

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{p.X + d.X, p.Y + d.Y}
}

// Neg returns the opposite step.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

// In reports whether p lies in [0,w) x [0,h).
func (p Point) In(w, h int) bool {
	return NewRect(0, 0, w, h).Contains(p.X, p.Y)
}

// Manhattan returns the L1 distance between two points.
func (p Point) Manhattan(o Point) int {
	return Abs(p.X-o.X) + Abs(p.Y-o.Y)
}

// Dirs4 lists orthogonal unit steps in a fixed order: up, right, down, left.
var Dirs4 = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Rect represents an axis-aligned bounding box used for collision detection.
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

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// RectF is a float axis-aligned box used by continuous-space games.
type RectF struct {
	X, Y, W, H float64
}

// Intersects reports whether two float boxes overlap.
func (r RectF) Intersects(o RectF) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Cell converts the box to the integer rect covering it on a character grid.
func (r RectF) Cell() Rect {
	return NewRect(int(r.X), int(r.Y), Max(1, int(r.W+0.5)), Max(1, int(r.H+0.5)))
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
