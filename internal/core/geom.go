// Package core provides fundamental types and utilities shared by the game
// engine and its front-ends. It has no external dependencies (especially no
// Bubble Tea or Ebitengine) to keep game logic pure and testable.
package core

// Box is an axis-aligned bounding box used for collision detection.
// Unlike a half-open rectangle it is inclusive on all four edges: a box at
// (X, Y) of size W×H covers x in [X, X+W] and y in [Y, Y+H].
type Box struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewBox creates a new box with the given position and dimensions.
func NewBox(x, y, w, h int) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() int {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() int {
	return b.Y + b.H
}

// Contains returns true if the point (x, y) lies inside the box or on any
// of its edges.
func (b Box) Contains(x, y int) bool {
	return b.X <= x && x <= b.Right() && b.Y <= y && y <= b.Bottom()
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
