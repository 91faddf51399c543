// Package core provides fundamental types and utilities for the racketball platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned rectangle in screen cells.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Viewport maps a continuous world area onto a region of screen cells.
// World coordinates grow right and down, like the screen.
type Viewport struct {
	Area   Rect    // Screen cells the world is drawn into
	WorldW float64 // World width mapped onto Area.W
	WorldH float64 // World height mapped onto Area.H
}

// ToScreen converts a world point to the screen cell containing it.
func (v Viewport) ToScreen(wx, wy float64) (int, int) {
	if v.WorldW <= 0 || v.WorldH <= 0 {
		return v.Area.X, v.Area.Y
	}
	sx := int(math.Floor(wx / v.WorldW * float64(v.Area.W)))
	sy := int(math.Floor(wy / v.WorldH * float64(v.Area.H)))
	return v.Area.X + Clamp(sx, 0, v.Area.W-1), v.Area.Y + Clamp(sy, 0, v.Area.H-1)
}

// ToWorld converts a screen cell to the world point at the cell's center.
func (v Viewport) ToWorld(sx, sy int) (float64, float64) {
	if v.Area.W <= 0 || v.Area.H <= 0 {
		return 0, 0
	}
	cx := ClampF(float64(sx-v.Area.X)+0.5, 0, float64(v.Area.W))
	cy := ClampF(float64(sy-v.Area.Y)+0.5, 0, float64(v.Area.H))
	return cx / float64(v.Area.W) * v.WorldW, cy / float64(v.Area.H) * v.WorldH
}

// ScaleX converts a world width to a cell count, never less than one cell.
func (v Viewport) ScaleX(w float64) int {
	if v.WorldW <= 0 {
		return 1
	}
	return Max(1, int(math.Round(w/v.WorldW*float64(v.Area.W))))
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
