package core

import "cmp"

// Box is a real-valued axis-aligned rectangle in world units.
// Y grows downward, so Top is the smaller coordinate.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewBox creates a box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 {
	return b.X
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 {
	return b.Y
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Overlaps reports whether two boxes share at least one point.
// Edges are inclusive: boxes that only touch are considered overlapping.
func (b Box) Overlaps(other Box) bool {
	if b.Right() < other.Left() || b.Left() > other.Right() {
		return false
	}
	if b.Bottom() < other.Top() || b.Top() > other.Bottom() {
		return false
	}
	return true
}

// Translate returns the box moved by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	b.X += dx
	b.Y += dy
	return b
}

// Scale maps the box onto a grid of cells, sx and sy being cells per world unit.
// The result always covers at least one cell when the box has any area.
func (b Box) Scale(sx, sy float64) Rect {
	x0 := int(b.Left() * sx)
	y0 := int(b.Top() * sy)
	x1 := int(b.Right()*sx + 0.5)
	y1 := int(b.Bottom()*sy + 0.5)
	if b.W > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if b.H > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// Rect is an integer rectangle in screen cells, as produced by Box.Scale.
// Unlike Box it is half-open: the cell at Right() is outside.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle of cells.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cell.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersect returns the cells shared by both rectangles.
// The result is empty when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0, y0 := max(r.X, other.X), max(r.Y, other.Y)
	x1, y1 := min(r.Right(), other.Right()), min(r.Bottom(), other.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// Clamp restricts v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
