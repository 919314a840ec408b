package entity

import "math"

// CellSize is the edge length of one grid cell in pixels
const CellSize = 8

// Point is a pixel coordinate
type Point struct {
	X, Y int
}

// Add returns p translated by (dx, dy)
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Sub returns the vector from q to p
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the Euclidean distance between two points
func Distance(a, b Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// CellToPixel converts grid coordinates to the pixel position of the cell's top-left corner
func CellToPixel(col, row int) (x, y int) {
	return col * CellSize, row * CellSize
}

// IsOnGrid reports whether a pixel position sits exactly on a cell corner
func IsOnGrid(x, y int) bool {
	return x%CellSize == 0 && y%CellSize == 0
}

// Rect is an axis-aligned rectangle in pixels
type Rect struct {
	X, Y int
	W, H int
}

// Square returns a size x size rectangle anchored at p
func Square(p Point, size int) Rect {
	return Rect{X: p.X, Y: p.Y, W: size, H: size}
}

// Translate returns r moved by (dx, dy)
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Center returns the rectangle's center point (rounded down)
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Empty reports whether the rectangle has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects reports whether the interiors of r and o overlap.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Contains reports whether (px, py) lies inside r, using half-open bounds
func (r Rect) Contains(px, py int) bool {
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}
