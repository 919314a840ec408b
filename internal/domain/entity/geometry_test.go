package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellToPixel(t *testing.T) {
	x, y := CellToPixel(3, 7)
	assert.Equal(t, 24, x)
	assert.Equal(t, 56, y)
}

func TestIsOnGrid(t *testing.T) {
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{208, 168, true},
		{208, 170, false},
		{2, 8, false},
		{-32, -8, true},
		{-30, 0, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsOnGrid(tt.x, tt.y), "(%d,%d)", tt.x, tt.y)
	}
}

func TestRect_Intersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 32, H: 32}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlapping", Rect{X: 16, Y: 16, W: 8, H: 8}, true},
		{"identical", a, true},
		{"touching right edge", Rect{X: 32, Y: 0, W: 8, H: 8}, false},
		{"touching bottom edge", Rect{X: 0, Y: 32, W: 8, H: 8}, false},
		{"one pixel overlap", Rect{X: 31, Y: 31, W: 8, H: 8}, true},
		{"far away", Rect{X: 100, Y: 100, W: 8, H: 8}, false},
		{"zero width", Rect{X: 8, Y: 8, W: 0, H: 8}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Intersects(tt.b))
			assert.Equal(t, tt.want, tt.b.Intersects(a), "intersection must be symmetric")
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 8, Y: 8, W: 4, H: 4}

	assert.True(t, r.Contains(8, 8), "top-left corner is inside")
	assert.True(t, r.Contains(11, 11))
	assert.False(t, r.Contains(12, 8), "right edge is outside")
	assert.False(t, r.Contains(8, 12), "bottom edge is outside")
	assert.False(t, r.Contains(7, 9))
}

func TestRect_CenterAndTranslate(t *testing.T) {
	r := Square(Point{X: 100, Y: 40}, 32)

	assert.Equal(t, Point{X: 116, Y: 56}, r.Center())
	assert.Equal(t, Rect{X: 98, Y: 40, W: 32, H: 32}, r.Translate(-2, 0))
	assert.Equal(t, Rect{X: 100, Y: 40, W: 32, H: 32}, r, "Translate must not mutate the receiver")
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(Point{X: 0, Y: 0}, Point{X: 3, Y: 4}))
	assert.Equal(t, 300.0, Distance(Point{X: 0, Y: 0}, Point{X: 300, Y: 0}))
	assert.Equal(t, 0.0, Distance(Point{X: 7, Y: 7}, Point{X: 7, Y: 7}))
}

func TestPoint_AddSub(t *testing.T) {
	p := Point{X: 10, Y: 20}

	assert.Equal(t, Point{X: 12, Y: 16}, p.Add(2, -4))
	assert.Equal(t, Point{X: 5, Y: 15}, p.Sub(Point{X: 5, Y: 5}))
}
