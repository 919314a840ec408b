package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirection_String(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{DirRight, "Right"},
		{DirLeft, "Left"},
		{DirUp, "Up"},
		{DirDown, "Down"},
		{Direction(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dir.String())
		})
	}
}

func TestDirection_Opposite(t *testing.T) {
	for _, d := range ScanOrder {
		assert.NotEqual(t, d, d.Opposite())
		assert.Equal(t, d, d.Opposite().Opposite())
	}
}

func TestDirection_Step(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirRight, 2, 0},
		{DirLeft, -2, 0},
		{DirUp, 0, -2},
		{DirDown, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			dx, dy := tt.dir.Step(2)
			assert.Equal(t, tt.dx, dx)
			assert.Equal(t, tt.dy, dy)
		})
	}
}

func TestDirection_Ahead(t *testing.T) {
	p := Point{X: 100, Y: 100}

	assert.Equal(t, Point{X: 164, Y: 100}, DirRight.Ahead(p, 64))
	assert.Equal(t, Point{X: 100, Y: 36}, DirUp.Ahead(p, 64), "up points toward smaller y")
	assert.Equal(t, Point{X: 100, Y: 132}, DirDown.Ahead(p, 32))
}

func TestDirectionOf(t *testing.T) {
	tests := []struct {
		name   string
		vx, vy int
		want   Direction
		ok     bool
	}{
		{"right", 2, 0, DirRight, true},
		{"left", -2, 0, DirLeft, true},
		{"up", 0, -2, DirUp, true},
		{"down", 0, 2, DirDown, true},
		{"horizontal wins", -2, 2, DirLeft, true},
		{"still", 0, 0, DirRight, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := DirectionOf(tt.vx, tt.vy)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, d)
			}
		})
	}
}

func TestScanOrder(t *testing.T) {
	assert.Equal(t, [4]Direction{DirLeft, DirRight, DirUp, DirDown}, ScanOrder)
}
