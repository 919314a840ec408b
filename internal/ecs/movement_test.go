package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/younwookim/chasearena/internal/domain/entity"
)

func TestAdvance(t *testing.T) {
	w := NewWorld(128, 128)
	id := w.CreatePlayer(40, 40)

	w.Velocity[id] = Velocity{X: 0, Y: -MoveSpeed}
	Advance(w, id)

	assert.Equal(t, entity.Point{X: 40, Y: 38}, w.Position[id])
	assert.Equal(t, entity.DirUp, w.Facing[id])
}

func TestAdvance_StillKeepsFacing(t *testing.T) {
	w := NewWorld(128, 128)
	id := w.CreatePlayer(40, 40)
	w.Facing[id] = entity.DirDown

	Advance(w, id)

	assert.Equal(t, entity.Point{X: 40, Y: 40}, w.Position[id])
	assert.Equal(t, entity.DirDown, w.Facing[id])
}

func TestAdvance_WrapAround(t *testing.T) {
	tests := []struct {
		name  string
		start entity.Point
		vel   Velocity
		want  entity.Point
	}{
		{"exit right", entity.Point{X: 128, Y: 40}, Velocity{X: 2}, entity.Point{X: -30, Y: 40}},
		{"exit left", entity.Point{X: -30, Y: 40}, Velocity{X: -2}, entity.Point{X: 128, Y: 40}},
		{"exit bottom", entity.Point{X: 40, Y: 128}, Velocity{Y: 2}, entity.Point{X: 40, Y: -30}},
		{"exit top", entity.Point{X: 40, Y: -30}, Velocity{Y: -2}, entity.Point{X: 40, Y: 128}},
		{"inside", entity.Point{X: 126, Y: 40}, Velocity{X: 2}, entity.Point{X: 128, Y: 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld(128, 128)
			id := w.CreatePlayer(0, 0)
			w.Position[id] = tt.start
			w.Velocity[id] = tt.vel

			Advance(w, id)
			assert.Equal(t, tt.want, w.Position[id])
		})
	}
}

func TestAdvance_TunnelKeepsAlignment(t *testing.T) {
	w := NewWorld(128, 128)
	id := w.CreatePlayer(8, 40)
	w.Velocity[id] = Velocity{X: -MoveSpeed}

	// Leave through the left edge and come back to the right-most lane
	for i := 0; i < 100; i++ {
		Advance(w, id)
	}

	assert.Equal(t, 40, w.Position[id].Y)
	assert.Zero(t, w.Position[id].X%MoveSpeed)
	assert.Equal(t, entity.DirLeft, w.Facing[id])
}

func TestInPlayfield(t *testing.T) {
	w := NewWorld(128, 128)
	id := w.CreatePlayer(0, 0)

	tests := []struct {
		pos  entity.Point
		want bool
	}{
		{entity.Point{X: 8, Y: 8}, true},
		{entity.Point{X: 0, Y: 8}, false},
		{entity.Point{X: 8, Y: 0}, false},
		{entity.Point{X: 128, Y: 8}, false},
		{entity.Point{X: 120, Y: 120}, true},
		{entity.Point{X: -30, Y: 40}, false},
	}

	for _, tt := range tests {
		w.Position[id] = tt.pos
		assert.Equal(t, tt.want, InPlayfield(w, id), "%v", tt.pos)
	}
}

func TestOnGrid(t *testing.T) {
	w := NewWorld(128, 128)
	id := w.CreatePlayer(8, 16)

	assert.True(t, OnGrid(w, id))
	w.Position[id] = entity.Point{X: 10, Y: 16}
	assert.False(t, OnGrid(w, id))
}
