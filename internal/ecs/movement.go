package ecs

import "github.com/younwookim/chasearena/internal/domain/entity"

// OnGrid reports whether the entity is aligned to the cell grid
func OnGrid(w *World, id EntityID) bool {
	p := w.Position[id]
	return entity.IsOnGrid(p.X, p.Y)
}

// InPlayfield reports whether the entity's origin lies strictly inside the arena.
// Entities passing through an edge tunnel are outside it.
func InPlayfield(w *World, id EntityID) bool {
	p := w.Position[id]
	return p.X > 0 && p.X < w.Width && p.Y > 0 && p.Y < w.Height
}

// Advance applies the entity's velocity, updates its facing and wraps it
// around the arena edges. Callers gate it with IsBlocked.
func Advance(w *World, id EntityID) {
	pos := w.Position[id]
	vel := w.Velocity[id]
	size := w.Size[id]

	pos.X += vel.X
	pos.Y += vel.Y

	if d, ok := entity.DirectionOf(vel.X, vel.Y); ok {
		w.Facing[id] = d
	}

	switch {
	case pos.X > w.Width:
		pos.X = -size + MoveSpeed
	case pos.X < -size+MoveSpeed:
		pos.X = w.Width
	}
	switch {
	case pos.Y > w.Height:
		pos.Y = -size + MoveSpeed
	case pos.Y < -size+MoveSpeed:
		pos.Y = w.Height
	}

	w.Position[id] = pos
}
