package ecs

import (
	"math"
	"math/rand"

	"github.com/younwookim/chasearena/internal/domain/entity"
)

// Routing reports whether the pursuer is travelling to or from the house.
// Routing pursuers pass house walls and may reverse when cornered.
func (p Pursuer) Routing() bool {
	return p.State == StateHouse || p.State == StateEaten
}

// EnterHouse puts the pursuer in the House state. Timers are untouched,
// so calling it while already in House is a no-op.
func (p *Pursuer) EnterHouse() {
	p.State = StateHouse
}

// resume returns to the mode selected by IsChasing
func (p *Pursuer) resume() {
	if p.IsChasing {
		p.State = StateChase
	} else {
		p.State = StateScatter
	}
}

// OutsideHouse is triggered on reaching the house exit point
func (p *Pursuer) OutsideHouse() {
	if p.State == StateHouse {
		p.resume()
	}
}

// InsideHouse is triggered on reaching the house door point
func (p *Pursuer) InsideHouse() {
	if p.State == StateEaten {
		p.EnterHouse()
	}
}

// Frighten switches a chasing or scattering pursuer to Frightened and
// restarts its frightened timer. It reports whether the pursuer was affected.
func (p *Pursuer) Frighten() bool {
	switch p.State {
	case StateChase, StateScatter:
		p.State = StateFrightened
		p.FrightenedTimer = 0
		return true
	}
	return false
}

// Eat switches a frightened pursuer to Eaten. It reports whether the pursuer was affected.
func (p *Pursuer) Eat() bool {
	if p.State != StateFrightened {
		return false
	}
	p.State = StateEaten
	return true
}

// Tick advances the timer of the current state and applies its expiry
func (p *Pursuer) Tick() {
	switch p.State {
	case StateFrightened:
		p.FrightenedTimer++
		if p.FrightenedTimer >= FrightenedTicks {
			p.resume()
		}

	case StateScatter, StateChase:
		p.ModeTimer++
		limit := ScatterTicks
		if p.IsChasing {
			limit = ChaseTicks
		}
		if p.ModeTimer >= limit {
			if p.State == StateChase {
				p.State = StateScatter
			} else {
				p.State = StateChase
			}
			p.IsChasing = !p.IsChasing
			p.ModeTimer = 0
		}
	}
}

// Target returns the point the pursuer steers toward in its current state
func Target(w *World, id EntityID, rng *rand.Rand) entity.Point {
	switch w.PursuerData[id].State {
	case StateHouse:
		return w.HouseExit
	case StateEaten:
		return w.HouseDoor
	case StateChase:
		return ChaseTarget(w, id)
	case StateScatter:
		return ScatterTarget(w, id)
	}

	// Frightened: one cell-sized hop on a random axis
	pos := w.Position[id]
	offset := FrightenedJitter
	if rng.Intn(2) == 0 {
		offset = -offset
	}
	if rng.Intn(2) == 0 {
		return pos.Add(offset, 0)
	}
	return pos.Add(0, offset)
}

// DecideDirection points the pursuer at the legal step closest to target,
// scanning left, right, up, down and keeping the first of equal candidates.
// Reversing is excluded; routing pursuers fall back to it only when nothing
// else is legal. Nothing changes off-grid, outside the playfield or when no
// step is legal. It reports whether a direction was committed.
func DecideDirection(w *World, id EntityID, target entity.Point) bool {
	if !OnGrid(w, id) || !InPlayfield(w, id) {
		return false
	}

	routing := w.PursuerData[id].Routing()
	vel := w.Velocity[id]
	current, moving := entity.DirectionOf(vel.X, vel.Y)

	best, ok := closestStep(w, id, target, routing, func(d entity.Direction) bool {
		return moving && d == current.Opposite()
	})
	if !ok && routing && moving {
		best, ok = closestStep(w, id, target, routing, func(d entity.Direction) bool {
			return d != current.Opposite()
		})
	}
	if !ok {
		return false
	}

	dx, dy := best.Step(MoveSpeed)
	w.Velocity[id] = Velocity{X: dx, Y: dy}
	return true
}

func closestStep(w *World, id EntityID, target entity.Point, ignoreHouse bool, skip func(entity.Direction) bool) (entity.Direction, bool) {
	pos := w.Position[id]
	best := entity.DirRight
	minDist := math.MaxFloat64
	found := false

	for _, d := range entity.ScanOrder {
		if skip(d) {
			continue
		}
		dx, dy := d.Step(MoveSpeed)
		if IsBlocked(w, id, dx, dy, ignoreHouse) {
			continue
		}
		if dist := entity.Distance(pos.Add(dx, dy), target); dist < minDist {
			best = d
			minDist = dist
			found = true
		}
	}
	return best, found
}

// UpdatePursuer runs one tick of a pursuer: timers, positional triggers,
// direction decision, then a wall-gated move. Pursuers idle until the
// player has started moving.
func UpdatePursuer(w *World, id EntityID, rng *rand.Rand) {
	if !w.Started {
		return
	}

	p := w.PursuerData[id]
	p.Tick()

	if OnGrid(w, id) {
		switch w.Position[id] {
		case w.HouseExit:
			p.OutsideHouse()
		case w.HouseDoor:
			p.InsideHouse()
		}
	}
	w.PursuerData[id] = p

	if OnGrid(w, id) && InPlayfield(w, id) {
		DecideDirection(w, id, Target(w, id, rng))
		reportInvariant(CheckVelocity(w, id))
	}

	vel := w.Velocity[id]
	if !IsBlocked(w, id, vel.X, vel.Y, p.Routing()) {
		Advance(w, id)
	}
}
