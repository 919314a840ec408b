package ecs

import "github.com/younwookim/chasearena/internal/domain/entity"

// ChaseTarget returns the point a pursuer heads for while chasing.
// It is a pure function of the world.
func ChaseTarget(w *World, id EntityID) entity.Point {
	player := w.Position[w.PlayerID]
	facing := w.Facing[w.PlayerID]

	switch w.PursuerData[id].Archetype {
	case ArchetypeAggressive:
		return player

	case ArchetypeAmbusher:
		return facing.Ahead(player, AmbushLead)

	case ArchetypeFlanker:
		ahead := facing.Ahead(player, FlankLead)
		aggressor, ok := w.FindPursuer(ArchetypeAggressive)
		if !ok {
			return ahead
		}
		v := ahead.Sub(w.Position[aggressor])
		return ahead.Add(v.X, v.Y)

	case ArchetypePatroller:
		if entity.Distance(w.Position[id], player) >= PatrolRadius {
			return player
		}
		return ScatterTarget(w, id)
	}

	return player
}

// ScatterTarget returns the arena corner owned by the pursuer's archetype
func ScatterTarget(w *World, id EntityID) entity.Point {
	switch w.PursuerData[id].Archetype {
	case ArchetypeAggressive:
		return entity.Point{X: w.Width, Y: 0}
	case ArchetypeAmbusher:
		return entity.Point{X: 0, Y: 0}
	case ArchetypeFlanker:
		return entity.Point{X: w.Width, Y: w.Height}
	default:
		return entity.Point{X: 0, Y: w.Height}
	}
}
