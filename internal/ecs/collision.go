package ecs

// OverlapMode selects how two entities are considered touching
type OverlapMode int

const (
	// OverlapCenter: the target's hitbox contains the subject's center point
	OverlapCenter OverlapMode = iota
	// OverlapBox: the two hitboxes intersect
	OverlapBox
)

// IsBlocked reports whether the entity's hitbox, translated by (dx, dy),
// intersects a live wall. House walls are skipped when ignoreHouse is set.
// It never mutates the world.
func IsBlocked(w *World, id EntityID, dx, dy int, ignoreHouse bool) bool {
	box := w.Hitbox(id).Translate(dx, dy)

	for _, wid := range w.walls {
		if w.Destroyed(wid) {
			continue
		}
		if ignoreHouse && w.Kind[wid] == KindHouseWall {
			continue
		}
		if box.Intersects(w.Hitbox(wid)) {
			return true
		}
	}
	return false
}

// FindOverlap returns the first live entity of the given kind, in spawn
// order, that touches subject under the given mode.
func FindOverlap(w *World, subject EntityID, kind Kind, mode OverlapMode) (EntityID, bool) {
	subjectBox := w.Hitbox(subject)
	center := subjectBox.Center()

	for _, id := range w.order {
		if id == subject || w.Kind[id] != kind || w.Destroyed(id) {
			continue
		}

		box := w.Hitbox(id)
		switch mode {
		case OverlapBox:
			if box.Intersects(subjectBox) {
				return id, true
			}
		default:
			if box.Contains(center.X, center.Y) {
				return id, true
			}
		}
	}
	return 0, false
}
