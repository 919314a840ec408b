package entity

// Direction is one of the four cardinal directions
type Direction int

const (
	DirRight Direction = iota
	DirLeft
	DirUp
	DirDown
)

// ScanOrder is the order in which candidate directions are evaluated.
// Ties between equally good directions resolve to the earliest entry.
var ScanOrder = [4]Direction{DirLeft, DirRight, DirUp, DirDown}

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "Right"
	case DirLeft:
		return "Left"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Opposite returns the direction pointing the other way
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

// Unit returns the unit step for the direction in screen coordinates (y grows downward)
func (d Direction) Unit() (dx, dy int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	default:
		return 0, 1
	}
}

// Step returns the direction's velocity at the given speed
func (d Direction) Step(speed int) (dx, dy int) {
	ux, uy := d.Unit()
	return ux * speed, uy * speed
}

// Ahead returns the point n pixels from p along d
func (d Direction) Ahead(p Point, n int) Point {
	dx, dy := d.Step(n)
	return p.Add(dx, dy)
}

// DirectionOf derives a facing from a velocity. Horizontal motion wins
// when both axes are set. ok is false for a zero velocity.
func DirectionOf(vx, vy int) (d Direction, ok bool) {
	switch {
	case vx > 0:
		return DirRight, true
	case vx < 0:
		return DirLeft, true
	case vy < 0:
		return DirUp, true
	case vy > 0:
		return DirDown, true
	default:
		return DirRight, false
	}
}
