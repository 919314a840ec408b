package ecs

import "github.com/younwookim/chasearena/internal/domain/entity"

// Kind tags what an entity is. The set is closed.
type Kind int

const (
	KindWall Kind = iota
	KindHouseWall
	KindPellet
	KindPowerPellet
	KindPlayer
	KindPursuer
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindWall:
		return "Wall"
	case KindHouseWall:
		return "HouseWall"
	case KindPellet:
		return "Pellet"
	case KindPowerPellet:
		return "PowerPellet"
	case KindPlayer:
		return "Player"
	case KindPursuer:
		return "Pursuer"
	default:
		return "Unknown"
	}
}

// IsWall reports whether the kind blocks movement
func (k Kind) IsWall() bool {
	return k == KindWall || k == KindHouseWall
}

// IsCollectible reports whether the kind counts toward level completion
func (k Kind) IsCollectible() bool {
	return k == KindPellet || k == KindPowerPellet
}

// Velocity is a per-tick displacement in pixels
type Velocity struct {
	X, Y int
}

// IsZero reports whether the velocity is zero
func (v Velocity) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Player holds the player-only state
type Player struct {
	Lives int
	// Downed is set on death and swallows the next input tick
	Downed bool
}

// Archetype selects a pursuer's targeting strategy
type Archetype int

const (
	ArchetypeAggressive Archetype = iota
	ArchetypeAmbusher
	ArchetypeFlanker
	ArchetypePatroller
)

// String returns the string representation of the archetype
func (a Archetype) String() string {
	switch a {
	case ArchetypeAggressive:
		return "Aggressive"
	case ArchetypeAmbusher:
		return "Ambusher"
	case ArchetypeFlanker:
		return "Flanker"
	case ArchetypePatroller:
		return "Patroller"
	default:
		return "Unknown"
	}
}

// ArchetypeOf maps a spawn symbol to its archetype
func ArchetypeOf(s entity.Symbol) (Archetype, bool) {
	switch s {
	case entity.SymbolAggressive:
		return ArchetypeAggressive, true
	case entity.SymbolAmbusher:
		return ArchetypeAmbusher, true
	case entity.SymbolFlanker:
		return ArchetypeFlanker, true
	case entity.SymbolPatroller:
		return ArchetypePatroller, true
	default:
		return 0, false
	}
}

// PursuerState is the behavioral state of a pursuer. The set is closed.
type PursuerState int

const (
	StateHouse PursuerState = iota
	StateScatter
	StateChase
	StateFrightened
	StateEaten
)

// String returns the string representation of the pursuer state
func (s PursuerState) String() string {
	switch s {
	case StateHouse:
		return "House"
	case StateScatter:
		return "Scatter"
	case StateChase:
		return "Chase"
	case StateFrightened:
		return "Frightened"
	case StateEaten:
		return "Eaten"
	default:
		return "Unknown"
	}
}

// Pursuer holds a pursuer's behavioral state. It is plain data: copying
// the struct duplicates the pursuer's whole behavior.
type Pursuer struct {
	Archetype       Archetype
	State           PursuerState
	ModeTimer       int
	FrightenedTimer int
	IsChasing       bool
}

// Flashing reports whether a frightened pursuer is about to recover
func (p Pursuer) Flashing() bool {
	return p.State == StateFrightened && p.FrightenedTimer >= FrightenedTicks-FrightenedWarnTicks
}
