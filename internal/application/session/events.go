package session

import "github.com/younwookim/chasearena/internal/ecs"

// PelletEvent is emitted when the player collects a pellet
type PelletEvent struct {
	Tick   uint64
	Pellet ecs.EntityID
}

// PowerPelletEvent is emitted when the player collects a power pellet
type PowerPelletEvent struct {
	Tick        uint64
	PowerPellet ecs.EntityID
	// Frightened lists the pursuers that switched to Frightened
	Frightened []ecs.EntityID
}

// ContactEvent is emitted when the player touches a dangerous or frightened pursuer
type ContactEvent struct {
	Tick      uint64
	Pursuer   ecs.EntityID
	Archetype ecs.Archetype
	Outcome   ecs.ContactOutcome
	// Lives left after the contact
	Lives int
}

// LevelEvent is emitted when the last collectible is taken
type LevelEvent struct {
	Tick  uint64
	Round int
}

// GameOverEvent is emitted when the player runs out of lives
type GameOverEvent struct {
	Tick  uint64
	Round int
	Score int
}

// Observer receives session events. Callbacks run on the simulation
// goroutine and must not block.
type Observer interface {
	PelletEaten(e PelletEvent)
	PowerPelletEaten(e PowerPelletEvent)
	PursuerContact(e ContactEvent)
	LevelComplete(e LevelEvent)
	GameOver(e GameOverEvent)
}

// NopObserver ignores every event. Embed it to implement only some callbacks.
type NopObserver struct{}

func (NopObserver) PelletEaten(PelletEvent)           {}
func (NopObserver) PowerPelletEaten(PowerPelletEvent) {}
func (NopObserver) PursuerContact(ContactEvent)       {}
func (NopObserver) LevelComplete(LevelEvent)          {}
func (NopObserver) GameOver(GameOverEvent)            {}
