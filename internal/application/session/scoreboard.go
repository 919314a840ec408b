package session

import "github.com/younwookim/chasearena/internal/ecs"

// Points awarded per event
const (
	PelletPoints       = 10
	PowerPelletPoints  = 100
	PursuerEatenPoints = 500
)

// Scoreboard keeps score, lives and round for display
type Scoreboard struct {
	Score int
	Lives int
	Round int
}

// NewScoreboard creates a scoreboard for a fresh game
func NewScoreboard() *Scoreboard {
	return &Scoreboard{Lives: ecs.StartingLives, Round: 1}
}

// Reset starts a fresh game
func (b *Scoreboard) Reset() {
	*b = *NewScoreboard()
}

func (b *Scoreboard) PelletEaten(PelletEvent) {
	b.Score += PelletPoints
}

func (b *Scoreboard) PowerPelletEaten(PowerPelletEvent) {
	b.Score += PowerPelletPoints
}

func (b *Scoreboard) PursuerContact(e ContactEvent) {
	if e.Outcome == ecs.ContactPursuerEaten {
		b.Score += PursuerEatenPoints
	}
	b.Lives = e.Lives
}

// LevelComplete moves to the next round. The arena re-spawns with full lives.
func (b *Scoreboard) LevelComplete(e LevelEvent) {
	b.Round = e.Round + 1
	b.Lives = ecs.StartingLives
}

func (b *Scoreboard) GameOver(GameOverEvent) {
	b.Lives = 0
}
