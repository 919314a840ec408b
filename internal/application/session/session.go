// Package session owns one arena world: it spawns the entities from a grid,
// advances them one tick at a time and reports what happened to observers.
package session

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/younwookim/chasearena/internal/domain/entity"
	"github.com/younwookim/chasearena/internal/ecs"
)

// Phase is the session's lifecycle state
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Session runs the simulation for one grid
type Session struct {
	ID uuid.UUID

	grid      *entity.Grid
	world     *ecs.World
	rng       *rand.Rand
	seed      int64
	logger    *slog.Logger
	board     *Scoreboard
	observers []Observer

	phase Phase
	tick  uint64
	round int
}

// Option configures a Session
type Option func(*Session)

// WithSeed fixes the seed of the frightened-mode random source
func WithSeed(seed int64) Option {
	return func(s *Session) { s.seed = seed }
}

// WithLogger sets the parent logger. The session logs through a child tagged with its id.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithObserver subscribes o before the first tick
func WithObserver(o Observer) Option {
	return func(s *Session) { s.observers = append(s.observers, o) }
}

// New validates the grid and spawns a fresh arena
func New(grid *entity.Grid, opts ...Option) (*Session, error) {
	if grid == nil {
		return nil, fmt.Errorf("%w: no grid", entity.ErrConfiguration)
	}
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		ID:     uuid.New(),
		grid:   grid,
		seed:   time.Now().UnixNano(),
		logger: slog.Default(),
		board:  NewScoreboard(),
		round:  1,
	}
	for _, opt := range opts {
		opt(s)
	}
	// The scoreboard sees every event first
	s.observers = append([]Observer{s.board}, s.observers...)
	s.logger = s.logger.With("session", s.ID.String())
	s.rng = rand.New(rand.NewSource(s.seed))

	s.spawn()
	s.logger.Info("session started", "seed", s.seed, "cols", grid.Cols, "rows", grid.Rows)
	return s, nil
}

// Subscribe adds an observer for subsequent events
func (s *Session) Subscribe(o Observer) {
	s.observers = append(s.observers, o)
}

// World returns the live world. It is owned by the simulation goroutine.
func (s *Session) World() *ecs.World { return s.world }

// Scoreboard returns the session's score keeper
func (s *Session) Scoreboard() *Scoreboard { return s.board }

// Phase returns the lifecycle state
func (s *Session) Phase() Phase { return s.phase }

// GameOver reports whether the session is waiting for Restart
func (s *Session) GameOver() bool { return s.phase == PhaseGameOver }

// Tick returns the number of simulated ticks since the session started
func (s *Session) Tick() uint64 { return s.tick }

// Round returns the current round, starting at 1
func (s *Session) Round() int { return s.round }

// spawn re-creates every entity from the grid: statics in column-major
// order, then the player, then the pursuers.
func (s *Session) spawn() {
	g := s.grid
	w := ecs.NewWorld(g.Width(), g.Height())
	w.HouseExit = g.HouseExit
	w.HouseDoor = g.HouseDoor

	for col := 0; col < g.Cols; col++ {
		for row := 0; row < g.Rows; row++ {
			x, y := entity.CellToPixel(col, row)
			switch g.Cells[row][col] {
			case entity.SymbolWall:
				w.CreateWall(x, y)
			case entity.SymbolHouseWall:
				w.CreateHouseWall(x, y)
			case entity.SymbolPellet:
				w.CreatePellet(x, y)
			case entity.SymbolPowerPellet:
				w.CreatePowerPellet(x, y)
			}
		}
	}

	col, row, _ := g.Find(entity.SymbolPlayer)
	w.CreatePlayer(entity.CellToPixel(col, row))

	for col := 0; col < g.Cols; col++ {
		for row := 0; row < g.Rows; row++ {
			if a, ok := ecs.ArchetypeOf(g.Cells[row][col]); ok {
				x, y := entity.CellToPixel(col, row)
				w.CreatePursuer(x, y, a)
			}
		}
	}

	s.world = w
	s.logger.Debug("arena spawned",
		"entities", len(w.Entities()),
		"collectibles", w.CountLive(ecs.KindPellet, ecs.KindPowerPellet),
		"pursuers", len(w.Pursuers()))
}

// Step advances the simulation by one tick. It does nothing after game over.
func (s *Session) Step(input ecs.InputState) {
	if s.phase == PhaseGameOver {
		return
	}
	s.tick++
	w := s.world

	ecs.HandlePlayerInput(w, input)

	for _, id := range w.Entities() {
		if w.Destroyed(id) {
			continue
		}
		switch w.Kind[id] {
		case ecs.KindPowerPellet:
			w.Blink[id]++
		case ecs.KindPlayer:
			s.report(ecs.UpdatePlayer(w))
		case ecs.KindPursuer:
			ecs.UpdatePursuer(w, id, s.rng)
		}
	}

	if w.PlayerData[w.PlayerID].Lives <= 0 {
		s.phase = PhaseGameOver
		e := GameOverEvent{Tick: s.tick, Round: s.round, Score: s.board.Score}
		s.logger.Info("game over", "tick", s.tick, "round", s.round, "score", e.Score)
		for _, o := range s.observers {
			o.GameOver(e)
		}
		return
	}

	if w.CountLive(ecs.KindPellet, ecs.KindPowerPellet) == 0 {
		e := LevelEvent{Tick: s.tick, Round: s.round}
		s.logger.Info("level complete", "tick", s.tick, "round", s.round, "score", s.board.Score)
		for _, o := range s.observers {
			o.LevelComplete(e)
		}
		s.round++
		s.spawn()
	}
}

// report turns the player's step into events
func (s *Session) report(step ecs.PlayerStep) {
	w := s.world

	if step.Pellet != 0 {
		e := PelletEvent{Tick: s.tick, Pellet: step.Pellet}
		for _, o := range s.observers {
			o.PelletEaten(e)
		}
	}

	if step.PowerPellet != 0 {
		e := PowerPelletEvent{Tick: s.tick, PowerPellet: step.PowerPellet, Frightened: step.Frightened}
		s.logger.Debug("power pellet eaten", "tick", s.tick, "frightened", len(step.Frightened))
		for _, o := range s.observers {
			o.PowerPelletEaten(e)
		}
	}

	if step.Outcome != ecs.ContactNone {
		e := ContactEvent{
			Tick:      s.tick,
			Pursuer:   step.Pursuer,
			Archetype: w.PursuerData[step.Pursuer].Archetype,
			Outcome:   step.Outcome,
			Lives:     w.PlayerData[w.PlayerID].Lives,
		}
		s.logger.Debug("pursuer contact",
			"tick", s.tick, "archetype", e.Archetype, "outcome", e.Outcome, "lives", e.Lives)
		for _, o := range s.observers {
			o.PursuerContact(e)
		}
	}
}

// Restart re-spawns the arena and starts a fresh game
func (s *Session) Restart() {
	s.board.Reset()
	s.phase = PhasePlaying
	s.round = 1
	s.tick = 0
	s.spawn()
	s.logger.Info("session restarted")
}

// State is a copy of the session taken between ticks
type State struct {
	Tick     uint64
	Round    int
	Phase    Phase
	Score    int
	Lives    int
	Started  bool
	Entities []ecs.EntitySnapshot
}

// Snapshot copies the session state for rendering or comparison
func (s *Session) Snapshot() State {
	return State{
		Tick:     s.tick,
		Round:    s.round,
		Phase:    s.phase,
		Score:    s.board.Score,
		Lives:    s.world.PlayerData[s.world.PlayerID].Lives,
		Started:  s.world.Started,
		Entities: s.world.Snapshot(),
	}
}
