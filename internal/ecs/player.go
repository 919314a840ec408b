package ecs

// InputState holds the directional intent for the current tick
type InputState struct {
	Left, Right, Up, Down bool
}

// Any reports whether any direction is held
func (in InputState) Any() bool {
	return in.Left || in.Right || in.Up || in.Down
}

// HandlePlayerInput turns directional intent into player velocity.
// Intent is only read while the player is on-grid inside the playfield,
// and each axis only accepts a step that is not walled. A downed player
// swallows one tick of input and re-arms the pursuers' start gate.
func HandlePlayerInput(w *World, input InputState) {
	id := w.PlayerID
	if id == 0 || !OnGrid(w, id) || !InPlayfield(w, id) {
		return
	}

	player := w.PlayerData[id]
	if player.Downed {
		player.Downed = false
		w.PlayerData[id] = player
		w.Started = false
		return
	}

	vel := w.Velocity[id]
	nx, ny := 0, 0

	if input.Left && vel.X >= 0 && !IsBlocked(w, id, -MoveSpeed, 0, false) {
		nx = -MoveSpeed
	}
	if input.Right && vel.X <= 0 && !IsBlocked(w, id, MoveSpeed, 0, false) {
		nx = MoveSpeed
	}
	if input.Up && vel.Y >= 0 && !IsBlocked(w, id, 0, -MoveSpeed, false) {
		ny = -MoveSpeed
	}
	if input.Down && vel.Y <= 0 && !IsBlocked(w, id, 0, MoveSpeed, false) {
		ny = MoveSpeed
	}

	if nx == 0 && ny == 0 {
		return
	}
	w.Started = true

	switch {
	case nx == 0 || ny == 0:
		vel = Velocity{X: nx, Y: ny}
	case vel.X != 0:
		// Both axes requested: turn perpendicular to the current motion
		vel = Velocity{X: 0, Y: ny}
	default:
		vel = Velocity{X: nx, Y: 0}
	}
	w.Velocity[id] = vel
	reportInvariant(CheckVelocity(w, id))
}

// ContactOutcome is the result of the player touching a pursuer
type ContactOutcome int

const (
	ContactNone ContactOutcome = iota
	ContactPursuerEaten
	ContactPlayerDowned
)

// String returns the string representation of the contact outcome
func (c ContactOutcome) String() string {
	switch c {
	case ContactPursuerEaten:
		return "PursuerEaten"
	case ContactPlayerDowned:
		return "PlayerDowned"
	default:
		return "None"
	}
}

// PlayerStep reports everything the player's tick resolved
type PlayerStep struct {
	Pellet      EntityID
	PowerPellet EntityID
	// Frightened lists the pursuers switched to Frightened by PowerPellet
	Frightened []EntityID
	Pursuer    EntityID
	Outcome    ContactOutcome
	Moved      bool
}

// UpdatePlayer resolves the player's contacts and then moves it if the
// step is not walled. Contacts are tested from the player's center point.
func UpdatePlayer(w *World) PlayerStep {
	var step PlayerStep
	id := w.PlayerID
	if id == 0 || !w.Live(id) {
		return step
	}

	if pellet, ok := FindOverlap(w, id, KindPellet, OverlapCenter); ok {
		w.Destroy(pellet)
		step.Pellet = pellet
	}

	if power, ok := FindOverlap(w, id, KindPowerPellet, OverlapCenter); ok {
		w.Destroy(power)
		step.PowerPellet = power
		for _, pid := range w.Pursuers() {
			p := w.PursuerData[pid]
			if p.Frighten() {
				w.PursuerData[pid] = p
				step.Frightened = append(step.Frightened, pid)
			}
		}
	}

	if pid, ok := FindOverlap(w, id, KindPursuer, OverlapCenter); ok {
		p := w.PursuerData[pid]
		switch p.State {
		case StateFrightened:
			p.Eat()
			w.PursuerData[pid] = p
			step.Pursuer = pid
			step.Outcome = ContactPursuerEaten
		case StateEaten:
		default:
			if downPlayer(w) {
				step.Pursuer = pid
				step.Outcome = ContactPlayerDowned
			}
		}
	}

	vel := w.Velocity[id]
	if !IsBlocked(w, id, vel.X, vel.Y, false) {
		Advance(w, id)
		step.Moved = !vel.IsZero()
	}
	return step
}

// downPlayer costs the player a life and sends it back to spawn
func downPlayer(w *World) bool {
	id := w.PlayerID
	player := w.PlayerData[id]
	if player.Downed || player.Lives <= 0 {
		return false
	}

	player.Lives--
	player.Downed = true
	w.PlayerData[id] = player
	w.Position[id] = w.PlayerSpawn
	w.Velocity[id] = Velocity{}
	return true
}
