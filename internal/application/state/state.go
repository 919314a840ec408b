package state

// GameState represents what the frontend is showing
type GameState int

const (
	// StateReady waits for the first move of a life
	StateReady GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
