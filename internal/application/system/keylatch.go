package system

import (
	"sync/atomic"

	"github.com/younwookim/chasearena/internal/domain/entity"
	"github.com/younwookim/chasearena/internal/ecs"
)

// KeyLatch carries directional intent from an input goroutine to the
// simulation goroutine. Terminals report presses but not releases, so the
// latest direction stays held until another one replaces it or Clear is called.
type KeyLatch struct {
	dir atomic.Int32
}

const latchEmpty = -1

// NewKeyLatch creates an empty latch
func NewKeyLatch() *KeyLatch {
	l := &KeyLatch{}
	l.dir.Store(latchEmpty)
	return l
}

// Press makes d the held direction
func (l *KeyLatch) Press(d entity.Direction) {
	l.dir.Store(int32(d))
}

// Clear drops the held direction
func (l *KeyLatch) Clear() {
	l.dir.Store(latchEmpty)
}

// Input returns the held direction as an input state
func (l *KeyLatch) Input() ecs.InputState {
	var in ecs.InputState
	switch entity.Direction(l.dir.Load()) {
	case entity.DirLeft:
		in.Left = true
	case entity.DirRight:
		in.Right = true
	case entity.DirUp:
		in.Up = true
	case entity.DirDown:
		in.Down = true
	}
	return in
}
