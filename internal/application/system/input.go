package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/chasearena/internal/ecs"
)

// KeyBindings maps each direction to the keys that request it
type KeyBindings struct {
	Left  []ebiten.Key
	Right []ebiten.Key
	Up    []ebiten.Key
	Down  []ebiten.Key
}

// DefaultBindings returns arrow keys plus WASD
func DefaultBindings() KeyBindings {
	return KeyBindings{
		Left:  []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Up:    []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
		Down:  []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
	}
}

// InputSystem handles player input
type InputSystem struct {
	bindings KeyBindings
	pressed  func(ebiten.Key) bool
}

// NewInputSystem creates a new input system reading the keyboard
func NewInputSystem(bindings KeyBindings) *InputSystem {
	return &InputSystem{
		bindings: bindings,
		pressed:  ebiten.IsKeyPressed,
	}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() ecs.InputState {
	return ecs.InputState{
		Left:  s.any(s.bindings.Left),
		Right: s.any(s.bindings.Right),
		Up:    s.any(s.bindings.Up),
		Down:  s.any(s.bindings.Down),
	}
}

func (s *InputSystem) any(keys []ebiten.Key) bool {
	for _, k := range keys {
		if s.pressed(k) {
			return true
		}
	}
	return false
}
