package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/chasearena/internal/ecs"
)

func createTestInputSystem(down ...ebiten.Key) *InputSystem {
	held := make(map[ebiten.Key]bool)
	for _, k := range down {
		held[k] = true
	}
	sys := NewInputSystem(DefaultBindings())
	sys.pressed = func(k ebiten.Key) bool { return held[k] }
	return sys
}

func TestNewInputSystem(t *testing.T) {
	sys := NewInputSystem(DefaultBindings())

	require.NotNil(t, sys)
	assert.NotNil(t, sys.pressed)
	assert.Len(t, sys.bindings.Left, 2)
}

func TestInputSystem_GetInput(t *testing.T) {
	tests := []struct {
		name string
		keys []ebiten.Key
		want ecs.InputState
	}{
		{"nothing held", nil, ecs.InputState{}},
		{"arrow left", []ebiten.Key{ebiten.KeyArrowLeft}, ecs.InputState{Left: true}},
		{"wasd right", []ebiten.Key{ebiten.KeyD}, ecs.InputState{Right: true}},
		{"arrow up and s", []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyS}, ecs.InputState{Up: true, Down: true}},
		{"diagonal", []ebiten.Key{ebiten.KeyA, ebiten.KeyW}, ecs.InputState{Left: true, Up: true}},
		{"unbound keys are ignored", []ebiten.Key{ebiten.KeySpace, ebiten.KeyZ}, ecs.InputState{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := createTestInputSystem(tt.keys...)
			assert.Equal(t, tt.want, sys.GetInput())
		})
	}
}

func TestInputSystem_CustomBindings(t *testing.T) {
	sys := createTestInputSystem(ebiten.KeyH)
	sys.bindings = KeyBindings{Left: []ebiten.Key{ebiten.KeyH}}

	assert.Equal(t, ecs.InputState{Left: true}, sys.GetInput())
}
