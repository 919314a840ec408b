package system

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/chasearena/internal/domain/entity"
	"github.com/younwookim/chasearena/internal/ecs"
)

func TestKeyLatch(t *testing.T) {
	l := NewKeyLatch()
	assert.Equal(t, ecs.InputState{}, l.Input())

	l.Press(entity.DirUp)
	assert.Equal(t, ecs.InputState{Up: true}, l.Input())
	assert.Equal(t, ecs.InputState{Up: true}, l.Input(), "reading does not release")

	l.Press(entity.DirLeft)
	assert.Equal(t, ecs.InputState{Left: true}, l.Input(), "a new press replaces the old one")

	l.Clear()
	assert.Equal(t, ecs.InputState{}, l.Input())
}

func TestKeyLatch_Concurrent(t *testing.T) {
	l := NewKeyLatch()
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			l.Press(entity.ScanOrder[i%4])
		}
	}()

	for i := 0; i < 1000; i++ {
		in := l.Input()
		n := 0
		for _, b := range []bool{in.Left, in.Right, in.Up, in.Down} {
			if b {
				n++
			}
		}
		assert.LessOrEqual(t, n, 1)
	}
	wg.Wait()

	assert.Equal(t, ecs.InputState{Down: true}, l.Input())
}
