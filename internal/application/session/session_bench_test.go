package session

import (
	"bytes"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/younwookim/chasearena/internal/ecs"
)

func BenchmarkSession_Step(b *testing.B) {
	grid := loadClassicGrid(b)
	s, err := New(grid, WithSeed(1), WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
	if err != nil {
		b.Fatal(err)
	}

	inputs := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if s.GameOver() {
			s.Restart()
		}
		s.Step(randomInput(inputs))
	}
}

func BenchmarkWorld_Snapshot(b *testing.B) {
	s, err := New(loadClassicGrid(b), WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
	if err != nil {
		b.Fatal(err)
	}
	s.Step(ecs.InputState{Left: true})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Snapshot()
	}
}
