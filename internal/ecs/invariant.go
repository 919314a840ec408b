package ecs

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrInvariantViolation reports a state the simulation can never reach
// without a programming error
var ErrInvariantViolation = errors.New("invariant violation")

// CheckVelocity verifies the entity moves along at most one axis
func CheckVelocity(w *World, id EntityID) error {
	v := w.Velocity[id]
	if v.X != 0 && v.Y != 0 {
		return fmt.Errorf("%w: %s %d has velocity (%d,%d) on both axes",
			ErrInvariantViolation, w.Kind[id], id, v.X, v.Y)
	}
	return nil
}

// reportInvariant panics in debug builds and logs otherwise
func reportInvariant(err error) {
	if err == nil {
		return
	}
	if strictInvariants {
		panic(err)
	}
	slog.Error("invariant violated", "error", err)
}
