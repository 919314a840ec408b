// Package loop drives a simulation at a fixed timestep with bounded catch-up.
package loop

import (
	"context"
	"errors"
	"runtime"
	"time"
)

const (
	// TickRate is the number of simulation updates per second
	TickRate = 60
	// Tick is the simulated time one update represents
	Tick = time.Second / TickRate
	// MaxCatchUp caps the updates run in a single frame
	MaxCatchUp = 5
)

// ErrStop may be returned by the update hook to end Run without error
var ErrStop = errors.New("loop stopped")

// Stats counts what the loop has done so far
type Stats struct {
	Frames  uint64
	Updates uint64
	// Clamps counts frames whose remaining time debt was dropped
	Clamps uint64
}

// Loop calls update once per elapsed tick and render once per frame
type Loop struct {
	clock  Clock
	update func() error
	render func()
	wait   func(ctx context.Context, d time.Duration) error

	last    time.Time
	started bool
	stats   Stats
}

// New creates a loop. render may be nil when the frontend draws on its own schedule.
func New(clock Clock, update func() error, render func()) *Loop {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Loop{
		clock:  clock,
		update: update,
		render: render,
		wait:   sleep,
	}
}

// SetWait replaces the pacing wait used by Run
func (l *Loop) SetWait(wait func(ctx context.Context, d time.Duration) error) {
	l.wait = wait
}

// Stats returns the loop counters
func (l *Loop) Stats() Stats { return l.stats }

// Reset forgets the previous frame time, so the next Frame starts a new
// schedule instead of catching up on a pause
func (l *Loop) Reset() {
	l.started = false
}

// Frame runs the updates owed since the previous frame, at most MaxCatchUp
// of them, drops any debt left beyond one tick and renders once.
func (l *Loop) Frame() error {
	now := l.clock.Now()
	if !l.started {
		l.last = now
		l.started = true
	}

	for n := 0; now.Sub(l.last) > Tick && n < MaxCatchUp; n++ {
		l.last = l.last.Add(Tick)
		l.stats.Updates++
		if err := l.update(); err != nil {
			return err
		}
	}

	if now.Sub(l.last) > Tick {
		l.last = now.Add(-Tick)
		l.stats.Clamps++
	}

	if l.render != nil {
		l.render()
	}
	l.stats.Frames++
	return nil
}

// Run calls Frame until ctx is done or update returns an error.
// ErrStop ends the loop cleanly.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := l.Frame(); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return err
		}

		runtime.Gosched()
		d := l.last.Add(Tick).Sub(l.clock.Now())
		if d < time.Millisecond {
			d = time.Millisecond
		}
		if err := l.wait(ctx, d); err != nil {
			return err
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
