package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Cue is a short sound tied to a session event
type Cue int

const (
	CueChomp Cue = iota
	CuePowerUp
	CueEatPursuer
	CueDeath
	CueLevelComplete
	CueGameOver
	cueCount
)

// String returns the string representation of the cue
func (c Cue) String() string {
	switch c {
	case CueChomp:
		return "Chomp"
	case CuePowerUp:
		return "PowerUp"
	case CueEatPursuer:
		return "EatPursuer"
	case CueDeath:
		return "Death"
	case CueLevelComplete:
		return "LevelComplete"
	case CueGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

type note struct {
	freq float64
	dur  time.Duration
}

// melodies holds each cue as a sequence of sine notes
var melodies = [cueCount][]note{
	CueChomp:         {{440, 30 * time.Millisecond}, {330, 30 * time.Millisecond}},
	CuePowerUp:       {{392, 60 * time.Millisecond}, {523.25, 60 * time.Millisecond}, {659.25, 90 * time.Millisecond}},
	CueEatPursuer:    {{880, 50 * time.Millisecond}, {1318.51, 80 * time.Millisecond}},
	CueDeath:         {{523.25, 120 * time.Millisecond}, {392, 120 * time.Millisecond}, {261.63, 120 * time.Millisecond}, {130.81, 240 * time.Millisecond}},
	CueLevelComplete: {{523.25, 100 * time.Millisecond}, {659.25, 100 * time.Millisecond}, {783.99, 100 * time.Millisecond}, {1046.5, 200 * time.Millisecond}},
	CueGameOver:      {{392, 200 * time.Millisecond}, {349.23, 200 * time.Millisecond}, {329.63, 200 * time.Millisecond}, {261.63, 400 * time.Millisecond}},
}

// Length returns the cue's duration in samples at sr
func Length(c Cue, sr beep.SampleRate) int {
	if c < 0 || c >= cueCount {
		return 0
	}
	n := 0
	for _, nt := range melodies[c] {
		n += sr.N(nt.dur)
	}
	return n
}

// NewCueStreamer builds a finite streamer for the cue. volume is a base-2 gain.
func NewCueStreamer(c Cue, sr beep.SampleRate, volume float64) (beep.Streamer, error) {
	if c < 0 || c >= cueCount {
		return nil, fmt.Errorf("unknown cue %d", c)
	}

	parts := make([]beep.Streamer, 0, len(melodies[c]))
	for _, nt := range melodies[c] {
		tone, err := generators.SineTone(sr, nt.freq)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s cue: %w", c, err)
		}
		parts = append(parts, beep.Take(sr.N(nt.dur), tone))
	}

	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   volume,
	}, nil
}
