// Package audio plays short synthesized cues for session events.
package audio

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/younwookim/chasearena/internal/application/session"
	"github.com/younwookim/chasearena/internal/ecs"
	"github.com/younwookim/chasearena/internal/infrastructure/config"
)

// SoundManager manages all arena audio. Every method is safe to call
// before Initialize or after Cleanup; it then does nothing.
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	sampleRate  beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
	logger      *slog.Logger
}

var _ session.Observer = (*SoundManager)(nil)

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg config.AudioConfig, logger *slog.Logger) *SoundManager {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 44100
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SoundManager{
		cfg:        cfg,
		sampleRate: beep.SampleRate(cfg.SampleRate),
		mixer:      &beep.Mixer{},
		logger:     logger,
	}
}

// Initialize sets up the speaker. It is a no-op when audio is disabled.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sm.sampleRate, sm.sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Play queues a cue on the mixer
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s, err := NewCueStreamer(c, sm.sampleRate, sm.cfg.Volume)
	if err != nil {
		sm.logger.Warn("cue not played", "cue", c, "error", err)
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

func (sm *SoundManager) PelletEaten(session.PelletEvent) {
	sm.Play(CueChomp)
}

func (sm *SoundManager) PowerPelletEaten(session.PowerPelletEvent) {
	sm.Play(CuePowerUp)
}

func (sm *SoundManager) PursuerContact(e session.ContactEvent) {
	switch e.Outcome {
	case ecs.ContactPursuerEaten:
		sm.Play(CueEatPursuer)
	case ecs.ContactPlayerDowned:
		sm.Play(CueDeath)
	}
}

func (sm *SoundManager) LevelComplete(session.LevelEvent) {
	sm.Play(CueLevelComplete)
}

func (sm *SoundManager) GameOver(session.GameOverEvent) {
	sm.Play(CueGameOver)
}
