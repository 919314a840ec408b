package playing

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/chasearena/internal/application/loop"
	"github.com/younwookim/chasearena/internal/application/scene"
	"github.com/younwookim/chasearena/internal/application/session"
	"github.com/younwookim/chasearena/internal/application/state"
	"github.com/younwookim/chasearena/internal/domain/entity"
	"github.com/younwookim/chasearena/internal/ecs"
	"github.com/younwookim/chasearena/internal/infrastructure/config"
)

// stubInput is a test double for InputSource
type stubInput struct {
	in ecs.InputState
}

func (s *stubInput) GetInput() ecs.InputState { return s.in }

// testScene bundles the scene with the doubles that drive it
type testScene struct {
	*Playing
	clock *loop.ManualClock
	input *stubInput
	keys  map[ebiten.Key]bool
}

// frame advances the clock by just over one tick and updates the scene
func (ts *testScene) frame(t *testing.T) {
	t.Helper()
	ts.clock.Advance(loop.Tick + time.Nanosecond)
	next, err := ts.Update()
	require.NoError(t, err)
	assert.Nil(t, next)
}

// press makes k "just pressed" for a single update
func (ts *testScene) press(t *testing.T, k ebiten.Key) (scene.Scene, error) {
	t.Helper()
	ts.keys[k] = true
	defer delete(ts.keys, k)
	return ts.Update()
}

// createTestGrid builds the player's lane above a sealed pursuer lane.
// The far pellet keeps the level from completing.
func createTestGrid() *entity.Grid {
	wall := strings.Repeat("x", 26)
	open := "x" + strings.Repeat(" ", 24) + "x"
	rows := []string{
		wall,
		"xP" + strings.Repeat(" ", 23) + "x",
		"x" + strings.Repeat(" ", 21) + "." + strings.Repeat(" ", 2) + "x",
		open,
		open,
		wall,
		"xb" + strings.Repeat(" ", 23) + "x",
		open,
		open,
		open,
		wall,
	}
	return entity.NewGrid(rows, entity.Point{X: 8, Y: 48}, entity.Point{X: 8, Y: 48})
}

func createTestPlaying(t *testing.T) *testScene {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	sess, err := session.New(createTestGrid(), session.WithSeed(1), session.WithLogger(logger))
	require.NoError(t, err)

	ts := &testScene{
		clock: loop.NewManualClock(time.Unix(0, 0)),
		input: &stubInput{},
		keys:  make(map[ebiten.Key]bool),
	}
	ts.Playing = New(sess, ts.input, config.DisplayConfig{HUDHeight: 24}, logger)
	ts.loop = loop.New(ts.clock, ts.step, nil)
	ts.justPressed = func(k ebiten.Key) bool { return ts.keys[k] }

	// The first frame only starts the schedule
	_, err = ts.Update()
	require.NoError(t, err)
	return ts
}

// downPlayer puts a chasing pursuer on the player with one life left
func downPlayer(t *testing.T, ts *testScene) {
	t.Helper()
	w := ts.session.World()
	w.PlayerData[w.PlayerID] = ecs.Player{Lives: 1}
	pid := w.Pursuers()[0]
	w.Position[pid] = w.Position[w.PlayerID]
	pd := w.PursuerData[pid]
	pd.State = ecs.StateChase
	w.PursuerData[pid] = pd

	ts.frame(t)
	require.Equal(t, state.StateGameOver, ts.State())
}

func TestPlaying_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Playing)(nil)
}

func TestNewPlaying(t *testing.T) {
	ts := createTestPlaying(t)

	w, h := ts.ScreenSize()
	assert.Equal(t, 208, w)
	assert.Equal(t, 88+24, h)
	assert.Equal(t, state.StateReady, ts.State())
	assert.Zero(t, ts.session.Tick(), "the first frame does not tick")
}

func TestPlaying_ReadyUntilFirstMove(t *testing.T) {
	ts := createTestPlaying(t)

	for i := 0; i < 5; i++ {
		ts.frame(t)
	}
	assert.Equal(t, uint64(5), ts.session.Tick())
	assert.Equal(t, state.StateReady, ts.State())

	ts.input.in = ecs.InputState{Right: true}
	ts.frame(t)

	w := ts.session.World()
	assert.Equal(t, state.StatePlaying, ts.State())
	assert.Equal(t, 8+ecs.MoveSpeed, w.Position[w.PlayerID].X)
}

func TestPlaying_Pause(t *testing.T) {
	ts := createTestPlaying(t)
	ts.input.in = ecs.InputState{Right: true}
	ts.frame(t)
	require.Equal(t, state.StatePlaying, ts.State())

	_, err := ts.press(t, ebiten.KeyEscape)
	require.NoError(t, err)
	assert.Equal(t, state.StatePaused, ts.State())

	tick := ts.session.Tick()
	for i := 0; i < 10; i++ {
		ts.frame(t)
	}
	assert.Equal(t, tick, ts.session.Tick(), "no ticks while paused")

	ts.clock.Advance(time.Minute)
	_, err = ts.press(t, ebiten.KeyEscape)
	require.NoError(t, err)
	assert.Equal(t, state.StatePlaying, ts.State())

	ts.frame(t)
	assert.Equal(t, tick, ts.session.Tick(), "the pause is not caught up")
	ts.frame(t)
	assert.Equal(t, tick+1, ts.session.Tick())
}

func TestPlaying_GameOverRestart(t *testing.T) {
	ts := createTestPlaying(t)
	downPlayer(t, ts)

	tick := ts.session.Tick()
	ts.frame(t)
	assert.Equal(t, tick, ts.session.Tick(), "no ticks after game over")

	next, err := ts.press(t, ebiten.KeyR)
	require.NoError(t, err)
	assert.Nil(t, next)

	assert.Equal(t, state.StateReady, ts.State())
	assert.Zero(t, ts.session.Tick())
	assert.Equal(t, ecs.StartingLives, ts.session.Scoreboard().Lives)
}

func TestPlaying_GameOverQuit(t *testing.T) {
	ts := createTestPlaying(t)
	downPlayer(t, ts)

	_, err := ts.press(t, ebiten.KeyQ)
	assert.ErrorIs(t, err, ebiten.Termination)
}

func TestPlaying_QuitIgnoredWhilePlaying(t *testing.T) {
	ts := createTestPlaying(t)

	_, err := ts.press(t, ebiten.KeyQ)
	assert.NoError(t, err)
	assert.Equal(t, state.StateReady, ts.State())
}

func TestPursuerColor(t *testing.T) {
	flashing := ecs.Pursuer{State: ecs.StateFrightened, FrightenedTimer: ecs.FrightenedTicks - 1}

	tests := []struct {
		name string
		p    ecs.Pursuer
		tick uint64
		want [4]uint8
	}{
		{"aggressive", ecs.Pursuer{Archetype: ecs.ArchetypeAggressive, State: ecs.StateChase}, 0, [4]uint8{255, 0, 0, 255}},
		{"patroller scattering", ecs.Pursuer{Archetype: ecs.ArchetypePatroller, State: ecs.StateScatter}, 0, [4]uint8{255, 184, 82, 255}},
		{"frightened", ecs.Pursuer{State: ecs.StateFrightened}, flashPeriod, [4]uint8{33, 33, 255, 255}},
		{"flashing white", flashing, flashPeriod, [4]uint8{255, 255, 255, 255}},
		{"flashing blue", flashing, 2 * flashPeriod, [4]uint8{33, 33, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := pursuerColor(tt.p, tt.tick)
			assert.Equal(t, tt.want, [4]uint8{c.R, c.G, c.B, c.A})
		})
	}
}

func TestPlaying_OnEnterOnExit(t *testing.T) {
	ts := createTestPlaying(t)

	assert.NotPanics(t, func() {
		ts.OnEnter()
		ts.OnExit()
	})
}
