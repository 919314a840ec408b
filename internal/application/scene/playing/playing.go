// Package playing provides the arena scene of the windowed frontend.
package playing

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/chasearena/internal/application/loop"
	"github.com/younwookim/chasearena/internal/application/scene"
	"github.com/younwookim/chasearena/internal/application/session"
	"github.com/younwookim/chasearena/internal/application/state"
	"github.com/younwookim/chasearena/internal/ecs"
	"github.com/younwookim/chasearena/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{0, 0, 0, 255}
	colorWall       = color.RGBA{33, 33, 222, 255}
	colorHouseWall  = color.RGBA{255, 184, 222, 255}
	colorPellet     = color.RGBA{255, 184, 151, 255}
	colorPlayer     = color.RGBA{255, 255, 0, 255}
	colorFrightened = color.RGBA{33, 33, 255, 255}
	colorFlash      = color.RGBA{255, 255, 255, 255}
	colorEyes       = color.RGBA{222, 222, 255, 255}
	colorOverlay    = color.RGBA{0, 0, 0, 160}
)

var pursuerColors = map[ecs.Archetype]color.RGBA{
	ecs.ArchetypeAggressive: {255, 0, 0, 255},
	ecs.ArchetypeAmbusher:   {255, 184, 255, 255},
	ecs.ArchetypeFlanker:    {0, 255, 255, 255},
	ecs.ArchetypePatroller:  {255, 184, 82, 255},
}

// flashPeriod is the number of ticks per color swap of a flashing pursuer
const flashPeriod = 8

// InputSource yields the directional intent for the next tick
type InputSource interface {
	GetInput() ecs.InputState
}

// Playing is the arena scene
type Playing struct {
	session *session.Session
	input   InputSource
	loop    *loop.Loop
	state   state.GameState
	held    ecs.InputState
	logger  *slog.Logger

	screenW int
	screenH int
	hudH    int

	justPressed func(ebiten.Key) bool
}

// New creates the arena scene for a running session
func New(sess *session.Session, input InputSource, display config.DisplayConfig, logger *slog.Logger) *Playing {
	if logger == nil {
		logger = slog.Default()
	}
	w := sess.World()
	p := &Playing{
		session:     sess,
		input:       input,
		state:       state.StateReady,
		logger:      logger,
		screenW:     w.Width,
		screenH:     w.Height + display.HUDHeight,
		hudH:        display.HUDHeight,
		justPressed: inpututil.IsKeyJustPressed,
	}
	p.loop = loop.New(nil, p.step, nil)
	return p
}

// ScreenSize returns the logical screen size: the arena plus the HUD strip below it
func (p *Playing) ScreenSize() (int, int) {
	return p.screenW, p.screenH
}

// State returns what the scene is showing
func (p *Playing) State() state.GameState {
	return p.state
}

func (p *Playing) step() error {
	p.session.Step(p.held)
	return nil
}

// Update proceeds the scene (implements scene.Scene)
func (p *Playing) Update() (scene.Scene, error) {
	switch p.state {
	case state.StatePaused:
		if p.justPressed(ebiten.KeyEscape) {
			p.state = p.liveState()
			p.loop.Reset()
			p.logger.Debug("resumed")
		}
		return nil, nil
	case state.StateGameOver:
		switch {
		case p.justPressed(ebiten.KeyQ):
			return nil, ebiten.Termination
		case p.justPressed(ebiten.KeyZ) || p.justPressed(ebiten.KeySpace) || p.justPressed(ebiten.KeyR):
			p.restart()
		}
		return nil, nil
	}

	if p.justPressed(ebiten.KeyEscape) {
		p.state = state.StatePaused
		p.logger.Debug("paused", "tick", p.session.Tick())
		return nil, nil
	}

	p.held = p.input.GetInput()
	if err := p.loop.Frame(); err != nil {
		return nil, err
	}
	p.state = p.liveState()

	return nil, nil // nil = stay on this scene
}

// liveState derives the scene state from the session
func (p *Playing) liveState() state.GameState {
	switch {
	case p.session.GameOver():
		return state.StateGameOver
	case !p.session.World().Started:
		return state.StateReady
	default:
		return state.StatePlaying
	}
}

func (p *Playing) restart() {
	p.session.Restart()
	p.loop.Reset()
	p.held = ecs.InputState{}
	p.state = state.StateReady
}

// Draw renders the arena, the HUD and the state overlay
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	w := p.session.World()
	tick := p.session.Tick()
	for _, id := range w.Entities() {
		if w.Destroyed(id) {
			continue
		}
		p.drawEntity(screen, w, id, tick)
	}

	p.drawHUD(screen)

	switch p.state {
	case state.StateReady:
		ebitenutil.DebugPrintAt(screen, "READY!", p.screenW/2-18, p.screenH/2)
	case state.StatePaused:
		p.drawOverlay(screen, "PAUSED\nESC to resume")
	case state.StateGameOver:
		p.drawOverlay(screen, "GAME OVER\nZ/SPACE/R: restart  Q: quit")
	}
}

func (p *Playing) drawEntity(screen *ebiten.Image, w *ecs.World, id ecs.EntityID, tick uint64) {
	pos := w.Position[id]
	x, y := float64(pos.X), float64(pos.Y)
	size := float64(w.Size[id])

	switch w.Kind[id] {
	case ecs.KindWall:
		ebitenutil.DrawRect(screen, x, y, size, size, colorWall)
	case ecs.KindHouseWall:
		ebitenutil.DrawRect(screen, x, y+size/2-1, size, 2, colorHouseWall)
	case ecs.KindPellet:
		ebitenutil.DrawRect(screen, x, y, size, size, colorPellet)
	case ecs.KindPowerPellet:
		if ecs.PowerPelletVisible(w.Blink[id]) {
			ebitenutil.DrawCircle(screen, x+size/2, y+size/2, size/2, colorPellet)
		}
	case ecs.KindPlayer:
		ebitenutil.DrawCircle(screen, x+size/2, y+size/2, size/2-2, colorPlayer)
	case ecs.KindPursuer:
		pd := w.PursuerData[id]
		if pd.State == ecs.StateEaten {
			ebitenutil.DrawRect(screen, x+8, y+10, 6, 8, colorEyes)
			ebitenutil.DrawRect(screen, x+18, y+10, 6, 8, colorEyes)
			return
		}
		ebitenutil.DrawRect(screen, x+2, y+2, size-4, size-4, pursuerColor(pd, tick))
	}
}

// pursuerColor picks the body color for a pursuer that is not Eaten
func pursuerColor(p ecs.Pursuer, tick uint64) color.RGBA {
	if p.State == ecs.StateFrightened {
		if p.Flashing() && (tick/flashPeriod)%2 == 1 {
			return colorFlash
		}
		return colorFrightened
	}
	return pursuerColors[p.Archetype]
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	b := p.session.Scoreboard()
	hud := fmt.Sprintf("SCORE %d  LIVES %d  ROUND %d", b.Score, b.Lives, b.Round)
	ebitenutil.DebugPrintAt(screen, hud, 4, p.screenH-p.hudH+4)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorOverlay)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-20)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.loop.Reset()
	p.logger.Info("arena scene entered", "session", p.session.ID.String())
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	st := p.loop.Stats()
	p.logger.Info("arena scene exited",
		"ticks", p.session.Tick(),
		"score", p.session.Scoreboard().Score,
		"frames", st.Frames,
		"clamps", st.Clamps)
}
