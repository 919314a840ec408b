// Package terminal draws session snapshots on a character screen.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/chasearena/internal/application/session"
	"github.com/younwookim/chasearena/internal/domain/entity"
	"github.com/younwookim/chasearena/internal/ecs"
)

// A terminal cell is about twice as tall as it is wide, so one cell
// covers CellWidth x CellHeight arena pixels.
const (
	CellWidth  = 8
	CellHeight = 16
	HUDRows    = 1
)

// flashPeriod is the number of ticks per color swap of a flashing pursuer
const flashPeriod = 8

var (
	styleWall       = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleHouseWall  = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	stylePellet     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	stylePlayer     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleFrightened = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleFlash      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleEyes       = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHUD        = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleBanner     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

var archetypeStyles = map[ecs.Archetype]tcell.Style{
	ecs.ArchetypeAggressive: tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	ecs.ArchetypeAmbusher:   tcell.StyleDefault.Foreground(tcell.ColorHotPink).Bold(true),
	ecs.ArchetypeFlanker:    tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true),
	ecs.ArchetypePatroller:  tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true),
}

var playerGlyphs = map[entity.Direction]rune{
	entity.DirLeft:  '>',
	entity.DirRight: '<',
	entity.DirUp:    'v',
	entity.DirDown:  '^',
}

// Renderer draws snapshots of one arena
type Renderer struct {
	screen tcell.Screen
	cols   int
	rows   int
}

// Size returns the screen cells an arena of the given pixel size needs, HUD included
func Size(width, height int) (cols, rows int) {
	cols = (width + CellWidth - 1) / CellWidth
	rows = (height+CellHeight-1)/CellHeight + HUDRows
	return cols, rows
}

// NewRenderer creates a renderer for an arena of the given pixel size
func NewRenderer(screen tcell.Screen, width, height int) *Renderer {
	cols, rows := Size(width, height)
	return &Renderer{screen: screen, cols: cols, rows: rows - HUDRows}
}

// Draw renders one frame and shows it
func (r *Renderer) Draw(st session.State) {
	r.screen.Clear()

	for _, e := range st.Entities {
		if e.Destroyed {
			continue
		}
		r.drawEntity(st.Tick, e)
	}

	r.drawHUD(st)
	r.screen.Show()
}

func (r *Renderer) drawEntity(tick uint64, e ecs.EntitySnapshot) {
	cx := e.Position.X + e.Size/2
	cy := e.Position.Y + e.Size/2

	switch e.Kind {
	case ecs.KindWall:
		r.put(cx, cy, '█', styleWall)
	case ecs.KindHouseWall:
		r.put(cx, cy, '─', styleHouseWall)
	case ecs.KindPellet:
		r.put(cx, cy, '·', stylePellet)
	case ecs.KindPowerPellet:
		if ecs.PowerPelletVisible(e.Blink) {
			r.put(cx, cy, '●', stylePellet)
		}
	case ecs.KindPlayer:
		g, ok := playerGlyphs[e.Facing]
		if !ok {
			g = '<'
		}
		r.put(cx, cy, g, stylePlayer)
	case ecs.KindPursuer:
		r.put(cx, cy, pursuerGlyph(e.Pursuer), pursuerStyle(tick, e.Pursuer))
	}
}

func pursuerGlyph(p ecs.Pursuer) rune {
	if p.State == ecs.StateEaten {
		return '"'
	}
	return 'M'
}

func pursuerStyle(tick uint64, p ecs.Pursuer) tcell.Style {
	switch p.State {
	case ecs.StateEaten:
		return styleEyes
	case ecs.StateFrightened:
		if p.Flashing() && (tick/flashPeriod)%2 == 1 {
			return styleFlash
		}
		return styleFrightened
	}
	return archetypeStyles[p.Archetype]
}

// put draws ch at the cell holding arena pixel (px, py). Cells outside the arena are skipped.
func (r *Renderer) put(px, py int, ch rune, style tcell.Style) {
	if px < 0 || py < 0 {
		return
	}
	col, row := px/CellWidth, py/CellHeight
	if col >= r.cols || row >= r.rows {
		return
	}
	r.screen.SetContent(col, row, ch, nil, style)
}

func (r *Renderer) drawHUD(st session.State) {
	hud := fmt.Sprintf("SCORE %d  LIVES %d  ROUND %d", st.Score, st.Lives, st.Round)
	r.text(0, r.rows, hud, styleHUD)

	var banner string
	switch {
	case st.Phase == session.PhaseGameOver:
		banner = "GAME OVER  r:restart q:quit"
	case !st.Started:
		banner = "READY"
	}
	if banner != "" {
		r.text(len(hud)+2, r.rows, banner, styleBanner)
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
