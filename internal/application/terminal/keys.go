package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/chasearena/internal/domain/entity"
)

// Action is what a key press asks the arena to do
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionStop
	ActionRestart
	ActionQuit
)

// String returns the string representation of the action
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMove:
		return "Move"
	case ActionStop:
		return "Stop"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

var runeDirections = map[rune]entity.Direction{
	'a': entity.DirLeft, 'h': entity.DirLeft,
	'd': entity.DirRight, 'l': entity.DirRight,
	'w': entity.DirUp, 'k': entity.DirUp,
	's': entity.DirDown, 'j': entity.DirDown,
}

// Translate maps a key event to an action. dir is set for ActionMove only.
func Translate(ev *tcell.EventKey) (action Action, dir entity.Direction) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return ActionMove, entity.DirLeft
	case tcell.KeyRight:
		return ActionMove, entity.DirRight
	case tcell.KeyUp:
		return ActionMove, entity.DirUp
	case tcell.KeyDown:
		return ActionMove, entity.DirDown
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, dir
	case tcell.KeyRune:
	default:
		return ActionNone, dir
	}

	switch r := ev.Rune(); r {
	case ' ':
		return ActionStop, dir
	case 'r', 'R':
		return ActionRestart, dir
	case 'q', 'Q':
		return ActionQuit, dir
	default:
		if d, ok := runeDirections[r]; ok {
			return ActionMove, d
		}
		return ActionNone, dir
	}
}
