package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/game"
)

// Translate maps a key event to a session command. quit is true for keys
// that end the program.
func Translate(ev *tcell.EventKey) (cmd game.Command, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.CommandNone, true
	case tcell.KeyLeft:
		return game.CommandMoveLeft, false
	case tcell.KeyRight:
		return game.CommandMoveRight, false
	case tcell.KeyDown:
		return game.CommandSoftDrop, false
	case tcell.KeyUp:
		return game.CommandRotate, false
	case tcell.KeyRune:
	default:
		return game.CommandNone, false
	}

	switch ev.Rune() {
	case 'x', 'X':
		return game.CommandRotate, false
	case 'z', 'Z':
		return game.CommandRotateCounterClockwise, false
	case ' ':
		return game.CommandHardDrop, false
	case 'r', 'R':
		return game.CommandRestart, false
	case 'q', 'Q':
		return game.CommandNone, true
	}
	return game.CommandNone, false
}
