package tui

import (
	"github.com/gdamore/tcell/v2"
)

type command int

const (
	cmdNone command = iota
	cmdQuit
	cmdHelp
	cmdCloseMenu
	cmdNewGame
	cmdMoveUp
	cmdMoveDown
	cmdMoveLeft
	cmdMoveRight
	cmdOpen
	cmdFlag
	cmdPickBeginner
	cmdPickIntermediate
	cmdPickExpert
)

// translateKey maps a key event to a game command. Arrows move the
// cursor; space opens (or chords an already-open clue). 'h' is taken by
// the help menu, so there are no vi bindings.
func translateKey(e *tcell.EventKey) command {
	switch e.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit
	case tcell.KeyUp:
		return cmdMoveUp
	case tcell.KeyDown:
		return cmdMoveDown
	case tcell.KeyLeft:
		return cmdMoveLeft
	case tcell.KeyRight:
		return cmdMoveRight
	case tcell.KeyEnter:
		return cmdOpen
	case tcell.KeyRune:
		switch e.Rune() {
		case 'q', 'Q':
			return cmdQuit
		case 'h', 'H':
			return cmdHelp
		case 'c', 'C':
			return cmdCloseMenu
		case 'n', 'N':
			return cmdNewGame
		case ' ':
			return cmdOpen
		case 'f', 'F':
			return cmdFlag
		case '1':
			return cmdPickBeginner
		case '2':
			return cmdPickIntermediate
		case '3':
			return cmdPickExpert
		}
	}
	return cmdNone
}
