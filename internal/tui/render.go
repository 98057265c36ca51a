package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"sweeper/internal/mines"
)

var (
	styleDefault   = tcell.StyleDefault
	styleTitle     = tcell.StyleDefault.Foreground(tcell.ColorBlue).Underline(true)
	styleHint      = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHintText  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleClock     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleCovered   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleFlag      = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleGoodFlag  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBadFlag   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleMine      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleBoom      = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleMenuTitle = tcell.StyleDefault.Bold(true)
)

// classic minesweeper digit palette
var countStyles = map[mines.CellState]tcell.Style{
	1: tcell.StyleDefault.Foreground(tcell.ColorBlue),
	2: tcell.StyleDefault.Foreground(tcell.ColorGreen),
	3: tcell.StyleDefault.Foreground(tcell.ColorRed),
	4: tcell.StyleDefault.Foreground(tcell.ColorNavy),
	5: tcell.StyleDefault.Foreground(tcell.ColorMaroon),
	6: tcell.StyleDefault.Foreground(tcell.ColorTeal),
	7: tcell.StyleDefault.Foreground(tcell.ColorPurple),
	8: tcell.StyleDefault.Foreground(tcell.ColorGray),
}

// glyph picks the character and style one cell renders as.
func glyph(s mines.CellState) (rune, tcell.Style) {
	switch {
	case s == mines.Unknown:
		return '□', styleCovered
	case s == mines.Flagged:
		return '⚑', styleFlag
	case s == 0:
		return '·', styleHintText
	case s.Open():
		return '0' + rune(s), countStyles[s]
	case s == mines.CorrectFlag:
		return '⚑', styleGoodFlag
	case s == mines.WrongFlag:
		return '✗', styleBadFlag
	case s == mines.ExplodedMine:
		return '✸', styleBoom
	case s == mines.UnflaggedMine:
		return '✸', styleMine
	default:
		return '!', styleBoom
	}
}

func (a *App) drawText(x, y int, style tcell.Style, text string) int {
	for _, r := range text {
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func (a *App) render() {
	s := a.screen
	s.Clear()
	w, h := s.Size()

	a.drawBorder(w, h)
	a.drawHeader(w)
	if a.menu == menuNone {
		a.drawField(w, h)
	} else {
		a.drawMenu(w, h)
	}
	if a.cfg.Development() {
		a.drawDebug(h)
	}

	s.Show()
}

// drawBorder draws a box around the whole board with a separator under
// the header line.
func (a *App) drawBorder(w, h int) {
	a.screen.SetContent(0, 0, '┌', nil, styleDefault)
	a.screen.SetContent(w-1, 0, '┐', nil, styleDefault)
	a.screen.SetContent(0, h-1, '└', nil, styleDefault)
	a.screen.SetContent(w-1, h-1, '┘', nil, styleDefault)

	for y := 1; y < h-1; y++ {
		a.screen.SetContent(0, y, '│', nil, styleDefault)
		a.screen.SetContent(w-1, y, '│', nil, styleDefault)
	}
	a.screen.SetContent(0, 2, '├', nil, styleDefault)
	a.screen.SetContent(w-1, 2, '┤', nil, styleDefault)

	for x := 1; x < w-1; x++ {
		a.screen.SetContent(x, 0, '─', nil, styleDefault)
		a.screen.SetContent(x, 2, '─', nil, styleDefault)
		a.screen.SetContent(x, h-1, '─', nil, styleDefault)
	}
}

func (a *App) drawHeader(w int) {
	x := a.drawText(1, 1, styleTitle, " Sweeper ")
	x = a.drawText(x, 1, styleDefault, "┊")

	for _, hint := range [][2]string{
		{" h:", "Help"},
		{" q:", "Quit"},
		{" n:", "New"},
	} {
		x = a.drawText(x, 1, styleHint, hint[0])
		x = a.drawText(x, 1, styleHintText, " "+hint[1]+" ")
	}

	counter := fmt.Sprintf("⚑ %d", a.field.FlagsRemaining())
	clock := a.clock.String()
	right := w - 1 - len(clock) - 1
	a.drawText(right, 1, styleClock, clock)
	right -= len([]rune(counter)) + 3
	if right > x {
		x = a.drawText(right, 1, styleFlag, counter)
		a.drawText(x+1, 1, styleDefault, "┊")
	}
}

// fieldOrigin centers the field inside the bordered main area.
func (a *App) fieldOrigin(w, h int) (int, int) {
	fieldW := a.params.Width*2 - 1
	fieldH := a.params.Height
	ox := max(1, (w-fieldW)/2)
	oy := max(3, (h+2-fieldH)/2)
	return ox, oy
}

func (a *App) drawField(w, h int) {
	grid := a.field.Snapshot()
	ox, oy := a.fieldOrigin(w, h)

	highlighted := make(map[mines.Point]bool, len(a.highlighted))
	for _, p := range a.highlighted {
		highlighted[p] = true
	}

	for y := range a.params.Height {
		if oy+y >= h-1 {
			break // terminal too small, clip
		}
		for x := range a.params.Width {
			if ox+x*2 >= w-1 {
				break
			}
			r, style := glyph(grid[y*a.params.Width+x])
			if highlighted[mines.Point{X: x, Y: y}] {
				style = styleBadFlag
			}
			if a.cursor.X == x && a.cursor.Y == y {
				style = style.Background(tcell.ColorBlue)
			}
			a.screen.SetContent(ox+x*2, oy+y, r, nil, style)
		}
	}
}

func (a *App) drawDebug(h int) {
	status := fmt.Sprintf("menu: %d ┊ game: %s", a.menu, a.field.Status())
	a.drawText(1, h-2, styleHintText, status)
}
