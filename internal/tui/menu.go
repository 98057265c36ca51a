package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"sweeper/internal/mines"
)

type menuLine struct {
	text  string
	style tcell.Style
}

func plain(text string) menuLine {
	return menuLine{text, styleDefault}
}

func (a *App) menuContent() (title string, titleStyle tcell.Style, lines []menuLine) {
	switch a.menu {
	case menuHelp:
		return "Help", styleMenuTitle, []menuLine{
			{"q       : Quit sweeper", styleHintText},
			{"c       : Close menu", styleHintText},
			{"n       : New game", styleHintText},
			{"←,↑,→,↓ : Move cursor", styleHintText},
			{"f       : Flag/unflag", styleHintText},
			{"SPACE   : Open / chord", styleHintText},
		}
	case menuConfirmNew:
		return "Restart?", styleMenuTitle, []menuLine{
			{"A game is already in progress!", styleBadFlag},
			plain("Press n again to pick a new game,"),
			plain("or c to keep playing."),
		}
	case menuDifficulty:
		format := func(key string, p mines.GameParams) menuLine {
			return plain(fmt.Sprintf("%s: %-12s %2dx%-2d, %2d mines",
				key, name(p), p.Width, p.Height, p.MineCount))
		}
		return "New game", styleMenuTitle, []menuLine{
			format("1", mines.Beginner),
			format("2", mines.Intermediate),
			format("3", mines.Expert),
			plain("or c to cancel"),
		}
	case menuWon:
		lines = []menuLine{
			plain(fmt.Sprintf("Congratulations! You won in %s.", a.clock)),
		}
		if a.newRecord {
			lines = append(lines, menuLine{
				fmt.Sprintf("A new best time for %s!", a.params.Seed()),
				styleClock,
			})
		} else if a.bestTime != "" {
			lines = append(lines, plain(
				fmt.Sprintf("Best time for %s is %s.", a.params.Seed(), a.bestTime),
			))
		}
		lines = append(lines,
			plain("Press n to start a new game,"),
			plain("or c to savor your success."),
		)
		return "Victory!", styleClock.Bold(true), lines
	case menuLost:
		return "Defeat!", styleBoom, []menuLine{
			plain("Alas, you appear to have exploded."),
			plain("Press n to start a new game,"),
			plain("or c to learn from failure."),
		}
	}
	return "", styleDefault, nil
}

func name(p mines.GameParams) string {
	switch p {
	case mines.Beginner:
		return "Beginner"
	case mines.Intermediate:
		return "Intermediate"
	case mines.Expert:
		return "Expert"
	default:
		return "Custom"
	}
}

// drawMenu draws the current menu centered in the main area.
func (a *App) drawMenu(w, h int) {
	title, titleStyle, lines := a.menuContent()
	if len(lines) == 0 {
		return
	}

	width := len([]rune(title))
	for _, l := range lines {
		if n := len([]rune(l.text)); n > width {
			width = n
		}
	}

	rows := len(lines) + 3
	cols := width + 4
	minCol := max(1, w/2-cols/2)
	minRow := max(3, h/2-rows/2)

	a.drawText(minCol, minRow, styleDefault, "╭"+repeatRune('─', cols-2)+"╮")
	a.drawText(minCol, minRow+1, styleDefault, "│")
	a.drawText(minCol+cols-1, minRow+1, styleDefault, "│")
	a.drawText(minCol+(cols-len([]rune(title)))/2, minRow+1, titleStyle, title)
	a.drawText(minCol, minRow+2, styleDefault, "├"+repeatRune('─', cols-2)+"┤")

	for i, l := range lines {
		y := minRow + 3 + i
		a.drawText(minCol, y, styleDefault, "│ ")
		x := a.drawText(minCol+2, y, l.style, l.text)
		for ; x < minCol+cols-1; x++ {
			a.screen.SetContent(x, y, ' ', nil, styleDefault)
		}
		a.drawText(minCol+cols-1, y, styleDefault, "│")
	}
	a.drawText(minCol, minRow+rows, styleDefault, "╰"+repeatRune('─', cols-2)+"╯")
}

func repeatRune(r rune, n int) string {
	rs := make([]rune, n)
	for i := range rs {
		rs[i] = r
	}
	return string(rs)
}
