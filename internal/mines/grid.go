package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellState int8

const (
	Unknown CellState = -2
	Flagged CellState = -1
	/*
	 * Each item in the player grid is one of the following values:
	 *
	 * 	- 0 to 8 mean the cell is open and has a surrounding mine
	 * 	  count.
	 *
	 * 	- -1 means the cell is flagged by the player.
	 *
	 * 	- -2 means the cell is still covered.
	 *
	 * 	- 64 means the cell held a mine and was correctly flagged,
	 * 	  shown after the game ends.
	 *
	 * 	- 65 means the cell held the mine the player hit.
	 *
	 * 	- 66 means the cell has a crossed-out flag because the
	 * 	  player had incorrectly marked it.
	 *
	 * 	- 67 means the cell held a mine nobody flagged, shown after
	 * 	  the game ends.
	 */
	CorrectFlag   CellState = 64
	ExplodedMine  CellState = 65
	WrongFlag     CellState = 66
	UnflaggedMine CellState = 67
)

// Open reports whether the cell shows an adjacent mine count.
func (s CellState) Open() bool {
	return 0 <= s && s <= 8
}

// Covered reports whether the cell still accepts reveal or flag operations.
func (s CellState) Covered() bool {
	return s == Unknown || s == Flagged
}

func (s CellState) String() string {
	switch {
	case s == Unknown:
		return " "
	case s == Flagged:
		return "*"
	case s.Open():
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// Grid is the player's knowledge of the field, row-major.
type Grid []CellState

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			i := y*width + x
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, g[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}

// Point addresses a cell; X is the column, Y the row.
type Point struct {
	X, Y int
}
