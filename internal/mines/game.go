package mines

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type GameStatus int8

const (
	InProgress GameStatus = iota
	Won
	Lost
)

func (s GameStatus) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Field is one game of minesweeper. It owns the real mine layout, the
// precomputed adjacent-mine counts and the player's knowledge grid.
// A new game means constructing a replacement Field.
type Field struct {
	GameParams
	rnd    *rand.Rand
	mines  []bool // real mine points; nil until planted
	counts []int8 // adjacent counts, fixed at planting
	grid   Grid   // player knowledge
	dead   bool
	won    bool
}

// NewField validates params and constructs a fresh field with every cell
// covered and unflagged. With SafeStart set, mine placement is deferred to
// the first OpenCell so the first click and its neighbors stay clear;
// otherwise mines are planted immediately.
func NewField(params GameParams, r *rand.Rand) (*Field, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	f := &Field{
		GameParams: params,
		rnd:        r,
		grid:       make(Grid, params.CellCount()),
	}
	for i := range f.grid {
		f.grid[i] = Unknown
	}
	if !params.SafeStart {
		f.plant(-2, -2)
	}
	return f, nil
}

func (f *Field) plant(startX, startY int) {
	f.mines = f.newMineGrid(startX, startY, f.rnd)
	f.counts = f.countNeighborMines(f.mines)
	Log.WithFields(logrus.Fields{
		"seed":      f.Seed(),
		"safeStart": f.SafeStart,
	}).Debug("planted mines")
}

func (f *Field) planted() bool {
	return f.mines != nil
}

// Status derives the game state from the field: Lost once a mine cell is
// revealed, Won once every non-mine cell is, InProgress otherwise.
func (f *Field) Status() GameStatus {
	switch {
	case f.dead:
		return Lost
	case f.won:
		return Won
	default:
		return InProgress
	}
}

// Snapshot returns a copy of the player grid for the renderer.
func (f *Field) Snapshot() Grid {
	g := make(Grid, len(f.grid))
	copy(g, f.grid)
	return g
}

// FlagsRemaining is the configured mine count minus placed flags. It may
// go negative: flags are a player aid and are not validated against the
// true mine total.
func (f *Field) FlagsRemaining() int {
	remaining := f.MineCount
	for _, s := range f.grid {
		if s == Flagged {
			remaining--
		}
	}
	return remaining
}

// OpenCell reveals the cell at x:y. Flagged cells, already-open cells and
// finished games make it a no-op. Opening a mine marks it exploded and
// loses the game; opening a zero-count cell floods the connected
// zero-count region and its numbered border.
func (f *Field) OpenCell(x, y int) {
	f.assertInBounds(x, y)
	if f.dead || f.won {
		return
	}
	i := y*f.Width + x
	if f.grid[i] != Unknown {
		return /* flagged or already open */
	}

	if !f.planted() {
		f.plant(x, y)
	}

	if f.mines[i] {
		/*
		 * The player has landed on a mine. Bad luck. Expose the mine
		 * that killed them; RevealRemaining fills in the rest.
		 */
		f.dead = true
		f.grid[i] = ExplodedMine
		return
	}

	/*
	 * Open the cell, then flood outwards from every zero-count cell
	 * with an explicit worklist. Each cell enters the list at most
	 * once, so the fill is bounded by the grid size. Flagged cells
	 * never enter the list, whatever their count.
	 */
	todo := []int{i}
	f.grid[i] = CellState(f.counts[i])
	for len(todo) > 0 {
		j := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		if f.counts[j] != 0 {
			continue
		}
		jx, jy := j%f.Width, j/f.Width
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				xx, yy := jx+dx, jy+dy
				if (dx != 0 || dy != 0) &&
					0 <= xx && xx < f.Width &&
					0 <= yy && yy < f.Height &&
					f.grid[yy*f.Width+xx] == Unknown {
					k := yy*f.Width + xx
					f.grid[k] = CellState(f.counts[k])
					todo = append(todo, k)
				}
			}
		}
	}

	/*
	 * Finally, scan the grid and see if exactly as many cells are
	 * still covered as there are mines. If so, set the `won' flag and
	 * fill in flags on all covered cells.
	 */
	var ncovered int
	for _, s := range f.grid {
		if s.Covered() {
			ncovered++
		}
	}
	if ncovered == f.MineCount {
		for j, s := range f.grid {
			if s == Unknown {
				f.grid[j] = Flagged
			}
		}
		f.won = true
	}
}

// FlagCell toggles the flag on a covered cell. Open cells and finished
// games make it a no-op.
func (f *Field) FlagCell(x, y int) {
	f.assertInBounds(x, y)
	if f.dead || f.won {
		return
	}
	i := y*f.Width + x
	if f.grid[i] == Unknown {
		f.grid[i] = Flagged
	} else if f.grid[i] == Flagged {
		f.grid[i] = Unknown
	}
}

// ChordCell opens every covered unflagged neighbor of an open numbered
// cell whose flagged-neighbor count matches its clue. Only the count is
// checked, not flag correctness, so a misplaced flag can detonate a mine.
// When the clue is not satisfied nothing changes and the covered unflagged
// neighbors are returned so the caller can highlight them.
func (f *Field) ChordCell(x, y int) (pressed []Point) {
	f.assertInBounds(x, y)
	if f.dead || f.won {
		return nil
	}
	i := y*f.Width + x
	if !f.grid[i].Open() || f.grid[i] == 0 {
		return nil
	}

	c := int(f.grid[i])
	m := 0
	var covered []Point
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			xx, yy := x+dx, y+dy
			if (dx != 0 || dy != 0) &&
				0 <= xx && xx < f.Width &&
				0 <= yy && yy < f.Height {
				switch f.grid[yy*f.Width+xx] {
				case Flagged:
					m++
				case Unknown:
					covered = append(covered, Point{xx, yy})
				}
			}
		}
	}

	if c != m {
		return covered
	}
	for _, p := range covered {
		f.OpenCell(p.X, p.Y)
		if f.dead || f.won {
			break
		}
	}
	return nil
}

// RevealRemaining exposes the rest of the field after a loss: unflagged
// mines, the correctness of every flag, and the counts of cells the
// player never reached. No-op while the game is still in progress.
func (f *Field) RevealRemaining() {
	if !f.dead {
		return
	}
	for i, s := range f.grid {
		switch s {
		case Flagged:
			if f.mines[i] {
				f.grid[i] = CorrectFlag
			} else {
				f.grid[i] = WrongFlag
			}
		case Unknown:
			if f.mines[i] {
				f.grid[i] = UnflaggedMine
			} else {
				f.grid[i] = CellState(f.counts[i])
			}
		}
	}
}
