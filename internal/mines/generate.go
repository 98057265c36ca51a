package mines

import (
	"math/rand/v2"
)

/* ----------------------------------------------------------------------
 * Random mine placement. No solvability guarantee: grids may require
 * guessing, the only courtesy extended to the player is the optional
 * safe-start hole around the first opened cell.
 */

// newMineGrid places exactly p.MineCount mines uniformly at random.
// Cells within one cell of startX:startY are kept clear; when the board
// is too dense to afford the full 3x3 hole, only the start cell itself
// is excluded. A negative start excludes nothing.
func (p GameParams) newMineGrid(startX, startY int, r *rand.Rand) []bool {
	width, height, mineCount := p.Unpack()
	grid := make([]bool, width*height)

	/*
	 * Write down the list of possible mine locations.
	 */
	candidates := make([]int, 0, width*height)
	for y := range height {
		for x := range width {
			if absDiff(startY, y) > 1 || absDiff(startX, x) > 1 {
				candidates = append(candidates, y*width+x)
			}
		}
	}

	if len(candidates) < mineCount {
		/*
		 * Not enough room outside the 3x3 hole. Shrink the exclusion
		 * zone to the start cell alone; Validate() guarantees this
		 * leaves room.
		 */
		candidates = candidates[:0]
		for i := range width * height {
			if i != startY*width+startX {
				candidates = append(candidates, i)
			}
		}
	}

	/*
	 * Now pick n off the list at random.
	 */
	k := len(candidates)
	for range mineCount {
		i := r.IntN(k)
		grid[candidates[i]] = true
		k--
		candidates[i] = candidates[k]
	}

	return grid
}

// countNeighborMines computes the adjacent-mine count of every cell by
// summing mine flags over up to 8 neighbors, once per generation.
func (p GameParams) countNeighborMines(mines []bool) []int8 {
	width, height, _ := p.Unpack()
	counts := make([]int8, width*height)
	for y := range height {
		for x := range width {
			var n int8
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					xx, yy := x+dx, y+dy
					if (dx != 0 || dy != 0) &&
						0 <= xx && xx < width &&
						0 <= yy && yy < height &&
						mines[yy*width+xx] {
						n++
					}
				}
			}
			counts[y*width+x] = n
		}
	}
	return counts
}
