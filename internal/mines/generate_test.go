package mines

import (
	"math/rand/v2"
	"testing"
)

func countMines(grid []bool) (n int) {
	for _, mined := range grid {
		if mined {
			n++
		}
	}
	return
}

// naiveNeighborMines recounts one cell's neighbors the slow way.
func naiveNeighborMines(p GameParams, mines []bool, x, y int) (n int8) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if p.PointInBounds(x+dx, y+dy) && mines[(y+dy)*p.Width+x+dx] {
				n++
			}
		}
	}
	return
}

func TestMineGridGeneration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params GameParams
	}{
		{
			name:   "9x9(10)",
			params: GameParams{Width: 9, Height: 9, MineCount: 10},
		},
		{
			name:   "16x16(40)",
			params: GameParams{Width: 16, Height: 16, MineCount: 40},
		},
		{
			name:   "30x16(99)",
			params: GameParams{Width: 30, Height: 16, MineCount: 99},
		},
		{
			name:   "30x16(170)",
			params: GameParams{Width: 30, Height: 16, MineCount: 170},
		},
		{
			name:   "dense 4x4(14)",
			params: GameParams{Width: 4, Height: 4, MineCount: 14},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(1, 2))
			p := test.params
			for sx := range p.Width {
				for sy := range p.Height {
					grid := p.newMineGrid(sx, sy, r)

					if n := countMines(grid); n != p.MineCount {
						t.Fatalf("%s @ %d:%d planted %d mines, want %d",
							test.name, sx, sy, n, p.MineCount)
					}
					if grid[sy*p.Width+sx] {
						t.Fatalf("%s @ %d:%d has a mine in the starting cell",
							test.name, sx, sy)
					}

					counts := p.countNeighborMines(grid)
					for y := range p.Height {
						for x := range p.Width {
							want := naiveNeighborMines(p, grid, x, y)
							if have := counts[y*p.Width+x]; have != want {
								t.Fatalf("%s: count at %d:%d is %d, want %d",
									test.name, x, y, have, want)
							}
						}
					}
				}
			}
		})
	}
}

func TestMineGridSafeStartHole(t *testing.T) {
	t.Parallel()

	// Sparse enough to afford the full 3x3 hole around the first click.
	p := GameParams{Width: 9, Height: 9, MineCount: 10}
	r := rand.New(rand.NewPCG(3, 4))
	for range 50 {
		sx, sy := r.IntN(p.Width), r.IntN(p.Height)
		grid := p.newMineGrid(sx, sy, r)
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				x, y := sx+dx, sy+dy
				if p.PointInBounds(x, y) && grid[y*p.Width+x] {
					t.Fatalf("mine at %d:%d inside the safe hole around %d:%d",
						x, y, sx, sy)
				}
			}
		}
	}
}

func TestMineGridUnplacedStart(t *testing.T) {
	t.Parallel()

	// A negative start excludes nothing; placement must still be exact.
	p := GameParams{Width: 5, Height: 5, MineCount: 24}
	r := rand.New(rand.NewPCG(5, 6))
	grid := p.newMineGrid(-2, -2, r)
	if n := countMines(grid); n != p.MineCount {
		t.Fatalf("planted %d mines, want %d", n, p.MineCount)
	}
}
