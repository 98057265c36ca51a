package mines

import (
	"fmt"
	"strings"
)

type GameParams struct {
	Width, Height, MineCount int
	SafeStart                bool
}

var ErrInvalidParams = fmt.Errorf("invalid game params")

// Validate checks the generator contract: positive dimensions and enough
// room for at least one safe cell.
func (p GameParams) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf(
			"%w: dimensions must be positive (have %dx%d)",
			ErrInvalidParams, p.Width, p.Height,
		)
	}
	if p.MineCount <= 0 {
		return fmt.Errorf(
			"%w: mine count must be positive (have %d)",
			ErrInvalidParams, p.MineCount,
		)
	}
	if p.MineCount >= p.Width*p.Height {
		return fmt.Errorf(
			"%w: %d mines do not leave a safe cell on a %dx%d field",
			ErrInvalidParams, p.MineCount, p.Width, p.Height,
		)
	}
	return nil
}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

func (p GameParams) CellCount() int {
	return p.Width * p.Height
}

func (p GameParams) PointInBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}

// Seed is a short textual key for this difficulty, used to file best times.
// SafeStart does not change the difficulty and is not part of the key.
func (p GameParams) Seed() string {
	return fmt.Sprintf("%dx%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.NewReplacer("x", " ", ":", " ").Replace(seed)
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`%w: bad seed (seed = "%s", n = %d, err = %v)`,
			ErrInvalidParams, seed, n, err,
		)
	}
	return p, nil
}

// Classic preset shapes.
var (
	Beginner     = GameParams{Width: 9, Height: 9, MineCount: 10}
	Intermediate = GameParams{Width: 16, Height: 16, MineCount: 40}
	Expert       = GameParams{Width: 30, Height: 16, MineCount: 99}
)

var presets = map[string]GameParams{
	"beginner":     Beginner,
	"intermediate": Intermediate,
	"expert":       Expert,
}

func Preset(name string) (GameParams, bool) {
	p, ok := presets[strings.ToLower(name)]
	return p, ok
}
