package mines

import "fmt"

type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}

// assertInBounds is the fail-fast contract check on every cell operation:
// callers are expected to clamp coordinates before calling into the engine.
func (p GameParams) assertInBounds(x, y int) {
	if !p.PointInBounds(x, y) {
		panic(AssertionError{fmt.Sprintf(
			"cell %d:%d out of bounds of a %dx%d field",
			x, y, p.Width, p.Height,
		)})
	}
}
