package model

import "math/rand"

// FillFunc supplies the initial value of the cell at (x, y)
type FillFunc func(x, y int) Cell

// AllDead is a FillFunc producing an empty grid
func AllDead(int, int) Cell {
	return Dead
}

// RandomFill returns a FillFunc that marks each cell alive with probability density.
// The returned func draws from rng and is not safe for concurrent use.
func RandomFill(rng *rand.Rand, density float64) FillFunc {
	return func(int, int) Cell {
		return Cell(rng.Float64() < density)
	}
}

// PatternFill returns a FillFunc placing pattern with its top-left corner at (offsetX, offsetY).
// Cells outside the pattern are dead.
func PatternFill(pattern Pattern, offsetX, offsetY int) FillFunc {
	return func(x, y int) Cell {
		px, py := x-offsetX, y-offsetY
		if py < 0 || py >= len(pattern.Rows) || px < 0 || px >= len(pattern.Rows[py]) {
			return Dead
		}
		return Cell(pattern.Rows[py][px])
	}
}

// CenteredPatternFill places pattern in the middle of a width x height grid
func CenteredPatternFill(pattern Pattern, width, height int) FillFunc {
	return PatternFill(pattern, (width-pattern.Width())/2, (height-pattern.Height())/2)
}
