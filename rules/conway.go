package rules

// Classic B3/S23 thresholds.
const (
	MinSurvive = 2
	MaxSurvive = 3
	Birth      = 3
)

/*
NextState applies Conway's Game of Life rules to determine the next state of a cell.

A live cell with 2 or 3 live neighbors survives, a dead cell with exactly 3 is born,
every other cell is dead in the next generation.
*/
func NextState(alive bool, liveNeighbors int) bool {
	if alive {
		return liveNeighbors >= MinSurvive && liveNeighbors <= MaxSurvive
	}
	return liveNeighbors == Birth
}
