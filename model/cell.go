package model

// Cell is the state of a single grid position
type Cell bool

const (
	Dead  Cell = false
	Alive Cell = true
)

// String returns a readable name for the cell state
func (c Cell) String() string {
	if c == Alive {
		return "ALIVE"
	}
	return "DEAD"
}

// count maps the cell to 1 or 0 for neighbor summation
func (c Cell) count() int {
	if c == Alive {
		return 1
	}
	return 0
}
