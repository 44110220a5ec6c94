package model

// Bounds is the smallest rectangle holding every living cell, inclusive.
// Valid is false for a grid without living cells.
type Bounds struct {
	MinX, MaxX, MinY, MaxY int
	Valid                  bool
}

// ActiveBounds calculates the bounding box of living cells
func (g *Grid) ActiveBounds() (b Bounds) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] != Alive {
				continue
			}
			if !b.Valid {
				b = Bounds{MinX: x, MaxX: x, MinY: y, MaxY: y, Valid: true}
				continue
			}
			b.MinX = min(b.MinX, x)
			b.MaxX = max(b.MaxX, x)
			b.MinY = min(b.MinY, y)
			b.MaxY = max(b.MaxY, y)
		}
	}
	return
}

// BoundingBoxSize returns the number of cells in the active region
func (g *Grid) BoundingBoxSize() int {
	b := g.ActiveBounds()
	if !b.Valid {
		return 0
	}
	return (b.MaxX - b.MinX + 1) * (b.MaxY - b.MinY + 1)
}
