package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// Grid is a single generation of the board. It cannot be changed through the exported API;
// every generation produced by the transition engine is a new Grid.
type Grid struct {
	width  int
	height int
	cells  [][]Cell // cells[y][x]
}

// NewGrid creates a width x height grid whose cells are produced by fill.
// fill is called once per cell, row by row. A nil fill yields an all-dead grid.
func NewGrid(width, height int, fill FillFunc) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] width: %d, height: %d", width, height)
	}

	g := allocGrid(width, height)
	if fill == nil {
		return g, nil
	}
	for y := range height {
		for x := range width {
			g.cells[y][x] = fill(x, y)
		}
	}
	return g, nil
}

// MustNewGrid is like NewGrid but panics on invalid dimensions
func MustNewGrid(width, height int, fill FillFunc) *Grid {
	g, err := NewGrid(width, height, fill)
	if err != nil {
		panic(err)
	}
	return g
}

// allocGrid allocates a dead grid backed by a single slice
func allocGrid(width, height int) *Grid {
	var (
		backing = make([]Cell, width*height)
		cells   = make([][]Cell, height)
	)
	for y := range cells {
		start := y * width
		cells[y] = backing[start : start+width : start+width]
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// Width returns the width of the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid
func (g *Grid) Height() int {
	return g.height
}

// Get returns the state of the cell at (x, y)
func (g *Grid) Get(x, y int) (Cell, error) {
	if !g.inBounds(x, y) {
		return Dead, errors.Wrapf(ErrOutOfBounds, "[Get] (%d, %d) outside %dx%d grid", x, y, g.width, g.height)
	}
	return g.cells[y][x], nil
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			count += g.cells[y][x].count()
		}
	}
	return
}

// Hash returns an MD5 digest of the grid state
func (g *Grid) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.width, g.height)
	row := make([]byte, g.width)
	for y := range g.height {
		for x := range g.width {
			row[x] = byte(g.cells[y][x].count())
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders the grid as rows of '#' and '.'
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.width+1)*g.height)
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] == Alive {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

// copyFrom overwrites g with the cells of src; dimensions must match
func (g *Grid) copyFrom(src *Grid) {
	for y := range src.height {
		copy(g.cells[y], src.cells[y])
	}
}

// reset resizes the grid to new dimensions and kills every cell
func (g *Grid) reset(width, height int) {
	if g.width*g.height != width*height || len(g.cells) != height {
		*g = *allocGrid(width, height)
		return
	}
	g.width = width
	g.height = height
	g.clear()
}

// clear kills all cells
func (g *Grid) clear() {
	for y := range g.height {
		for x := range g.width {
			g.cells[y][x] = Dead
		}
	}
}
