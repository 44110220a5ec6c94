package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

// Step returns the generation following g.
//
// Only interior cells are evaluated. The outermost ring is copied from g unchanged every
// generation, whatever its neighbor counts. This is inherited behavior kept for output
// compatibility; it is neither a toroidal nor a dead boundary.
// g is never modified.
func Step(g *Grid) *Grid {
	next := allocGrid(g.width, g.height)
	next.copyFrom(g)
	g.stepRows(next, 1, g.height-1)
	return next
}

// NextGeneration calculates the next generation sequentially
func (g *Grid) NextGeneration() *Grid {
	return Step(g)
}

// NextGenerationParallel calculates the next generation with interior rows split across
// workers. A non-positive workers uses runtime.NumCPU. The result equals Step(g).
func (g *Grid) NextGenerationParallel(pool *GridPool, workers int) *Grid {
	var next *Grid
	if pool != nil {
		next = pool.Get(g.width, g.height)
	} else {
		next = allocGrid(g.width, g.height)
	}
	next.copyFrom(g)

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		eg            errgroup.Group
		firstRow      = 1
		lastRow       = g.height - 1 // exclusive
		interiorRows  = max(0, lastRow-firstRow)
		rowsPerWorker = (interiorRows + workers - 1) / workers // Ceiling division
	)
	if interiorRows == 0 {
		return next
	}

	for i := range workers {
		var (
			startRow = firstRow + i*rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, lastRow)
		)
		if startRow >= lastRow {
			break
		}

		eg.Go(func() error {
			g.stepRows(next, startRow, endRow)
			return nil
		})
	}

	// workers only write disjoint rows and never fail
	_ = eg.Wait()

	return next
}

// NextGenerationBounded calculates the next generation evaluating only the active region:
// the bounding box of living cells plus a one cell margin, clipped to the interior.
// Cells further out have no living neighbors and stay as copied. The result equals Step(g).
func (g *Grid) NextGenerationBounded(pool *GridPool) *Grid {
	var next *Grid
	if pool != nil {
		next = pool.Get(g.width, g.height)
	} else {
		next = allocGrid(g.width, g.height)
	}
	next.copyFrom(g)

	b := g.ActiveBounds()
	if !b.Valid {
		return next
	}

	var (
		minX = max(1, b.MinX-1)
		maxX = min(g.width-2, b.MaxX+1)
		minY = max(1, b.MinY-1)
		maxY = min(g.height-2, b.MaxY+1)
	)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			alive := rules.NextState(bool(g.cells[y][x]), g.countLiveNeighbors(x, y))
			next.cells[y][x] = Cell(alive)
		}
	}
	return next
}

// Advance calculates the next generation with the engine selected by config
func (g *Grid) Advance(config utils.Config, pool *GridPool) *Grid {
	if config.UseBoundedGrid {
		return g.NextGenerationBounded(pool)
	}
	if config.UseParallel {
		return g.NextGenerationParallel(pool, config.Workers)
	}
	if pool != nil {
		next := pool.Get(g.width, g.height)
		next.copyFrom(g)
		g.stepRows(next, 1, g.height-1)
		return next
	}
	return Step(g)
}

// stepRows writes the next state of interior cells in rows [startRow, endRow) into next.
// next must already hold a copy of g.
func (g *Grid) stepRows(next *Grid, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := 1; x < g.width-1; x++ {
			alive := rules.NextState(bool(g.cells[y][x]), g.countLiveNeighbors(x, y))
			next.cells[y][x] = Cell(alive)
		}
	}
}

// countLiveNeighbors counts living cells among the 8 surrounding (x, y).
// (x, y) must be an interior cell, so no bounds checks are needed.
func (g *Grid) countLiveNeighbors(x, y int) int {
	count := 0
	for ny := y - 1; ny <= y+1; ny++ {
		row := g.cells[ny]
		count += row[x-1].count() + row[x].count() + row[x+1].count()
	}
	return count - g.cells[y][x].count()
}
