package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// game bundles everything the driver carries between generations except the grid itself
type game struct {
	config   utils.Config
	rng      *rand.Rand
	pool     *model.GridPool
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	history  *model.History

	out      io.Writer
	sleep    func(time.Duration)
	clear    func()
	recycled int // grids handed back to the pool
}

// initializeGame sets up the driver state and the first generation
func initializeGame(config utils.Config) (*game, *model.Grid, error) {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	renderer := model.NewTerminalRenderer(os.Stdout, config.Colors)
	gm := &game{
		config:   config,
		rng:      rand.New(rand.NewSource(seed)),
		pool:     pool,
		renderer: renderer,
		stats:    utils.NewStats(),
		history:  model.NewHistory(config.HistorySize),
		out:      os.Stdout,
		sleep:    time.Sleep,
		clear:    renderer.Clear,
	}

	grid, err := gm.newInitialGrid()
	if err != nil {
		return nil, nil, err
	}
	return gm, grid, nil
}

// newInitialGrid builds a first generation from the configured pattern or random density
func (gm *game) newInitialGrid() (*model.Grid, error) {
	fill, err := initialFill(gm.config, gm.rng)
	if err != nil {
		return nil, err
	}
	grid, err := model.NewGrid(gm.config.Width, gm.config.Height, fill)
	if err != nil {
		return nil, errors.Wrap(err, "[newInitialGrid] failed to create grid")
	}
	return grid, nil
}

// initialFill picks the initializer for config
func initialFill(config utils.Config, rng *rand.Rand) (model.FillFunc, error) {
	if config.Pattern == utils.PatternRandom {
		return model.RandomFill(rng, config.RandomDensity), nil
	}
	pattern, err := model.LookupPattern(config.Pattern)
	if err != nil {
		return nil, err
	}
	return model.CenteredPatternFill(pattern, config.Width, config.Height), nil
}

// advance computes the next generation and releases the previous one
func (gm *game) advance(grid *model.Grid) *model.Grid {
	next := grid.Advance(gm.config, gm.pool)
	gm.release(grid)
	return next
}

// release returns a grid the driver no longer references to the pool
func (gm *game) release(grid *model.Grid) {
	if gm.pool == nil {
		return
	}
	model.GridToPool(grid, gm.pool)
	gm.recycled++
}

// run drives the simulation until stop fires or MaxGenerations is reached.
// It returns the number of the last generation shown.
func (gm *game) run(grid *model.Grid, stop <-chan os.Signal) (int, error) {
	gm.displayGameInfo(grid)

	var (
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for {
		select {
		case <-stop:
			fmt.Fprintln(gm.out, "\n🛑 Shutting down gracefully...")
			gm.displayFinalStats(generation)
			gm.release(grid)
			return generation, nil
		default:
		}

		frameStart := time.Now()
		gm.clear()

		livingCells, density, status, isStagnant := gm.updateGameState(grid, generation, lastFrameTime)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		gm.displayGameStatus(grid, generation, livingCells, density, status, lastRestartGen)
		gm.renderer.Display(grid)

		if gm.config.MaxGenerations > 0 && generation >= gm.config.MaxGenerations {
			fmt.Fprintf(gm.out, "\n🏁 Reached maximum generations limit (%d)\n", gm.config.MaxGenerations)
			break
		}

		if shouldRestart, reason := checkRestartConditions(livingCells, stagnantCount, gm.config); shouldRestart && gm.config.AutoRestart {
			fmt.Fprintf(gm.out, "🔄 Restarting due to %s...\n", reason)

			fresh, err := gm.restartGame()
			if err != nil {
				return generation, err
			}
			gm.release(grid)
			grid = fresh
			generation++
			lastRestartGen = generation
			stagnantCount = 0

			// show the fresh board before evolving it
			continue
		}

		grid = gm.advance(grid)
		generation++

		gm.sleep(gm.config.FrameRate)
	}

	gm.displayFinalStats(generation)
	gm.release(grid)
	return generation, nil
}

// displayGameInfo shows the initial game information
func (gm *game) displayGameInfo(grid *model.Grid) {
	engine := "sequential"
	switch {
	case gm.config.UseBoundedGrid:
		engine = "bounded"
	case gm.config.UseParallel:
		engine = "parallel"
	}
	fmt.Fprintf(gm.out, "Features: Memory Pool: %v, Engine: %s, Auto restart: %v\n",
		gm.config.UseMemoryPool, engine, gm.config.AutoRestart)
	fmt.Fprintf(gm.out, "Grid: %dx%d | Pattern: %s | Initial living cells: %d\n",
		grid.Width(), grid.Height(), gm.config.Pattern, grid.CountLivingCells())
	fmt.Fprintln(gm.out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(gm.out)
	gm.sleep(2 * time.Second)
}

// updateGameState updates stats and history and returns status information
func (gm *game) updateGameState(
	grid *model.Grid,
	generation int,
	lastFrameTime time.Time,
) (int, float64, string, bool) {
	livingCells := grid.CountLivingCells()
	density := float64(livingCells) / float64(grid.Width()*grid.Height()) * 100

	gm.stats.Update(generation, livingCells, time.Since(lastFrameTime))

	isStagnant := gm.history.IsStagnant(grid)
	gm.history.Record(grid)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func (gm *game) displayGameStatus(
	grid *model.Grid,
	generation, livingCells int,
	density float64,
	status string,
	lastRestartGen int,
) {
	// Show bounding box info for bounded grids
	boundingInfo := ""
	if gm.config.UseBoundedGrid {
		boundingInfo = fmt.Sprintf(" | Bounding box: %d cells", grid.BoundingBoxSize())
	}

	fmt.Fprintf(gm.out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s%s\n",
		generation, livingCells, density, status, boundingInfo)
	fmt.Fprintf(gm.out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		gm.stats.GenerationsPerSecond, gm.stats.AveragePopulation, gm.stats.Runtime().Seconds())

	if lastRestartGen > 0 {
		fmt.Fprintf(gm.out, "Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Fprintln(gm.out)
}

func (gm *game) displayFinalStats(generation int) {
	fmt.Fprintf(gm.out, "Final stats: %d generations in %.1f seconds, %d restarts\n",
		generation, gm.stats.Runtime().Seconds(), gm.stats.Restarts)
	fmt.Fprintf(gm.out, "Average: %.1f gen/sec, %.1f avg population\n",
		gm.stats.GenerationsPerSecond, gm.stats.AveragePopulation)
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame replaces the board with a fresh initial generation
func (gm *game) restartGame() (*model.Grid, error) {
	fmt.Fprintf(gm.out, "\n🔄 Restarting...\n")
	gm.sleep(1 * time.Second)

	grid, err := gm.newInitialGrid()
	if err != nil {
		return nil, err
	}
	gm.history.Reset()
	gm.stats.Restarts++

	fmt.Fprintf(gm.out, "✨ New board loaded! Living cells: %d\n", grid.CountLivingCells())
	gm.sleep(2 * time.Second)

	return grid, nil
}
