package main

import (
	"bytes"
	"os"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func TestCheckRestartConditions(t *testing.T) {
	config := utils.DefaultConfig()
	tests := []struct {
		name                       string
		livingCells, stagnantCount int
		want                       bool
		reason                     string
	}{
		{"extinct", 0, 0, true, "extinction"},
		{"stagnant", 10, config.StagnationThreshold, true, "stagnation detected"},
		{"active", 10, config.StagnationThreshold - 1, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := checkRestartConditions(tt.livingCells, tt.stagnantCount, config)
			if got != tt.want || reason != tt.reason {
				t.Errorf("checkRestartConditions = (%v, %q), want (%v, %q)", got, reason, tt.want, tt.reason)
			}
		})
	}
}

func TestInitializeGamePattern(t *testing.T) {
	config := utils.DefaultConfig()
	config.Width, config.Height = 6, 6
	config.Pattern = "block"

	gm, grid, err := initializeGame(config)
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}
	block, _ := model.LookupPattern("block")
	if want := model.MustNewGrid(6, 6, model.PatternFill(block, 2, 2)); !grid.Equal(want) {
		t.Fatalf("initial grid =\n%s\nwant\n%s", grid, want)
	}

	_, _, _, stagnant := gm.updateGameState(grid, 0, gm.stats.StartTime)
	if stagnant {
		t.Fatalf("first generation reported as stagnant")
	}
	next := gm.advance(grid)
	if _, _, status, stagnant := gm.updateGameState(next, 1, gm.stats.StartTime); !stagnant || status != "Stagnant" {
		t.Fatalf("block not detected as stagnant, status %q", status)
	}
}

func TestInitializeGameSeededRandom(t *testing.T) {
	config := utils.DefaultConfig()
	config.Seed = 99
	config.UseMemoryPool = false

	_, a, err := initializeGame(config)
	if err != nil {
		t.Fatal(err)
	}
	_, b, err := initializeGame(config)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Fatalf("same seed produced different boards")
	}
}

func TestInitializeGameUnknownPattern(t *testing.T) {
	config := utils.DefaultConfig()
	config.Pattern = "spaceship"
	if _, _, err := initializeGame(config); !errors.Is(err, model.ErrUnknownPattern) {
		t.Fatalf("initializeGame error = %v, want ErrUnknownPattern", err)
	}
}

func TestBuildConfigFlagsOverride(t *testing.T) {
	config, err := buildConfig(cliOptions{
		configFile: defaultConfigFile,
		width:      12,
		density:    -1,
		pattern:    "toad",
		parallel:   true,
		bounded:    true,
		noColor:    true,
	})
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	if config.Width != 12 || config.Height != 60 || config.Pattern != "toad" ||
		!config.UseParallel || !config.UseBoundedGrid || config.Colors || config.RandomDensity != 0.5 {
		t.Fatalf("unexpected config: %+v", config)
	}

	if _, err := buildConfig(cliOptions{configFile: defaultConfigFile, density: 2}); !errors.Is(err, utils.ErrInvalidConfig) {
		t.Fatalf("density 2 error = %v, want ErrInvalidConfig", err)
	}
}

// quietGame builds a game that writes to a buffer and never sleeps
func quietGame(t *testing.T, config utils.Config) (*game, *model.Grid, *bytes.Buffer, *[]time.Duration) {
	t.Helper()
	gm, grid, err := initializeGame(config)
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}
	var (
		buf    bytes.Buffer
		sleeps []time.Duration
	)
	gm.out = &buf
	gm.renderer = model.NewTerminalRenderer(&buf, false)
	gm.clear = func() {}
	gm.sleep = func(d time.Duration) { sleeps = append(sleeps, d) }
	return gm, grid, &buf, &sleeps
}

func testRunConfig() utils.Config {
	config := utils.DefaultConfig()
	config.Width, config.Height = 7, 7
	config.FrameRate = 1
	config.Seed = 1
	config.Colors = false
	return config
}

func TestRunStopsAtMaxGenerations(t *testing.T) {
	config := testRunConfig()
	config.Pattern = "blinker"
	config.MaxGenerations = 3

	gm, grid, out, sleeps := quietGame(t, config)
	generation, err := gm.run(grid, nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if generation != 3 {
		t.Fatalf("run stopped at generation %d, want 3", generation)
	}
	for _, want := range []string{
		"Gen: 0 |",
		"Gen: 3 |",
		"Reached maximum generations limit (3)",
		"Final stats: 3 generations",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
	if strings.Contains(out.String(), "Gen: 4 |") {
		t.Errorf("a generation past the limit was shown")
	}
	// blinker is period 2, so generations 2 and 3 repeat earlier boards
	if !strings.Contains(out.String(), "Status: Stagnant") {
		t.Errorf("blinker never reported as stagnant")
	}
	if gm.history.Len() != 4 {
		t.Errorf("history holds %d generations, want 4", gm.history.Len())
	}
	// three released generations plus the final board
	if gm.recycled != 4 {
		t.Errorf("recycled %d grids, want 4", gm.recycled)
	}
	want := []time.Duration{2 * time.Second, 1, 1, 1}
	if len(*sleeps) != len(want) {
		t.Fatalf("sleeps = %v, want %v", *sleeps, want)
	}
	for i := range want {
		if (*sleeps)[i] != want[i] {
			t.Fatalf("sleeps = %v, want %v", *sleeps, want)
		}
	}
}

func TestRunAutoRestart(t *testing.T) {
	config := testRunConfig()
	config.RandomDensity = 0
	config.AutoRestart = true
	config.MaxGenerations = 3

	gm, grid, out, _ := quietGame(t, config)
	generation, err := gm.run(grid, nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if generation != 3 {
		t.Fatalf("run stopped at generation %d, want 3", generation)
	}
	if gm.stats.Restarts != 3 {
		t.Errorf("Restarts = %d, want 3", gm.stats.Restarts)
	}
	if gm.history.Len() != 1 {
		t.Errorf("history holds %d generations after restart, want 1", gm.history.Len())
	}
	if gm.recycled != 4 {
		t.Errorf("recycled %d grids, want 4", gm.recycled)
	}
	for _, want := range []string{
		"Restarting due to extinction",
		"Generations since restart: 0",
		"Final stats: 3 generations in",
		"3 restarts",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunStopsOnSignal(t *testing.T) {
	config := testRunConfig()
	config.Pattern = "block"

	stop := make(chan os.Signal, 1)
	stop <- syscall.SIGINT

	gm, grid, out, _ := quietGame(t, config)
	generation, err := gm.run(grid, stop)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if generation != 0 {
		t.Fatalf("run stopped at generation %d, want 0", generation)
	}
	if !strings.Contains(out.String(), "Shutting down gracefully") {
		t.Errorf("output missing shutdown message:\n%s", out.String())
	}
	if gm.recycled != 1 {
		t.Errorf("recycled %d grids, want 1", gm.recycled)
	}
}

func TestRunBoundedStatus(t *testing.T) {
	config := testRunConfig()
	config.Pattern = "block"
	config.UseBoundedGrid = true
	config.UseMemoryPool = false
	config.MaxGenerations = 1

	gm, grid, out, _ := quietGame(t, config)
	if _, err := gm.run(grid, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range []string{"Engine: bounded", "Bounding box: 4 cells"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
	if gm.recycled != 0 {
		t.Errorf("recycled %d grids without a pool", gm.recycled)
	}
}
