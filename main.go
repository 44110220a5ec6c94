package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
	"github.com/sheikhrachel/go-life/view"
)

const defaultConfigFile = "config.json"

// cliOptions holds flag values; zero values mean "keep the config file setting"
type cliOptions struct {
	configFile  string
	width       int
	height      int
	frameRate   time.Duration
	generations int
	density     float64
	seed        int64
	pattern     string
	interactive bool
	parallel    bool
	bounded     bool
	noColor     bool
}

func parseFlags() cliOptions {
	opts := cliOptions{configFile: defaultConfigFile, density: -1}

	flaggy.SetName("go-life")
	flaggy.SetDescription("Conway's Game of Life on a fixed grid")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&opts.configFile, "c", "config", "JSON configuration file")
	flaggy.Int(&opts.width, "x", "width", "Width of the grid in cells")
	flaggy.Int(&opts.height, "y", "height", "Height of the grid in cells")
	flaggy.Duration(&opts.frameRate, "r", "rate", "Interval between generations, for example 100ms")
	flaggy.Int(&opts.generations, "g", "generations", "Stop after this many generations")
	flaggy.Float64(&opts.density, "d", "density", "Probability of a cell starting alive for the random pattern")
	flaggy.Int64(&opts.seed, "s", "seed", "Random seed, 0 seeds from the clock")
	flaggy.String(&opts.pattern, "p", "pattern",
		"Initial pattern ["+strings.Join(append([]string{utils.PatternRandom}, model.PatternNames()...), "|")+"]")
	flaggy.Bool(&opts.interactive, "n", "interactive", "Start the interactive terminal UI")
	flaggy.Bool(&opts.parallel, "", "parallel", "Compute generations on all CPUs")
	flaggy.Bool(&opts.bounded, "b", "bounded", "Only evaluate the region around living cells")
	flaggy.Bool(&opts.noColor, "", "no-color", "Disable coloured output")
	flaggy.Parse()

	return opts
}

// buildConfig overlays the flags on the config file, falling back to defaults when the file is missing
func buildConfig(opts cliOptions) (utils.Config, error) {
	config, err := utils.LoadConfig(opts.configFile)
	if err != nil {
		if opts.configFile != defaultConfigFile || !os.IsNotExist(errors.Cause(err)) {
			return config, err
		}
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	if opts.width > 0 {
		config.Width = opts.width
	}
	if opts.height > 0 {
		config.Height = opts.height
	}
	if opts.frameRate > 0 {
		config.FrameRate = opts.frameRate
	}
	if opts.generations > 0 {
		config.MaxGenerations = opts.generations
	}
	if opts.density >= 0 {
		config.RandomDensity = opts.density
	}
	if opts.seed != 0 {
		config.Seed = opts.seed
	}
	if opts.pattern != "" {
		config.Pattern = opts.pattern
	}
	config.Interactive = config.Interactive || opts.interactive
	config.UseParallel = config.UseParallel || opts.parallel
	config.UseBoundedGrid = config.UseBoundedGrid || opts.bounded
	config.Colors = config.Colors && !opts.noColor

	return config, config.Validate()
}

func main() {
	config, err := buildConfig(parseFlags())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if config.Interactive {
		err = runInteractive(config)
	} else {
		err = run(config)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// runInteractive hands the generation loop to the gocui front end
func runInteractive(config utils.Config) error {
	gm, grid, err := initializeGame(config)
	if err != nil {
		return err
	}
	ui := view.NewInteractive(grid, view.Options{
		Interval:       config.FrameRate,
		MaxGenerations: config.MaxGenerations,
		Colors:         config.Colors,
		Advance:        gm.advance,
		Reseed:         gm.newInitialGrid,
	})
	return ui.Run()
}

// run drives the simulation on plain stdout until interrupted or out of generations
func run(config utils.Config) error {
	gm, grid, err := initializeGame(config)
	if err != nil {
		return err
	}

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	_, err = gm.run(grid, sigChan)
	return err
}
