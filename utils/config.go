package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate for unusable settings
var ErrInvalidConfig = errors.New("invalid config")

// PatternRandom seeds the board with RandomDensity instead of a named pattern
const PatternRandom = "random"

// Config holds the configuration for the simulation driver
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	HistorySize         int           `json:"history_size"`
	UseParallel         bool          `json:"use_parallel"`
	UseBoundedGrid      bool          `json:"use_bounded_grid"`
	Workers             int           `json:"workers"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	MaxGenerations      int           `json:"max_generations"`
	RandomDensity       float64       `json:"random_density"`
	Seed                int64         `json:"seed"`
	Pattern             string        `json:"pattern"`
	Interactive         bool          `json:"interactive"`
	Colors              bool          `json:"colors"`
}

// DefaultConfig returns an 80x60 board at 10 generations per second seeded with a fair coin per cell
func DefaultConfig() Config {
	return Config{
		Width:               80,
		Height:              60,
		FrameRate:           100 * time.Millisecond,
		AutoRestart:         false,
		StagnationThreshold: 5,
		HistorySize:         5,
		UseParallel:         false,
		UseBoundedGrid:      false,
		Workers:             0, // runtime.NumCPU
		UseMemoryPool:       true,
		MaxGenerations:      0, // run until interrupted
		RandomDensity:       0.5,
		Seed:                0, // seeded from the clock
		Pattern:             PatternRandom,
		Interactive:         false,
		Colors:              true,
	}
}

// LoadConfig loads configuration from JSON file on top of DefaultConfig
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks the settings the driver cannot run without
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid must be positive, got %dx%d", c.Width, c.Height)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random_density must be within [0, 1], got %v", c.RandomDensity)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame_rate must not be negative, got %v", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	case c.StagnationThreshold <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] stagnation_threshold must be positive, got %d", c.StagnationThreshold)
	case c.HistorySize < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] history_size must not be negative, got %d", c.HistorySize)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] workers must not be negative, got %d", c.Workers)
	case c.Pattern == "":
		return errors.Wrap(ErrInvalidConfig, "[Validate] pattern must be set")
	}
	return nil
}
