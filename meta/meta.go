// meta/meta.go
package meta

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GO_ROUTINES defines the number of goroutines used to run independent games.
const GO_ROUTINES = 8

// GAMES defines the number of games played by a batch run.
const GAMES = 100

// MAX_MOVES caps the plies of a single game run by the engine.
const MAX_MOVES = 10000

// Board dimensions used when none are configured.
const (
	WIDTH  = 7
	HEIGHT = 6
)

// Config describes a batch of games.
type Config struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	MaxMoves   int `yaml:"max_moves"`
	Goroutines int `yaml:"goroutines"`
	Games      int `yaml:"games"`
}

func Default() Config {
	return Config{
		Width:      WIDTH,
		Height:     HEIGHT,
		MaxMoves:   MAX_MOVES,
		Goroutines: GO_ROUTINES,
		Games:      GAMES,
	}
}

// Parse reads a YAML config. Fields missing from data keep their defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the YAML config at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid board dimensions %dx%d: must be positive", c.Width, c.Height)
	}
	if c.MaxMoves <= 0 {
		return fmt.Errorf("invalid max_moves %d: must be positive", c.MaxMoves)
	}
	if c.Goroutines <= 0 {
		return fmt.Errorf("invalid goroutines %d: must be positive", c.Goroutines)
	}
	if c.Games < 0 {
		return fmt.Errorf("invalid games %d: must not be negative", c.Games)
	}
	return nil
}
