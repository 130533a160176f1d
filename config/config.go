// Package config loads game settings from YAML. The embedded default.yaml
// always applies first; an optional file on disk overrides any keys it sets.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/mazerun/maze"
)

//go:embed default.yaml
var defaultYAML []byte

// CoordSpec is a cell position as written in YAML.
type CoordSpec struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Config holds every tunable of a game session and its window.
type Config struct {
	Rows            int        `yaml:"rows"`
	Cols            int        `yaml:"cols"`
	WallProbability float64    `yaml:"wall_probability"`
	Start           *CoordSpec `yaml:"start"`
	End             *CoordSpec `yaml:"end"`
	Solver          string     `yaml:"solver"`
	MaxAttempts     int        `yaml:"max_attempts"`
	Seed            uint64     `yaml:"seed"`

	CellSize    int    `yaml:"cell_size"`
	HUDHeight   int    `yaml:"hud_height"`
	MoveDelayMS int    `yaml:"move_delay_ms"`
	ShowPath    bool   `yaml:"show_path"`
	ScoreScript string `yaml:"score_script"`
	Watch       bool   `yaml:"watch"`
}

// Default returns the embedded configuration.
func Default() Config {
	cfg, err := decode(Config{}, defaultYAML)
	if err != nil {
		panic("config: embedded default: " + err.Error())
	}
	return cfg
}

// Load returns the embedded defaults overlaid with the file at path. An
// empty path returns the defaults. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg, err = decode(cfg, data)
	if err != nil {
		return Config{}, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func decode(base Config, data []byte) (Config, error) {
	if err := yaml.Unmarshal(data, &base); err != nil {
		return Config{}, err
	}
	return base, nil
}

// StartCoord is the configured start cell, the top-left cell by default.
func (c Config) StartCoord() maze.Coord {
	if c.Start == nil {
		return maze.Coord{}
	}
	return maze.Coord{Row: c.Start.Row, Col: c.Start.Col}
}

// EndCoord is the configured end cell, the bottom-right cell by default.
func (c Config) EndCoord() maze.Coord {
	if c.End == nil {
		return maze.Coord{Row: c.Rows - 1, Col: c.Cols - 1}
	}
	return maze.Coord{Row: c.End.Row, Col: c.End.Col}
}

// SolverKind parses Solver.
func (c Config) SolverKind() (maze.Solver, error) {
	return maze.ParseSolver(c.Solver)
}

// MoveDelay is the repeat interval for a held movement key.
func (c Config) MoveDelay() time.Duration {
	return time.Duration(c.MoveDelayMS) * time.Millisecond
}

// ScreenSize is the window size in pixels: the maze plus the HUD strip.
func (c Config) ScreenSize() (int, int) {
	return c.Cols * c.CellSize, c.Rows*c.CellSize + c.HUDHeight
}

// Validate reports the first setting that cannot produce a playable session.
func (c Config) Validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("%w: %dx%d", maze.ErrInvalidDimensions, c.Rows, c.Cols)
	}
	if c.WallProbability < 0 || c.WallProbability > 1 {
		return fmt.Errorf("%w: %g", maze.ErrInvalidWallProbability, c.WallProbability)
	}
	bounds := func(name string, p maze.Coord) error {
		if p.Row < 0 || p.Row >= c.Rows || p.Col < 0 || p.Col >= c.Cols {
			return fmt.Errorf("%w: %s (%d,%d) outside %dx%d", ErrOutOfBounds, name, p.Row, p.Col, c.Rows, c.Cols)
		}
		return nil
	}
	if err := bounds("start", c.StartCoord()); err != nil {
		return err
	}
	if err := bounds("end", c.EndCoord()); err != nil {
		return err
	}
	if _, err := c.SolverKind(); err != nil {
		return err
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("%w: max_attempts=%d", ErrInvalidValue, c.MaxAttempts)
	}
	if c.CellSize < 1 {
		return fmt.Errorf("%w: cell_size=%d", ErrInvalidValue, c.CellSize)
	}
	if c.HUDHeight < 0 {
		return fmt.Errorf("%w: hud_height=%d", ErrInvalidValue, c.HUDHeight)
	}
	if c.MoveDelayMS < 0 {
		return fmt.Errorf("%w: move_delay_ms=%d", ErrInvalidValue, c.MoveDelayMS)
	}
	return nil
}
