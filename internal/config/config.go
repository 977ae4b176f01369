// Package config provides YAML-based configuration loading and validation
// for the Roomba Cleanup game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/roomba-cleanup/internal/core"
)

// Configuration errors. Loaders wrap these so callers can match with errors.Is.
var (
	ErrInvalidGrid     = errors.New("grid dimensions must be positive")
	ErrTooMuchTrash    = errors.New("starting trash does not fit on the grid")
	ErrInvalidChance   = errors.New("spawn chance must be within [0, 1]")
	ErrInvalidInterval = errors.New("spawn interval must be positive")
	ErrInvalidCellSize = errors.New("cell size must be positive")
	ErrInvalidColor    = errors.New("invalid theme color")
)

// Config contains all configuration for the game.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Trash   TrashConfig   `yaml:"trash"`
	Hazards HazardsConfig `yaml:"hazards"`
	Theme   ThemeConfig   `yaml:"theme"`
}

// GridConfig defines the board size.
type GridConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"` // Tile size in pixels
}

// TrashConfig defines the starting layout.
type TrashConfig struct {
	Starting int `yaml:"starting"`
}

// HazardsConfig defines the spawn process.
type HazardsConfig struct {
	SpawnChance     float64 `yaml:"spawn_chance"`      // Probability per tick
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"` // Tick period
}

// ThemeConfig holds hex colors for each render role.
type ThemeConfig struct {
	Background string `yaml:"background"`
	Grid       string `yaml:"grid"`
	Player     string `yaml:"player"`
	Trash      string `yaml:"trash"`
	Hazard     string `yaml:"hazard"`
	Text       string `yaml:"text"`
}

// Cells returns the number of cells on the board.
func (g GridConfig) Cells() int {
	return g.Width * g.Height
}

// SpawnInterval returns the tick period as a duration.
func (h HazardsConfig) SpawnInterval() time.Duration {
	return time.Duration(h.SpawnIntervalMS) * time.Millisecond
}

// Validate checks that the configuration describes a playable game.
// The center cell is reserved for the player, so at most Cells()-1 trash tiles fit.
func (c Config) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("config: %w: %dx%d", ErrInvalidGrid, c.Grid.Width, c.Grid.Height)
	}
	if c.Trash.Starting < 1 || c.Trash.Starting > c.Grid.Cells()-1 {
		return fmt.Errorf("config: %w: %d tiles on a %dx%d grid",
			ErrTooMuchTrash, c.Trash.Starting, c.Grid.Width, c.Grid.Height)
	}
	if c.Hazards.SpawnChance < 0 || c.Hazards.SpawnChance > 1 {
		return fmt.Errorf("config: %w: %v", ErrInvalidChance, c.Hazards.SpawnChance)
	}
	if c.Hazards.SpawnIntervalMS <= 0 {
		return fmt.Errorf("config: %w: %dms", ErrInvalidInterval, c.Hazards.SpawnIntervalMS)
	}
	if c.Grid.CellSize <= 0 {
		return fmt.Errorf("config: %w: %d", ErrInvalidCellSize, c.Grid.CellSize)
	}
	if _, err := c.Theme.Palette(); err != nil {
		return err
	}
	return nil
}

// Palette parses the theme into render-role colors.
func (t ThemeConfig) Palette() (core.Palette, error) {
	entries := []struct {
		role core.Color
		hex  string
	}{
		{core.ColorBackground, t.Background},
		{core.ColorGrid, t.Grid},
		{core.ColorPlayer, t.Player},
		{core.ColorTrash, t.Trash},
		{core.ColorHazard, t.Hazard},
		{core.ColorText, t.Text},
	}

	p := make(core.Palette, len(entries))
	for _, e := range entries {
		c, err := colorful.Hex(e.hex)
		if err != nil {
			return nil, fmt.Errorf("config: %w: %s %q", ErrInvalidColor, e.role, e.hex)
		}
		p[e.role] = c
	}
	return p, nil
}
