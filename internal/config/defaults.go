package config

import (
	_ "embed"
)

//go:embed defaults/roomba.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:    14,
			Height:   14,
			CellSize: 38,
		},
		Trash: TrashConfig{
			Starting: 24,
		},
		Hazards: HazardsConfig{
			SpawnChance:     0.26,
			SpawnIntervalMS: 1300,
		},
		Theme: ThemeConfig{
			Background: "#f3f4f6",
			Grid:       "#d1d5db",
			Player:     "#2563eb",
			Trash:      "#f59e0b",
			Hazard:     "#7c3f00",
			Text:       "#111827",
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}
