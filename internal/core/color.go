package core

import "image/color"

// Color is the render role of a screen cell. The platform layer decides
// what each role looks like, so games never deal with terminal colors.
type Color uint8

// Render roles for board elements.
const (
	ColorDefault Color = iota
	ColorBackground
	ColorGrid
	ColorPlayer
	ColorTrash
	ColorHazard
	ColorText
)

// String returns the role name used in config and logs.
func (c Color) String() string {
	switch c {
	case ColorBackground:
		return "background"
	case ColorGrid:
		return "grid"
	case ColorPlayer:
		return "player"
	case ColorTrash:
		return "trash"
	case ColorHazard:
		return "hazard"
	case ColorText:
		return "text"
	default:
		return "default"
	}
}

// Palette maps render roles to concrete colors.
type Palette map[Color]color.Color

// Get returns the color for a role, falling back to the background color
// and finally to white.
func (p Palette) Get(c Color) color.Color {
	if col, ok := p[c]; ok {
		return col
	}
	if col, ok := p[ColorBackground]; ok {
		return col
	}
	return color.White
}
