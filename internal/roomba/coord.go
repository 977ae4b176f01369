package roomba

import (
	"fmt"

	"github.com/vovakirdan/roomba-cleanup/internal/core"
)

// Coord is a cell position on the board.
// X increases to the right, Y increases downward (screen coordinates).
// Coord is comparable and is used directly as a set key.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the coordinate offset by a delta.
func (c Coord) Add(d Delta) Coord {
	return Coord{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Clamp restricts the coordinate to a w×h board, axis by axis.
func (c Coord) Clamp(w, h int) Coord {
	return Coord{X: core.Clamp(c.X, 0, w-1), Y: core.Clamp(c.Y, 0, h-1)}
}

// In reports whether the coordinate lies on a w×h board.
func (c Coord) In(w, h int) bool {
	return c.X >= 0 && c.X < w && c.Y >= 0 && c.Y < h
}

// Less orders coordinates row-major, for stable iteration.
func (c Coord) Less(other Coord) bool {
	if c.Y != other.Y {
		return c.Y < other.Y
	}
	return c.X < other.X
}

// Delta is a single movement step.
type Delta struct {
	DX, DY int
}

// The four movement steps.
var (
	DeltaUp    = Delta{DX: 0, DY: -1}
	DeltaDown  = Delta{DX: 0, DY: 1}
	DeltaLeft  = Delta{DX: -1, DY: 0}
	DeltaRight = Delta{DX: 1, DY: 0}
)

// DeltaFor returns the step for a movement action.
func DeltaFor(a core.Action) (Delta, bool) {
	switch a {
	case core.ActionUp:
		return DeltaUp, true
	case core.ActionDown:
		return DeltaDown, true
	case core.ActionLeft:
		return DeltaLeft, true
	case core.ActionRight:
		return DeltaRight, true
	default:
		return Delta{}, false
	}
}
