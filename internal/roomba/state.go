// Package roomba implements the Roomba Cleanup game: a robot on a fixed grid
// must clean every trash tile while hazards keep appearing on the floor.
// The package holds pure game logic and drawing into core.Screen; input
// delivery and timing belong to the platform layer.
package roomba

import (
	"errors"
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Setup errors returned by Reset.
var (
	ErrInvalidGrid  = errors.New("roomba: grid dimensions must be positive")
	ErrTooMuchTrash = errors.New("roomba: starting trash does not fit on the grid")
)

// Status messages shown under the board.
const (
	WinMessage  = "You cleaned everything! Press R to play again."
	LossMessage = "You hit poop. Game over! Press R to restart."
)

// Rand is the randomness a State draws from. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Rules are the fixed parameters of one game.
type Rules struct {
	Width         int
	Height        int
	StartingTrash int
}

// Center returns the player's starting cell.
func (r Rules) Center() Coord {
	return C(r.Width/2, r.Height/2)
}

func (r Rules) validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGrid, r.Width, r.Height)
	}
	if r.StartingTrash < 0 || r.StartingTrash > r.Width*r.Height-1 {
		return fmt.Errorf("%w: %d tiles on a %dx%d grid", ErrTooMuchTrash, r.StartingTrash, r.Width, r.Height)
	}
	return nil
}

// Phase is the game's position in its state machine.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Event describes what a single mutation did.
type Event int

const (
	EventIgnored   Event = iota // Game already over
	EventMoved                  // Player moved onto an empty cell
	EventCleaned                // Player cleaned a trash tile
	EventWon                    // Last trash tile cleaned
	EventLost                   // Player and a hazard share a cell
	EventNoSpawn                // Spawn draw failed
	EventSaturated              // No free cell left for a hazard
	EventSpawned                // Hazard placed away from the player
	EventRestarted              // New game started
)

func (e Event) String() string {
	switch e {
	case EventIgnored:
		return "ignored"
	case EventMoved:
		return "moved"
	case EventCleaned:
		return "cleaned"
	case EventWon:
		return "won"
	case EventLost:
		return "lost"
	case EventNoSpawn:
		return "no_spawn"
	case EventSaturated:
		return "saturated"
	case EventSpawned:
		return "spawned"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// State is the complete game state.
//
// Invariants: the player is always on the board, trash and hazards never
// share a cell, victory implies gameOver with no trash left, and a loss
// implies the player stands on a hazard.
type State struct {
	rules    Rules
	player   Coord
	trash    mapset.Set[Coord]
	hazards  mapset.Set[Coord]
	gameOver bool
	victory  bool
	moves    int
}

// NewState creates a freshly initialized game.
func NewState(rules Rules, rng Rand) (*State, error) {
	s := &State{rules: rules}
	if err := s.Reset(rng); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset starts a new game: player at the center, StartingTrash tiles drawn
// uniformly without replacement from every other cell, no hazards.
// On error the state is left untouched.
func (s *State) Reset(rng Rand) error {
	if err := s.rules.validate(); err != nil {
		return err
	}

	center := s.rules.Center()

	// Row-major enumeration of every cell except the center
	cells := make([]Coord, 0, s.rules.Width*s.rules.Height-1)
	for y := 0; y < s.rules.Height; y++ {
		for x := 0; x < s.rules.Width; x++ {
			if c := C(x, y); c != center {
				cells = append(cells, c)
			}
		}
	}

	// Partial Fisher-Yates: the first k slots end up a uniform sample
	k := s.rules.StartingTrash
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(cells)-i)
		cells[i], cells[j] = cells[j], cells[i]
	}

	trash := mapset.New[Coord]()
	for _, c := range cells[:k] {
		trash.Put(c)
	}

	s.player = center
	s.trash = trash
	s.hazards = mapset.New[Coord]()
	s.gameOver = false
	s.victory = false
	s.moves = 0
	return nil
}

// Restart replaces the whole game with a new one.
func (s *State) Restart(rng Rand) error {
	return s.Reset(rng)
}

// Move steps the player by d, clamped to the board, then resolves the tile
// the player lands on. The position updates even when the move ends the game.
func (s *State) Move(d Delta) Event {
	if s.gameOver {
		return EventIgnored
	}

	s.player = s.player.Add(d).Clamp(s.rules.Width, s.rules.Height)
	s.moves++

	switch {
	case s.hazards.Has(s.player):
		s.lose()
		return EventLost
	case s.trash.Has(s.player):
		s.trash.Remove(s.player)
		if s.trash.Size() == 0 {
			s.gameOver = true
			s.victory = true
			return EventWon
		}
		return EventCleaned
	default:
		return EventMoved
	}
}

// SpawnHazard runs one spawn tick. With probability chance it places a
// hazard on a uniformly chosen cell holding neither trash nor a hazard.
// A hazard landing on the player ends the game.
func (s *State) SpawnHazard(rng Rand, chance float64) (Coord, Event) {
	if s.gameOver {
		return Coord{}, EventIgnored
	}
	if rng.Float64() >= chance {
		return Coord{}, EventNoSpawn
	}

	candidates := s.freeCells()
	if len(candidates) == 0 {
		return Coord{}, EventSaturated
	}

	spawned := candidates[rng.Intn(len(candidates))]
	s.hazards.Put(spawned)

	if spawned == s.player {
		s.lose()
		return spawned, EventLost
	}
	return spawned, EventSpawned
}

// freeCells returns cells without trash or hazards in row-major order.
// The player's own cell counts as free.
func (s *State) freeCells() []Coord {
	var free []Coord
	for y := 0; y < s.rules.Height; y++ {
		for x := 0; x < s.rules.Width; x++ {
			c := C(x, y)
			if !s.trash.Has(c) && !s.hazards.Has(c) {
				free = append(free, c)
			}
		}
	}
	return free
}

func (s *State) lose() {
	s.gameOver = true
	s.victory = false
}

// Status returns the line shown under the board.
func (s *State) Status() string {
	if s.gameOver {
		if s.victory {
			return WinMessage
		}
		return LossMessage
	}
	return fmt.Sprintf("Trash remaining: %d | Poop on floor: %d", s.trash.Size(), s.hazards.Size())
}

// Phase returns the current state machine phase.
func (s *State) Phase() Phase {
	switch {
	case s.gameOver && s.victory:
		return PhaseWon
	case s.gameOver:
		return PhaseLost
	default:
		return PhasePlaying
	}
}

// Rules returns the rules this game was created with.
func (s *State) Rules() Rules { return s.rules }

// Player returns the robot's position.
func (s *State) Player() Coord { return s.player }

// GameOver reports whether the game has ended, won or lost.
func (s *State) GameOver() bool { return s.gameOver }

// Victory reports whether the game ended with the floor clean.
func (s *State) Victory() bool { return s.victory }

// TrashRemaining returns how many trash tiles are left.
func (s *State) TrashRemaining() int { return s.trash.Size() }

// HazardCount returns how many hazards are on the floor.
func (s *State) HazardCount() int { return s.hazards.Size() }

// TrashCleaned returns how many trash tiles the player has cleaned.
func (s *State) TrashCleaned() int { return s.rules.StartingTrash - s.trash.Size() }

// Moves returns the number of moves made since the last reset.
func (s *State) Moves() int { return s.moves }

// HasTrash reports whether c holds trash.
func (s *State) HasTrash(c Coord) bool { return s.trash.Has(c) }

// HasHazard reports whether c holds a hazard.
func (s *State) HasHazard(c Coord) bool { return s.hazards.Has(c) }

// sortedCoords returns the members of a set in row-major order.
func sortedCoords(set mapset.Set[Coord]) []Coord {
	out := make([]Coord, 0, set.Size())
	set.Each(func(c Coord) {
		out = append(out, c)
	})
	slices.SortFunc(out, func(a, b Coord) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
	return out
}
