package roomba

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roomba-cleanup/internal/config"
	"github.com/vovakirdan/roomba-cleanup/internal/core"
)

// Session owns one game and the randomness that drives it. Key presses and
// spawn ticks are its only mutators; callers must deliver them one at a time.
type Session struct {
	state  *State
	rng    *rand.Rand
	seed   int64
	chance float64
	logger *log.Logger
}

// RulesFrom extracts game rules from a validated configuration.
func RulesFrom(cfg config.Config) Rules {
	return Rules{
		Width:         cfg.Grid.Width,
		Height:        cfg.Grid.Height,
		StartingTrash: cfg.Trash.Starting,
	}
}

// NewSession starts a game seeded with seed. A nil logger discards output.
func NewSession(cfg config.Config, seed int64, logger *log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rng := rand.New(rand.NewSource(seed))
	state, err := NewState(RulesFrom(cfg), rng)
	if err != nil {
		return nil, err
	}

	logger.Debug("game started", "seed", seed, "trash", state.TrashRemaining())
	return &Session{
		state:  state,
		rng:    rng,
		seed:   seed,
		chance: cfg.Hazards.SpawnChance,
		logger: logger,
	}, nil
}

// HandleKey maps a key token and applies it. Restart is honoured only after
// the game ends; unknown tokens are ignored.
func (s *Session) HandleKey(token string) (core.Action, Event) {
	action := MapKey(token)

	switch {
	case action == core.ActionRestart:
		if !s.state.GameOver() {
			return core.ActionNone, EventIgnored
		}
		if err := s.state.Restart(s.rng); err != nil {
			// Rules were validated when the session was created
			s.logger.Error("restart failed", "error", err)
			return action, EventIgnored
		}
		s.logger.Debug("game restarted", "trash", s.state.TrashRemaining())
		return action, EventRestarted

	case action.IsMove():
		d, _ := DeltaFor(action)
		ev := s.state.Move(d)
		switch ev {
		case EventWon:
			s.logger.Info("floor clean", "moves", s.state.Moves())
		case EventLost:
			s.logger.Info("stepped on poop", "at", s.state.Player().String(), "moves", s.state.Moves())
		}
		return action, ev
	}

	return core.ActionNone, EventIgnored
}

// SpawnTick runs one hazard spawn tick.
func (s *Session) SpawnTick() Event {
	at, ev := s.state.SpawnHazard(s.rng, s.chance)
	switch ev {
	case EventSpawned:
		s.logger.Debug("hazard spawned", "at", at.String(), "hazards", s.state.HazardCount())
	case EventLost:
		s.logger.Info("poop landed on robot", "at", at.String())
	case EventSaturated:
		s.logger.Debug("no free cell for hazard")
	}
	return ev
}

// State returns the live game state. Callers must not mutate it directly.
func (s *Session) State() *State { return s.state }

// Snapshot returns a read-only copy of the game.
func (s *Session) Snapshot() Snapshot { return s.state.Snapshot() }

// Seed returns the seed the session was created with.
func (s *Session) Seed() int64 { return s.seed }
