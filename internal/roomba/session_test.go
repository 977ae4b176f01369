package roomba

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/roomba-cleanup/internal/config"
	"github.com/vovakirdan/roomba-cleanup/internal/core"
)

func playScript(s *Session, script []string) {
	for _, tok := range script {
		if tok == "tick" {
			s.SpawnTick()
			continue
		}
		s.HandleKey(tok)
	}
}

func TestSessionDeterminism(t *testing.T) {
	script := []string{
		"up", "tick", "left", "left", "tick", "tick", "s", "d", "tick",
		"down", "down", "tick", "a", "tick", "w", "w", "tick", "right", "r",
	}
	for i := 0; i < 5; i++ {
		script = append(script, script...)
	}

	s1, err := NewSession(config.Default(), 12345, nil)
	if err != nil {
		t.Fatal(err)
	}
	s2, err := NewSession(config.Default(), 12345, nil)
	if err != nil {
		t.Fatal(err)
	}

	playScript(s1, script)
	playScript(s2, script)

	if !reflect.DeepEqual(s1.Snapshot(), s2.Snapshot()) {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1.Snapshot(), s2.Snapshot())
	}
	if s1.Seed() != 12345 {
		t.Errorf("Seed() = %d", s1.Seed())
	}
}

func TestSessionDifferentSeedsDiffer(t *testing.T) {
	s1, _ := NewSession(config.Default(), 1, nil)
	s2, _ := NewSession(config.Default(), 2, nil)

	if reflect.DeepEqual(s1.Snapshot().Trash, s2.Snapshot().Trash) {
		t.Error("different seeds produced the same trash layout")
	}
}

func TestSessionRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Grid.Width, cfg.Grid.Height = 2, 2
	cfg.Trash.Starting = 4

	if _, err := NewSession(cfg, 1, nil); err == nil {
		t.Error("NewSession() should fail when trash cannot fit")
	}
}

func TestSessionRestartOnlyWhenOver(t *testing.T) {
	cfg := config.Default()
	s, err := NewSession(cfg, 7, nil)
	if err != nil {
		t.Fatal(err)
	}

	s.HandleKey("up")
	moves := s.State().Moves()

	action, ev := s.HandleKey("r")
	if action != core.ActionNone || ev != EventIgnored {
		t.Errorf("HandleKey(r) while playing = %v/%v, expected ignored", action, ev)
	}
	if s.State().Moves() != moves {
		t.Error("restart while playing reset the game")
	}

	// Force a loss
	st := s.State()
	st.hazards.Put(st.player.Add(DeltaRight))
	st.trash.Remove(st.player.Add(DeltaRight))
	if _, ev := s.HandleKey("Right"); ev != EventLost {
		t.Fatalf("expected loss, got %v", ev)
	}

	// Movement is ignored once over
	if _, ev := s.HandleKey("left"); ev != EventIgnored {
		t.Errorf("HandleKey(left) after loss = %v, expected ignored", ev)
	}

	action, ev = s.HandleKey("R")
	if action != core.ActionRestart || ev != EventRestarted {
		t.Errorf("HandleKey(R) after loss = %v/%v, expected restart", action, ev)
	}
	snap := s.Snapshot()
	if snap.Phase != PhasePlaying || snap.Player != C(7, 7) || len(snap.Trash) != 24 || len(snap.Hazards) != 0 {
		t.Errorf("restart gave %+v", snap)
	}
}

func TestSessionIgnoresUnknownKeys(t *testing.T) {
	s, err := NewSession(config.Default(), 3, nil)
	if err != nil {
		t.Fatal(err)
	}
	before := s.Snapshot()

	for _, tok := range []string{"x", "enter", "", "tab", "ctrl+z", "🤖"} {
		if action, ev := s.HandleKey(tok); action != core.ActionNone || ev != EventIgnored {
			t.Errorf("HandleKey(%q) = %v/%v, expected ignored", tok, action, ev)
		}
	}
	if !reflect.DeepEqual(before, s.Snapshot()) {
		t.Error("unknown keys changed the game")
	}
}

func TestSessionSpawnTickAfterGameOver(t *testing.T) {
	cfg := config.Default()
	cfg.Hazards.SpawnChance = 1
	s, err := NewSession(cfg, 11, nil)
	if err != nil {
		t.Fatal(err)
	}

	// With chance 1 hazards keep landing until one hits the robot
	for i := 0; i < 1000 && !s.State().GameOver(); i++ {
		ev := s.SpawnTick()
		if ev != EventSpawned && ev != EventLost {
			t.Fatalf("SpawnTick() = %v with chance 1", ev)
		}
	}
	if s.State().Phase() != PhaseLost {
		t.Fatalf("phase = %v, expected lost", s.State().Phase())
	}

	hazards := s.State().HazardCount()
	if ev := s.SpawnTick(); ev != EventIgnored {
		t.Errorf("SpawnTick() after loss = %v, expected ignored", ev)
	}
	if s.State().HazardCount() != hazards {
		t.Error("hazard spawned after game over")
	}
}
