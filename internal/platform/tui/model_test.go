package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/roomba-cleanup/internal/config"
	"github.com/vovakirdan/roomba-cleanup/internal/core"
	"github.com/vovakirdan/roomba-cleanup/internal/roomba"
	"github.com/vovakirdan/roomba-cleanup/internal/storage"
)

// tinyConfig is a 2x1 board: the robot starts at (1,0) and the only trash
// sits at (0,0). Moving left wins; any spawn tick lands on the robot.
func tinyConfig() config.Config {
	cfg := config.Default()
	cfg.Grid.Width = 2
	cfg.Grid.Height = 1
	cfg.Trash.Starting = 1
	cfg.Hazards.SpawnChance = 1
	return cfg
}

func newTestModel(t *testing.T, cfg config.Config, store *storage.Store) Model {
	t.Helper()
	m, err := NewModel(Options{
		Config:  cfg,
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42},
		Store:   store,
		Player:  "tester",
	})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewModelRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Trash.Starting = cfg.Grid.Cells()

	if _, err := NewModel(Options{Config: cfg, Runtime: core.DefaultConfig()}); err == nil {
		t.Error("NewModel() should reject a board without room for the robot")
	}
}

func TestInitArmsSpawnTick(t *testing.T) {
	m := newTestModel(t, config.Default(), nil)

	if m.Init() == nil {
		t.Error("Init() should arm the spawn tick")
	}
	if m.scheduler.Interval() != 1300*time.Millisecond {
		t.Errorf("interval = %v, expected 1.3s", m.scheduler.Interval())
	}
}

func TestArrowKeysMoveRobot(t *testing.T) {
	cfg := config.Default()
	cfg.Hazards.SpawnChance = 0
	m := newTestModel(t, cfg, nil)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if got := m.Session().State().Player(); got != roomba.C(7, 6) {
		t.Errorf("after up, player = %v, expected (7,6)", got)
	}

	m, _ = send(t, m, runeKey('a'))
	if got := m.Session().State().Player(); got != roomba.C(6, 6) {
		t.Errorf("after a, player = %v, expected (6,6)", got)
	}

	m, _ = send(t, m, runeKey('x'))
	if got := m.Session().State().Moves(); got != 2 {
		t.Errorf("unknown key counted as a move: moves = %d", got)
	}
}

func TestQuitKeys(t *testing.T) {
	tests := []tea.KeyMsg{
		runeKey('q'),
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	}

	for _, key := range tests {
		t.Run(key.String(), func(t *testing.T) {
			m := newTestModel(t, config.Default(), nil)
			m, cmd := send(t, m, key)
			if cmd == nil {
				t.Fatal("quit key returned no command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("quit key did not quit")
			}
			if m.View() != "" {
				t.Error("view should be empty after quitting")
			}
		})
	}
}

func TestSpawnTickAlwaysRearms(t *testing.T) {
	m := newTestModel(t, tinyConfig(), nil)

	m, cmd := send(t, m, SpawnTickMsg(time.Now()))
	if !m.Session().State().GameOver() {
		t.Fatal("spawn onto the only free cell should end the game")
	}
	if cmd == nil {
		t.Error("game-ending tick must re-arm")
	}

	_, cmd = send(t, m, SpawnTickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick after game over must re-arm")
	}
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	cfg := config.Default()
	cfg.Hazards.SpawnChance = 0
	m := newTestModel(t, cfg, nil)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	before := m.Session().Snapshot()
	m, _ = send(t, m, runeKey('r'))
	if m.Session().State().Moves() != before.Moves {
		t.Error("restart during play should be ignored")
	}

	m = newTestModel(t, tinyConfig(), nil)
	m, _ = send(t, m, SpawnTickMsg(time.Now()))
	m, _ = send(t, m, runeKey('R'))
	if m.Session().State().GameOver() {
		t.Error("R after game over should restart")
	}
}

func TestRunsAreRecordedOnce(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, tinyConfig(), store)

	m, _ = send(t, m, SpawnTickMsg(time.Now()))
	m, _ = send(t, m, SpawnTickMsg(time.Now()))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})

	if tally := m.Tally(); tally.Lost != 1 || tally.Won != 0 {
		t.Fatalf("after one loss, tally = %+v", tally)
	}

	m, _ = send(t, m, runeKey('r'))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})

	tally := m.Tally()
	if tally.Won != 1 || tally.Lost != 1 || tally.BestMoves != 1 {
		t.Errorf("after a loss and a win, tally = %+v", tally)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	won := runs[0]
	if won.Outcome != storage.OutcomeWon || won.Player != "tester" || won.TrashCleaned != 1 || won.Seed != 42 {
		t.Errorf("winning run = %+v", won)
	}
}

func TestViewShowsStatusAndHints(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, tinyConfig(), store)

	view := m.View()
	for _, want := range []string{
		"Trash remaining: 1 | Poop on floor: 0",
		"Moves: 0 | Wins: 0 | Losses: 0",
		ControlHint,
		"move",
		"quit",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "restart") {
		t.Error("restart hint should be hidden during play")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	view = m.View()
	for _, want := range []string{roomba.WinMessage, "ALL CLEAN!", "restart", "Best: 1 moves"} {
		if !strings.Contains(view, want) {
			t.Errorf("view after win missing %q", want)
		}
	}
}

func TestViewIsIdempotent(t *testing.T) {
	m := newTestModel(t, config.Default(), nil)
	if m.View() != m.View() {
		t.Error("rendering twice should give the same view")
	}
}

func TestResizeKeepsGame(t *testing.T) {
	cfg := config.Default()
	cfg.Hazards.SpawnChance = 0
	m := newTestModel(t, cfg, nil)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})

	if got := m.Session().State().Player(); got != roomba.C(8, 7) {
		t.Errorf("resize changed the game: player = %v", got)
	}
	if !strings.Contains(m.View(), "Window too small") {
		t.Error("small window should show the resize notice")
	}
}
