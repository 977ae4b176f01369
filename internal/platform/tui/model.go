package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roomba-cleanup/internal/config"
	"github.com/vovakirdan/roomba-cleanup/internal/core"
	"github.com/vovakirdan/roomba-cleanup/internal/roomba"
	"github.com/vovakirdan/roomba-cleanup/internal/storage"
)

// footerLines is the number of rows under the board: status, info, hint, help.
const footerLines = 4

// Options configures a game model.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig // Seed 0 picks a time-based seed
	Store   *storage.Store     // Optional run log
	Player  string
	Logger  *log.Logger // nil discards
}

// Model is the Bubble Tea model for one game of Roomba Cleanup.
type Model struct {
	session     *roomba.Session
	scheduler   SpawnScheduler
	screen      *core.Screen
	store       *storage.Store
	player      string
	logger      *log.Logger
	styles      Styles
	keys        KeyMap
	help        help.Model
	width       int
	height      int
	started     time.Time
	runRecorded bool
	tally       storage.Tally
	quitting    bool
}

// NewModel validates the configuration and starts a game.
func NewModel(opts Options) (Model, error) {
	if err := opts.Config.Validate(); err != nil {
		return Model{}, err
	}
	palette, err := opts.Config.Theme.Palette()
	if err != nil {
		return Model{}, err
	}

	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Player == "" {
		opts.Player = "local"
	}

	session, err := roomba.NewSession(opts.Config, rt.Seed, opts.Logger)
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.Width = rt.ScreenW

	m := Model{
		session:   session,
		scheduler: NewSpawnScheduler(opts.Config.Hazards.SpawnInterval()),
		screen:    core.NewScreen(rt.ScreenW, max(rt.ScreenH-footerLines, 0)),
		store:     opts.Store,
		player:    opts.Player,
		logger:    opts.Logger,
		styles:    NewStyles(palette),
		keys:      DefaultKeyMap(),
		help:      h,
		width:     rt.ScreenW,
		height:    rt.ScreenH,
		started:   time.Now(),
	}
	m.refreshTally()
	return m, nil
}

// Init starts the spawn tick.
func (m Model) Init() tea.Cmd {
	return m.scheduler.Arm()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case SpawnTickMsg:
		return m.handleSpawnTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	token := msg.String()
	if m.keys.IsQuit(token) {
		m.quitting = true
		return m, tea.Quit
	}

	_, ev := m.session.HandleKey(token)
	switch ev {
	case roomba.EventRestarted:
		m.started = time.Now()
		m.runRecorded = false
	case roomba.EventWon, roomba.EventLost:
		m.recordRun()
	}
	return m, nil
}

// handleResize processes window resize events. The game is kept as is.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerLines, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleSpawnTick runs one spawn and always re-arms, so a restart
// resumes spawning without any extra bookkeeping.
func (m Model) handleSpawnTick() (tea.Model, tea.Cmd) {
	if m.session.SpawnTick() == roomba.EventLost {
		m.recordRun()
	}
	return m, m.scheduler.Arm()
}

// recordRun logs the finished game once per round.
func (m *Model) recordRun() {
	if m.runRecorded {
		return
	}
	m.runRecorded = true
	if m.store == nil {
		return
	}

	snap := m.session.Snapshot()
	outcome := storage.OutcomeLost
	if snap.Victory {
		outcome = storage.OutcomeWon
	}

	id, err := m.store.RecordRun(storage.Run{
		Player:         m.player,
		Outcome:        outcome,
		TrashCleaned:   m.session.State().TrashCleaned(),
		HazardsOnFloor: len(snap.Hazards),
		Moves:          snap.Moves,
		Seed:           m.session.Seed(),
		Duration:       time.Since(m.started),
	})
	if err != nil {
		// The run log is a nicety; the game goes on without it
		m.logger.Warn("could not record run", "error", err)
		return
	}
	m.logger.Debug("run recorded", "id", id, "outcome", outcome)
	m.refreshTally()
}

func (m *Model) refreshTally() {
	if m.store == nil {
		return
	}
	t, err := m.store.Tally(m.player)
	if err != nil {
		m.logger.Warn("could not read tally", "error", err)
		return
	}
	m.tally = t
}

// Session returns the running game session.
func (m Model) Session() *roomba.Session {
	return m.session
}

// Tally returns the player's wins and losses so far.
func (m Model) Tally() storage.Tally {
	return m.tally
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot()
	roomba.Render(m.screen, snap)

	keys := m.keys
	keys.Restart.SetEnabled(snap.GameOver)

	center := func(s string) string {
		if m.width <= 0 {
			return s
		}
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen, m.styles),
		center(m.styles.Status.Render(snap.Status)),
		center(m.styles.Info.Render(m.infoLine(snap))),
		center(m.styles.Hint.Render(ControlHint)),
		center(m.help.View(keys)),
	)
}

// infoLine shows the move counter and, with a run log, the session tally.
func (m Model) infoLine(snap roomba.Snapshot) string {
	line := fmt.Sprintf("Moves: %d", snap.Moves)
	if m.store != nil {
		line += fmt.Sprintf(" | Wins: %d | Losses: %d", m.tally.Won, m.tally.Lost)
		if m.tally.BestMoves > 0 {
			line += fmt.Sprintf(" | Best: %d moves", m.tally.BestMoves)
		}
	}
	return line
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
