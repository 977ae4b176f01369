// Package tui runs Roomba Cleanup as a Bubble Tea program, locally or over SSH.
// It turns key and tick messages into session calls and paints the result.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SpawnTickMsg asks the session to try a hazard spawn.
type SpawnTickMsg time.Time

// SpawnScheduler drives hazard spawning with a self re-arming tick.
// The tick stops only when the program exits.
type SpawnScheduler struct {
	interval time.Duration
}

// NewSpawnScheduler creates a scheduler firing every interval.
func NewSpawnScheduler(interval time.Duration) SpawnScheduler {
	if interval <= 0 {
		interval = time.Second
	}
	return SpawnScheduler{interval: interval}
}

// Interval returns the time between ticks.
func (s SpawnScheduler) Interval() time.Duration {
	return s.interval
}

// Arm returns a command delivering the next SpawnTickMsg.
func (s SpawnScheduler) Arm() tea.Cmd {
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return SpawnTickMsg(t)
	})
}
