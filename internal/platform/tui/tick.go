// Package tui runs games in a terminal with Bubble Tea, locally or over SSH.
// It maps keys to actions, paces ticks by wall-clock time and draws the
// game's screen buffer with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick one interval from now.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// elapsed returns the time simulated by a tick arriving at now.
// The first tick of a run, and a tick from a clock that went backwards,
// count as one nominal interval.
func elapsed(last, now time.Time, interval time.Duration) time.Duration {
	if last.IsZero() || now.Before(last) {
		return interval
	}
	return now.Sub(last)
}
