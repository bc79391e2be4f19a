// Package tui provides the Bubble Tea integration for flapdash.
// It handles the terminal UI loop, input mapping, rendering, and the
// leaderboard boundary.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SimTickMsg triggers one simulation step (~33 Hz by default).
type SimTickMsg time.Time

// ScoreTickMsg triggers a score display refresh (~100 Hz by default).
// It is read-only with respect to the simulation: the handler re-reads the
// session clock and redraws, nothing else.
type ScoreTickMsg time.Time

// simTickCmd returns a command that emits SimTickMsg at the given period.
func simTickCmd(periodMS int) tea.Cmd {
	return tea.Tick(time.Duration(periodMS)*time.Millisecond, func(t time.Time) tea.Msg {
		return SimTickMsg(t)
	})
}

// scoreTickCmd returns a command that emits ScoreTickMsg at the given period.
func scoreTickCmd(periodMS int) tea.Cmd {
	return tea.Tick(time.Duration(periodMS)*time.Millisecond, func(t time.Time) tea.Msg {
		return ScoreTickMsg(t)
	})
}
