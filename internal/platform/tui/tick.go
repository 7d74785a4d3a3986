// Package tui provides the Bubble Tea integration for pathfind.
// It renders grids with lipgloss, animates a search one expansion at a
// time and serves that viewer over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StepMsg is sent to advance the search by one expansion.
// Gen identifies the tick chain that produced it; stale chains are ignored.
type StepMsg struct {
	Gen  int
	Time time.Time
}

// stepCmd returns a Bubble Tea command that sends a step message after delay.
func stepCmd(gen int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return StepMsg{Gen: gen, Time: t}
	})
}
