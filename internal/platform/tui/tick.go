// Package tui runs a game session in the terminal with Bubble Tea.
// It maps keys to session actions, paces ticks at the world's frame rate,
// and paints the session's screen buffer with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick at fps ticks per second.
func tickCmd(fps int) tea.Cmd {
	if fps < 1 {
		fps = 1
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
