// Package tui provides the Bubble Tea host for the game.
// It handles the terminal UI loop, input mapping, and the tick schedule.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick message after interval.
// The loop continues only while each handled tick issues the next one.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Clock turns tick wall times into host timestamps relative to its start.
type Clock struct {
	start time.Time
}

// NewClock starts a clock at t.
func NewClock(t time.Time) Clock {
	return Clock{start: t}
}

// Since returns the host timestamp of t. Times before the start clamp to 0.
func (c Clock) Since(t time.Time) time.Duration {
	d := t.Sub(c.start)
	if d < 0 {
		return 0
	}
	return d
}
