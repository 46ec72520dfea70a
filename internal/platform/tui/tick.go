// Package tui provides the Bubble Tea front-end: it runs the simulation at
// a fixed tick rate, turns key presses into held controls, and draws the
// LCD frame with half-block characters.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lcd-invaders/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickInterval returns the period of one tick, falling back to the
// default rate for non-positive values.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// holdTicks converts the key hold window into ticks at the given rate.
func holdTicks(tickRate int, hold time.Duration) int {
	return core.Max(1, int(hold/tickInterval(tickRate)))
}
