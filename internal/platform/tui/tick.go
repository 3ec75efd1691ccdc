// Package tui runs games in a terminal through Bubble Tea.
// It owns the UI loop, input mapping and score saving.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation step of the model whose loop sent it.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

var loopSeq atomic.Uint64

// nextLoop returns a fresh tick loop ID. A model ignores ticks from loops
// it did not start, so a stale tick cannot double the game speed.
func nextLoop() uint64 {
	return loopSeq.Add(1)
}

// tickCmd schedules the next tick of a loop at the given rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
