// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input decoding, timers and rendering;
// game rules and the session lifecycle live elsewhere.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clockKind tells the two session timers apart.
type clockKind int

const (
	clockSim     clockKind = iota // Game simulation interval
	clockSeconds                  // Elapsed-time timer
)

// TickMsg is delivered when a tickClock fires. Gen identifies the arming
// that scheduled it; messages from an earlier arming are stale.
type TickMsg struct {
	kind clockKind
	gen  uint64
}

// tickClock implements session.Timer on top of tea.Tick. Bubble Tea cannot
// cancel a scheduled Tick, so every Arm or Disarm bumps a generation and
// ticks carrying an old generation are dropped on arrival.
type tickClock struct {
	kind     clockKind
	gen      uint64
	interval time.Duration
	armed    bool
	pending  bool
}

func newTickClock(kind clockKind) *tickClock {
	return &tickClock{kind: kind}
}

// Arm replaces any previous arming.
func (c *tickClock) Arm(interval time.Duration) {
	c.gen++
	c.interval = interval
	c.armed = interval > 0
	c.pending = c.armed
}

// Disarm stops delivery; ticks already in flight become stale.
func (c *tickClock) Disarm() {
	c.gen++
	c.armed = false
	c.pending = false
}

// Cmd returns the first tick of a fresh arming, once.
func (c *tickClock) Cmd() tea.Cmd {
	if !c.pending {
		return nil
	}
	c.pending = false
	return c.schedule()
}

// Accept reports whether msg belongs to the current arming.
func (c *tickClock) Accept(msg TickMsg) bool {
	return c.armed && msg.kind == c.kind && msg.gen == c.gen
}

// Next schedules the following tick of the current arming.
func (c *tickClock) Next() tea.Cmd {
	if !c.armed || c.pending {
		return nil
	}
	return c.schedule()
}

func (c *tickClock) schedule() tea.Cmd {
	kind, gen := c.kind, c.gen
	return tea.Tick(c.interval, func(time.Time) tea.Msg {
		return TickMsg{kind: kind, gen: gen}
	})
}
