// Package debounce delays value-changed notifications until input settles.
//
// It follows the bubbletea timer idiom: each trigger schedules a tick tagged
// with the debouncer id and a sequence number. Only the tick carrying the
// latest tag is accepted, so earlier ticks and ticks issued before Cancel
// are dropped when they arrive.
package debounce

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// FireMsg is delivered when a debounce delay elapses.
type FireMsg struct {
	ID    int
	tag   int
	Value string
}

// Debouncer coalesces bursts of changes into a single notification.
type Debouncer struct {
	id    int
	tag   int
	delay time.Duration
}

// New creates a debouncer. A non-positive delay fires immediately.
func New(delay time.Duration) *Debouncer {
	return &Debouncer{id: nextID(), delay: delay}
}

// ID returns the identifier carried by this debouncer's messages.
func (d *Debouncer) ID() int {
	return d.id
}

// Delay returns the configured wait.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Trigger records a new value and returns the command that delivers it once
// no further triggers arrive within the delay.
func (d *Debouncer) Trigger(value string) tea.Cmd {
	d.tag++
	msg := FireMsg{ID: d.id, tag: d.tag, Value: value}
	if d.delay <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(d.delay, func(time.Time) tea.Msg { return msg })
}

// Cancel invalidates every pending tick.
func (d *Debouncer) Cancel() {
	d.tag++
}

// Accept reports whether msg is this debouncer's latest tick and returns its value.
func (d *Debouncer) Accept(msg tea.Msg) (string, bool) {
	fire, ok := msg.(FireMsg)
	if !ok || fire.ID != d.id || fire.tag != d.tag {
		return "", false
	}
	return fire.Value, true
}
