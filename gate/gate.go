// Package gate provides the single-flight cooldown that guards attacks and
// footstep emission.
package gate

import (
	"time"

	"github.com/captainzonks/hopper/timer"
)

const (
	DefaultAttackDuration = 300 * time.Millisecond
	FootstepCooldown      = 300 * time.Millisecond
)

// AttackWindow is a snapshot of a gate's state.
type AttackWindow struct {
	IsOpen    bool
	Remaining time.Duration
}

// Gate admits one caller at a time. A closed gate rejects every TryEnter
// until the scheduled release fires; there is no queueing.
type Gate struct {
	// OnOpen runs each time a scheduled release reopens the gate.
	OnOpen func()

	timers *timer.Manager
	handle timer.Handle
	closed bool
}

func New(timers *timer.Manager) *Gate {
	return &Gate{timers: timers}
}

// TryEnter closes the gate and returns true if it was open. Callers must
// enter before any side effect that could re-trigger the same action.
func (g *Gate) TryEnter() bool {
	if g.closed {
		return false
	}
	g.closed = true
	return true
}

// Release schedules the gate to reopen after the given delay. A reopen that
// is already pending is cancelled first.
func (g *Gate) Release(after time.Duration) {
	g.timers.SetTimer(&g.handle, after, g.open)
}

// Pulse enters the gate and immediately schedules its release. It reports
// whether the caller got through.
func (g *Gate) Pulse(cooldown time.Duration) bool {
	if !g.TryEnter() {
		return false
	}
	g.Release(cooldown)
	return true
}

// Reset reopens the gate at once without running OnOpen.
func (g *Gate) Reset() {
	g.timers.ClearTimer(&g.handle)
	g.closed = false
}

func (g *Gate) IsOpen() bool { return !g.closed }

func (g *Gate) Window() AttackWindow {
	return AttackWindow{
		IsOpen:    !g.closed,
		Remaining: g.timers.Remaining(g.handle),
	}
}

func (g *Gate) open() {
	g.closed = false
	if g.OnOpen != nil {
		g.OnOpen()
	}
}
