// Package timer schedules delayed callbacks on the simulation loop. Every
// callback runs inside Update, so nothing here is safe for concurrent use.
package timer

import (
	"sort"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Handle identifies a scheduled timer. The zero value refers to no timer.
type Handle struct {
	id uint64
}

func (h Handle) IsValid() bool { return h.id != 0 }

// Invalidate forgets the timer without clearing it.
func (h *Handle) Invalidate() { h.id = 0 }

type entry struct {
	tween    *gween.Tween
	duration float32
	elapsed  float32
	fn       func()
}

type Manager struct {
	timers map[uint64]*entry
	nextID uint64
}

func NewManager() *Manager {
	return &Manager{timers: make(map[uint64]*entry)}
}

// SetTimer schedules fn to run once after d. A timer already pending on h is
// cleared first so it can never fire alongside the new one.
func (m *Manager) SetTimer(h *Handle, d time.Duration, fn func()) {
	m.ClearTimer(h)
	if d < 0 {
		d = 0
	}
	secs := float32(d.Seconds())
	m.nextID++
	m.timers[m.nextID] = &entry{
		tween:    gween.New(0, secs, secs, ease.Linear),
		duration: secs,
		fn:       fn,
	}
	h.id = m.nextID
}

// ClearTimer cancels the pending timer on h, if any, and invalidates h.
func (m *Manager) ClearTimer(h *Handle) {
	if h == nil {
		return
	}
	delete(m.timers, h.id)
	h.id = 0
}

func (m *Manager) IsActive(h Handle) bool {
	_, ok := m.timers[h.id]
	return h.IsValid() && ok
}

// Remaining returns the time left before h fires, or 0 when it is not pending.
func (m *Manager) Remaining(h Handle) time.Duration {
	e, ok := m.timers[h.id]
	if !h.IsValid() || !ok {
		return 0
	}
	left := e.duration - e.elapsed
	if left < 0 {
		return 0
	}
	return time.Duration(float64(left) * float64(time.Second))
}

// Pending returns the number of scheduled timers.
func (m *Manager) Pending() int { return len(m.timers) }

// Update advances every pending timer by dt seconds and runs the callbacks of
// those that finished, in scheduling order. Timers scheduled by a callback
// start counting on the next Update.
func (m *Manager) Update(dt float64) {
	if len(m.timers) == 0 {
		return
	}
	ids := make([]uint64, 0, len(m.timers))
	for id := range m.timers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		e, ok := m.timers[id]
		if !ok {
			// cleared by an earlier callback
			continue
		}
		current, finished := e.tween.Update(float32(dt))
		e.elapsed = current
		if !finished {
			continue
		}
		delete(m.timers, id)
		if e.fn != nil {
			e.fn()
		}
	}
}
