package schedule

import (
	"sync"
	"time"
)

// Manual is a Scheduler driven by Advance instead of the wall clock.
// Callbacks run synchronously on the goroutine that calls Advance, in due
// order; timers with the same deadline fire in the order they were created.
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	nextID  uint64
	pending []*manualTimer
}

// NewManual returns a scheduler whose clock starts at zero.
func NewManual() *Manual {
	return &Manual{}
}

type manualTimer struct {
	owner *Manual
	id    uint64
	at    time.Duration
	f     func()
}

func (mt *manualTimer) Stop() bool {
	return mt.owner.remove(mt)
}

func (m *Manual) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	mt := &manualTimer{owner: m, id: m.nextID, at: m.now + d, f: f}
	m.pending = append(m.pending, mt)
	return mt
}

// Advance moves the clock forward by d, firing every callback that becomes
// due. Callbacks scheduled while advancing fire too if they fall within d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		mt := m.popDue(target)
		if mt == nil {
			break
		}
		mt.f()
	}

	m.mu.Lock()
	if m.now < target {
		m.now = target
	}
	m.mu.Unlock()
}

// Elapsed returns how far the clock has been advanced.
func (m *Manual) Elapsed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending returns the number of timers waiting to fire.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// Close drops every pending timer.
func (m *Manual) Close() error {
	m.mu.Lock()
	m.pending = nil
	m.mu.Unlock()
	return nil
}

func (m *Manual) popDue(target time.Duration) *manualTimer {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := -1
	for i, mt := range m.pending {
		if mt.at > target {
			continue
		}
		if idx < 0 || mt.at < m.pending[idx].at || (mt.at == m.pending[idx].at && mt.id < m.pending[idx].id) {
			idx = i
		}
	}
	if idx < 0 {
		return nil
	}
	mt := m.pending[idx]
	m.pending = append(m.pending[:idx], m.pending[idx+1:]...)
	m.now = mt.at
	return mt
}

func (m *Manual) remove(target *manualTimer) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, mt := range m.pending {
		if mt == target {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return true
		}
	}
	return false
}
