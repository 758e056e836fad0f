package schedule

import (
	"sync"
	"time"
)

// Real schedules callbacks on the wall clock with time.AfterFunc and keeps
// track of the timers it started so they can be stopped together.
type Real struct {
	mu     sync.Mutex
	timers map[*realTimer]struct{}
	closed bool
}

// NewReal returns a scheduler bound to the wall clock.
func NewReal() *Real {
	return &Real{timers: make(map[*realTimer]struct{})}
}

type realTimer struct {
	owner *Real
	t     *time.Timer
}

func (rt *realTimer) Stop() bool {
	stopped := rt.t.Stop()
	rt.owner.forget(rt)
	return stopped
}

// AfterFunc runs f on its own goroutine once d has elapsed.
// After Close it returns a timer that never fires.
func (r *Real) AfterFunc(d time.Duration, f func()) Timer {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return stoppedTimer{}
	}

	rt := &realTimer{owner: r}
	rt.t = time.AfterFunc(d, func() {
		r.forget(rt)
		f()
	})
	r.timers[rt] = struct{}{}
	return rt
}

// Pending returns the number of timers that have neither fired nor been stopped.
func (r *Real) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.timers)
}

// Close stops every pending timer. Later AfterFunc calls are no-ops.
func (r *Real) Close() error {
	r.mu.Lock()
	timers := r.timers
	r.timers = make(map[*realTimer]struct{})
	r.closed = true
	r.mu.Unlock()

	for rt := range timers {
		rt.t.Stop()
	}
	return nil
}

func (r *Real) forget(rt *realTimer) {
	r.mu.Lock()
	delete(r.timers, rt)
	r.mu.Unlock()
}
