package broadcast

import (
	"context"
	"sync"
)

// Memory is an in-process Broadcaster. Slow subscribers only ever see the
// latest value; nothing is queued and nobody is dropped.
type Memory[T any] struct {
	mu     sync.RWMutex
	subs   map[*subscriber[T]]struct{}
	closed bool
	wg     sync.WaitGroup
}

// NewMemory returns an empty broadcaster.
func NewMemory[T any]() *Memory[T] {
	return &Memory[T]{subs: make(map[*subscriber[T]]struct{})}
}

func (m *Memory[T]) Subscribe(ctx context.Context) Subscriber[T] {
	sub := newSubscriber(m.unsubscribe)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		sub.shut()
		return sub
	}
	m.subs[sub] = struct{}{}

	if ctx.Done() != nil {
		m.wg.Add(1)
		go func() {
			defer m.wg.Done()
			select {
			case <-ctx.Done():
				_ = sub.Close()
			case <-sub.stopped():
			}
		}()
	}
	return sub
}

func (m *Memory[T]) Publish(v T) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return
	}
	for sub := range m.subs {
		sub.offer(v)
	}
}

// Len returns the number of live subscribers.
func (m *Memory[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subs)
}

// Close closes every subscriber. Later subscriptions start closed.
func (m *Memory[T]) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	for sub := range m.subs {
		sub.shut()
	}
	clear(m.subs)
	m.mu.Unlock()

	m.wg.Wait()
	return nil
}

func (m *Memory[T]) unsubscribe(sub *subscriber[T]) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.subs, sub)
}
