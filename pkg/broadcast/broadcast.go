package broadcast

import (
	"context"
	"sync"
)

// Subscriber receives values from a Broadcaster.
type Subscriber[T any] interface {
	// Receive returns the channel values arrive on. It is closed by Close
	// or when the broadcaster shuts down.
	Receive() <-chan T

	// Close ends the subscription. Safe to call more than once.
	Close() error
}

// Broadcaster fans values out to every subscriber without ever blocking
// the publisher.
type Broadcaster[T any] interface {
	// Subscribe registers a subscriber that is removed when ctx ends.
	Subscribe(ctx context.Context) Subscriber[T]

	// Publish hands v to every subscriber. A subscriber that has not read
	// its previous value gets it replaced by v.
	Publish(v T)

	Close() error
}

type subscriber[T any] struct {
	ch     chan T
	done   chan struct{}
	closed bool
	mu     sync.Mutex
	onStop func(*subscriber[T])
}

func newSubscriber[T any](onStop func(*subscriber[T])) *subscriber[T] {
	return &subscriber[T]{ch: make(chan T, 1), done: make(chan struct{}), onStop: onStop}
}

func (s *subscriber[T]) Receive() <-chan T {
	return s.ch
}

func (s *subscriber[T]) Close() error {
	if s.onStop != nil {
		s.onStop(s)
	}
	s.shut()
	return nil
}

func (s *subscriber[T]) shut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		close(s.ch)
		close(s.done)
		s.closed = true
	}
}

func (s *subscriber[T]) stopped() <-chan struct{} {
	return s.done
}

// offer keeps only the newest value in the buffer.
func (s *subscriber[T]) offer(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case <-s.ch:
	default:
	}
	s.ch <- v
}
