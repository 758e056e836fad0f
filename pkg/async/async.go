package async

import (
	"context"
	"sync"
	"time"
)

// Future represents the result of an asynchronous computation.
type Future[U any] struct {
	result U
	err    error
	once   sync.Once
	done   chan struct{}
}

func newFuture[U any]() *Future[U] {
	return &Future[U]{done: make(chan struct{})}
}

// resolve completes the future. Calls after the first are ignored.
func (f *Future[U]) resolve(v U, err error) {
	f.once.Do(func() {
		f.result = v
		f.err = err
		close(f.done)
	})
}

// Await waits for the asynchronous function to complete and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitContext waits for completion or for ctx to end, whichever comes first.
// The computation itself is not cancelled when ctx ends.
func (f *Future[U]) AwaitContext(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero U
		return zero, ctx.Err()
	}
}

// AwaitWithTimeout waits for the asynchronous function to complete with a timeout.
// If the timeout occurs before completion, returns ErrTimeout.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	t := time.NewTimer(timeout)
	defer t.Stop()

	select {
	case <-f.done:
		return f.result, f.err
	case <-t.C:
		var zero U
		return zero, ErrTimeout
	}
}

// Done returns a channel closed once the future is resolved.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// IsComplete checks if the asynchronous function is complete without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Async executes a function asynchronously and returns a Future.
// The function accepts a context.Context and a parameter of any type T, and returns (U, error).
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := newFuture[U]()

	go func() {
		// Pre-cancelled contexts never reach fn.
		if err := ctx.Err(); err != nil {
			var zero U
			f.resolve(zero, err)
			return
		}
		f.resolve(fn(ctx, param))
	}()

	return f
}

// Promise returns an unresolved future and the function that resolves it.
// Only the first call to resolve has an effect.
func Promise[U any]() (*Future[U], func(U, error)) {
	f := newFuture[U]()
	return f, f.resolve
}

// Resolved returns a future that is already complete.
func Resolved[U any](v U, err error) *Future[U] {
	f := newFuture[U]()
	f.resolve(v, err)
	return f
}

// Then runs fn with the result of f once it resolves and returns a future for
// fn's result.
func Then[U any, V any](f *Future[U], fn func(U, error) (V, error)) *Future[V] {
	next := newFuture[V]()
	go func() {
		next.resolve(fn(f.Await()))
	}()
	return next
}
