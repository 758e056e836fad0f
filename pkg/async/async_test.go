package async_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linoteia/portfolio/pkg/async"
)

func TestAsync(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	futureString := async.Async(ctx, 42, func(_ context.Context, num int) (string, error) {
		time.Sleep(20 * time.Millisecond)
		return fmt.Sprintf("Number: %d", num), nil
	})
	futureErr := async.Async(ctx, "x", func(_ context.Context, _ string) (int, error) {
		return 0, errors.New("boom")
	})

	s, err := futureString.Await()
	require.NoError(t, err)
	assert.Equal(t, "Number: 42", s)
	assert.True(t, futureString.IsComplete())

	_, err = futureErr.Await()
	assert.EqualError(t, err, "boom")
}

func TestAsync_PreCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	f := async.Async(ctx, 1, func(_ context.Context, _ int) (int, error) {
		called = true
		return 1, nil
	})

	_, err := f.Await()
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestPromise(t *testing.T) {
	t.Parallel()

	f, resolve := async.Promise[string]()
	assert.False(t, f.IsComplete())

	resolve("first", nil)
	resolve("second", errors.New("ignored"))

	<-f.Done()
	v, err := f.Await()
	require.NoError(t, err)
	assert.Equal(t, "first", v)
}

func TestResolved(t *testing.T) {
	t.Parallel()

	f := async.Resolved(7, nil)
	assert.True(t, f.IsComplete())
	v, err := f.Await()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestAwaitContext(t *testing.T) {
	t.Parallel()

	f, _ := async.Promise[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.AwaitContext(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, f.IsComplete())
}

func TestAwaitWithTimeout(t *testing.T) {
	t.Parallel()

	f, resolve := async.Promise[int]()
	_, err := f.AwaitWithTimeout(10 * time.Millisecond)
	assert.ErrorIs(t, err, async.ErrTimeout)

	resolve(3, nil)
	v, err := f.AwaitWithTimeout(time.Second)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestThen(t *testing.T) {
	t.Parallel()

	f := async.Then(async.Resolved(2, nil), func(v int, err error) (string, error) {
		if err != nil {
			return "", err
		}
		return fmt.Sprint(v * 2), nil
	})
	v, err := f.Await()
	require.NoError(t, err)
	assert.Equal(t, "4", v)
}
