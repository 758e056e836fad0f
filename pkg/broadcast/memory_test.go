package broadcast_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linoteia/portfolio/pkg/broadcast"
)

func TestMemory_PublishReachesEverySubscriber(t *testing.T) {
	t.Parallel()
	bus := broadcast.NewMemory[uint64]()
	defer bus.Close()

	a := bus.Subscribe(context.Background())
	b := bus.Subscribe(context.Background())
	assert.Equal(t, 2, bus.Len())

	bus.Publish(1)
	assert.Equal(t, uint64(1), <-a.Receive())
	assert.Equal(t, uint64(1), <-b.Receive())
}

func TestMemory_SlowSubscriberSeesLatest(t *testing.T) {
	t.Parallel()
	bus := broadcast.NewMemory[uint64]()
	defer bus.Close()
	sub := bus.Subscribe(context.Background())

	for i := uint64(1); i <= 5; i++ {
		bus.Publish(i)
	}
	assert.Equal(t, uint64(5), <-sub.Receive())
	select {
	case v := <-sub.Receive():
		t.Fatalf("unexpected value %d", v)
	default:
	}
	assert.Equal(t, 1, bus.Len())
}

func TestMemory_SubscriberClose(t *testing.T) {
	t.Parallel()
	bus := broadcast.NewMemory[int]()
	defer bus.Close()

	sub := bus.Subscribe(context.Background())
	require.NoError(t, sub.Close())
	require.NoError(t, sub.Close())
	assert.Zero(t, bus.Len())

	_, ok := <-sub.Receive()
	assert.False(t, ok)
	bus.Publish(1)
}

func TestMemory_ContextEndsSubscription(t *testing.T) {
	t.Parallel()
	bus := broadcast.NewMemory[int]()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	sub := bus.Subscribe(ctx)
	cancel()

	require.Eventually(t, func() bool { return bus.Len() == 0 }, time.Second, time.Millisecond)
	_, ok := <-sub.Receive()
	assert.False(t, ok)
}

func TestMemory_Close(t *testing.T) {
	t.Parallel()
	bus := broadcast.NewMemory[int]()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sub := bus.Subscribe(ctx)

	require.NoError(t, bus.Close())
	require.NoError(t, bus.Close())
	_, ok := <-sub.Receive()
	assert.False(t, ok)

	late := bus.Subscribe(context.Background())
	_, ok = <-late.Receive()
	assert.False(t, ok)
	bus.Publish(1)
	assert.Zero(t, bus.Len())
}
