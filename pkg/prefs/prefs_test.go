package prefs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linoteia/portfolio/pkg/prefs"
)

type failingStore struct {
	gets, sets int
}

func (f *failingStore) Get(context.Context, string) (string, error) {
	f.gets++
	return "", errors.Join(prefs.ErrUnavailable, errors.New("quota exceeded"))
}

func (f *failingStore) Set(context.Context, string, string) error {
	f.sets++
	return errors.Join(prefs.ErrUnavailable, errors.New("quota exceeded"))
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := prefs.NewMemoryStore()

	_, err := store.Get(ctx, prefs.KeyLang)
	assert.True(t, prefs.IsNotFound(err))

	require.NoError(t, store.Set(ctx, prefs.KeyLang, "es"))
	v, err := store.Get(ctx, prefs.KeyLang)
	require.NoError(t, err)
	assert.Equal(t, "es", v)
}

func TestScoped(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	shared := prefs.NewMemoryStore()

	alice := prefs.NewScoped(shared, "alice")
	bob := prefs.NewScoped(shared, "bob")

	require.NoError(t, alice.Set(ctx, prefs.KeyTheme, "light"))
	require.NoError(t, bob.Set(ctx, prefs.KeyTheme, "dark"))

	v, err := alice.Get(ctx, prefs.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "light", v)

	raw, err := shared.Get(ctx, "bob:theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", raw)
}

func TestSafe(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		p := prefs.NewSafe(prefs.NewMemoryStore())

		_, ok := p.Get(ctx, prefs.KeyLang)
		assert.False(t, ok)

		p.Set(ctx, prefs.KeyLang, "ru")
		v, ok := p.Get(ctx, prefs.KeyLang)
		assert.True(t, ok)
		assert.Equal(t, "ru", v)
	})

	t.Run("swallows backend failures", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		store := &failingStore{}
		p := prefs.NewSafe(store)

		assert.NotPanics(t, func() { p.Set(ctx, prefs.KeyTheme, "light") })
		v, ok := p.Get(ctx, prefs.KeyTheme)
		assert.False(t, ok)
		assert.Empty(t, v)
		assert.Equal(t, 1, store.gets)
		assert.Equal(t, 1, store.sets)
	})

	t.Run("nil store", func(t *testing.T) {
		t.Parallel()
		p := prefs.NewSafe(nil)
		p.Set(context.Background(), prefs.KeyLang, "en")
		_, ok := p.Get(context.Background(), prefs.KeyLang)
		assert.False(t, ok)
	})

	t.Run("writes survive cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		store := prefs.NewMemoryStore()
		prefs.NewSafe(store).Set(ctx, prefs.KeyLang, "es")

		v, err := store.Get(context.Background(), prefs.KeyLang)
		require.NoError(t, err)
		assert.Equal(t, "es", v)
	})
}

func TestRedisStore_Unreachable(t *testing.T) {
	t.Parallel()

	client := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	store := prefs.NewRedisStore(client, prefs.WithNamespace("test"))
	ctx := context.Background()

	err := store.Set(ctx, prefs.KeyLang, "es")
	assert.ErrorIs(t, err, prefs.ErrUnavailable)

	_, err = store.Get(ctx, prefs.KeyLang)
	assert.ErrorIs(t, err, prefs.ErrUnavailable)
	assert.False(t, prefs.IsNotFound(err))

	p := prefs.NewSafe(store, prefs.WithTimeout(time.Second))
	p.Set(ctx, prefs.KeyLang, "es")
	_, ok := p.Get(ctx, prefs.KeyLang)
	assert.False(t, ok)
}
