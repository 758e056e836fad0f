package web_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linoteia/portfolio/pkg/content"
	"github.com/linoteia/portfolio/pkg/i18n"
	"github.com/linoteia/portfolio/pkg/loader"
	"github.com/linoteia/portfolio/pkg/schedule"
	"github.com/linoteia/portfolio/pkg/theme"
	"github.com/linoteia/portfolio/pkg/web"
)

func testDeps() web.Deps {
	return web.Deps{
		Fetcher: content.FetcherFunc(func(_ context.Context, code i18n.Code) (content.Payload, error) {
			return content.Payload{Title: code.String()}, nil
		}),
		Loader: loader.Config{FadeDelay: time.Millisecond, DefaultLanguage: "en", Languages: []string{"en", "ru"}},
		Theme:  theme.Config{FadeOut: time.Millisecond, FadeIn: time.Millisecond, Default: "dark"},
		NewScheduler: func() web.Scheduler {
			return schedule.NewManual()
		},
	}
}

func TestRegistry_EvictsOldest(t *testing.T) {
	t.Parallel()
	reg := web.NewRegistryFromConfig(web.Config{MaxSessions: 1, SessionTTL: time.Minute}, testDeps())
	defer reg.Close()
	ctx := context.Background()

	a, err := reg.GetOrCreate(ctx, "a")
	require.NoError(t, err)
	same, err := reg.GetOrCreate(ctx, "a")
	require.NoError(t, err)
	assert.Same(t, a, same)

	_, err = reg.GetOrCreate(ctx, "b")
	require.NoError(t, err)

	select {
	case <-a.Done():
	case <-time.After(time.Second):
		t.Fatal("evicted session was not closed")
	}
	assert.Equal(t, 1, reg.Len())
	_, ok := reg.Get("a")
	assert.False(t, ok)
}

func TestRegistry_TTL(t *testing.T) {
	t.Parallel()
	reg := web.NewRegistryFromConfig(web.Config{MaxSessions: 4, SessionTTL: 20 * time.Millisecond}, testDeps())
	defer reg.Close()

	s, err := reg.GetOrCreate(context.Background(), "a")
	require.NoError(t, err)
	require.Equal(t, 1, reg.Len())

	require.Eventually(t, func() bool {
		select {
		case <-s.Done():
			return true
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
	assert.Zero(t, reg.Len())
	_, ok := reg.Get("a")
	assert.False(t, ok)
}

func TestRegistry_CreationDoesNotBlockOtherVisitors(t *testing.T) {
	t.Parallel()
	d := testDeps()
	entered := make(chan struct{})
	release := make(chan struct{})
	var slowCalls atomic.Int32

	reg := web.NewRegistry(func(_ context.Context, id string) (*web.Session, error) {
		if id == "newcomer" {
			slowCalls.Add(1)
			close(entered)
			<-release
		}
		return web.NewSession(id, d)
	}, 4, time.Minute, nil)
	defer reg.Close()

	ctx := context.Background()
	existing, err := reg.GetOrCreate(ctx, "a")
	require.NoError(t, err)

	created := make(chan *web.Session, 2)
	for range 2 {
		go func() {
			s, err := reg.GetOrCreate(ctx, "newcomer")
			assert.NoError(t, err)
			created <- s
		}()
	}
	<-entered

	start := time.Now()
	got, err := reg.GetOrCreate(ctx, "a")
	require.NoError(t, err)
	assert.Same(t, existing, got)
	assert.Less(t, time.Since(start), 100*time.Millisecond)

	close(release)
	first, second := <-created, <-created
	assert.Same(t, first, second)
	assert.Equal(t, int32(1), slowCalls.Load())
	assert.Equal(t, 2, reg.Len())
}

func TestRegistry_FactoryError(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	reg := web.NewRegistry(func(context.Context, string) (*web.Session, error) { return nil, boom }, 4, time.Minute, nil)

	_, err := reg.GetOrCreate(context.Background(), "a")
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, reg.Len())
}

func TestRegistry_CloseClosesSessions(t *testing.T) {
	t.Parallel()
	reg := web.NewRegistryFromConfig(web.Config{MaxSessions: 4, SessionTTL: time.Minute}, testDeps())

	s, err := reg.GetOrCreate(context.Background(), "a")
	require.NoError(t, err)
	require.NoError(t, reg.Close())

	select {
	case <-s.Done():
	default:
		t.Fatal("session still open")
	}
}

func TestNewSession(t *testing.T) {
	t.Parallel()

	_, err := web.NewSession("x", web.Deps{})
	assert.ErrorIs(t, err, web.ErrMissingFetcher)

	d := testDeps()
	d.Loader.Languages = nil
	_, err = web.NewSession("x", d)
	assert.ErrorIs(t, err, i18n.ErrEmptySet)

	d = testDeps()
	d.Theme.Default = "sepia"
	_, err = web.NewSession("x", d)
	assert.ErrorIs(t, err, theme.ErrInvalidTheme)
}

func TestSession_StartWithManualClock(t *testing.T) {
	t.Parallel()
	clock := schedule.NewManual()
	d := testDeps()
	d.NewScheduler = func() web.Scheduler { return clock }

	s, err := web.NewSession("v", d)
	require.NoError(t, err)
	s.Start(context.Background())
	s.Start(context.Background())

	assert.Equal(t, i18n.Code("en"), s.Page.Active())
	assert.Equal(t, "dark", s.Page.Theme())
	assert.Equal(t, 1, clock.Pending())

	clock.Advance(0)
	require.Eventually(t, func() bool { return clock.Pending() == 1 }, time.Second, time.Millisecond)
	clock.Advance(time.Millisecond)
	assert.Equal(t, i18n.Code("en"), s.Loader.State().LastApplied)
	assert.Contains(t, s.Page.Snapshot().Content, "<h1>en</h1>")

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
}
