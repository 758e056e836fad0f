package content_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linoteia/portfolio/pkg/content"
	"github.com/linoteia/portfolio/pkg/i18n"
)

func newContentServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestHTTPFetcher_Success(t *testing.T) {
	t.Parallel()

	srv, calls := newContentServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lang/es.json", r.URL.Path)
		assert.Equal(t, "no-store", r.Header.Get("Cache-Control"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"name":        "Catherine Petrenko",
			"subtitle":    "Project & Product Manager",
			"skillsTitle": "Habilidades clave",
			"skills":      []string{"Entrega de proyectos"},
			"aboutTitle":  "Sobre mí",
			"aboutText":   []string{"Uno", "Dos"},
		})
	})

	f, err := content.NewHTTPFetcher(srv.URL)
	require.NoError(t, err)

	p, err := f.Fetch(context.Background(), "es")
	require.NoError(t, err)
	assert.Equal(t, "Catherine Petrenko", p.Title)
	assert.Equal(t, "Habilidades clave", p.SkillsTitle)
	assert.Equal(t, []string{"Entrega de proyectos"}, p.Skills)
	assert.Equal(t, []string{"Uno", "Dos"}, p.AboutParagraphs)
	assert.EqualValues(t, 1, calls.Load())
}

func TestHTTPFetcher_MissingListsAreEmpty(t *testing.T) {
	t.Parallel()

	srv, _ := newContentServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"X","skills":null,"aboutText":"not a list"}`))
	})

	f, err := content.NewHTTPFetcher(srv.URL)
	require.NoError(t, err)

	p, err := f.Fetch(context.Background(), "en")
	require.NoError(t, err)
	assert.NotNil(t, p.Skills)
	assert.Empty(t, p.Skills)
	assert.NotNil(t, p.AboutParagraphs)
	assert.Empty(t, p.AboutParagraphs)
}

func TestHTTPFetcher_HTTPFailure(t *testing.T) {
	t.Parallel()

	srv, calls := newContentServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "missing", http.StatusNotFound)
	})

	f, err := content.NewHTTPFetcher(srv.URL)
	require.NoError(t, err)

	_, err = f.Fetch(context.Background(), "ru")
	require.Error(t, err)
	assert.True(t, content.IsHTTPError(err))
	assert.False(t, content.IsTransportError(err))
	assert.Equal(t, http.StatusNotFound, content.HTTPStatus(err))
	assert.EqualValues(t, 1, calls.Load(), "no retries")
}

func TestHTTPFetcher_TransportFailures(t *testing.T) {
	t.Parallel()

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		srv, _ := newContentServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"name":`))
		})
		f, err := content.NewHTTPFetcher(srv.URL)
		require.NoError(t, err)

		_, err = f.Fetch(context.Background(), "en")
		assert.True(t, content.IsTransportError(err))
	})

	t.Run("json but not an object", func(t *testing.T) {
		t.Parallel()
		srv, _ := newContentServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`null`))
		})
		f, err := content.NewHTTPFetcher(srv.URL)
		require.NoError(t, err)

		_, err = f.Fetch(context.Background(), "en")
		assert.True(t, content.IsTransportError(err))
		assert.ErrorIs(t, err, content.ErrNotAnObject)
	})

	t.Run("connection refused", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.NotFoundHandler())
		base := srv.URL
		srv.Close()

		f, err := content.NewHTTPFetcher(base)
		require.NoError(t, err)

		_, err = f.Fetch(context.Background(), "en")
		assert.True(t, content.IsTransportError(err))
		assert.False(t, content.IsHTTPError(err))
	})

	t.Run("no client", func(t *testing.T) {
		t.Parallel()
		f, err := content.NewHTTPFetcher("http://example.invalid", content.WithHTTPClient(nil))
		require.NoError(t, err)

		_, err = f.Fetch(context.Background(), "en")
		assert.True(t, content.IsTransportError(err))
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		srv, _ := newContentServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		})
		f, err := content.NewHTTPFetcher(srv.URL)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err = f.Fetch(ctx, "en")
		assert.True(t, content.IsTransportError(err))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestHTTPFetcher_URL(t *testing.T) {
	t.Parallel()

	f, err := content.NewHTTPFetcherFromConfig(content.Config{BaseURL: "https://example.com/site/"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/site/lang/ru.json", f.URL(i18n.Code("ru")))

	_, err = content.NewHTTPFetcher("")
	assert.ErrorIs(t, err, content.ErrNoBaseURL)
}

func TestPayload_UnmarshalLenient(t *testing.T) {
	t.Parallel()

	var p content.Payload
	err := json.Unmarshal([]byte(`{
		"name": 42,
		"subtitle": null,
		"skills": ["a", 1, true, {"x": 1}, null],
		"aboutTitle": {"nested": true}
	}`), &p)
	require.NoError(t, err)

	assert.Equal(t, "42", p.Title)
	assert.Empty(t, p.Subtitle)
	assert.Equal(t, []string{"a", "1", "true", ""}, p.Skills)
	assert.Empty(t, p.AboutTitle)
	assert.Equal(t, []string{}, p.AboutParagraphs)
}

func TestEmptyFallback(t *testing.T) {
	t.Parallel()

	p := content.EmptyFallback()
	assert.Equal(t, "Skills", p.SkillsTitle)
	assert.Equal(t, "About", p.AboutTitle)
	assert.Equal(t, []string{}, p.Skills)
	assert.Equal(t, []string{}, p.AboutParagraphs)

	p.Skills = append(p.Skills, "mutated")
	assert.Empty(t, content.EmptyFallback().Skills)
}
