package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/linoteia/portfolio/pkg/i18n"
)

var fetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "portfolio_content_fetch_duration_seconds",
	Help:    "Duration of content document requests by result.",
	Buckets: prometheus.DefBuckets,
}, []string{"result"})

// Fetcher retrieves the content payload for one language.
// Implementations never retry; retry policy belongs to the caller.
type Fetcher interface {
	Fetch(ctx context.Context, code i18n.Code) (Payload, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, code i18n.Code) (Payload, error)

func (f FetcherFunc) Fetch(ctx context.Context, code i18n.Code) (Payload, error) {
	return f(ctx, code)
}

// Config configures the HTTP content source.
type Config struct {
	BaseURL      string        `env:"CONTENT_BASE_URL" envDefault:"http://127.0.0.1:8080"`
	Timeout      time.Duration `env:"CONTENT_TIMEOUT" envDefault:"0s"` // zero waits forever
	MaxBodyBytes int64         `env:"CONTENT_MAX_BODY_BYTES" envDefault:"1048576"`
}

// HTTPFetcher loads `<base>/lang/<code>.json`.
type HTTPFetcher struct {
	base    string
	client  *http.Client
	maxBody int64
}

// FetcherOption configures HTTPFetcher.
type FetcherOption func(*HTTPFetcher)

// WithHTTPClient replaces the client. A nil client makes every fetch fail
// with a TransportError, mirroring a missing network layer.
func WithHTTPClient(c *http.Client) FetcherOption {
	return func(f *HTTPFetcher) { f.client = c }
}

// WithMaxBodyBytes caps how much of a response body is read.
func WithMaxBodyBytes(n int64) FetcherOption {
	return func(f *HTTPFetcher) {
		if n > 0 {
			f.maxBody = n
		}
	}
}

func NewHTTPFetcher(baseURL string, opts ...FetcherOption) (*HTTPFetcher, error) {
	if baseURL == "" {
		return nil, ErrNoBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, errors.Join(ErrNoBaseURL, err)
	}
	f := &HTTPFetcher{
		base:    baseURL,
		client:  &http.Client{},
		maxBody: 1 << 20,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// NewHTTPFetcherFromConfig builds a fetcher from Config.
func NewHTTPFetcherFromConfig(cfg Config, opts ...FetcherOption) (*HTTPFetcher, error) {
	base := []FetcherOption{
		WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		WithMaxBodyBytes(cfg.MaxBodyBytes),
	}
	return NewHTTPFetcher(cfg.BaseURL, append(base, opts...)...)
}

// URL returns the document address for code.
func (f *HTTPFetcher) URL(code i18n.Code) string {
	u, err := url.JoinPath(f.base, "lang", code.String()+".json")
	if err != nil {
		return f.base + "/lang/" + code.String() + ".json"
	}
	return u
}

// Fetch issues exactly one GET request for code.
func (f *HTTPFetcher) Fetch(ctx context.Context, code i18n.Code) (Payload, error) {
	start := time.Now()
	p, err := f.fetch(ctx, code)

	result := "ok"
	switch {
	case IsHTTPError(err):
		result = "http_error"
	case err != nil:
		result = "transport_error"
	}
	fetchDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())

	return p, err
}

func (f *HTTPFetcher) fetch(ctx context.Context, code i18n.Code) (Payload, error) {
	target := f.URL(code)
	if f.client == nil {
		return Payload{}, &TransportError{URL: target, Cause: errors.New("no HTTP client configured")}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Payload{}, &TransportError{URL: target, Cause: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := f.client.Do(req)
	if err != nil {
		return Payload{}, &TransportError{URL: target, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, f.maxBody))
		return Payload{}, &HTTPError{Status: resp.StatusCode, URL: target}
	}

	var raw json.RawMessage
	if err := json.NewDecoder(io.LimitReader(resp.Body, f.maxBody)).Decode(&raw); err != nil {
		return Payload{}, &TransportError{URL: target, Cause: err}
	}
	if raw = bytes.TrimSpace(raw); len(raw) == 0 || raw[0] != '{' {
		return Payload{}, &TransportError{URL: target, Cause: ErrNotAnObject}
	}

	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Payload{}, &TransportError{URL: target, Cause: err}
	}
	return p.Normalized(), nil
}
