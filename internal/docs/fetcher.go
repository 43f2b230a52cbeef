// Package docs implements the hybrid content-resolution core: live fetch
// from the documentation origin, HTML extraction, and deterministic
// fallback to the bundled static catalog.
package docs

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultFetchTimeout bounds a live fetch when no timeout is configured.
const DefaultFetchTimeout = 10 * time.Second

// RemoteDocument is the raw markup of a successfully fetched docs page.
type RemoteDocument struct {
	RawBody   string
	SourceURL string
}

// Fetcher retrieves raw HTML from paths under a fixed documentation origin.
// It performs a single bounded GET per call and never retries.
type Fetcher struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithTimeout sets the hard timeout for fetch requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a Fetcher for the given documentation origin.
func NewFetcher(baseURL string, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		baseURL: strings.TrimSuffix(baseURL, "/") + "/",
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.client = &http.Client{Timeout: f.timeout}
	return f
}

// URLFor returns the absolute origin URL for a relative docs path.
func (f *Fetcher) URLFor(path string) string {
	return f.baseURL + strings.TrimPrefix(path, "/")
}

// Origin returns the configured documentation origin.
func (f *Fetcher) Origin() string {
	return f.baseURL
}

// CheckOrigin issues a HEAD request against the documentation origin.
// Used by the health endpoint; any response, including an error status,
// counts as reachable.
func (f *Fetcher) CheckOrigin(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, f.baseURL, nil)
	if err != nil {
		return err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// Fetch issues a single GET for the given relative path. Any network
// error, timeout or non-2xx status is reported as a *FetchError; the
// caller decides whether to fall back or retry.
func (f *Fetcher) Fetch(ctx context.Context, path string) (*RemoteDocument, error) {
	fetchURL := f.URLFor(path)
	if _, err := url.ParseRequestURI(fetchURL); err != nil {
		return nil, &FetchError{URL: fetchURL, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
	if err != nil {
		return nil, &FetchError{URL: fetchURL, Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: fetchURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: fetchURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: fetchURL, Err: err}
	}

	return &RemoteDocument{
		RawBody:   string(body),
		SourceURL: fetchURL,
	}, nil
}
