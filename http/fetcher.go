// Package http provides the HTTP implementation of helparc.Fetcher with
// bounded retry and exponential backoff for transient failures.
package http

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/helparc"
)

// DefaultBackoff is the base backoff unit: attempt n (counted from 0)
// sleeps DefaultBackoff << n before the next attempt.
const DefaultBackoff = 1 * time.Second

// Ensure Fetcher implements helparc.Fetcher at compile time.
var _ helparc.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page HTML over HTTP. One underlying client is shared
// across all requests for the lifetime of the Fetcher; its configured
// headers are attached to every request.
type Fetcher struct {
	client     *http.Client
	headers    map[string]string
	timeout    time.Duration
	maxRetries int
	backoff    time.Duration
	logger     *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-attempt request timeout.
// Defaults to helparc.DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithHeaders sets the headers attached to every request.
func WithHeaders(headers map[string]string) Option {
	return func(f *Fetcher) {
		f.headers = headers
	}
}

// WithMaxRetries sets the total attempt budget for transient failures.
// Defaults to helparc.DefaultMaxRetries if not specified.
func WithMaxRetries(n int) Option {
	return func(f *Fetcher) {
		f.maxRetries = n
	}
}

// WithBackoff sets the base backoff unit. Useful for testing without
// waiting for real delays.
func WithBackoff(d time.Duration) Option {
	return func(f *Fetcher) {
		f.backoff = d
	}
}

// WithLogger sets the logger for per-attempt outcome messages.
// Defaults to a discarding logger.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:    helparc.DefaultTimeout,
		maxRetries: helparc.DefaultMaxRetries,
		backoff:    DefaultBackoff,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML body for the URL, retrying transient failures
// (HTTP 429, 5xx, timeouts, network errors) with exponential backoff up to
// the configured attempt budget. A 404 is a definitive negative and is
// returned as ENOTFOUND without retrying; other unexpected status codes
// return EINTERNAL immediately.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	var lastErr error
	for attempt := 0; attempt < f.maxRetries; attempt++ {
		body, retryable, err := f.attempt(ctx, url)
		if err == nil {
			f.logger.Debug("fetched page", "url", url, "attempt", attempt+1)
			return body, nil
		}
		if !retryable {
			f.logger.Warn("fetch failed", "url", url, "attempt", attempt+1, "err", err)
			return "", err
		}
		lastErr = err
		f.logger.Warn("transient fetch failure",
			"url", url,
			"attempt", attempt+1,
			"max_retries", f.maxRetries,
			"err", err,
		)

		if attempt == f.maxRetries-1 {
			break
		}
		if err := sleep(ctx, f.backoff<<attempt); err != nil {
			return "", err
		}
	}

	return "", helparc.Errorf(helparc.EUNAVAILABLE, "giving up on %s after %d attempts: %v", url, f.maxRetries, lastErr)
}

// attempt performs a single GET. retryable reports whether the failure is
// transient and worth another attempt.
func (f *Fetcher) attempt(ctx context.Context, url string) (body string, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", false, err
	}
	for k, v := range f.headers {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		// Timeouts and network-level failures are transient, unless the
		// caller's context is gone.
		if ctx.Err() != nil {
			return "", false, ctx.Err()
		}
		return "", true, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", true, err
		}
		return string(b), false, nil
	case resp.StatusCode == http.StatusNotFound:
		return "", false, helparc.Errorf(helparc.ENOTFOUND, "page not found: %s", url)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return "", true, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	default:
		return "", false, helparc.Errorf(helparc.EINTERNAL, "unexpected status %d for %s", resp.StatusCode, url)
	}
}

// Close releases idle connections held by the shared client.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
