// Package github fetches release announcements from the GitHub releases API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
)

const (
	defaultTimeout         = 10 * time.Second
	defaultInitialInterval = 500 * time.Millisecond
	defaultUserAgent       = "release-notice"
	maxBodyBytes           = 4 << 20
)

// NewService creates a release client. A nil client gets an *http.Client
// using opts.Timeout.
func NewService(client HTTPDoer, opts Options) Service {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	if opts.InitialInterval <= 0 {
		opts.InitialInterval = defaultInitialInterval
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}

	return &service{client: client, opts: opts}
}

// FetchRelease GETs url and decodes a release object. Transport failures,
// 5xx and 429 responses are retried; other failures are returned at once.
func (s *service) FetchRelease(ctx context.Context, url string) (*Release, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.opts.InitialInterval

	return backoff.Retry(ctx, func() (*Release, error) {
		return s.fetchOnce(ctx, url)
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(s.opts.MaxRetries+1)),
		backoff.WithMaxElapsedTime(s.opts.Timeout*time.Duration(s.opts.MaxRetries+1)),
	)
}

func (s *service) fetchOnce(ctx context.Context, url string) (*Release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to build request: %w", err))
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", s.opts.UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		statusErr := &StatusError{StatusCode: resp.StatusCode, URL: url}
		if isRetryableStatus(resp.StatusCode) {
			return nil, statusErr
		}
		return nil, backoff.Permanent(statusErr)
	}

	var release Release
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&release); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("%w: %v", ErrDecode, err))
	}
	return &release, nil
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}
