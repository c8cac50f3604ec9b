package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrNotFound is returned when the release tag does not exist.
	ErrNotFound = errors.New("release not found")
	// ErrStatus is returned for any other non-2xx response.
	ErrStatus = errors.New("unexpected response status")
	// ErrDecode is returned when the response body is not a release object.
	ErrDecode = errors.New("malformed release payload")
)

// StatusError carries the HTTP status of a rejected request.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *StatusError) Is(target error) bool {
	if target == ErrStatus {
		return true
	}
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Release is the subset of the GitHub release object that is consumed.
type Release struct {
	TagName     string `json:"tag_name"`
	Name        string `json:"name"`
	Body        string `json:"body"`
	HTMLURL     string `json:"html_url"`
	Prerelease  bool   `json:"prerelease"`
	PublishedAt string `json:"published_at"`
}

// Options tunes the HTTP transport.
type Options struct {
	Timeout         time.Duration
	MaxRetries      int
	InitialInterval time.Duration
	UserAgent       string
}

// HTTPDoer is satisfied by *http.Client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type service struct {
	client HTTPDoer
	opts   Options
}

// Service fetches release metadata from a GitHub-compatible API.
type Service interface {
	FetchRelease(ctx context.Context, url string) (*Release, error)
}
