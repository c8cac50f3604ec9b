package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(maxRetries int) Service {
	return NewService(nil, Options{
		Timeout:         2 * time.Second,
		MaxRetries:      maxRetries,
		InitialInterval: time.Millisecond,
	})
}

func TestFetchReleaseSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/tisfeng/Raycast-Easydict/releases/tags/2.8.0", r.URL.Path)
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tag_name":"2.8.0","name":"v2.8.0","body":"FRESH","html_url":"https://example.test/r"}`))
	}))
	defer srv.Close()

	release, err := newTestService(0).FetchRelease(context.Background(), srv.URL+"/repos/tisfeng/Raycast-Easydict/releases/tags/2.8.0")
	require.NoError(t, err)
	assert.Equal(t, "FRESH", release.Body)
	assert.Equal(t, "2.8.0", release.TagName)
}

func TestFetchReleaseNotFoundIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestService(3).FetchRelease(context.Background(), srv.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(err, ErrStatus))
	assert.Equal(t, int32(1), calls.Load())

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestFetchReleaseRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"body":"eventually"}`))
	}))
	defer srv.Close()

	release, err := newTestService(3).FetchRelease(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "eventually", release.Body)
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetchReleaseGivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestService(2).FetchRelease(context.Background(), srv.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStatus))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetchReleaseMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>rate limited</html>`))
	}))
	defer srv.Close()

	_, err := newTestService(2).FetchRelease(context.Background(), srv.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestFetchReleaseUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestService(1).FetchRelease(context.Background(), url)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrStatus))
}

func TestFetchReleaseHonoursCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"body":"late"}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestService(3).FetchRelease(ctx, srv.URL)
	require.Error(t, err)
}
