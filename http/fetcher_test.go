package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/docsift/docsift"
	dochttp "github.com/docsift/docsift/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns status, content type and body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte("<html><body>Hello</body></html>"))
		}))
		defer server.Close()

		fetcher := dochttp.NewFetcher()
		res, err := fetcher.Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, 200, res.StatusCode)
		assert.Equal(t, "text/html", res.ContentType)
		assert.Equal(t, "<html><body>Hello</body></html>", string(res.Body))
	})

	t.Run("returns non-2xx statuses without error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer server.Close()

		fetcher := dochttp.NewFetcher()
		res, err := fetcher.Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, 404, res.StatusCode)
		assert.False(t, res.OK())
	})

	t.Run("rejects oversized Content-Length before reading", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Length", "1048576")
			_, _ = w.Write(make([]byte, 1048576))
		}))
		defer server.Close()

		fetcher := dochttp.NewFetcher(dochttp.WithMaxBodySize(1024))
		_, err := fetcher.Fetch(context.Background(), server.URL)

		require.Error(t, err)
		assert.Equal(t, docsift.ETOOLARGE, docsift.ErrorCode(err))
	})

	t.Run("aborts mid-stream once the cap is exceeded", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Chunked response with no Content-Length header.
			flusher := w.(http.Flusher)
			chunk := strings.Repeat("a", 512)
			for j := 0; j < 10; j++ {
				_, _ = w.Write([]byte(chunk))
				flusher.Flush()
			}
		}))
		defer server.Close()

		fetcher := dochttp.NewFetcher(dochttp.WithMaxBodySize(1024))
		_, err := fetcher.Fetch(context.Background(), server.URL)

		require.Error(t, err)
		assert.Equal(t, docsift.ETOOLARGE, docsift.ErrorCode(err))
		assert.Contains(t, err.Error(), "exceeded max size")
	})

	t.Run("allows a body exactly at the cap", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(strings.Repeat("a", 1024)))
		}))
		defer server.Close()

		fetcher := dochttp.NewFetcher(dochttp.WithMaxBodySize(1024))
		res, err := fetcher.Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Len(t, res.Body, 1024)
	})

	t.Run("times out slow responses", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte("late"))
		}))
		defer server.Close()

		fetcher := dochttp.NewFetcher(dochttp.WithTimeout(20 * time.Millisecond))
		_, err := fetcher.Fetch(context.Background(), server.URL)

		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		fetcher := dochttp.NewFetcher()
		_, err := fetcher.Fetch(ctx, server.URL)
		require.Error(t, err)
	})

	t.Run("identifies itself with a user agent", func(t *testing.T) {
		t.Parallel()

		var ua string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ua = r.Header.Get("User-Agent")
		}))
		defer server.Close()

		fetcher := dochttp.NewFetcher()
		_, err := fetcher.Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Contains(t, ua, "docsift")
	})
}
