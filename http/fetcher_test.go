package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	pagesumhttp "github.com/fwojciec/pagesum/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveHTML(t *testing.T, h http.HandlerFunc) string {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	return server.URL
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns the page body with browser-like headers", func(t *testing.T) {
		t.Parallel()

		var gotUA, gotAccept string
		url := serveHTML(t, func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			gotAccept = r.Header.Get("Accept")
			_, _ = w.Write([]byte("<html><body><p>Hi</p></body></html>"))
		})

		html, err := pagesumhttp.NewFetcher().Fetch(context.Background(), url)

		require.NoError(t, err)
		assert.Equal(t, "<html><body><p>Hi</p></body></html>", html)
		assert.Equal(t, pagesumhttp.DefaultUserAgent, gotUA)
		assert.Contains(t, gotAccept, "text/html")
	})

	t.Run("sends a custom user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		url := serveHTML(t, func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
		})

		_, err := pagesumhttp.NewFetcher(pagesumhttp.WithUserAgent("test-agent/1")).Fetch(context.Background(), url)

		require.NoError(t, err)
		assert.Equal(t, "test-agent/1", gotUA)
	})

	t.Run("cuts oversized bodies", func(t *testing.T) {
		t.Parallel()

		url := serveHTML(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(strings.Repeat("x", 100)))
		})

		html, err := pagesumhttp.NewFetcher(pagesumhttp.WithMaxPageBytes(10)).Fetch(context.Background(), url)

		require.NoError(t, err)
		assert.Len(t, html, 10)
	})

	t.Run("times out slow pages", func(t *testing.T) {
		t.Parallel()

		url := serveHTML(t, func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
		})

		_, err := pagesumhttp.NewFetcher(pagesumhttp.WithTimeout(10*time.Millisecond)).Fetch(context.Background(), url)

		require.Error(t, err)
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		t.Parallel()

		url := serveHTML(t, func(w http.ResponseWriter, r *http.Request) {})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := pagesumhttp.NewFetcher().Fetch(ctx, url)

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("reports non-200 status", func(t *testing.T) {
		t.Parallel()

		url := serveHTML(t, func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		})

		_, err := pagesumhttp.NewFetcher().Fetch(context.Background(), url)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 404")
	})
}
