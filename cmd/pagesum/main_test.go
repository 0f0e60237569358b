package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/fwojciec/pagesum"
	main "github.com/fwojciec/pagesum/cmd/pagesum"
	pagesumhttp "github.com/fwojciec/pagesum/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articlePage = `<html><body><nav>Menu</nav><article><p>The article body.</p></article></body></html>`

// testEnv runs the CLI against local page and provider servers.
type testEnv struct {
	t        *testing.T
	pageURL  string
	pageHits atomic.Int32
	prompts  []string
	summary  string
	dbPath   string
	env      map[string]string
	registry *pagesumhttp.Registry
	stdin    string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	e := &testEnv{
		t:       t,
		summary: "**Short** summary",
		dbPath:  filepath.Join(t.TempDir(), "pagesum.db"),
		env:     map[string]string{"GEMINI_API_KEY": "K"},
	}

	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		e.pageHits.Add(1)
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(articlePage))
	}))
	t.Cleanup(page.Close)
	e.pageURL = page.URL

	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "K" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"message":"API key not valid"}}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"` + e.summary + `"}]}}]}`))
	}))
	t.Cleanup(provider.Close)

	e.registry = pagesumhttp.NewRegistry()
	e.registry.Register(&pagesumhttp.GeminiProvider{BaseURL: provider.URL, Model: pagesumhttp.DefaultGeminiModel})
	e.registry.Register(pagesumhttp.NewClaudeProvider())
	return e
}

func (e *testEnv) run(args ...string) (stdout, stderr string, err error) {
	e.t.Helper()

	m := main.NewMain()
	m.DBPath = e.dbPath
	m.Env = e.env
	m.Registry = e.registry
	m.Stdin = strings.NewReader(e.stdin)

	var out, errOut bytes.Buffer
	err = m.Run(context.Background(), args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("returns error without a command", func(t *testing.T) {
		t.Parallel()

		_, _, err := newTestEnv(t).run()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("prints help", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := newTestEnv(t).run("--help")
		require.NoError(t, err)
		assert.Contains(t, stdout, "summarize")
		assert.Contains(t, stdout, "keys")
	})
}

func TestSummarize_EndToEnd(t *testing.T) {
	t.Parallel()

	t.Run("prints the summary", func(t *testing.T) {
		t.Parallel()

		e := newTestEnv(t)
		stdout, _, err := e.run("summarize", e.pageURL)

		require.NoError(t, err)
		assert.Equal(t, "**Short** summary\n", stdout)
	})

	t.Run("renders html", func(t *testing.T) {
		t.Parallel()

		e := newTestEnv(t)
		stdout, _, err := e.run("--format", "html", "summarize", e.pageURL)

		require.NoError(t, err)
		assert.Equal(t, "<div class=\"summary\"><strong>Short</strong> summary</div>\n", stdout)
	})

	t.Run("uses a stored key", func(t *testing.T) {
		t.Parallel()

		e := newTestEnv(t)
		e.env = map[string]string{}

		_, _, err := e.run("keys", "set", "gemini", "K")
		require.NoError(t, err)

		stdout, _, err := e.run("summarize", e.pageURL)
		require.NoError(t, err)
		assert.Equal(t, "**Short** summary\n", stdout)
	})

	t.Run("reports a missing key", func(t *testing.T) {
		t.Parallel()

		e := newTestEnv(t)
		e.env = map[string]string{}

		stdout, stderr, err := e.run("summarize", e.pageURL)

		require.Error(t, err)
		assert.Equal(t, pagesum.ECONFIG, pagesum.ErrorCode(err))
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "API key for GEMINI not found.")
	})

	t.Run("reports provider errors", func(t *testing.T) {
		t.Parallel()

		e := newTestEnv(t)
		e.env = map[string]string{"GEMINI_API_KEY": "wrong"}

		_, stderr, err := e.run("summarize", e.pageURL)

		require.Error(t, err)
		assert.Equal(t, "Error: API key not valid\n", stderr)
	})

	t.Run("rejects unknown providers before loading the page", func(t *testing.T) {
		t.Parallel()

		e := newTestEnv(t)
		e.env = map[string]string{"PAGESUM_API_KEYS": "mistral:k"}

		_, stderr, err := e.run("--provider", "mistral", "summarize", e.pageURL)

		require.Error(t, err)
		assert.Equal(t, pagesum.EINVALID, pagesum.ErrorCode(err))
		assert.Equal(t, "Error: unknown provider \"mistral\"\n", stderr)
		assert.Zero(t, e.pageHits.Load())
	})

	t.Run("refuses restricted pages", func(t *testing.T) {
		t.Parallel()

		e := newTestEnv(t)
		_, stderr, err := e.run("summarize", "chrome://settings")

		require.Error(t, err)
		assert.Equal(t, pagesum.EINJECTION, pagesum.ErrorCode(err))
		assert.Contains(t, stderr, "This page doesn't allow content scripts.")
	})
}

func TestInteractive_EndToEnd(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	e.stdin = "\n" + e.pageURL + "\n"

	stdout, _, err := e.run("interactive")

	require.NoError(t, err)
	assert.Equal(t, "**Short** summary\n", stdout)
}

func TestExtract_EndToEnd(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	stdout, _, err := e.run("extract", e.pageURL)

	require.NoError(t, err)
	assert.Equal(t, "The article body.\n", stdout)
}

func TestPreview_EndToEnd(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	stdout, stderr, err := e.run("--style", "bullets", "--language", "German", "preview", e.pageURL)

	require.NoError(t, err)
	assert.Equal(t, "Summarize in German as 5-7 key points:\n\nThe article body.\n", stdout)
	assert.Contains(t, stderr, "Text: 17 chars")
}

func TestKeys_EndToEnd(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)

	stdout, _, err := e.run("keys", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No API keys stored.")

	stdout, _, err = e.run("keys", "set", "claude", "sk-ant-123456789")
	require.NoError(t, err)
	assert.Equal(t, "Saved API key for CLAUDE.\n", stdout)

	stdout, _, err = e.run("keys", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "claude")
	assert.Contains(t, stdout, "****6789")
	assert.NotContains(t, stdout, "sk-ant-123456789")

	stdout, _, err = e.run("keys", "delete", "claude")
	require.NoError(t, err)
	assert.Equal(t, "Deleted API key for CLAUDE.\n", stdout)

	_, stderr, err := e.run("keys", "delete", "claude")
	require.Error(t, err)
	assert.Contains(t, stderr, "No API key stored for CLAUDE.")
}

func TestProviders_EndToEnd(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	stdout, _, err := e.run("providers")

	require.NoError(t, err)
	assert.Equal(t, "* gemini   key set\n  claude   no key\n", stdout)
}
