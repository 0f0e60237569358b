package main_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/pagesum"
	main "github.com/fwojciec/pagesum/cmd/pagesum"
	"github.com/fwojciec/pagesum/mock"
	"github.com/fwojciec/pagesum/summarize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageWithText(text string) *mock.TabSource {
	return &mock.TabSource{
		ActiveTabFn: func(ctx context.Context, target string) (pagesum.Tab, error) {
			return &mock.Tab{
				InjectFn: func(ctx context.Context) error { return nil },
				SendFn: func(ctx context.Context, msg pagesum.Message) (*pagesum.Response, error) {
					return &pagesum.Response{Text: &text}, nil
				},
				CloseFn: func() error { return nil },
			}, nil
		},
	}
}

func TestPreviewCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("reports truncation and token estimate", func(t *testing.T) {
		t.Parallel()

		var counted string
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:          context.Background(),
			Stdout:       stdout,
			Stderr:       stderr,
			Config:       summarize.Config{Provider: pagesum.ProviderGemini, Style: pagesum.StyleDefault, Language: "English"},
			Orchestrator: &summarize.Orchestrator{Tabs: pageWithText(strings.Repeat("a", 25000))},
			Tokens: &mock.TokenCounter{
				CountTokensFn: func(ctx context.Context, text string) (int, error) {
					counted = text
					return 4242, nil
				},
			},
		}

		err := (&main.PreviewCmd{URL: "https://example.com"}).Run(deps)

		require.NoError(t, err)
		wantPrompt := "Summarize this article in English:\n\n" + strings.Repeat("a", 20000) + "..."
		assert.Equal(t, wantPrompt+"\n", stdout.String())
		assert.Equal(t, wantPrompt, counted)
		assert.Contains(t, stderr.String(), "Text: 25000 chars (truncated to 20000)")
		assert.Contains(t, stderr.String(), "~4242 tokens")
	})

	t.Run("works without a token counter", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:          context.Background(),
			Stdout:       stdout,
			Stderr:       stderr,
			Config:       summarize.Config{Style: pagesum.StyleBrief, Language: "Polish"},
			Orchestrator: &summarize.Orchestrator{Tabs: pageWithText("Krótki tekst.")},
		}

		err := (&main.PreviewCmd{URL: "https://example.com"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Provide a brief summary (2-3 sentences) in Polish:\n\nKrótki tekst.\n", stdout.String())
		assert.Contains(t, stderr.String(), "Text: 13 chars")
		assert.NotContains(t, stderr.String(), "tokens")
	})
}

func TestRenderers(t *testing.T) {
	t.Parallel()

	t.Run("html renderer escapes errors", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		r := &main.HTMLRenderer{Stdout: stdout}

		require.NoError(t, r.Render(pagesum.Result{Err: pagesum.Errorf(pagesum.EPROVIDER, "<bad>")}))
		assert.Equal(t, "<div class=\"error\">Error: &lt;bad&gt;</div>\n", stdout.String())
	})

	t.Run("html renderer formats summaries", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		r := &main.HTMLRenderer{Stdout: stdout}

		require.NoError(t, r.Render(pagesum.Result{Summary: "*a*\nb"}))
		assert.Equal(t, "<div class=\"summary\"><em>a</em><br>b</div>\n", stdout.String())
	})

	t.Run("text renderer splits output and errors", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		r := &main.TextRenderer{Stdout: stdout, Stderr: stderr}

		require.NoError(t, r.Render(pagesum.Result{Summary: "ok"}))
		require.NoError(t, r.Render(pagesum.Result{Err: pagesum.Errorf(pagesum.EEXTRACTION, "Could not extract article text.")}))
		assert.Equal(t, "ok\n", stdout.String())
		assert.Equal(t, "Could not extract article text.\n", stderr.String())
	})
}
