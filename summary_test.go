package pagesum_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/pagesum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateText(t *testing.T) {
	t.Parallel()

	t.Run("cuts long text to the limit and appends the marker", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("a", 25000)

		got := pagesum.TruncateText(text)

		assert.Len(t, got, 20003)
		assert.Equal(t, strings.Repeat("a", 20000)+"...", got)
	})

	t.Run("passes text at the limit through unchanged", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("b", 20000)

		assert.Equal(t, text, pagesum.TruncateText(text))
	})

	t.Run("passes short text through unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "short", pagesum.TruncateText("short"))
	})

	t.Run("counts characters rather than bytes", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("é", 20001)

		got := pagesum.TruncateText(text)

		require.True(t, strings.HasSuffix(got, "..."))
		assert.Equal(t, 20003, utf8.RuneCountInString(got))
	})
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		style pagesum.SummaryStyle
		want  string
	}{
		{pagesum.StyleBrief, "Provide a brief summary (2-3 sentences) in French:\n\nPage text"},
		{pagesum.StyleDetailed, "Provide a detailed summary in French, covering all key points:\n\nPage text"},
		{pagesum.StyleBullets, "Summarize in French as 5-7 key points:\n\nPage text"},
		{pagesum.StyleDefault, "Summarize this article in French:\n\nPage text"},
		{pagesum.SummaryStyle("unknown"), "Summarize this article in French:\n\nPage text"},
	}

	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, pagesum.BuildPrompt("Page text", tt.style, "French"))
		})
	}

	t.Run("embeds truncated text", func(t *testing.T) {
		t.Parallel()

		prompt := pagesum.BuildPrompt(strings.Repeat("x", 25000), pagesum.StyleBrief, "English")

		assert.True(t, strings.HasSuffix(prompt, strings.Repeat("x", 20000)+"..."))
	})
}

func TestParseSummaryStyle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, pagesum.StyleBrief, pagesum.ParseSummaryStyle("brief"))
	assert.Equal(t, pagesum.StyleDetailed, pagesum.ParseSummaryStyle(" Detailed "))
	assert.Equal(t, pagesum.StyleBullets, pagesum.ParseSummaryStyle("bullets"))
	assert.Equal(t, pagesum.StyleDefault, pagesum.ParseSummaryStyle("default"))
	assert.Equal(t, pagesum.StyleDefault, pagesum.ParseSummaryStyle("haiku"))
}

func TestSummaryRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := func() *pagesum.SummaryRequest {
		return &pagesum.SummaryRequest{
			Provider:   pagesum.ProviderGemini,
			Text:       "text",
			Style:      pagesum.StyleBrief,
			Language:   "English",
			Credential: "key",
		}
	}

	t.Run("accepts complete request", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, valid().Validate())
	})

	t.Run("requires provider", func(t *testing.T) {
		t.Parallel()

		req := valid()
		req.Provider = ""

		assert.Equal(t, pagesum.EINVALID, pagesum.ErrorCode(req.Validate()))
	})

	t.Run("requires credential", func(t *testing.T) {
		t.Parallel()

		req := valid()
		req.Credential = ""

		err := req.Validate()
		assert.Equal(t, pagesum.ECONFIG, pagesum.ErrorCode(err))
		assert.Contains(t, pagesum.ErrorMessage(err), "GEMINI")
	})

	t.Run("requires non-blank text", func(t *testing.T) {
		t.Parallel()

		req := valid()
		req.Text = "  \n "

		assert.Equal(t, pagesum.EINVALID, pagesum.ErrorCode(req.Validate()))
	})
}
