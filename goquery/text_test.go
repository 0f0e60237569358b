package goquery_test

import (
	"testing"

	"github.com/fwojciec/pagesum"
	"github.com/fwojciec/pagesum/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextExtractor_ExtractText(t *testing.T) {
	t.Parallel()

	t.Run("prefers article text over paragraphs divs and body", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<body>
<div class="banner">Subscribe now</div>
<p>Outside paragraph</p>
<article>
	<h1>Release notes</h1>
	<p>The first paragraph.</p>
	<p>The second paragraph.</p>
</article>
</body>
</html>`

		text, err := goquery.NewTextExtractor().ExtractText(html)

		require.NoError(t, err)
		assert.Equal(t, "Release notes\n\nThe first paragraph.\n\nThe second paragraph.", text)
	})

	t.Run("uses only the first article", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<article><p>First</p></article>
<article><p>Second</p></article>
</body></html>`

		text, err := goquery.NewTextExtractor().ExtractText(html)

		require.NoError(t, err)
		assert.Equal(t, "First", text)
	})

	t.Run("falls back to visible paragraphs in document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<p>One</p>
<p style="display:none">Hidden one</p>
<div><p>  Two  </p></div>
<div hidden><p>Hidden two</p></div>
<p>Three</p>
<p>   </p>
</body></html>`

		text, err := goquery.NewTextExtractor().ExtractText(html)

		require.NoError(t, err)
		assert.Equal(t, "One\n\nTwo\n\nThree", text)
	})

	t.Run("falls back to paragraphs when the article is empty", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<article>   </article>
<p>Paragraph text</p>
</body></html>`

		text, err := goquery.NewTextExtractor().ExtractText(html)

		require.NoError(t, err)
		assert.Equal(t, "Paragraph text", text)
	})

	t.Run("treats a hidden article as having no rendered text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<article style="display: none !important"><p>Hidden article</p></article>
<p>Visible paragraph</p>
</body></html>`

		text, err := goquery.NewTextExtractor().ExtractText(html)

		require.NoError(t, err)
		assert.Equal(t, "Visible paragraph", text)
	})

	t.Run("falls back to visible divs", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div>First block</div>
<div style="DISPLAY: none">Hidden block</div>
<div>Second block</div>
</body></html>`

		text, err := goquery.NewTextExtractor().ExtractText(html)

		require.NoError(t, err)
		assert.Equal(t, "First block\n\nSecond block", text)
	})

	t.Run("falls back to body text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>Just some <b>bold</b> text<br>on two lines</body></html>`

		text, err := goquery.NewTextExtractor().ExtractText(html)

		require.NoError(t, err)
		assert.Equal(t, "Just some bold text\non two lines", text)
	})

	t.Run("honors elements stamped hidden by the browser", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<p data-pagesum-hidden="true">Fixed overlay</p>
<p>Real content</p>
</body></html>`

		text, err := goquery.NewTextExtractor().ExtractText(html)

		require.NoError(t, err)
		assert.Equal(t, "Real content", text)
	})

	t.Run("skips subtrees the browser computed as display none", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<article>
	<p>Shown</p>
	<div data-pagesum-display="none">Collapsed menu</div>
</article>
</body></html>`

		text, err := goquery.NewTextExtractor().ExtractText(html)

		require.NoError(t, err)
		assert.Equal(t, "Shown", text)
	})

	t.Run("ignores scripts and styles", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>T</title><style>p{}</style></head><body>
<script>var x = "not text";</script>
<p>Only this</p>
</body></html>`

		text, err := goquery.NewTextExtractor().ExtractText(html)

		require.NoError(t, err)
		assert.Equal(t, "Only this", text)
	})

	t.Run("returns ENOTFOUND for an empty visible body", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div hidden><p>Invisible</p></div>
<p style="display:none">Also invisible</p>
   
</body></html>`

		text, err := goquery.NewTextExtractor().ExtractText(html)

		require.Error(t, err)
		assert.Equal(t, pagesum.ENOTFOUND, pagesum.ErrorCode(err))
		assert.Empty(t, text)
	})

	t.Run("returns ENOTFOUND for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewTextExtractor().ExtractText("")

		assert.Equal(t, pagesum.ENOTFOUND, pagesum.ErrorCode(err))
	})
}
