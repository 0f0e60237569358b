package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagesum"
)

// Ensure TextExtractor implements pagesum.TextExtractor at compile time.
var _ pagesum.TextExtractor = (*TextExtractor)(nil)

// blockSeparator joins the texts of individual paragraphs or blocks.
const blockSeparator = "\n\n"

// TextExtractor extracts the readable text of a page with a tiered
// heuristic. Each tier runs only when the previous one produced no text:
//
//  1. the first <article>, if its rendered text is non-empty
//  2. visible <p> elements with text, joined by a blank line
//  3. visible <div> elements with text, joined by a blank line
//  4. the rendered text of <body>
//
// If all tiers come up empty the page has no extractable text.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText returns the best-effort visible text of html.
// Returns ENOTFOUND when no tier yields text.
func (e *TextExtractor) ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", pagesum.Errorf(pagesum.EINVALID, "failed to parse HTML: %v", err)
	}

	if text := articleText(doc); text != "" {
		return text, nil
	}
	if text := visibleBlocksText(doc, "p"); text != "" {
		return text, nil
	}
	if text := visibleBlocksText(doc, "div"); text != "" {
		return text, nil
	}
	if body := doc.Find("body").First(); body.Length() > 0 {
		if text := strings.TrimSpace(renderedText(body.Get(0))); text != "" {
			return text, nil
		}
	}

	return "", pagesum.Errorf(pagesum.ENOTFOUND, "no extractable text")
}

// articleText returns the rendered text of the first article element.
func articleText(doc *goquery.Document) string {
	article := doc.Find("article").First()
	if article.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(renderedText(article.Get(0)))
}

// visibleBlocksText joins the trimmed rendered text of every visible
// element matching selector, in document order.
func visibleBlocksText(doc *goquery.Document, selector string) string {
	var parts []string
	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		n := sel.Get(0)
		if !isVisible(n) {
			return
		}
		if text := strings.TrimSpace(renderedText(n)); text != "" {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, blockSeparator)
}
