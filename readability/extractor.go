// Package readability provides a pagesum.TextExtractor backed by
// go-readability, the Go port of Mozilla's Readability.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/pagesum"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pagesum.TextExtractor at compile time.
var _ pagesum.TextExtractor = (*Extractor)(nil)

// Extractor scores the page's blocks and keeps the main article,
// dropping navigation, footers and sidebars.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the text content of the main article. Pages are
// parsed without a base URL; links are irrelevant to plain text.
// Returns ENOTFOUND when readability finds no article text.
func (e *Extractor) ExtractText(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", pagesum.Errorf(pagesum.ENOTFOUND, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), &url.URL{})
	if err != nil {
		return "", pagesum.Errorf(pagesum.EINVALID, "readability: %v", err)
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return "", pagesum.Errorf(pagesum.ENOTFOUND, "no article text")
	}
	return text, nil
}
