// Package trafilatura provides a pagesum.TextExtractor backed by
// go-trafilatura.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/pagesum"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements pagesum.TextExtractor at compile time.
var _ pagesum.TextExtractor = (*Extractor)(nil)

// Extractor extracts the main text of a page with trafilatura, falling
// back to its readability and dom-distiller heuristics.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback: true,
		},
	}
}

// ExtractText returns the main text content of rawHTML.
// Returns ENOTFOUND when trafilatura finds no content.
func (e *Extractor) ExtractText(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", pagesum.Errorf(pagesum.ENOTFOUND, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return "", pagesum.Errorf(pagesum.ENOTFOUND, "trafilatura: %v", err)
	}

	text := strings.TrimSpace(result.ContentText)
	if text == "" {
		return "", pagesum.Errorf(pagesum.ENOTFOUND, "no content text")
	}
	return text, nil
}
