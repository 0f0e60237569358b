package pagesum

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxTextLength is the number of characters of page text sent to a provider.
const MaxTextLength = 20000

// TruncationMarker is appended to page text cut at MaxTextLength.
const TruncationMarker = "..."

// NoSummaryText is returned in place of a summary when a provider answers
// successfully but without the expected summary field.
const NoSummaryText = "No summary available."

// SummaryStyle is the requested shape of a summary.
type SummaryStyle string

// SummaryStyle constants.
const (
	StyleBrief    SummaryStyle = "brief"
	StyleDetailed SummaryStyle = "detailed"
	StyleBullets  SummaryStyle = "bullets"
	StyleDefault  SummaryStyle = "default"
)

// ParseSummaryStyle maps a user-supplied name to a SummaryStyle.
// Unrecognized names map to StyleDefault.
func ParseSummaryStyle(s string) SummaryStyle {
	switch style := SummaryStyle(strings.ToLower(strings.TrimSpace(s))); style {
	case StyleBrief, StyleDetailed, StyleBullets:
		return style
	default:
		return StyleDefault
	}
}

// SummaryRequest is everything a provider needs to summarize one page.
type SummaryRequest struct {
	Provider   ProviderID
	Text       string
	Style      SummaryStyle
	Language   string
	Credential string
}

// Validate returns an error if the request contains invalid fields.
func (r *SummaryRequest) Validate() error {
	if r.Provider == "" {
		return Errorf(EINVALID, "provider required")
	}
	if r.Credential == "" {
		return Errorf(ECONFIG, "API key for %s not found", r.Provider.Label())
	}
	if strings.TrimSpace(r.Text) == "" {
		return Errorf(EINVALID, "text required")
	}
	return nil
}

// Prompt returns the instruction sent to the provider for this request.
func (r *SummaryRequest) Prompt() string {
	return BuildPrompt(r.Text, r.Style, r.Language)
}

// Summarizer turns page text into a summary using a remote provider.
type Summarizer interface {
	// Summarize sends exactly one request to the provider selected by
	// req.Provider. Returns EPROVIDER on transport or protocol failure.
	Summarize(ctx context.Context, req *SummaryRequest) (string, error)
}

// BuildPrompt truncates text and prefixes the style-specific instruction.
func BuildPrompt(text string, style SummaryStyle, language string) string {
	text = TruncateText(text)
	switch style {
	case StyleBrief:
		return fmt.Sprintf("Provide a brief summary (2-3 sentences) in %s:\n\n%s", language, text)
	case StyleDetailed:
		return fmt.Sprintf("Provide a detailed summary in %s, covering all key points:\n\n%s", language, text)
	case StyleBullets:
		return fmt.Sprintf("Summarize in %s as 5-7 key points:\n\n%s", language, text)
	default:
		return fmt.Sprintf("Summarize this article in %s:\n\n%s", language, text)
	}
}

// TruncateText cuts text to MaxTextLength characters and appends
// TruncationMarker. Text at or under the limit is returned unchanged.
func TruncateText(text string) string {
	if utf8.RuneCountInString(text) <= MaxTextLength {
		return text
	}
	n := 0
	for i := range text {
		if n == MaxTextLength {
			return text[:i] + TruncationMarker
		}
		n++
	}
	return text
}
