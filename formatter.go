package pagesum

import (
	"errors"
	"html"
	"regexp"
)

var (
	boldPattern    = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicPattern  = regexp.MustCompile(`\*(.*?)\*`)
	newlinePattern = regexp.MustCompile(`\r\n|\r|\n`)
)

// FormatSummary renders the inline markup of a summary as HTML.
// The summary is escaped first, then **x** becomes bold, *x* becomes
// italic, and line breaks become <br>, in that order, one pass per rule.
func FormatSummary(summary string) string {
	s := html.EscapeString(summary)
	s = boldPattern.ReplaceAllString(s, "<strong>$1</strong>")
	s = italicPattern.ReplaceAllString(s, "<em>$1</em>")
	return newlinePattern.ReplaceAllString(s, "<br>")
}

// FormatError returns the user-facing message for a failed summarize action.
func FormatError(err error) string {
	switch ErrorCode(err) {
	case ECONFIG, ENOTARGET, EINJECTION, EEXTRACTION:
		return ErrorMessage(err)
	}
	var e *Error
	if errors.As(err, &e) {
		return "Error: " + e.Message
	}
	return "Error: " + err.Error()
}
