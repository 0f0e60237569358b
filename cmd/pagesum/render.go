package main

import (
	"fmt"
	"html"
	"io"

	"github.com/fwojciec/pagesum"
)

// renderedError marks a failure already shown to the user by a Renderer.
type renderedError struct {
	err error
}

func (e *renderedError) Error() string { return e.err.Error() }
func (e *renderedError) Unwrap() error { return e.err }

// TextRenderer prints summaries as plain text and failures to stderr.
// Summaries keep their raw markup; FormatSummary applies only to HTMLRenderer.
type TextRenderer struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Render implements pagesum.Renderer.
func (r *TextRenderer) Render(res pagesum.Result) error {
	if !res.OK() {
		_, err := fmt.Fprintln(r.Stderr, res.Message())
		return err
	}
	_, err := fmt.Fprintln(r.Stdout, res.Summary)
	return err
}

// HTMLRenderer prints each result as an HTML fragment, the way a popup's
// result area shows it.
type HTMLRenderer struct {
	Stdout io.Writer
}

// Render implements pagesum.Renderer.
func (r *HTMLRenderer) Render(res pagesum.Result) error {
	if !res.OK() {
		_, err := fmt.Fprintf(r.Stdout, "<div class=\"error\">%s</div>\n", html.EscapeString(res.Message()))
		return err
	}
	_, err := fmt.Fprintf(r.Stdout, "<div class=\"summary\">%s</div>\n", pagesum.FormatSummary(res.Summary))
	return err
}

func newRenderer(format string, stdout, stderr io.Writer) pagesum.Renderer {
	if format == "html" {
		return &HTMLRenderer{Stdout: stdout}
	}
	return &TextRenderer{Stdout: stdout, Stderr: stderr}
}
