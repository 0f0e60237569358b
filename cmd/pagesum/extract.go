package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/fwojciec/pagesum"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	text, err := deps.Orchestrator.Extract(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintln(deps.Stderr, pagesum.FormatError(err))
		return &renderedError{err: err}
	}
	fmt.Fprintln(deps.Stdout, text)
	return nil
}

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	text, err := deps.Orchestrator.Extract(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintln(deps.Stderr, pagesum.FormatError(err))
		return &renderedError{err: err}
	}

	language := deps.Config.Language
	if language == "" {
		language = "English"
	}
	prompt := pagesum.BuildPrompt(text, deps.Config.Style, language)
	fmt.Fprintln(deps.Stdout, prompt)

	textChars := utf8.RuneCountInString(text)
	fmt.Fprintf(deps.Stderr, "\nText: %d chars", textChars)
	if textChars > pagesum.MaxTextLength {
		fmt.Fprintf(deps.Stderr, " (truncated to %d)", pagesum.MaxTextLength)
	}
	fmt.Fprintf(deps.Stderr, "\nPrompt: %d chars", utf8.RuneCountInString(prompt))

	if deps.Tokens != nil {
		if tokens, err := deps.Tokens.CountTokens(deps.Ctx, prompt); err == nil {
			fmt.Fprintf(deps.Stderr, ", ~%d tokens", tokens)
		}
	}
	fmt.Fprintln(deps.Stderr)
	return nil
}
