// Package gemini estimates prompt sizes with the local Gemini tokenizer.
package gemini

import (
	"context"
	"fmt"

	"github.com/fwojciec/pagesum"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

// DefaultTokenizerModel names the tokenizer vocabulary used for estimates.
// Gemini models share one vocabulary, so the count holds for the model the
// gemini provider calls.
const DefaultTokenizerModel = "gemini-2.0-flash"

var _ pagesum.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts prompt tokens offline.
type TokenCounter struct {
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter creates a TokenCounter for the given tokenizer model.
func NewTokenCounter(model string) (*TokenCounter, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, fmt.Errorf("loading %s tokenizer: %w", model, err)
	}
	return &TokenCounter{tok: tok}, nil
}

// CountTokens returns the number of tokens text takes as a single user turn.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if text == "" {
		return 0, nil
	}

	result, err := tc.tok.CountTokens([]*genai.Content{genai.NewContentFromText(text, "user")}, nil)
	if err != nil {
		return 0, err
	}
	return int(result.TotalTokens), nil
}
