package http

import (
	"context"
	"net/http"

	"github.com/fwojciec/pagesum"
)

// Claude defaults.
const (
	DefaultClaudeBaseURL = "https://api.anthropic.com"
	DefaultClaudeModel   = "claude-2"
)

// Ensure ClaudeProvider implements pagesum.Provider at compile time.
var _ pagesum.Provider = (*ClaudeProvider)(nil)

// ClaudeProvider calls the Anthropic text completion endpoint.
// The credential travels in the x-api-key header.
type ClaudeProvider struct {
	BaseURL string
	Model   string
}

// NewClaudeProvider returns a ClaudeProvider for the public API.
func NewClaudeProvider() *ClaudeProvider {
	return &ClaudeProvider{BaseURL: DefaultClaudeBaseURL, Model: DefaultClaudeModel}
}

func (p *ClaudeProvider) ID() pagesum.ProviderID {
	return pagesum.ProviderClaude
}

type claudeRequest struct {
	Prompt            string  `json:"prompt"`
	Model             string  `json:"model"`
	MaxTokensToSample int     `json:"max_tokens_to_sample"`
	Temperature       float64 `json:"temperature"`
}

func (p *ClaudeProvider) NewRequest(ctx context.Context, prompt, credential string) (*http.Request, error) {
	req, err := newJSONRequest(ctx, joinURL(p.BaseURL, "/v1/complete"), claudeRequest{
		Prompt:            prompt,
		Model:             p.Model,
		MaxTokensToSample: defaultMaxTokens,
		Temperature:       defaultTemperature,
	})
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", credential)
	return req, nil
}

func (p *ClaudeProvider) ParseSummary(body []byte) (string, bool) {
	return lookupText(body, "completion")
}
