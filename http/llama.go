package http

import (
	"context"
	"net/http"

	"github.com/fwojciec/pagesum"
)

// DefaultLlamaBaseURL is the Llama completions API.
const DefaultLlamaBaseURL = "https://api.llama.ai"

// Ensure LlamaProvider implements pagesum.Provider at compile time.
var _ pagesum.Provider = (*LlamaProvider)(nil)

// LlamaProvider calls a Llama completions endpoint with a bearer token.
type LlamaProvider struct {
	BaseURL string
}

// NewLlamaProvider returns a LlamaProvider for the public API.
func NewLlamaProvider() *LlamaProvider {
	return &LlamaProvider{BaseURL: DefaultLlamaBaseURL}
}

func (p *LlamaProvider) ID() pagesum.ProviderID {
	return pagesum.ProviderLlama
}

type llamaRequest struct {
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

func (p *LlamaProvider) NewRequest(ctx context.Context, prompt, credential string) (*http.Request, error) {
	req, err := newJSONRequest(ctx, joinURL(p.BaseURL, "/v1/completions"), llamaRequest{
		Prompt:      prompt,
		MaxTokens:   defaultMaxTokens,
		Temperature: defaultTemperature,
	})
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+credential)
	return req, nil
}

func (p *LlamaProvider) ParseSummary(body []byte) (string, bool) {
	return lookupText(body, "choices.0.text")
}
