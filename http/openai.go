package http

import (
	"context"
	"net/http"

	"github.com/fwojciec/pagesum"
)

// OpenAI defaults.
const (
	DefaultOpenAIBaseURL = "https://api.openai.com"
	DefaultOpenAIModel   = "gpt-4"
)

// Ensure OpenAIProvider implements pagesum.Provider at compile time.
var _ pagesum.Provider = (*OpenAIProvider)(nil)

// OpenAIProvider calls the OpenAI chat completions endpoint with a bearer
// token.
type OpenAIProvider struct {
	BaseURL string
	Model   string
}

// NewOpenAIProvider returns an OpenAIProvider for the public API.
func NewOpenAIProvider() *OpenAIProvider {
	return &OpenAIProvider{BaseURL: DefaultOpenAIBaseURL, Model: DefaultOpenAIModel}
}

func (p *OpenAIProvider) ID() pagesum.ProviderID {
	return pagesum.ProviderGPT4
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
}

func (p *OpenAIProvider) NewRequest(ctx context.Context, prompt, credential string) (*http.Request, error) {
	req, err := newJSONRequest(ctx, joinURL(p.BaseURL, "/v1/chat/completions"), openAIRequest{
		Model:       p.Model,
		Messages:    []openAIMessage{{Role: "user", Content: prompt}},
		Temperature: defaultTemperature,
	})
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+credential)
	return req, nil
}

func (p *OpenAIProvider) ParseSummary(body []byte) (string, bool) {
	return lookupText(body, "choices.0.message.content")
}
