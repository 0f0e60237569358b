package http

import (
	"context"
	"net/http"
	"net/url"

	"github.com/fwojciec/pagesum"
)

// Gemini defaults.
const (
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	DefaultGeminiModel   = "gemini-1.5-flash"
)

// Ensure GeminiProvider implements pagesum.Provider at compile time.
var _ pagesum.Provider = (*GeminiProvider)(nil)

// GeminiProvider calls the Gemini generateContent endpoint.
// The credential travels as the key query parameter.
type GeminiProvider struct {
	BaseURL string
	Model   string
}

// NewGeminiProvider returns a GeminiProvider for the public API.
func NewGeminiProvider() *GeminiProvider {
	return &GeminiProvider{BaseURL: DefaultGeminiBaseURL, Model: DefaultGeminiModel}
}

func (p *GeminiProvider) ID() pagesum.ProviderID {
	return pagesum.ProviderGemini
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature float64 `json:"temperature"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

func (p *GeminiProvider) NewRequest(ctx context.Context, prompt, credential string) (*http.Request, error) {
	endpoint := joinURL(p.BaseURL, "/v1beta/models/"+p.Model+":generateContent") + "?key=" + url.QueryEscape(credential)
	return newJSONRequest(ctx, endpoint, geminiRequest{
		Contents:         []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenerationConfig{Temperature: defaultTemperature},
	})
}

func (p *GeminiProvider) ParseSummary(body []byte) (string, bool) {
	return lookupText(body, "candidates.0.content.parts.0.text")
}
