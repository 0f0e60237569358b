package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/fwojciec/pagesum"
	"github.com/tidwall/gjson"
)

// defaultProviderError is shown when a failed response carries no message.
const defaultProviderError = "API request failed"

// Ensure Summarizer implements pagesum.Summarizer at compile time.
var _ pagesum.Summarizer = (*Summarizer)(nil)

// Summarizer sends one request per summary to the provider selected by the
// request. It never retries and sets no client timeout; the caller's
// context bounds the call.
type Summarizer struct {
	client   *http.Client
	registry pagesum.ProviderRegistry
}

// SummarizerOption configures a Summarizer.
type SummarizerOption func(*Summarizer)

// WithHTTPClient replaces the client used for provider requests.
func WithHTTPClient(c *http.Client) SummarizerOption {
	return func(s *Summarizer) {
		s.client = c
	}
}

// NewSummarizer creates a Summarizer that resolves providers from registry.
func NewSummarizer(registry pagesum.ProviderRegistry, opts ...SummarizerOption) *Summarizer {
	s := &Summarizer{
		client:   &http.Client{},
		registry: registry,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summarize builds the prompt, sends it and reads the summary back.
func (s *Summarizer) Summarize(ctx context.Context, req *pagesum.SummaryRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	provider, ok := s.registry.Lookup(req.Provider)
	if !ok {
		return "", pagesum.Errorf(pagesum.EINVALID, "unknown provider %q", req.Provider)
	}

	httpReq, err := provider.NewRequest(ctx, req.Prompt(), req.Credential)
	if err != nil {
		return "", pagesum.Errorf(pagesum.EPROVIDER, "%s", err)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", pagesum.Errorf(pagesum.EPROVIDER, "%s", stripCredential(err.Error(), req.Credential))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", pagesum.Errorf(pagesum.EPROVIDER, "reading response: %s", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", pagesum.Errorf(pagesum.EPROVIDER, "%s", providerErrorMessage(body))
	}

	if !gjson.ValidBytes(body) {
		return "", pagesum.Errorf(pagesum.EPROVIDER, "invalid response from %s", req.Provider.Label())
	}

	summary, ok := provider.ParseSummary(body)
	if !ok {
		return pagesum.NoSummaryText, nil
	}
	return summary, nil
}

// providerErrorMessage reads error.message from a failed response.
func providerErrorMessage(body []byte) string {
	if gjson.ValidBytes(body) {
		if msg := gjson.GetBytes(body, "error.message").String(); strings.TrimSpace(msg) != "" {
			return msg
		}
	}
	return defaultProviderError
}

// stripCredential removes the credential from transport errors, which
// quote the request URL with the credential query-escaped.
func stripCredential(msg, credential string) string {
	if credential == "" {
		return msg
	}
	msg = strings.ReplaceAll(msg, url.QueryEscape(credential), "****")
	return strings.ReplaceAll(msg, credential, "****")
}
