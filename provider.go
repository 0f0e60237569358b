package pagesum

import (
	"context"
	"net/http"
	"strings"
)

// ProviderID identifies a text-generation provider.
type ProviderID string

// Providers known at build time.
const (
	ProviderGemini ProviderID = "gemini"
	ProviderGPT4   ProviderID = "gpt-4"
	ProviderClaude ProviderID = "claude"
	ProviderLlama  ProviderID = "llama"
)

// KnownProviders lists every provider ID shipped with pagesum.
// Registries are expected to cover all of them.
var KnownProviders = []ProviderID{
	ProviderGemini,
	ProviderGPT4,
	ProviderClaude,
	ProviderLlama,
}

// Label returns the provider ID as shown in user-facing messages.
func (id ProviderID) Label() string {
	return strings.ToUpper(string(id))
}

// Provider maps a prompt and credential to one provider's HTTP API and maps
// the provider's response back to a summary.
//
// Each implementation owns its endpoint, body shape and credential channel.
// A request carries exactly one credential channel.
type Provider interface {
	// ID returns the identifier the provider is selected by.
	ID() ProviderID

	// NewRequest builds the POST request for prompt.
	NewRequest(ctx context.Context, prompt, credential string) (*http.Request, error)

	// ParseSummary reads the summary out of a successful response body.
	// Returns false when the expected field is missing or empty.
	ParseSummary(body []byte) (string, bool)
}

// ProviderRegistry resolves providers by ID.
type ProviderRegistry interface {
	// Lookup returns the provider registered under id.
	Lookup(id ProviderID) (Provider, bool)

	// Register adds a provider, replacing any provider with the same ID.
	Register(p Provider)

	// List returns registered provider IDs in registration order.
	List() []ProviderID
}
