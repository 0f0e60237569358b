// Package env resolves provider credentials from environment variables.
package env

import (
	"context"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/fwojciec/pagesum"
)

// Ensure CredentialStore implements pagesum.CredentialStore at compile time.
var _ pagesum.CredentialStore = (*CredentialStore)(nil)

// Config holds the credential variables. PAGESUM_API_KEYS carries keys for
// any provider as provider:key pairs separated by commas; the dedicated
// variables win over it.
type Config struct {
	Gemini    string            `env:"GEMINI_API_KEY"`
	OpenAI    string            `env:"OPENAI_API_KEY"`
	Anthropic string            `env:"ANTHROPIC_API_KEY"`
	Llama     string            `env:"LLAMA_API_KEY"`
	Keys      map[string]string `env:"PAGESUM_API_KEYS" envSeparator:"," envKeyValSeparator:":"`
}

// CredentialStore serves credentials parsed once from the environment.
type CredentialStore struct {
	keys map[pagesum.ProviderID]string
}

// NewCredentialStore parses the process environment.
func NewCredentialStore() (*CredentialStore, error) {
	return NewCredentialStoreFromMap(environ())
}

// NewCredentialStoreFromMap parses variables from vars instead of the
// process environment.
func NewCredentialStoreFromMap(vars map[string]string) (*CredentialStore, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return nil, pagesum.Errorf(pagesum.EINVALID, "invalid credential environment: %v", err)
	}
	return newCredentialStore(cfg), nil
}

func newCredentialStore(cfg Config) *CredentialStore {
	keys := make(map[pagesum.ProviderID]string, len(cfg.Keys)+4)
	for provider, secret := range cfg.Keys {
		setKey(keys, pagesum.ProviderID(strings.ToLower(strings.TrimSpace(provider))), secret)
	}
	setKey(keys, pagesum.ProviderGemini, cfg.Gemini)
	setKey(keys, pagesum.ProviderGPT4, cfg.OpenAI)
	setKey(keys, pagesum.ProviderClaude, cfg.Anthropic)
	setKey(keys, pagesum.ProviderLlama, cfg.Llama)
	return &CredentialStore{keys: keys}
}

func setKey(keys map[pagesum.ProviderID]string, provider pagesum.ProviderID, secret string) {
	if secret = strings.TrimSpace(secret); secret != "" && provider != "" {
		keys[provider] = secret
	}
}

// Credential returns the environment credential for provider.
func (s *CredentialStore) Credential(ctx context.Context, provider pagesum.ProviderID) (string, error) {
	if secret, ok := s.keys[provider]; ok {
		return secret, nil
	}
	return "", pagesum.Errorf(pagesum.ENOTFOUND, "no credential for %s in environment", provider)
}

// Providers returns the providers with an environment credential.
func (s *CredentialStore) Providers() []pagesum.ProviderID {
	out := make([]pagesum.ProviderID, 0, len(s.keys))
	for _, id := range pagesum.KnownProviders {
		if _, ok := s.keys[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

func environ() map[string]string {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return vars
}
