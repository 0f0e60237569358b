package pagesum

import (
	"context"
	"time"
)

// Credential is an opaque secret used to authenticate to a provider.
type Credential struct {
	Provider  ProviderID `json:"provider"`
	Secret    string     `json:"-"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Validate returns an error if the credential contains invalid fields.
func (c *Credential) Validate() error {
	if c.Provider == "" {
		return Errorf(EINVALID, "credential provider required")
	}
	if c.Secret == "" {
		return Errorf(EINVALID, "credential secret required")
	}
	return nil
}

// CredentialStore resolves provider credentials. It is read-only from the
// summarize pipeline's point of view.
type CredentialStore interface {
	// Credential returns the secret for provider.
	// Returns ENOTFOUND if no credential is stored. An empty secret is
	// never returned.
	Credential(ctx context.Context, provider ProviderID) (string, error)
}

// CredentialService manages stored credentials.
type CredentialService interface {
	CredentialStore

	// SetCredential creates or replaces the credential for cred.Provider.
	SetCredential(ctx context.Context, cred *Credential) error

	// FindCredentials returns all stored credentials ordered by provider.
	FindCredentials(ctx context.Context) ([]*Credential, error)

	// DeleteCredential removes the credential for provider.
	// Returns ENOTFOUND if no credential is stored.
	DeleteCredential(ctx context.Context, provider ProviderID) error
}

// CredentialStores tries each store in order and returns the first
// credential found.
type CredentialStores []CredentialStore

// Credential implements CredentialStore.
func (s CredentialStores) Credential(ctx context.Context, provider ProviderID) (string, error) {
	for _, store := range s {
		secret, err := store.Credential(ctx, provider)
		if ErrorCode(err) == ENOTFOUND {
			continue
		} else if err != nil {
			return "", err
		}
		if secret != "" {
			return secret, nil
		}
	}
	return "", Errorf(ENOTFOUND, "no credential for %s", provider)
}
