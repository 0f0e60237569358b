package mock

import (
	"context"

	"github.com/fwojciec/pagesum"
)

var _ pagesum.CredentialStore = (*CredentialStore)(nil)

// CredentialStore is a mock implementation of pagesum.CredentialStore.
type CredentialStore struct {
	CredentialFn func(ctx context.Context, provider pagesum.ProviderID) (string, error)
}

func (s *CredentialStore) Credential(ctx context.Context, provider pagesum.ProviderID) (string, error) {
	return s.CredentialFn(ctx, provider)
}

var _ pagesum.CredentialService = (*CredentialService)(nil)

// CredentialService is a mock implementation of pagesum.CredentialService.
type CredentialService struct {
	CredentialFn       func(ctx context.Context, provider pagesum.ProviderID) (string, error)
	SetCredentialFn    func(ctx context.Context, cred *pagesum.Credential) error
	FindCredentialsFn  func(ctx context.Context) ([]*pagesum.Credential, error)
	DeleteCredentialFn func(ctx context.Context, provider pagesum.ProviderID) error
}

func (s *CredentialService) Credential(ctx context.Context, provider pagesum.ProviderID) (string, error) {
	return s.CredentialFn(ctx, provider)
}

func (s *CredentialService) SetCredential(ctx context.Context, cred *pagesum.Credential) error {
	return s.SetCredentialFn(ctx, cred)
}

func (s *CredentialService) FindCredentials(ctx context.Context) ([]*pagesum.Credential, error) {
	return s.FindCredentialsFn(ctx)
}

func (s *CredentialService) DeleteCredential(ctx context.Context, provider pagesum.ProviderID) error {
	return s.DeleteCredentialFn(ctx, provider)
}
