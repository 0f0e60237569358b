package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/pagesum"
)

// Ensure LoggingCredentialStore implements pagesum.CredentialStore.
var _ pagesum.CredentialStore = (*LoggingCredentialStore)(nil)

// LoggingCredentialStore logs credential lookups. Only whether a credential
// was found is recorded.
type LoggingCredentialStore struct {
	next   pagesum.CredentialStore
	logger *slog.Logger
}

// NewLoggingCredentialStore creates a new LoggingCredentialStore.
func NewLoggingCredentialStore(next pagesum.CredentialStore, logger *slog.Logger) *LoggingCredentialStore {
	return &LoggingCredentialStore{next: next, logger: logger}
}

// Credential delegates to the wrapped store.
func (s *LoggingCredentialStore) Credential(ctx context.Context, provider pagesum.ProviderID) (string, error) {
	secret, err := s.next.Credential(ctx, provider)
	attrs := []any{"provider", provider, "found", err == nil && secret != ""}
	if err != nil && pagesum.ErrorCode(err) != pagesum.ENOTFOUND {
		attrs = append(attrs, "err", err)
	}
	s.logger.Info("credential lookup", attrs...)
	return secret, err
}
