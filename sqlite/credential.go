package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/pagesum"
)

// Compile-time interface verification.
var _ pagesum.CredentialService = (*CredentialService)(nil)

// CredentialService implements pagesum.CredentialService using SQLite.
type CredentialService struct {
	db *DB
}

// NewCredentialService creates a new CredentialService.
func NewCredentialService(db *DB) *CredentialService {
	return &CredentialService{db: db}
}

// Credential returns the stored secret for provider.
func (s *CredentialService) Credential(ctx context.Context, provider pagesum.ProviderID) (string, error) {
	var secret string
	err := s.db.QueryRowContext(ctx, `
		SELECT secret FROM credentials WHERE provider = ?
	`, string(provider)).Scan(&secret)

	if errors.Is(err, sql.ErrNoRows) {
		return "", pagesum.Errorf(pagesum.ENOTFOUND, "no credential for %s", provider)
	}
	if err != nil {
		return "", err
	}
	if secret == "" {
		return "", pagesum.Errorf(pagesum.ENOTFOUND, "no credential for %s", provider)
	}
	return secret, nil
}

// SetCredential creates or replaces the credential for cred.Provider.
func (s *CredentialService) SetCredential(ctx context.Context, cred *pagesum.Credential) error {
	if err := cred.Validate(); err != nil {
		return err
	}

	cred.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO credentials (provider, secret, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(provider) DO UPDATE SET
			secret = excluded.secret,
			updated_at = excluded.updated_at
	`, string(cred.Provider), cred.Secret, formatTime(cred.UpdatedAt))

	return err
}

// FindCredentials returns all stored credentials ordered by provider.
func (s *CredentialService) FindCredentials(ctx context.Context) ([]*pagesum.Credential, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT provider, secret, updated_at FROM credentials ORDER BY provider
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var creds []*pagesum.Credential
	for rows.Next() {
		var cred pagesum.Credential
		var provider, updatedAt string

		if err := rows.Scan(&provider, &cred.Secret, &updatedAt); err != nil {
			return nil, err
		}
		cred.Provider = pagesum.ProviderID(provider)

		if cred.UpdatedAt, err = parseTime(updatedAt, "updated_at"); err != nil {
			return nil, err
		}

		creds = append(creds, &cred)
	}

	return creds, rows.Err()
}

// DeleteCredential removes the credential for provider.
func (s *CredentialService) DeleteCredential(ctx context.Context, provider pagesum.ProviderID) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM credentials WHERE provider = ?
	`, string(provider))
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return pagesum.Errorf(pagesum.ENOTFOUND, "no credential for %s", provider)
	}
	return nil
}
