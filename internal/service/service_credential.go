package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/internal/store"
	"github.com/MKhiriev/go-trust-keeper/models"
)

type credentialRegistry struct {
	credentials store.CredentialRepository

	logger *logger.Logger
}

// NewCredentialRegistry constructs a [CredentialRegistry].
func NewCredentialRegistry(credentials store.CredentialRepository, logger *logger.Logger) CredentialRegistry {
	return &credentialRegistry{
		credentials: credentials,
		logger:      logger,
	}
}

// Register stores a new credential with the counter reported at
// registration. Credential ids are unique across all subjects.
func (r *credentialRegistry) Register(ctx context.Context, credential models.Credential) (models.Credential, error) {
	if credential.CredentialID == "" || credential.SubjectID == "" || len(credential.PublicKey) == 0 {
		return models.Credential{}, ErrInvalidDataProvided
	}

	created, err := r.credentials.CreateCredential(ctx, credential)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrCredentialExists):
			return models.Credential{}, ErrDuplicateCredential
		case errors.Is(err, store.ErrNotFound):
			return models.Credential{}, ErrNotFound
		}
		return models.Credential{}, fmt.Errorf("credential registration ended with error: %w", err)
	}

	return created, nil
}

// VerifyAndAdvance applies the counter policy. A stored counter of zero
// accepts any presented value, which covers authenticators without counters.
// The check and the update are one conditional UPDATE.
func (r *credentialRegistry) VerifyAndAdvance(ctx context.Context, credentialID string, presentedCounter uint32, signatureValid bool) error {
	if !signatureValid {
		return ErrSignatureInvalid
	}

	if _, err := r.credentials.AdvanceSignCount(ctx, credentialID, presentedCounter); err != nil {
		if errors.Is(err, store.ErrCounterNotAdvanced) {
			logger.FromContext(ctx).Warn().
				Str("credential_id", credentialID).
				Uint32("presented", presentedCounter).
				Msg("signature counter did not advance, possible cloned authenticator")
			return ErrReplaySuspected
		}
		return fmt.Errorf("advance counter: %w", err)
	}

	return nil
}

func (r *credentialRegistry) ListBySubject(ctx context.Context, subjectID string) ([]models.Credential, error) {
	return r.credentials.ListCredentialsBySubject(ctx, subjectID)
}

func (r *credentialRegistry) Get(ctx context.Context, credentialID string) (models.Credential, error) {
	credential, err := r.credentials.GetCredential(ctx, credentialID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Credential{}, ErrNotFound
		}
		return models.Credential{}, err
	}
	return credential, nil
}

func (r *credentialRegistry) CountBySubject(ctx context.Context, subjectID string) (int, error) {
	return r.credentials.CountCredentialsBySubject(ctx, subjectID)
}
