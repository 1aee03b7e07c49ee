package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-trust-keeper/internal/crypto"
	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/internal/store"
	"github.com/MKhiriev/go-trust-keeper/models"
)

// idGenerator produces opaque subject ids.
type idGenerator interface {
	Generate() string
}

// identityService keeps identity fields encrypted at rest while still
// answering exact-match lookups through the keyed email hash.
type identityService struct {
	subjects store.SubjectRepository
	cipher   crypto.FieldCipher
	ids      idGenerator

	logger *logger.Logger
}

// NewIdentityService wires an [IdentityService] over the subject repository.
func NewIdentityService(subjects store.SubjectRepository, cipher crypto.FieldCipher, ids idGenerator, logger *logger.Logger) IdentityService {
	return &identityService{
		subjects: subjects,
		cipher:   cipher,
		ids:      ids,
		logger:   logger,
	}
}

// CreateSubject relies on the unique index of email_hash to detect duplicates,
// so two concurrent creations for the same email cannot both succeed.
func (s *identityService) CreateSubject(ctx context.Context, email, name string) (models.Subject, error) {
	log := logger.FromContext(ctx)

	email = strings.TrimSpace(email)
	if crypto.Normalize(email) == "" {
		return models.Subject{}, ErrInvalidDataProvided
	}

	emailEnc, err := s.cipher.Encrypt(email)
	if err != nil {
		log.Err(err).Str("func", "*identityService.CreateSubject").Msg("error encrypting email")
		return models.Subject{}, err
	}

	rec := models.SubjectRecord{
		ID:        s.ids.Generate(),
		EmailEnc:  emailEnc,
		EmailHash: s.cipher.LookupHash(email),
	}
	if name != "" {
		nameEnc, err := s.cipher.Encrypt(name)
		if err != nil {
			log.Err(err).Str("func", "*identityService.CreateSubject").Msg("error encrypting name")
			return models.Subject{}, err
		}
		rec.NameEnc = &nameEnc
	}

	created, err := s.subjects.CreateSubject(ctx, rec)
	if err != nil {
		if errors.Is(err, store.ErrSubjectHashExists) {
			return models.Subject{}, ErrConflict
		}
		return models.Subject{}, fmt.Errorf("subject creation ended with error: %w", err)
	}

	log.Info().Str("subject_id", created.ID).Msg("subject created")
	return s.decryptSubject(created)
}

func (s *identityService) FindByEmail(ctx context.Context, email string) (models.Subject, error) {
	if crypto.Normalize(email) == "" {
		return models.Subject{}, ErrInvalidDataProvided
	}

	rec, err := s.subjects.FindSubjectByEmailHash(ctx, s.cipher.LookupHash(email))
	if err != nil {
		return models.Subject{}, mapSubjectStoreError(err)
	}

	return s.decryptLogged(ctx, rec)
}

func (s *identityService) FindByID(ctx context.Context, id string) (models.Subject, error) {
	if id == "" {
		return models.Subject{}, ErrInvalidDataProvided
	}

	rec, err := s.subjects.FindSubjectByID(ctx, id)
	if err != nil {
		return models.Subject{}, mapSubjectStoreError(err)
	}

	return s.decryptLogged(ctx, rec)
}

// UpdateSubject re-encrypts the changed fields. A new email is re-hashed in
// the same statement, so ciphertext and hash never disagree.
func (s *identityService) UpdateSubject(ctx context.Context, id string, upd models.SubjectUpdate) (models.Subject, error) {
	if id == "" || upd.IsEmpty() {
		return models.Subject{}, ErrInvalidDataProvided
	}

	recUpd := models.SubjectRecordUpdate{ID: id, EmailVerifiedAt: upd.EmailVerifiedAt}

	if upd.Email != nil {
		email := strings.TrimSpace(*upd.Email)
		if crypto.Normalize(email) == "" {
			return models.Subject{}, ErrInvalidDataProvided
		}
		emailEnc, err := s.cipher.Encrypt(email)
		if err != nil {
			return models.Subject{}, err
		}
		hash := s.cipher.LookupHash(email)
		recUpd.EmailEnc = &emailEnc
		recUpd.EmailHash = &hash
	}

	if upd.Name != nil {
		// an empty name clears the stored one
		nameEnc := crypto.EncryptedField{}
		if *upd.Name != "" {
			var err error
			if nameEnc, err = s.cipher.Encrypt(*upd.Name); err != nil {
				return models.Subject{}, err
			}
		}
		recUpd.NameEnc = &nameEnc
	}

	rec, err := s.subjects.UpdateSubject(ctx, recUpd)
	if err != nil {
		return models.Subject{}, mapSubjectStoreError(err)
	}

	return s.decryptLogged(ctx, rec)
}

func (s *identityService) decryptLogged(ctx context.Context, rec models.SubjectRecord) (models.Subject, error) {
	subject, err := s.decryptSubject(rec)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("subject_id", rec.ID).Msg("stored identity failed to decrypt")
	}
	return subject, err
}

// decryptSubject opens every encrypted field. Any failure aborts with
// ErrIntegrity.
func (s *identityService) decryptSubject(rec models.SubjectRecord) (models.Subject, error) {
	email, err := s.cipher.Decrypt(rec.EmailEnc)
	if err != nil {
		return models.Subject{}, fmt.Errorf("%w: email: %w", ErrIntegrity, err)
	}

	subject := models.Subject{
		ID:              rec.ID,
		Email:           email,
		EmailVerifiedAt: rec.EmailVerifiedAt,
		CreatedAt:       rec.CreatedAt,
	}

	if rec.NameEnc != nil && !rec.NameEnc.IsZero() {
		if subject.Name, err = s.cipher.Decrypt(*rec.NameEnc); err != nil {
			return models.Subject{}, fmt.Errorf("%w: name: %w", ErrIntegrity, err)
		}
	}

	return subject, nil
}

func mapSubjectStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, store.ErrSubjectHashExists):
		return ErrConflict
	}
	return fmt.Errorf("subject storage error: %w", err)
}
