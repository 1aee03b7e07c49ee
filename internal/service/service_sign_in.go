package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/MKhiriev/go-trust-keeper/internal/adapter"
	"github.com/MKhiriev/go-trust-keeper/internal/config"
	"github.com/MKhiriev/go-trust-keeper/internal/crypto"
	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/internal/store"
	"github.com/MKhiriev/go-trust-keeper/internal/utils"
	"github.com/MKhiriev/go-trust-keeper/models"
)

const signInTokenSize = 32

// signInService delivers single-use sign-in links. Neither the email nor the
// token is stored: the row is keyed by the email lookup hash and a keyed hash
// of the token.
type signInService struct {
	identity IdentityService
	tokens   store.VerificationTokenRepository
	cipher   crypto.FieldCipher
	mailer   adapter.Mailer

	hashKey   string
	linkTTL   time.Duration
	publicURL string

	now    func() time.Time
	random func(n int) (string, error)

	logger *logger.Logger
}

// NewSignInService constructs a [SignInService].
func NewSignInService(identity IdentityService, tokens store.VerificationTokenRepository, cipher crypto.FieldCipher, mailer adapter.Mailer, cfg config.App, logger *logger.Logger) SignInService {
	return &signInService{
		identity:  identity,
		tokens:    tokens,
		cipher:    cipher,
		mailer:    mailer,
		hashKey:   cfg.HashKey,
		linkTTL:   cfg.SignInLinkTTL,
		publicURL: cfg.PublicURL,
		now:       time.Now,
		random:    crypto.RandomToken,
		logger:    logger,
	}
}

// RequestLink creates the subject when the email is new. Creation is tried
// first; a conflict means the subject exists and it is looked up instead.
func (s *signInService) RequestLink(ctx context.Context, email, name string) error {
	log := logger.FromContext(ctx)

	subject, err := s.identity.CreateSubject(ctx, email, name)
	if errors.Is(err, ErrConflict) {
		subject, err = s.identity.FindByEmail(ctx, email)
	}
	if err != nil {
		return err
	}

	token, err := s.random(signInTokenSize)
	if err != nil {
		return fmt.Errorf("generate sign-in token: %w", err)
	}

	err = s.tokens.CreateVerificationToken(ctx, models.VerificationToken{
		IdentifierHash: string(s.cipher.LookupHash(email)),
		TokenHash:      utils.HashString(token, s.hashKey),
		ExpiresAt:      s.now().Add(s.linkTTL).UTC(),
	})
	if err != nil {
		return fmt.Errorf("store sign-in token: %w", err)
	}

	// the subject's email is decrypted only here, to address the message
	if err = s.mailer.SendSignInLink(ctx, subject.Email, s.signInLink(subject.Email, token)); err != nil {
		log.Err(err).Str("subject_id", subject.ID).Msg("error sending sign-in link")
		return fmt.Errorf("%w: %w", ErrMailDelivery, err)
	}

	log.Info().Str("subject_id", subject.ID).Msg("sign-in link sent")
	return nil
}

// VerifyLink consumes the token in one statement, so a link works once. The
// first successful use marks the email as verified.
func (s *signInService) VerifyLink(ctx context.Context, email, token string) (models.Subject, error) {
	if email == "" || token == "" {
		return models.Subject{}, ErrInvalidDataProvided
	}

	stored, err := s.tokens.TakeVerificationToken(ctx,
		string(s.cipher.LookupHash(email)), utils.HashString(token, s.hashKey))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Subject{}, ErrSignInLinkInvalid
		}
		return models.Subject{}, fmt.Errorf("take sign-in token: %w", err)
	}
	if !s.now().Before(stored.ExpiresAt) {
		return models.Subject{}, ErrSignInLinkInvalid
	}

	subject, err := s.identity.FindByEmail(ctx, email)
	if err != nil {
		return models.Subject{}, err
	}

	if subject.EmailVerifiedAt == nil {
		verifiedAt := s.now().UTC()
		subject, err = s.identity.UpdateSubject(ctx, subject.ID, models.SubjectUpdate{EmailVerifiedAt: &verifiedAt})
		if err != nil {
			return models.Subject{}, err
		}
	}

	return subject, nil
}

func (s *signInService) signInLink(email, token string) string {
	q := url.Values{}
	q.Set("email", email)
	q.Set("token", token)
	return s.publicURL + "/sign-in/verify?" + q.Encode()
}
