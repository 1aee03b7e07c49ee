package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-trust-keeper/internal/adapter"
	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/internal/store"
	"github.com/MKhiriev/go-trust-keeper/models"
)

type clientAuthService struct {
	sessions      store.LocalSessionRepository
	adapter       adapter.ServerAdapter
	authenticator PasskeyAuthenticator
	trust         TrustGate

	logger *logger.Logger
}

func NewClientAuthService(sessions store.LocalSessionRepository, serverAdapter adapter.ServerAdapter, authenticator PasskeyAuthenticator, trust TrustGate, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions:      sessions,
		adapter:       serverAdapter,
		authenticator: authenticator,
		trust:         trust,
		logger:        logger,
	}
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := a.sessions.GetSession(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return models.Session{}, ErrNotSignedIn
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}

	a.adapter.SetToken(session.Token)
	return session, nil
}

func (a *clientAuthService) RequestSignInLink(ctx context.Context, email, name string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrInvalidDataProvided
	}

	if err := a.adapter.RequestSignInLink(ctx, models.SignInRequest{Email: email, Name: strings.TrimSpace(name)}); err != nil {
		return mapAdapterError(err)
	}
	return nil
}

func (a *clientAuthService) VerifySignInLink(ctx context.Context, email, token string) (models.Session, error) {
	email, token = strings.TrimSpace(email), strings.TrimSpace(token)
	if email == "" || token == "" {
		return models.Session{}, ErrInvalidDataProvided
	}

	session, err := a.adapter.VerifySignInLink(ctx, models.SignInVerification{Email: email, Token: token})
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}

	return session, a.startSession(ctx, session, false)
}

func (a *clientAuthService) PasskeyStatus(ctx context.Context) (models.PasskeyStatus, error) {
	if a.adapter.Token() == "" {
		return models.PasskeyStatus{}, ErrNotSignedIn
	}

	status, err := a.adapter.PasskeyStatus(ctx)
	if err != nil {
		return models.PasskeyStatus{}, mapAdapterError(err)
	}
	return status, nil
}

func (a *clientAuthService) EnrollPasskey(ctx context.Context, label string) (models.Credential, error) {
	if a.adapter.Token() == "" {
		return models.Credential{}, ErrNotSignedIn
	}

	opts, err := a.adapter.BeginRegistration(ctx)
	if err != nil {
		return models.Credential{}, mapAdapterError(err)
	}

	proof, err := a.authenticator.Create(ctx, opts)
	if err != nil {
		return models.Credential{}, fmt.Errorf("authenticator: %w", err)
	}
	proof.Label = strings.TrimSpace(label)

	credential, err := a.adapter.CompleteRegistration(ctx, proof)
	if err != nil {
		return models.Credential{}, mapAdapterError(err)
	}

	a.logger.Info().Str("credential_id", credential.CredentialID).Msg("passkey enrolled")
	return credential, nil
}

func (a *clientAuthService) Unlock(ctx context.Context) error {
	session, err := a.sessions.GetSession(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotSignedIn
	}
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	result, err := a.authenticate(ctx, models.AuthenticationClaim{})
	if err != nil {
		return err
	}
	if result.SubjectID != session.SubjectID {
		a.adapter.SetToken(session.Token)
		return errors.Join(
			fmt.Errorf("%w: passkey belongs to another subject", ErrNotElevated),
			a.trust.Clear(ctx),
		)
	}

	return a.startSession(ctx, result, true)
}

func (a *clientAuthService) Profile(ctx context.Context) (models.Subject, error) {
	session, err := a.sessions.GetSession(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return models.Subject{}, ErrNotSignedIn
	}
	if err != nil {
		return models.Subject{}, fmt.Errorf("load session: %w", err)
	}

	if !a.trust.IsElevated(ctx, session.SubjectID) {
		return models.Subject{}, ErrNotElevated
	}

	subject, err := a.adapter.Me(ctx)
	if err != nil {
		return models.Subject{}, mapAdapterError(err)
	}
	return subject, nil
}

func (a *clientAuthService) SignInWithPasskey(ctx context.Context, email string) (models.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return models.Session{}, ErrInvalidDataProvided
	}

	session, err := a.authenticate(ctx, models.AuthenticationClaim{Email: email})
	if err != nil {
		return models.Session{}, err
	}

	return session, a.startSession(ctx, session, true)
}

func (a *clientAuthService) SignOut(ctx context.Context) error {
	a.adapter.SetToken("")

	return errors.Join(
		a.sessions.DeleteSession(ctx),
		a.trust.Clear(ctx),
	)
}

// authenticate runs both legs of the authentication ceremony. The claim is
// empty when the adapter already carries a session.
func (a *clientAuthService) authenticate(ctx context.Context, claim models.AuthenticationClaim) (models.Session, error) {
	opts, err := a.adapter.BeginAuthentication(ctx, claim)
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}

	proof, err := a.authenticator.Get(ctx, opts)
	if err != nil {
		return models.Session{}, fmt.Errorf("authenticator: %w", err)
	}

	session, err := a.adapter.CompleteAuthentication(ctx, proof)
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}
	return session, nil
}

// startSession persists session. A passkey-backed session also elevates the
// device; a link-backed one drops any previous elevation.
func (a *clientAuthService) startSession(ctx context.Context, session models.Session, passkey bool) error {
	if err := a.sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	a.logger.WithSubject(session.SubjectID).Info().Bool("passkey", passkey).Msg("session stored")

	if !passkey {
		return a.trust.Clear(ctx)
	}
	return a.trust.Elevate(ctx, session.SubjectID)
}
