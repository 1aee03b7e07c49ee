package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-trust-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// IdentityService maps plaintext identity fields to their encrypted and
// hashed representation. Plaintext only exists in the returned values.
type IdentityService interface {
	// CreateSubject fails with ErrConflict when the email is already taken.
	CreateSubject(ctx context.Context, email, name string) (models.Subject, error)
	// FindByEmail returns ErrNotFound when no subject owns email, and
	// ErrIntegrity when a stored field does not decrypt.
	FindByEmail(ctx context.Context, email string) (models.Subject, error)
	FindByID(ctx context.Context, id string) (models.Subject, error)
	// UpdateSubject changes only the fields set in upd.
	UpdateSubject(ctx context.Context, id string, upd models.SubjectUpdate) (models.Subject, error)
}

// ChallengeLedger issues and consumes single-use ceremony challenges.
type ChallengeLedger interface {
	// Issue replaces any live challenge for (subjectID, kind).
	Issue(ctx context.Context, subjectID string, kind models.CeremonyKind) (models.Challenge, error)
	// Consume removes the live challenge and returns it when supplied
	// matches. Every failure is ErrChallengeRejected.
	Consume(ctx context.Context, subjectID string, kind models.CeremonyKind, supplied string) (models.Challenge, error)
	// Sweep deletes challenges created before olderThan.
	Sweep(ctx context.Context, olderThan time.Time) (int64, error)
}

// CredentialRegistry stores credentials and enforces the counter policy.
type CredentialRegistry interface {
	Register(ctx context.Context, credential models.Credential) (models.Credential, error)
	// VerifyAndAdvance returns ErrSignatureInvalid or ErrReplaySuspected
	// without changing state, or advances the stored counter.
	VerifyAndAdvance(ctx context.Context, credentialID string, presentedCounter uint32, signatureValid bool) error
	ListBySubject(ctx context.Context, subjectID string) ([]models.Credential, error)
	Get(ctx context.Context, credentialID string) (models.Credential, error)
	CountBySubject(ctx context.Context, subjectID string) (int, error)
}

// CeremonyService runs the registration and authentication ceremonies.
// Complete* failures are always a *CeremonyError.
type CeremonyService interface {
	BeginRegistration(ctx context.Context, subjectID string) (models.RegistrationOptions, error)
	CompleteRegistration(ctx context.Context, subjectID string, proof models.RegistrationProof) (models.Credential, error)
	// BeginAuthentication returns ErrNoCredentialsEnrolled without issuing a
	// challenge when the claimed subject has no credential.
	BeginAuthentication(ctx context.Context, claim models.AuthenticationClaim) (models.AuthenticationOptions, error)
	CompleteAuthentication(ctx context.Context, proof models.AssertionProof) (string, error)
}

// AuthService issues and validates session tokens.
type AuthService interface {
	CreateToken(ctx context.Context, subjectID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// SignInService implements magic-link sign-in.
type SignInService interface {
	// RequestLink finds or creates the subject and mails a single-use link.
	RequestLink(ctx context.Context, email, name string) error
	// VerifyLink redeems the link token and returns the signed-in subject.
	VerifyLink(ctx context.Context, email, token string) (models.Subject, error)
}

// Sweeper removes expired ceremony and sign-in state.
type Sweeper interface {
	Sweep(ctx context.Context, now time.Time) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
