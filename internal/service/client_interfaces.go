package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-trust-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// TrustGate tracks the device-local elevation that follows a passkey unlock.
// It only gates what the client shows; the server checks every request on
// its own.
type TrustGate interface {
	// Elevate records a successful unlock for subjectID.
	Elevate(ctx context.Context, subjectID string) error
	// IsElevated is true only for the same subject within the TTL. Any other
	// state, including a storage error, clears the record and reports false.
	IsElevated(ctx context.Context, subjectID string) bool
	// Remaining is the elevation time left for subjectID, or zero.
	Remaining(ctx context.Context, subjectID string) time.Duration
	Clear(ctx context.Context) error
}

// PasskeyAuthenticator answers ceremony options on this device.
type PasskeyAuthenticator interface {
	Create(ctx context.Context, opts models.RegistrationOptions) (models.RegistrationProof, error)
	Get(ctx context.Context, opts models.AuthenticationOptions) (models.AssertionProof, error)
}

// ClientAuthService drives sign-in and the passkey ceremonies from the
// client and keeps the local session and trust state in step.
type ClientAuthService interface {
	// RestoreSession loads the persisted session into the adapter.
	// Returns ErrNotSignedIn when there is none.
	RestoreSession(ctx context.Context) (models.Session, error)

	RequestSignInLink(ctx context.Context, email, name string) error
	// VerifySignInLink redeems the emailed token and persists the session.
	VerifySignInLink(ctx context.Context, email, token string) (models.Session, error)

	PasskeyStatus(ctx context.Context) (models.PasskeyStatus, error)
	// EnrollPasskey creates a credential on this device and registers it.
	EnrollPasskey(ctx context.Context, label string) (models.Credential, error)

	// Profile fetches the signed-in subject's profile. The device must be
	// elevated for that subject, otherwise ErrNotElevated and the server is
	// not asked.
	Profile(ctx context.Context) (models.Subject, error)

	// Unlock runs an authentication ceremony for the signed-in subject and
	// elevates the device on success.
	Unlock(ctx context.Context) error
	// SignInWithPasskey runs an authentication ceremony for email, persists
	// the new session and elevates the device.
	SignInWithPasskey(ctx context.Context, email string) (models.Session, error)

	// SignOut forgets the session and the elevation.
	SignOut(ctx context.Context) error
}
