package service

import (
	"errors"

	"github.com/MKhiriev/go-trust-keeper/models"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrIntegrity is returned when a stored encrypted field fails to decrypt.
	// The operation is aborted; the field is never treated as empty.
	ErrIntegrity = errors.New("stored identity failed integrity check")

	// ErrConflict is returned when a subject with the same email already
	// exists. Callers may recover, e.g. by signing in instead.
	ErrConflict = errors.New("subject already exists")

	ErrDuplicateCredential = errors.New("credential already registered")

	ErrNotFound = errors.New("not found")

	// ErrNoCredentialsEnrolled routes the caller to the registration
	// ceremony. No challenge is issued when it is returned.
	ErrNoCredentialsEnrolled = errors.New("no credential enrolled")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")

	ErrSignInLinkInvalid = errors.New("sign-in link is invalid or expired")
	ErrMailDelivery      = errors.New("sign-in link could not be delivered")
)

// Ceremony failure causes. They never reach a client: every one of them is
// wrapped in a [CeremonyError].
var (
	ErrCeremonyFailed = errors.New("ceremony failed")

	ErrChallengeRejected = errors.New("challenge rejected")
	ErrReplaySuspected   = errors.New("signature counter did not advance")
	ErrSignatureInvalid  = errors.New("signature is invalid")
	ErrOriginMismatch    = errors.New("origin or relying party mismatch")
	ErrUserNotPresent    = errors.New("user presence or verification flag missing")
	ErrProofMalformed    = errors.New("proof is malformed")
)

// CeremonyError is the single failure outcome of a ceremony. Error renders
// only "registration failed" or "authentication failed"; the specific cause is
// reachable through errors.Is/As for server-side diagnostics.
type CeremonyError struct {
	Kind  models.CeremonyKind
	Cause error
}

func newCeremonyError(kind models.CeremonyKind, cause error) *CeremonyError {
	return &CeremonyError{Kind: kind, Cause: cause}
}

func (e *CeremonyError) Error() string {
	if e.Kind == models.CeremonyRegistration {
		return "registration failed"
	}
	return "authentication failed"
}

// Is makes every CeremonyError match ErrCeremonyFailed.
func (e *CeremonyError) Is(target error) bool {
	return target == ErrCeremonyFailed
}

func (e *CeremonyError) Unwrap() error {
	return e.Cause
}

// Client-side errors.
var (
	// ErrNotSignedIn is returned when an operation needs a server session and
	// the client holds none.
	ErrNotSignedIn = errors.New("not signed in")

	// ErrNotElevated is returned when a sensitive action is attempted without
	// a recent passkey unlock.
	ErrNotElevated = errors.New("passkey unlock required")
)
