package store

import (
	"context"

	"github.com/MKhiriev/go-trust-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalTrustRepository holds the single device-local elevation record.
type LocalTrustRepository interface {
	SaveTrustState(ctx context.Context, state models.TrustState) error
	// GetTrustState returns [ErrNotFound] when the device is not elevated.
	GetTrustState(ctx context.Context) (models.TrustState, error)
	DeleteTrustState(ctx context.Context) error
}

// AuthenticatorKeyRepository holds the software authenticator's private keys.
type AuthenticatorKeyRepository interface {
	SaveKey(ctx context.Context, key models.AuthenticatorKey) error
	GetKey(ctx context.Context, credentialID string) (models.AuthenticatorKey, error)
	ListKeys(ctx context.Context, rpID, userHandle string) ([]models.AuthenticatorKey, error)
	// IncrementSignCount bumps the counter and returns the new value.
	IncrementSignCount(ctx context.Context, credentialID string) (uint32, error)
}

// LocalSessionRepository holds the persisted server session token.
type LocalSessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	// GetSession returns [ErrNotFound] when the client is signed out.
	GetSession(ctx context.Context) (models.Session, error)
	DeleteSession(ctx context.Context) error
}
