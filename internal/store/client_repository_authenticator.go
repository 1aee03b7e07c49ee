package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/models"
	"github.com/mattn/go-sqlite3"
)

type authenticatorKeyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAuthenticatorKeyRepository constructs the SQLite-backed
// [AuthenticatorKeyRepository].
func NewAuthenticatorKeyRepository(db *DB, logger *logger.Logger) AuthenticatorKeyRepository {
	return &authenticatorKeyRepository{db: db, logger: logger}
}

func (r *authenticatorKeyRepository) SaveKey(ctx context.Context, key models.AuthenticatorKey) error {
	_, err := r.db.ExecContext(ctx, saveAuthenticatorKey,
		key.CredentialID, key.RPID, key.UserHandle, key.PrivateKey, int64(key.SignCount))
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
			return ErrCredentialExists
		}
		r.logger.Err(err).Str("func", "*authenticatorKeyRepository.SaveKey").Msg("error saving key")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (r *authenticatorKeyRepository) GetKey(ctx context.Context, credentialID string) (models.AuthenticatorKey, error) {
	var key models.AuthenticatorKey
	if err := scanAuthenticatorKey(r.db.QueryRowContext(ctx, getAuthenticatorKey, credentialID), &key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AuthenticatorKey{}, ErrNotFound
		}
		r.logger.Err(err).Str("func", "*authenticatorKeyRepository.GetKey").Msg("error reading key")
		return models.AuthenticatorKey{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return key, nil
}

func (r *authenticatorKeyRepository) ListKeys(ctx context.Context, rpID, userHandle string) ([]models.AuthenticatorKey, error) {
	rows, err := r.db.QueryContext(ctx, listAuthenticatorKeys, rpID, userHandle)
	if err != nil {
		r.logger.Err(err).Str("func", "*authenticatorKeyRepository.ListKeys").Msg("error listing keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var keys []models.AuthenticatorKey
	for rows.Next() {
		var key models.AuthenticatorKey
		if err := scanAuthenticatorKey(rows, &key); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		keys = append(keys, key)
	}

	return keys, rows.Err()
}

func (r *authenticatorKeyRepository) IncrementSignCount(ctx context.Context, credentialID string) (uint32, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, incrementAuthenticatorSignCount, credentialID).Scan(&count); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		r.logger.Err(err).Str("func", "*authenticatorKeyRepository.IncrementSignCount").Msg("error incrementing counter")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return uint32(count), nil
}

func scanAuthenticatorKey(row rowScanner, key *models.AuthenticatorKey) error {
	var signCount int64
	if err := row.Scan(&key.CredentialID, &key.RPID, &key.UserHandle, &key.PrivateKey, &signCount); err != nil {
		return err
	}
	key.SignCount = uint32(signCount)
	return nil
}
