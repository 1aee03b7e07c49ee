package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/models"
)

type verificationTokenRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewVerificationTokenRepository(db *DB, logger *logger.Logger) VerificationTokenRepository {
	logger.Debug().Msg("creating verification token repository")
	return &verificationTokenRepository{
		db:     db,
		logger: logger,
	}
}

func (r *verificationTokenRepository) CreateVerificationToken(ctx context.Context, token models.VerificationToken) error {
	_, err := r.db.ExecContext(ctx, createVerificationToken, token.IdentifierHash, token.TokenHash, token.ExpiresAt)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*verificationTokenRepository.CreateVerificationToken").Msg("error inserting token")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func (r *verificationTokenRepository) TakeVerificationToken(ctx context.Context, identifierHash, tokenHash string) (models.VerificationToken, error) {
	token := models.VerificationToken{IdentifierHash: identifierHash, TokenHash: tokenHash}

	row := r.db.QueryRowContext(ctx, takeVerificationToken, identifierHash, tokenHash)
	if err := row.Scan(&token.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.VerificationToken{}, ErrNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*verificationTokenRepository.TakeVerificationToken").Msg("error taking token")
		return models.VerificationToken{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return token, nil
}

func (r *verificationTokenRepository) DeleteVerificationTokensExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteVerificationTokensExpiredBefore, cutoff)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*verificationTokenRepository.DeleteVerificationTokensExpiredBefore").Msg("error sweeping tokens")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return res.RowsAffected()
}
