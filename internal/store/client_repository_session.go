package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/models"
)

type localSessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLocalSessionRepository constructs the SQLite-backed
// [LocalSessionRepository].
func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{db: db, logger: logger}
}

func (r *localSessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	if _, err := r.db.ExecContext(ctx, saveSession, session.Token, session.SubjectID, session.SavedAt.UTC()); err != nil {
		r.logger.Err(err).Str("func", "*localSessionRepository.SaveSession").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (r *localSessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	var session models.Session
	err := r.db.QueryRowContext(ctx, getSession).Scan(&session.Token, &session.SubjectID, &session.SavedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrNotFound
		}
		r.logger.Err(err).Str("func", "*localSessionRepository.GetSession").Msg("error reading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return session, nil
}

func (r *localSessionRepository) DeleteSession(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deleteSession); err != nil {
		r.logger.Err(err).Str("func", "*localSessionRepository.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}
