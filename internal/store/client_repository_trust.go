package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/models"
)

type localTrustRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLocalTrustRepository constructs the SQLite-backed [LocalTrustRepository].
func NewLocalTrustRepository(db *DB, logger *logger.Logger) LocalTrustRepository {
	return &localTrustRepository{db: db, logger: logger}
}

func (r *localTrustRepository) SaveTrustState(ctx context.Context, state models.TrustState) error {
	if _, err := r.db.ExecContext(ctx, saveTrustState, state.SubjectID, state.ElevatedAt.UTC()); err != nil {
		r.logger.Err(err).Str("func", "*localTrustRepository.SaveTrustState").Msg("error saving trust state")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (r *localTrustRepository) GetTrustState(ctx context.Context) (models.TrustState, error) {
	var state models.TrustState
	err := r.db.QueryRowContext(ctx, getTrustState).Scan(&state.SubjectID, &state.ElevatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TrustState{}, ErrNotFound
		}
		r.logger.Err(err).Str("func", "*localTrustRepository.GetTrustState").Msg("error reading trust state")
		return models.TrustState{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return state, nil
}

func (r *localTrustRepository) DeleteTrustState(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deleteTrustState); err != nil {
		r.logger.Err(err).Str("func", "*localTrustRepository.DeleteTrustState").Msg("error deleting trust state")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}
