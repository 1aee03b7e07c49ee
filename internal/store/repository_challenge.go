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

// challengeRepository keeps one row per (subject_id, kind); the unique
// constraint makes the upsert the invalidation of any earlier challenge.
type challengeRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewChallengeRepository(db *DB, logger *logger.Logger) ChallengeRepository {
	logger.Debug().Msg("creating challenge repository")
	return &challengeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *challengeRepository) UpsertChallenge(ctx context.Context, challenge models.Challenge) (models.Challenge, error) {
	log := logger.FromContext(ctx)

	if challenge.CreatedAt.IsZero() {
		challenge.CreatedAt = time.Now().UTC()
	}

	row := r.db.QueryRowContext(ctx, upsertChallenge,
		challenge.SubjectID, challenge.Kind.String(), challenge.Value, challenge.CreatedAt)
	if err := row.Scan(&challenge.CreatedAt); err != nil {
		log.Err(err).Str("func", "*challengeRepository.UpsertChallenge").
			Str("kind", challenge.Kind.String()).Msg("error upserting challenge")
		return models.Challenge{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return challenge, nil
}

// TakeChallenge reads and deletes in one DELETE ... RETURNING statement.
func (r *challengeRepository) TakeChallenge(ctx context.Context, subjectID string, kind models.CeremonyKind) (models.Challenge, error) {
	challenge := models.Challenge{SubjectID: subjectID, Kind: kind}

	row := r.db.QueryRowContext(ctx, takeChallenge, subjectID, kind.String())
	if err := row.Scan(&challenge.Value, &challenge.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Challenge{}, ErrNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*challengeRepository.TakeChallenge").Msg("error taking challenge")
		return models.Challenge{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return challenge, nil
}

func (r *challengeRepository) DeleteChallengesCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteChallengesCreatedBefore, cutoff)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*challengeRepository.DeleteChallengesCreatedBefore").Msg("error sweeping challenges")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return res.RowsAffected()
}
