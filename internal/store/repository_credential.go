package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

type credentialRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCredentialRepository constructs a PostgreSQL-backed
// [CredentialRepository].
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCredential relies on the primary key of credential_id, which is
// global across subjects.
func (r *credentialRepository) CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	log := logger.FromContext(ctx)

	if credential.CreatedAt.IsZero() {
		credential.CreatedAt = time.Now().UTC()
	}

	row := r.db.QueryRowContext(ctx, createCredential,
		credential.CredentialID,
		credential.SubjectID,
		credential.PublicKey,
		int64(credential.SignCount),
		encodeTransports(credential.Transports),
		credential.Label,
		credential.CreatedAt,
	)

	if err := row.Scan(&credential.CreatedAt); err != nil {
		if isUniqueViolation(err, "") {
			return models.Credential{}, ErrCredentialExists
		}
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Credential{}, fmt.Errorf("%w: subject %s", ErrNotFound, credential.SubjectID)
		}
		log.Err(err).Str("func", "*credentialRepository.CreateCredential").Msg("error inserting credential")
		return models.Credential{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return credential, nil
}

func (r *credentialRepository) GetCredential(ctx context.Context, credentialID string) (models.Credential, error) {
	log := logger.FromContext(ctx)

	var credential models.Credential
	err := r.db.withRetry(ctx, func() error {
		return scanCredential(r.db.QueryRowContext(ctx, getCredential, credentialID), &credential)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Credential{}, ErrNotFound
		}
		log.Err(err).Str("func", "*credentialRepository.GetCredential").Msg("error selecting credential")
		return models.Credential{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return credential, nil
}

// ListCredentialsBySubject returns the subject's credentials oldest first.
func (r *credentialRepository) ListCredentialsBySubject(ctx context.Context, subjectID string) ([]models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(credentialColumns...).
		From(models.Credential{}.TableName()).
		Where(sq.Eq{"subject_id": subjectID}).
		OrderBy("created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var credentials []models.Credential
	err = r.db.withRetry(ctx, func() error {
		credentials = credentials[:0]

		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			var c models.Credential
			if err := scanCredential(rows, &c); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			credentials = append(credentials, c)
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.ListCredentialsBySubject").Msg("error listing credentials")
		return nil, err
	}

	return credentials, nil
}

func (r *credentialRepository) CountCredentialsBySubject(ctx context.Context, subjectID string) (int, error) {
	var count int
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, countCredentialsBySubject, subjectID).Scan(&count)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*credentialRepository.CountCredentialsBySubject").Msg("error counting credentials")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count, nil
}

// AdvanceSignCount is a single conditional UPDATE, so two concurrent
// authentications can never both pass the counter check against a stale
// value.
func (r *credentialRepository) AdvanceSignCount(ctx context.Context, credentialID string, presented uint32) (uint32, error) {
	var stored int64
	err := r.db.QueryRowContext(ctx, advanceSignCount, credentialID, int64(presented)).Scan(&stored)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrCounterNotAdvanced
		}
		logger.FromContext(ctx).Err(err).Str("func", "*credentialRepository.AdvanceSignCount").Msg("error advancing counter")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return uint32(stored), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCredential(row rowScanner, c *models.Credential) error {
	var (
		signCount  int64
		transports string
	)
	err := row.Scan(&c.CredentialID, &c.SubjectID, &c.PublicKey, &signCount, &transports, &c.Label, &c.CreatedAt, &c.LastUsedAt)
	if err != nil {
		return err
	}
	c.SignCount = uint32(signCount)
	c.Transports = decodeTransports(transports)
	return nil
}
