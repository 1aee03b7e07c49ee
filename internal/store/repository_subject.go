package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-trust-keeper/internal/crypto"
	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

// subjectRepository is the PostgreSQL-backed implementation of
// [SubjectRepository]. It stores only ciphertexts and lookup hashes.
type subjectRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSubjectRepository constructs a [SubjectRepository] backed by the
// provided database connection and logger.
func NewSubjectRepository(db *DB, logger *logger.Logger) SubjectRepository {
	logger.Debug().Msg("creating subject repository")
	return &subjectRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSubject inserts rec and fills the server-assigned timestamps.
//
// Error handling:
//   - unique_violation on subjects_email_hash_key → [ErrSubjectHashExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *subjectRepository) CreateSubject(ctx context.Context, rec models.SubjectRecord) (models.SubjectRecord, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createSubject,
		rec.ID, rec.EmailEnc, string(rec.EmailHash), nullableField(rec.NameEnc), rec.EmailVerifiedAt)

	if err := row.Scan(&rec.CreatedAt, &rec.UpdatedAt); err != nil {
		if isUniqueViolation(err, subjectsEmailHashKey) {
			return models.SubjectRecord{}, ErrSubjectHashExists
		}
		log.Err(err).Str("func", "*subjectRepository.CreateSubject").Msg("error inserting subject")
		return models.SubjectRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return rec, nil
}

// FindSubjectByEmailHash performs the equality lookup on the hash column.
// Ciphertexts are never scanned or compared.
func (r *subjectRepository) FindSubjectByEmailHash(ctx context.Context, hash crypto.LookupHash) (models.SubjectRecord, error) {
	return r.findOne(ctx, "*subjectRepository.FindSubjectByEmailHash", findSubjectByEmailHash, string(hash))
}

// FindSubjectByID loads a subject by primary key.
func (r *subjectRepository) FindSubjectByID(ctx context.Context, id string) (models.SubjectRecord, error) {
	return r.findOne(ctx, "*subjectRepository.FindSubjectByID", findSubjectByID, id)
}

func (r *subjectRepository) findOne(ctx context.Context, funcName, query string, arg any) (models.SubjectRecord, error) {
	log := logger.FromContext(ctx)

	var rec models.SubjectRecord
	err := r.db.withRetry(ctx, func() error {
		return scanSubject(r.db.QueryRowContext(ctx, query, arg), &rec)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SubjectRecord{}, ErrNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error selecting subject")
		return models.SubjectRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return rec, nil
}

// UpdateSubject builds the SET list from the non-nil fields of upd, so
// unspecified columns keep their stored values.
func (r *subjectRepository) UpdateSubject(ctx context.Context, upd models.SubjectRecordUpdate) (models.SubjectRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSubjectUpdate(upd)
	if err != nil {
		log.Err(err).Str("func", "*subjectRepository.UpdateSubject").Msg("error building update query")
		return models.SubjectRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rec models.SubjectRecord
	if err = scanSubject(r.db.QueryRowContext(ctx, query, args...), &rec); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.SubjectRecord{}, ErrNotFound
		case isUniqueViolation(err, subjectsEmailHashKey):
			return models.SubjectRecord{}, ErrSubjectHashExists
		}
		log.Err(err).Str("func", "*subjectRepository.UpdateSubject").Msg("error updating subject")
		return models.SubjectRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return rec, nil
}

func buildSubjectUpdate(upd models.SubjectRecordUpdate) (string, []any, error) {
	q := sq.Update(models.SubjectRecord{}.TableName()).
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": upd.ID})

	if upd.EmailEnc != nil {
		q = q.Set("email_enc", *upd.EmailEnc)
	}
	if upd.EmailHash != nil {
		q = q.Set("email_hash", string(*upd.EmailHash))
	}
	if upd.NameEnc != nil {
		q = q.Set("name_enc", nullableField(upd.NameEnc))
	}
	if upd.EmailVerifiedAt != nil {
		q = q.Set("email_verified_at", *upd.EmailVerifiedAt)
	}

	return q.Suffix("RETURNING " + joinColumns(subjectColumns)).ToSql()
}

func scanSubject(row rowScanner, rec *models.SubjectRecord) error {
	var hash string
	err := row.Scan(&rec.ID, &rec.EmailEnc, &hash, &rec.NameEnc, &rec.EmailVerifiedAt, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return err
	}
	rec.EmailHash = crypto.LookupHash(hash)
	return nil
}

// nullableField maps a nil or zero field to SQL NULL.
func nullableField(f *crypto.EncryptedField) any {
	if f == nil || f.IsZero() {
		return nil
	}
	return f.Bytes()
}
