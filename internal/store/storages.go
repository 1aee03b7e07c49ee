package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-trust-keeper/internal/config"
	"github.com/MKhiriev/go-trust-keeper/internal/logger"
)

// Storages groups the server repositories.
type Storages struct {
	SubjectRepository           SubjectRepository
	ChallengeRepository         ChallengeRepository
	CredentialRepository        CredentialRepository
	VerificationTokenRepository VerificationTokenRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and wires the
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, logger), nil
}

func newStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		SubjectRepository:           NewSubjectRepository(db, logger),
		ChallengeRepository:         NewChallengeRepository(db, logger),
		CredentialRepository:        NewCredentialRepository(db, logger),
		VerificationTokenRepository: NewVerificationTokenRepository(db, logger),
		db:                          db,
	}
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
