package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-trust-keeper/internal/crypto"
	"github.com/MKhiriev/go-trust-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SubjectRepository persists subjects in their encrypted form. It never sees
// plaintext identity fields.
type SubjectRepository interface {
	// CreateSubject inserts rec. A duplicate email hash yields
	// [ErrSubjectHashExists]; the unique constraint is the only check.
	CreateSubject(ctx context.Context, rec models.SubjectRecord) (models.SubjectRecord, error)
	// FindSubjectByEmailHash performs an equality lookup on email_hash.
	FindSubjectByEmailHash(ctx context.Context, hash crypto.LookupHash) (models.SubjectRecord, error)
	// FindSubjectByID loads a subject by its primary key.
	FindSubjectByID(ctx context.Context, id string) (models.SubjectRecord, error)
	// UpdateSubject writes only the non-nil fields of upd.
	UpdateSubject(ctx context.Context, upd models.SubjectRecordUpdate) (models.SubjectRecord, error)
}

// ChallengeRepository keeps at most one challenge per (subject, kind).
type ChallengeRepository interface {
	// UpsertChallenge atomically replaces any live challenge for the same
	// (subject, kind) pair.
	UpsertChallenge(ctx context.Context, challenge models.Challenge) (models.Challenge, error)
	// TakeChallenge deletes and returns the live challenge in one statement.
	// Concurrent callers see exactly one winner; the others get [ErrNotFound].
	TakeChallenge(ctx context.Context, subjectID string, kind models.CeremonyKind) (models.Challenge, error)
	// DeleteChallengesCreatedBefore removes challenges older than cutoff.
	DeleteChallengesCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// CredentialRepository stores public-key credentials.
type CredentialRepository interface {
	// CreateCredential inserts a credential; a credential id that exists for
	// any subject yields [ErrCredentialExists].
	CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error)
	GetCredential(ctx context.Context, credentialID string) (models.Credential, error)
	ListCredentialsBySubject(ctx context.Context, subjectID string) ([]models.Credential, error)
	CountCredentialsBySubject(ctx context.Context, subjectID string) (int, error)
	// AdvanceSignCount stores presented when the stored counter is zero or
	// strictly lower, in a single conditional UPDATE. Otherwise it returns
	// [ErrCounterNotAdvanced] and leaves the row untouched.
	AdvanceSignCount(ctx context.Context, credentialID string, presented uint32) (uint32, error)
}

// VerificationTokenRepository stores hashed sign-in link tokens.
type VerificationTokenRepository interface {
	CreateVerificationToken(ctx context.Context, token models.VerificationToken) error
	// TakeVerificationToken deletes and returns the matching token in one
	// statement.
	TakeVerificationToken(ctx context.Context, identifierHash, tokenHash string) (models.VerificationToken, error)
	DeleteVerificationTokensExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
