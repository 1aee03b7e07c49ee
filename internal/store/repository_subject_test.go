package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-trust-keeper/internal/crypto"
	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &DB{DB: db, dialect: dialectPostgres, logger: logger.Nop(), errorClassificator: NewPostgresErrorClassifier()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func pgConstraintError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func testField(t *testing.T, plaintext string) crypto.EncryptedField {
	t.Helper()
	cipher, err := crypto.NewFieldCipher("store-test-secret")
	require.NoError(t, err)
	f, err := cipher.Encrypt(plaintext)
	require.NoError(t, err)
	return f
}

var subjectRowColumns = []string{"id", "email_enc", "email_hash", "name_enc", "email_verified_at", "created_at", "updated_at"}

func TestCreateSubject_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSubjectRepository(db, logger.Nop())

	emailEnc := testField(t, "a@example.com")
	nameEnc := testField(t, "Alice")
	rec := models.SubjectRecord{ID: "s-1", EmailEnc: emailEnc, EmailHash: "hash-a", NameEnc: &nameEnc}
	now := time.Now().UTC()

	mock.ExpectQuery("INSERT INTO subjects").
		WithArgs("s-1", emailEnc.Bytes(), "hash-a", nameEnc.Bytes(), nil).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	created, err := repo.CreateSubject(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, now, created.CreatedAt)
	assert.Equal(t, crypto.LookupHash("hash-a"), created.EmailHash)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSubject_WithoutName(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSubjectRepository(db, logger.Nop())

	emailEnc := testField(t, "a@example.com")
	now := time.Now().UTC()

	mock.ExpectQuery("INSERT INTO subjects").
		WithArgs("s-1", emailEnc.Bytes(), "hash-a", nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	_, err := repo.CreateSubject(context.Background(), models.SubjectRecord{ID: "s-1", EmailEnc: emailEnc, EmailHash: "hash-a"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSubject_HashConflict(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSubjectRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO subjects").
		WillReturnError(pgConstraintError(pgerrcode.UniqueViolation, subjectsEmailHashKey))

	_, err := repo.CreateSubject(context.Background(), models.SubjectRecord{ID: "s-1", EmailEnc: testField(t, "a"), EmailHash: "h"})
	assert.ErrorIs(t, err, ErrSubjectHashExists)
}

func TestCreateSubject_UnexpectedDBError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSubjectRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO subjects").WillReturnError(errors.New("db network error"))

	_, err := repo.CreateSubject(context.Background(), models.SubjectRecord{ID: "s-1", EmailEnc: testField(t, "a"), EmailHash: "h"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSubjectHashExists)
	assert.Contains(t, err.Error(), "unexpected DB error")
}

func TestFindSubjectByEmailHash_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSubjectRepository(db, logger.Nop())

	emailEnc := testField(t, "a@example.com")
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT (.+) FROM subjects WHERE email_hash = \\$1").
		WithArgs("hash-a").
		WillReturnRows(sqlmock.NewRows(subjectRowColumns).
			AddRow("s-1", emailEnc.Bytes(), "hash-a", nil, nil, now, now))

	rec, err := repo.FindSubjectByEmailHash(context.Background(), "hash-a")
	require.NoError(t, err)
	assert.Equal(t, "s-1", rec.ID)
	assert.True(t, rec.EmailEnc.Equal(emailEnc))
	assert.Nil(t, rec.NameEnc)
	assert.Nil(t, rec.EmailVerifiedAt)
}

func TestFindSubjectByEmailHash_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSubjectRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM subjects").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindSubjectByEmailHash(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindSubjectByID_RetriesTransientError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSubjectRepository(db, logger.Nop())

	now := time.Now().UTC()
	nameEnc := testField(t, "Alice")

	mock.ExpectQuery("SELECT (.+) FROM subjects WHERE id = \\$1").
		WithArgs("s-1").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))
	mock.ExpectQuery("SELECT (.+) FROM subjects WHERE id = \\$1").
		WithArgs("s-1").
		WillReturnRows(sqlmock.NewRows(subjectRowColumns).
			AddRow("s-1", testField(t, "a").Bytes(), "h", nameEnc.Bytes(), now, now, now))

	rec, err := repo.FindSubjectByID(context.Background(), "s-1")
	require.NoError(t, err)
	require.NotNil(t, rec.NameEnc)
	assert.True(t, rec.NameEnc.Equal(nameEnc))
	require.NotNil(t, rec.EmailVerifiedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindSubjectByID_NonRetryableErrorIsNotRetried(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSubjectRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM subjects").WillReturnError(pgError(pgerrcode.SyntaxError))

	_, err := repo.FindSubjectByID(context.Background(), "s-1")
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindSubjectByID_CorruptedCiphertext(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSubjectRepository(db, logger.Nop())

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT (.+) FROM subjects").
		WillReturnRows(sqlmock.NewRows(subjectRowColumns).
			AddRow("s-1", []byte{0x01, 0x02}, "h", nil, nil, now, now))

	_, err := repo.FindSubjectByID(context.Background(), "s-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestUpdateSubject_OnlyProvidedFields(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSubjectRepository(db, logger.Nop())

	nameEnc := testField(t, "Bob")
	now := time.Now().UTC()

	mock.ExpectQuery(`UPDATE subjects SET updated_at = NOW\(\), name_enc = \$1 WHERE id = \$2 RETURNING`).
		WithArgs(nameEnc.Bytes(), "s-1").
		WillReturnRows(sqlmock.NewRows(subjectRowColumns).
			AddRow("s-1", testField(t, "a").Bytes(), "h", nameEnc.Bytes(), nil, now, now))

	rec, err := repo.UpdateSubject(context.Background(), models.SubjectRecordUpdate{ID: "s-1", NameEnc: &nameEnc})
	require.NoError(t, err)
	assert.Equal(t, crypto.LookupHash("h"), rec.EmailHash)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateSubject_EmailConflict(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSubjectRepository(db, logger.Nop())

	emailEnc := testField(t, "b@example.com")
	hash := crypto.LookupHash("hash-b")

	mock.ExpectQuery("UPDATE subjects").
		WillReturnError(pgConstraintError(pgerrcode.UniqueViolation, subjectsEmailHashKey))

	_, err := repo.UpdateSubject(context.Background(), models.SubjectRecordUpdate{ID: "s-1", EmailEnc: &emailEnc, EmailHash: &hash})
	assert.ErrorIs(t, err, ErrSubjectHashExists)
}

func TestUpdateSubject_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSubjectRepository(db, logger.Nop())

	verified := time.Now()
	mock.ExpectQuery("UPDATE subjects").WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateSubject(context.Background(), models.SubjectRecordUpdate{ID: "missing", EmailVerifiedAt: &verified})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBuildSubjectUpdate_AllFields(t *testing.T) {
	emailEnc := testField(t, "a")
	nameEnc := testField(t, "n")
	hash := crypto.LookupHash("h")
	verified := time.Now()

	query, args, err := buildSubjectUpdate(models.SubjectRecordUpdate{
		ID: "s-1", EmailEnc: &emailEnc, EmailHash: &hash, NameEnc: &nameEnc, EmailVerifiedAt: &verified,
	})
	require.NoError(t, err)
	assert.Contains(t, query, "email_enc = $1")
	assert.Contains(t, query, "email_hash = $2")
	assert.Contains(t, query, "name_enc = $3")
	assert.Contains(t, query, "email_verified_at = $4")
	assert.Contains(t, query, "WHERE id = $5")
	assert.Len(t, args, 5)
}
