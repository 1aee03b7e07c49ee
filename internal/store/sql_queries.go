package store

const (
	subjectsEmailHashKey = "subjects_email_hash_key"
	credentialsPKey      = "credentials_pkey"
)

const (
	createSubject = `INSERT INTO subjects (id, email_enc, email_hash, name_enc, email_verified_at, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
    RETURNING created_at, updated_at;`

	findSubjectByEmailHash = `SELECT id, email_enc, email_hash, name_enc, email_verified_at, created_at, updated_at
    FROM subjects
    WHERE email_hash = $1;`

	findSubjectByID = `SELECT id, email_enc, email_hash, name_enc, email_verified_at, created_at, updated_at
    FROM subjects
    WHERE id = $1;`

	upsertChallenge = `INSERT INTO challenges (subject_id, kind, value, created_at)
    VALUES ($1, $2, $3, $4)
    ON CONFLICT (subject_id, kind)
    DO UPDATE SET value = EXCLUDED.value, created_at = EXCLUDED.created_at
    RETURNING created_at;`

	takeChallenge = `DELETE FROM challenges
    WHERE subject_id = $1 AND kind = $2
    RETURNING value, created_at;`

	deleteChallengesCreatedBefore = `DELETE FROM challenges WHERE created_at < $1;`

	createCredential = `INSERT INTO credentials (credential_id, subject_id, public_key, sign_count, transports, label, created_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING created_at;`

	getCredential = `SELECT credential_id, subject_id, public_key, sign_count, transports, label, created_at, last_used_at
    FROM credentials
    WHERE credential_id = $1;`

	countCredentialsBySubject = `SELECT COUNT(*) FROM credentials WHERE subject_id = $1;`

	// A stored zero means the authenticator does not implement counters;
	// any presented value is accepted and recorded.
	advanceSignCount = `UPDATE credentials
    SET sign_count = $2, last_used_at = NOW()
    WHERE credential_id = $1 AND (sign_count = 0 OR sign_count < $2)
    RETURNING sign_count;`

	createVerificationToken = `INSERT INTO verification_tokens (identifier_hash, token_hash, expires_at)
    VALUES ($1, $2, $3);`

	takeVerificationToken = `DELETE FROM verification_tokens
    WHERE identifier_hash = $1 AND token_hash = $2
    RETURNING expires_at;`

	deleteVerificationTokensExpiredBefore = `DELETE FROM verification_tokens WHERE expires_at < $1;`
)

var credentialColumns = []string{
	"credential_id", "subject_id", "public_key", "sign_count", "transports", "label", "created_at", "last_used_at",
}

var subjectColumns = []string{
	"id", "email_enc", "email_hash", "name_enc", "email_verified_at", "created_at", "updated_at",
}
