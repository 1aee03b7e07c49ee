package models

import "time"

// TrustState is the device-local elevation record kept by the client.
// It is never sent to the server.
type TrustState struct {
	SubjectID  string
	ElevatedAt time.Time
}

// ValidAt reports whether the state still elevates subjectID at now.
func (s TrustState) ValidAt(subjectID string, now time.Time, ttl time.Duration) bool {
	if s.SubjectID == "" || s.SubjectID != subjectID {
		return false
	}
	age := now.Sub(s.ElevatedAt)
	return age >= 0 && age < ttl
}

// AuthenticatorKey is a device-bound private key held by the software
// authenticator together with its signature counter.
type AuthenticatorKey struct {
	CredentialID string
	RPID         string
	UserHandle   string
	PrivateKey   []byte
	SignCount    uint32
}

// Session is the client's persisted server session.
type Session struct {
	Token     string
	SubjectID string
	SavedAt   time.Time
}
