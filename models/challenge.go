// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CeremonyKind identifies which ceremony a challenge belongs to.
type CeremonyKind string

const (
	// CeremonyRegistration is the credential registration ceremony.
	CeremonyRegistration CeremonyKind = "registration"
	// CeremonyAuthentication is the assertion (login) ceremony.
	CeremonyAuthentication CeremonyKind = "authentication"
)

// String implements fmt.Stringer.
func (k CeremonyKind) String() string {
	return string(k)
}

// Valid reports whether k is a known ceremony kind.
func (k CeremonyKind) Valid() bool {
	return k == CeremonyRegistration || k == CeremonyAuthentication
}

// Challenge is a single-use random value bound to one subject and one
// ceremony kind. At most one live challenge exists per (SubjectID, Kind).
type Challenge struct {
	SubjectID string
	Kind      CeremonyKind
	// Value is the base64url (unpadded) encoding of the random bytes; this is
	// exactly what the client echoes back inside clientDataJSON.
	Value     string
	CreatedAt time.Time
}

// TableName returns the name of the database table associated with Challenge.
func (Challenge) TableName() string {
	return "challenges"
}

// ExpiredAt reports whether the challenge is older than ttl at now.
func (c Challenge) ExpiredAt(now time.Time, ttl time.Duration) bool {
	return now.Sub(c.CreatedAt) >= ttl
}
