// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/MKhiriev/go-trust-keeper/internal/crypto"
)

// Subject is the authenticated entity in plaintext form.
//
// A Subject only exists inside a request scope: Email and Name are decrypted
// at the point of use and must never be cached, logged or persisted as-is.
// The persisted form is [SubjectRecord].
type Subject struct {
	// ID is the opaque, server-generated identifier (UUIDv7). It is never
	// derived from PII.
	ID string `json:"id"`

	// Email is the decrypted email address.
	Email string `json:"email"`

	// Name is the decrypted display name. Empty when the subject never set one.
	Name string `json:"name,omitempty"`

	// EmailVerifiedAt is set once the subject proved control of Email.
	EmailVerifiedAt *time.Time `json:"email_verified_at,omitempty"`

	// CreatedAt is the moment the subject was first persisted.
	CreatedAt time.Time `json:"created_at"`
}

// SubjectRecord is the at-rest representation of a [Subject] as stored in
// the "subjects" table.
type SubjectRecord struct {
	ID              string
	EmailEnc        crypto.EncryptedField
	EmailHash       crypto.LookupHash
	NameEnc         *crypto.EncryptedField
	EmailVerifiedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName returns the name of the database table associated with
// SubjectRecord.
func (SubjectRecord) TableName() string {
	return "subjects"
}

// SubjectUpdate describes a partial change of a subject. Nil fields are left
// untouched.
type SubjectUpdate struct {
	Email           *string    `json:"email,omitempty"`
	Name            *string    `json:"name,omitempty"`
	EmailVerifiedAt *time.Time `json:"-"`
}

// IsEmpty reports whether the update carries no changes.
func (u SubjectUpdate) IsEmpty() bool {
	return u.Email == nil && u.Name == nil && u.EmailVerifiedAt == nil
}

// SubjectRecordUpdate is the at-rest counterpart of [SubjectUpdate]: every
// changed identity field is already encrypted and, for email, re-hashed.
type SubjectRecordUpdate struct {
	ID              string
	EmailEnc        *crypto.EncryptedField
	EmailHash       *crypto.LookupHash
	NameEnc         *crypto.EncryptedField
	EmailVerifiedAt *time.Time
}
