// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Credential is a registered public-key authenticator.
//
// CredentialID is chosen by the authenticator and is unique across all
// subjects. SignCount only moves forward, and only through a successful
// authentication ceremony.
type Credential struct {
	// CredentialID is the base64url (unpadded) credential identifier.
	CredentialID string `json:"credential_id"`

	// SubjectID references the owning [Subject].
	SubjectID string `json:"subject_id"`

	// PublicKey is the COSE_Key encoded public key from the attested
	// credential data.
	PublicKey []byte `json:"-"`

	// SignCount is the last accepted signature counter.
	SignCount uint32 `json:"sign_count"`

	// Transports are optional hints reported by the client
	// (e.g. "internal", "usb", "hybrid").
	Transports []string `json:"transports,omitempty"`

	// Label is a human readable name for the credential.
	Label string `json:"label,omitempty"`

	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
}

// TableName returns the name of the database table associated with Credential.
func (Credential) TableName() string {
	return "credentials"
}

// PasskeyStatus summarises the credentials enrolled by a subject.
type PasskeyStatus struct {
	HasPasskey bool `json:"has_passkey"`
	Count      int  `json:"count"`
}
