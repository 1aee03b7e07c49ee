// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"database/sql/driver"
	"fmt"
)

const (
	fieldVersion = byte(1)
	nonceSize    = 12
	tagSize      = 16
	headerSize   = 1 + nonceSize + tagSize
)

// EncryptedField is an AES-256-GCM sealed value: nonce, ciphertext and
// authentication tag. Its fields are unexported so that only this package can
// produce one from plaintext; it prints and marshals without revealing content.
//
// The persisted form is version(1) ‖ nonce(12) ‖ tag(16) ‖ ciphertext.
type EncryptedField struct {
	nonce      []byte
	ciphertext []byte
	tag        []byte
}

// IsZero reports whether the field carries no sealed value.
func (f EncryptedField) IsZero() bool {
	return len(f.nonce) == 0 && len(f.ciphertext) == 0 && len(f.tag) == 0
}

// Bytes returns the binary encoding of the field.
func (f EncryptedField) Bytes() []byte {
	out := make([]byte, 0, headerSize+len(f.ciphertext))
	out = append(out, fieldVersion)
	out = append(out, f.nonce...)
	out = append(out, f.tag...)
	out = append(out, f.ciphertext...)
	return out
}

// ParseEncryptedField decodes the binary form produced by [EncryptedField.Bytes].
// Malformed input yields ErrTamperedOrWrongKey.
func ParseEncryptedField(b []byte) (EncryptedField, error) {
	if len(b) < headerSize || b[0] != fieldVersion {
		return EncryptedField{}, fmt.Errorf("%w: malformed field", ErrTamperedOrWrongKey)
	}

	body := append([]byte(nil), b[1:]...)
	return EncryptedField{
		nonce:      body[:nonceSize],
		tag:        body[nonceSize : nonceSize+tagSize],
		ciphertext: body[nonceSize+tagSize:],
	}, nil
}

// Equal reports whether two fields hold the same sealed bytes. It is meant
// for tests; ciphertexts must never be compared to answer lookup questions.
func (f EncryptedField) Equal(other EncryptedField) bool {
	return string(f.Bytes()) == string(other.Bytes())
}

// String implements fmt.Stringer without exposing any content.
func (f EncryptedField) String() string {
	return "[encrypted]"
}

// Value implements driver.Valuer.
func (f EncryptedField) Value() (driver.Value, error) {
	if f.IsZero() {
		return nil, nil
	}
	return f.Bytes(), nil
}

// Scan implements sql.Scanner.
func (f *EncryptedField) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*f = EncryptedField{}
		return nil
	case []byte:
		parsed, err := ParseEncryptedField(v)
		if err != nil {
			return err
		}
		*f = parsed
		return nil
	default:
		return fmt.Errorf("unsupported type %T for encrypted field", src)
	}
}

// LookupHash is the hex-encoded keyed digest of a normalised plaintext. It
// substitutes an equality index for encrypted columns. It is not reversible
// and is not a credential.
type LookupHash string

// String implements fmt.Stringer.
func (h LookupHash) String() string {
	return string(h)
}
