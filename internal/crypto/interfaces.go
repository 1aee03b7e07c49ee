// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/field_cipher_mock.go -package=mock

// FieldCipher protects personally identifying fields at rest.
//
// It knows nothing about the network, the database or subjects: it only
// turns plaintext into [EncryptedField] values and back, and computes the
// deterministic [LookupHash] used as an equality index for encrypted columns.
//
// Encryption and lookup hashing use two independent subkeys; neither value can
// be derived from the other.
type FieldCipher interface {
	// Encrypt seals plaintext with AES-256-GCM under a fresh random nonce.
	// It fails only when the key is unavailable or randomness cannot be read.
	Encrypt(plaintext string) (EncryptedField, error)

	// Decrypt opens a field produced by Encrypt. Any authentication failure
	// is reported as ErrTamperedOrWrongKey and must be treated as fatal.
	Decrypt(field EncryptedField) (string, error)

	// LookupHash normalises plaintext (trim + Unicode case folding) and
	// returns its keyed, irreversible digest.
	LookupHash(plaintext string) LookupHash
}
