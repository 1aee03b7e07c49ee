// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"strings"
	"sync"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/text/cases"
)

// Domain labels mixed into HKDF. Reusing the master secret elsewhere cannot
// produce these subkeys unless the same label is used.
const (
	encryptionKeyLabel = "go-trust-keeper/pii-encryption/v1"
	lookupKeyLabel     = "go-trust-keeper/pii-lookup/v1"
	subkeyLen          = 32
)

// fieldCipher is the private implementation of [FieldCipher]. All fields are
// set once by [NewFieldCipher] and only read afterwards.
type fieldCipher struct {
	aead       cipher.AEAD
	lookupPool sync.Pool
	random     io.Reader
}

// NewFieldCipher derives the encryption and lookup subkeys from masterSecret
// with HKDF-SHA256 and returns a ready [FieldCipher].
//
// Returns ErrKeyUnavailable if masterSecret is empty.
func NewFieldCipher(masterSecret string) (FieldCipher, error) {
	return newFieldCipher(masterSecret, rand.Reader)
}

func newFieldCipher(masterSecret string, random io.Reader) (*fieldCipher, error) {
	if masterSecret == "" {
		return nil, ErrKeyUnavailable
	}

	encKey, err := deriveSubkey(masterSecret, encryptionKeyLabel)
	if err != nil {
		return nil, err
	}
	lookupKey, err := deriveSubkey(masterSecret, lookupKeyLabel)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(encKey)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	c := &fieldCipher{aead: aead, random: random}
	c.lookupPool.New = func() any {
		return hmac.New(sha256.New, lookupKey)
	}

	return c, nil
}

func deriveSubkey(masterSecret, label string) ([]byte, error) {
	key := make([]byte, subkeyLen)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(masterSecret), nil, []byte(label)), key); err != nil {
		return nil, fmt.Errorf("%w: derive %s: %w", ErrKeyUnavailable, label, err)
	}
	return key, nil
}

// Encrypt implements [FieldCipher].
func (c *fieldCipher) Encrypt(plaintext string) (EncryptedField, error) {
	if c == nil || c.aead == nil {
		return EncryptedField{}, ErrKeyUnavailable
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(c.random, nonce); err != nil {
		return EncryptedField{}, fmt.Errorf("generate nonce: %w", err)
	}

	// Seal appends the tag to the ciphertext; keep them apart.
	sealed := c.aead.Seal(nil, nonce, []byte(plaintext), nil)
	split := len(sealed) - tagSize

	return EncryptedField{
		nonce:      nonce,
		ciphertext: sealed[:split],
		tag:        sealed[split:],
	}, nil
}

// Decrypt implements [FieldCipher].
func (c *fieldCipher) Decrypt(field EncryptedField) (string, error) {
	if c == nil || c.aead == nil {
		return "", ErrKeyUnavailable
	}
	if len(field.nonce) != nonceSize || len(field.tag) != tagSize {
		return "", fmt.Errorf("%w: malformed field", ErrTamperedOrWrongKey)
	}

	sealed := make([]byte, 0, len(field.ciphertext)+tagSize)
	sealed = append(sealed, field.ciphertext...)
	sealed = append(sealed, field.tag...)

	plaintext, err := c.aead.Open(nil, field.nonce, sealed, nil)
	if err != nil {
		return "", ErrTamperedOrWrongKey
	}

	return string(plaintext), nil
}

// LookupHash implements [FieldCipher].
func (c *fieldCipher) LookupHash(plaintext string) LookupHash {
	h := c.lookupPool.Get().(hash.Hash)
	h.Reset()

	h.Write([]byte(Normalize(plaintext)))
	sum := h.Sum(nil)

	h.Reset()
	c.lookupPool.Put(h)

	return LookupHash(hex.EncodeToString(sum))
}

// Normalize trims surrounding whitespace and applies Unicode case folding.
// Two identifiers that differ only in case normalise to the same string.
func Normalize(s string) string {
	// A Caser is stateful and must not be shared between goroutines.
	return cases.Fold().String(strings.TrimSpace(s))
}
