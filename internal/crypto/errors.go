package crypto

import "errors"

// Sentinel errors of the crypto layer. Both are integrity or configuration
// failures: callers must abort the operation and must not retry or fall back
// to treating a field as empty.
var (
	// ErrKeyUnavailable is returned when no master secret was configured or
	// the derived key material is missing.
	ErrKeyUnavailable = errors.New("encryption key is unavailable")

	// ErrTamperedOrWrongKey is returned when a field fails GCM authentication
	// or is structurally malformed.
	ErrTamperedOrWrongKey = errors.New("encrypted field is tampered or was sealed with a different key")
)
