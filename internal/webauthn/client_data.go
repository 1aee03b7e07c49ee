package webauthn

import "crypto/sha256"

// ClientDataHash is SHA-256 over the raw clientDataJSON bytes.
func ClientDataHash(raw []byte) []byte {
	sum := sha256.Sum256(raw)
	return sum[:]
}

// SignedData is the message an assertion signature covers:
// authenticatorData || SHA-256(clientDataJSON).
func SignedData(authData, clientDataJSON []byte) []byte {
	out := make([]byte, 0, len(authData)+sha256.Size)
	out = append(out, authData...)
	return append(out, ClientDataHash(clientDataJSON)...)
}
