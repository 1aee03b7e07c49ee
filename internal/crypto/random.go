package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// ChallengeSize is the number of random bytes behind every ceremony
// challenge and sign-in token.
const ChallengeSize = 32

// RandomToken returns n bytes from crypto/rand encoded as unpadded base64url.
func RandomToken(n int) (string, error) {
	return randomToken(rand.Reader, n)
}

func randomToken(r io.Reader, n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("invalid random token size %d", n)
	}

	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", fmt.Errorf("error reading random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
