package webauthn

import "errors"

var ErrUnsupportedKey = errors.New("unsupported public key")
