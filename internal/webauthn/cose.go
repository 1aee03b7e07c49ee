package webauthn

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"fmt"

	"github.com/MKhiriev/go-trust-keeper/models"
	"github.com/fxamacker/cbor/v2"
)

// COSE key type and curve identifiers (RFC 9053).
const (
	coseKtyOKP     int64 = 1
	coseKtyEC2     int64 = 2
	coseCrvP256    int64 = 1
	coseCrvEd25519 int64 = 6
)

type coseKey struct {
	Kty int64  `cbor:"1,keyasint"`
	Alg int64  `cbor:"3,keyasint"`
	Crv int64  `cbor:"-1,keyasint"`
	X   []byte `cbor:"-2,keyasint"`
	Y   []byte `cbor:"-3,keyasint,omitempty"`
}

// EncodeES256PublicKey returns the COSE_Key form of a P-256 public key.
func EncodeES256PublicKey(pub *ecdsa.PublicKey) ([]byte, error) {
	point, err := pub.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedKey, err)
	}
	if len(point) != 65 {
		return nil, fmt.Errorf("%w: not a P-256 key", ErrUnsupportedKey)
	}
	return cbor.Marshal(coseKey{
		Kty: coseKtyEC2,
		Alg: models.COSEAlgES256,
		Crv: coseCrvP256,
		X:   point[1:33],
		Y:   point[33:],
	})
}

// EncodeEdDSAPublicKey returns the COSE_Key form of an Ed25519 public key.
func EncodeEdDSAPublicKey(pub ed25519.PublicKey) ([]byte, error) {
	if len(pub) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: bad Ed25519 key size", ErrUnsupportedKey)
	}
	return cbor.Marshal(coseKey{
		Kty: coseKtyOKP,
		Alg: models.COSEAlgEdDSA,
		Crv: coseCrvEd25519,
		X:   pub,
	})
}
