package webauthn

import (
	"github.com/fxamacker/cbor/v2"
)

// Attestation statement formats.
const (
	AttestationFormatNone   = "none"
	AttestationFormatPacked = "packed"
)

type attestationObject struct {
	Format      string          `cbor:"fmt"`
	Statement   cbor.RawMessage `cbor:"attStmt"`
	AuthDataRaw []byte          `cbor:"authData"`
}

type packedStatement struct {
	Alg int64  `cbor:"alg"`
	Sig []byte `cbor:"sig"`
}

// MarshalNoneAttestation builds a "none" attestation object around authData.
func MarshalNoneAttestation(authData []byte) ([]byte, error) {
	return cbor.Marshal(attestationObject{
		Format:      AttestationFormatNone,
		Statement:   cbor.RawMessage{0xa0},
		AuthDataRaw: authData,
	})
}

// MarshalPackedSelfAttestation builds a "packed" self attestation object.
// sig must cover authData || clientDataHash and be made with the attested
// credential key.
func MarshalPackedSelfAttestation(authData []byte, alg int64, sig []byte) ([]byte, error) {
	stmt, err := cbor.Marshal(packedStatement{Alg: alg, Sig: sig})
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(attestationObject{
		Format:      AttestationFormatPacked,
		Statement:   stmt,
		AuthDataRaw: authData,
	})
}
