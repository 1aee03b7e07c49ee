package webauthn

import (
	"crypto/sha256"
	"encoding/binary"
)

// Authenticator data flags.
const (
	FlagUserPresent            byte = 0x01
	FlagUserVerified           byte = 0x04
	FlagAttestedCredentialData byte = 0x40
	FlagExtensionData          byte = 0x80
)

const (
	rpIDHashLen    = 32
	minAuthDataLen = rpIDHashLen + 1 + 4
	aaguidLen      = 16
)

// AttestedCredentialData is present in authenticator data produced by a
// registration.
type AttestedCredentialData struct {
	AAGUID       [aaguidLen]byte
	CredentialID []byte
	// PublicKey is the CBOR encoded COSE_Key, written verbatim.
	PublicKey []byte
}

// AuthenticatorData is the authenticatorData structure before encoding.
type AuthenticatorData struct {
	RPIDHash   [rpIDHashLen]byte
	Flags      byte
	SignCount  uint32
	Credential *AttestedCredentialData
}

// RPIDHash returns SHA-256 of the relying party id.
func RPIDHash(rpID string) [rpIDHashLen]byte {
	return sha256.Sum256([]byte(rpID))
}

// Marshal encodes d into its wire form. The attested credential flag is set
// from the presence of d.Credential; extensions are never written.
func (d AuthenticatorData) Marshal() []byte {
	flags := d.Flags &^ FlagAttestedCredentialData &^ FlagExtensionData
	if d.Credential != nil {
		flags |= FlagAttestedCredentialData
	}

	out := make([]byte, 0, minAuthDataLen)
	out = append(out, d.RPIDHash[:]...)
	out = append(out, flags)
	out = binary.BigEndian.AppendUint32(out, d.SignCount)
	if d.Credential != nil {
		out = append(out, d.Credential.AAGUID[:]...)
		out = binary.BigEndian.AppendUint16(out, uint16(len(d.Credential.CredentialID)))
		out = append(out, d.Credential.CredentialID...)
		out = append(out, d.Credential.PublicKey...)
	}
	return out
}
