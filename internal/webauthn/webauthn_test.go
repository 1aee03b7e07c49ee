package webauthn

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"testing"

	"github.com/MKhiriev/go-trust-keeper/models"
	"github.com/go-webauthn/webauthn/protocol"
	"github.com/go-webauthn/webauthn/protocol/webauthncbor"
	"github.com/go-webauthn/webauthn/protocol/webauthncose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newES256(t *testing.T) (*ecdsa.PrivateKey, []byte) {
	t.Helper()
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	cose, err := EncodeES256PublicKey(&priv.PublicKey)
	require.NoError(t, err)
	return priv, cose
}

func registrationAuthData(cose []byte, flags byte) AuthenticatorData {
	return AuthenticatorData{
		RPIDHash: RPIDHash("example.com"),
		Flags:    flags,
		Credential: &AttestedCredentialData{
			CredentialID: []byte("credential-1"),
			PublicKey:    cose,
		},
	}
}

// decodeAttestation разбирает объект аттестации так же, как это делает сервер.
func decodeAttestation(t *testing.T, raw []byte) protocol.AttestationObject {
	t.Helper()
	var obj protocol.AttestationObject
	require.NoError(t, webauthncbor.Unmarshal(raw, &obj))
	require.NoError(t, obj.AuthData.Unmarshal(obj.RawAuthData))
	return obj
}

func TestAuthenticatorData_Registration(t *testing.T) {
	_, cose := newES256(t)
	data := registrationAuthData(cose, FlagUserPresent|FlagUserVerified)
	data.SignCount = 42

	var parsed protocol.AuthenticatorData
	require.NoError(t, parsed.Unmarshal(data.Marshal()))

	rpIDHash := RPIDHash("example.com")
	assert.Equal(t, rpIDHash[:], parsed.RPIDHash)
	assert.True(t, parsed.Flags.UserPresent())
	assert.True(t, parsed.Flags.UserVerified())
	assert.True(t, parsed.Flags.HasAttestedCredentialData())
	assert.Equal(t, uint32(42), parsed.Counter)
	assert.Equal(t, []byte("credential-1"), parsed.AttData.CredentialID)
	assert.Equal(t, cose, parsed.AttData.CredentialPublicKey)
}

func TestAuthenticatorData_AssertionShape(t *testing.T) {
	data := AuthenticatorData{RPIDHash: RPIDHash("example.com"), Flags: FlagUserPresent | FlagExtensionData, SignCount: 7}
	raw := data.Marshal()
	assert.Len(t, raw, minAuthDataLen)

	var parsed protocol.AuthenticatorData
	require.NoError(t, parsed.Unmarshal(raw))
	assert.False(t, parsed.Flags.HasAttestedCredentialData())
	assert.False(t, parsed.Flags.HasExtensions(), "extension flag is never written")
	assert.False(t, parsed.Flags.UserVerified())
	assert.Equal(t, uint32(7), parsed.Counter)
}

func TestEncodeES256PublicKey(t *testing.T) {
	priv, cose := newES256(t)

	key, err := webauthncose.ParsePublicKey(cose)
	require.NoError(t, err)
	ec2, ok := key.(webauthncose.EC2PublicKeyData)
	require.True(t, ok)
	assert.Equal(t, models.COSEAlgES256, ec2.Algorithm)
	assert.Equal(t, int64(webauthncose.P256), ec2.Curve)

	msg := []byte("signed message")
	digest := sha256.Sum256(msg)
	sig, err := ecdsa.SignASN1(rand.Reader, priv, digest[:])
	require.NoError(t, err)

	valid, err := webauthncose.VerifySignature(key, msg, sig)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, _ = webauthncose.VerifySignature(key, []byte("other message"), sig)
	assert.False(t, valid)
}

func TestEncodeEdDSAPublicKey(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	cose, err := EncodeEdDSAPublicKey(pub)
	require.NoError(t, err)

	key, err := webauthncose.ParsePublicKey(cose)
	require.NoError(t, err)
	okp, ok := key.(webauthncose.OKPPublicKeyData)
	require.True(t, ok)
	assert.Equal(t, models.COSEAlgEdDSA, okp.Algorithm)

	msg := []byte("signed message")
	valid, err := webauthncose.VerifySignature(key, msg, ed25519.Sign(priv, msg))
	require.NoError(t, err)
	assert.True(t, valid)

	_, err = EncodeEdDSAPublicKey(pub[:16])
	assert.ErrorIs(t, err, ErrUnsupportedKey)
}

func TestMarshalNoneAttestation(t *testing.T) {
	_, cose := newES256(t)
	authData := registrationAuthData(cose, FlagUserPresent).Marshal()

	raw, err := MarshalNoneAttestation(authData)
	require.NoError(t, err)

	obj := decodeAttestation(t, raw)
	assert.Equal(t, AttestationFormatNone, obj.Format)
	assert.Empty(t, obj.AttStatement)
	assert.Equal(t, authData, obj.RawAuthData)
	assert.NoError(t, obj.VerifyAttestation(ClientDataHash([]byte("{}")), nil))
}

func TestMarshalPackedSelfAttestation(t *testing.T) {
	priv, cose := newES256(t)
	authData := registrationAuthData(cose, FlagUserPresent).Marshal()
	clientDataHash := ClientDataHash([]byte(`{"type":"webauthn.create"}`))

	digest := sha256.Sum256(append(append([]byte(nil), authData...), clientDataHash...))
	sig, err := ecdsa.SignASN1(rand.Reader, priv, digest[:])
	require.NoError(t, err)

	raw, err := MarshalPackedSelfAttestation(authData, models.COSEAlgES256, sig)
	require.NoError(t, err)

	obj := decodeAttestation(t, raw)
	assert.Equal(t, AttestationFormatPacked, obj.Format)
	assert.NoError(t, obj.VerifyAttestation(clientDataHash, nil))
	assert.Error(t, obj.VerifyAttestation(ClientDataHash([]byte("tampered")), nil))
}

func TestSignedData(t *testing.T) {
	authData := []byte{1, 2, 3}
	clientData := []byte("client")
	sum := sha256.Sum256(clientData)

	assert.Equal(t, append([]byte{1, 2, 3}, sum[:]...), SignedData(authData, clientData))
}
