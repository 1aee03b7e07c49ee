package authenticator

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-trust-keeper/internal/config"
	"github.com/MKhiriev/go-trust-keeper/internal/crypto"
	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/internal/store"
	"github.com/MKhiriev/go-trust-keeper/internal/webauthn"
	"github.com/MKhiriev/go-trust-keeper/models"
)

const transportInternal = "internal"

// Authenticator creates and exercises device-bound credentials.
type Authenticator struct {
	keys   store.AuthenticatorKeyRepository
	rpID   string
	origin string
	random io.Reader

	logger *logger.Logger
}

// New returns an authenticator bound to the relying party in rp.
func New(keys store.AuthenticatorKeyRepository, rp config.ClientRelyingParty, logger *logger.Logger) *Authenticator {
	return &Authenticator{
		keys:   keys,
		rpID:   rp.ID,
		origin: rp.Origin,
		random: rand.Reader,
		logger: logger,
	}
}

// Create answers registration options with a fresh key pair. The private key
// is stored before the proof is returned.
func (a *Authenticator) Create(ctx context.Context, opts models.RegistrationOptions) (models.RegistrationProof, error) {
	if opts.RelyingParty.ID != a.rpID {
		return models.RegistrationProof{}, fmt.Errorf("%w: %q", ErrRPMismatch, opts.RelyingParty.ID)
	}
	if !offersES256(opts.PubKeyCredParams) {
		return models.RegistrationProof{}, ErrAlgorithmNotOffered
	}
	if err := a.checkExcluded(ctx, opts.ExcludeCredentials); err != nil {
		return models.RegistrationProof{}, err
	}

	priv, err := ecdsa.GenerateKey(elliptic.P256(), a.random)
	if err != nil {
		return models.RegistrationProof{}, fmt.Errorf("generate key: %w", err)
	}
	cose, err := webauthn.EncodeES256PublicKey(&priv.PublicKey)
	if err != nil {
		return models.RegistrationProof{}, err
	}

	rawID := make([]byte, crypto.ChallengeSize)
	if _, err = io.ReadFull(a.random, rawID); err != nil {
		return models.RegistrationProof{}, fmt.Errorf("credential id: %w", err)
	}
	credentialID := models.Base64URL(rawID).String()

	clientData, err := a.clientData(models.ClientDataTypeCreate, opts.Challenge)
	if err != nil {
		return models.RegistrationProof{}, err
	}

	authData := webauthn.AuthenticatorData{
		RPIDHash: webauthn.RPIDHash(a.rpID),
		Flags:    webauthn.FlagUserPresent | webauthn.FlagUserVerified,
		Credential: &webauthn.AttestedCredentialData{
			CredentialID: rawID,
			PublicKey:    cose,
		},
	}
	attestation, err := webauthn.MarshalNoneAttestation(authData.Marshal())
	if err != nil {
		return models.RegistrationProof{}, fmt.Errorf("attestation: %w", err)
	}

	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return models.RegistrationProof{}, fmt.Errorf("marshal private key: %w", err)
	}
	if err = a.keys.SaveKey(ctx, models.AuthenticatorKey{
		CredentialID: credentialID,
		RPID:         a.rpID,
		UserHandle:   string(opts.User.ID),
		PrivateKey:   der,
	}); err != nil {
		return models.RegistrationProof{}, fmt.Errorf("save key: %w", err)
	}

	a.logger.Info().Str("credential_id", credentialID).Msg("credential created")

	return models.RegistrationProof{
		ID:    credentialID,
		RawID: rawID,
		Type:  models.PublicKeyCredentialType,
		Response: models.AttestationResponse{
			ClientDataJSON:    clientData,
			AttestationObject: attestation,
			Transports:        []string{transportInternal},
		},
	}, nil
}

// Get signs an assertion with the first allowed credential held on this
// device. The stored counter is bumped before signing.
func (a *Authenticator) Get(ctx context.Context, opts models.AuthenticationOptions) (models.AssertionProof, error) {
	if opts.RPID != a.rpID {
		return models.AssertionProof{}, fmt.Errorf("%w: %q", ErrRPMismatch, opts.RPID)
	}

	key, err := a.findAllowed(ctx, opts.AllowCredentials)
	if err != nil {
		return models.AssertionProof{}, err
	}

	parsed, err := x509.ParsePKCS8PrivateKey(key.PrivateKey)
	if err != nil {
		return models.AssertionProof{}, fmt.Errorf("parse private key: %w", err)
	}
	priv, ok := parsed.(*ecdsa.PrivateKey)
	if !ok {
		return models.AssertionProof{}, fmt.Errorf("unexpected key type %T", parsed)
	}

	counter, err := a.keys.IncrementSignCount(ctx, key.CredentialID)
	if err != nil {
		return models.AssertionProof{}, fmt.Errorf("advance counter: %w", err)
	}

	clientData, err := a.clientData(models.ClientDataTypeGet, opts.Challenge)
	if err != nil {
		return models.AssertionProof{}, err
	}
	authData := webauthn.AuthenticatorData{
		RPIDHash:  webauthn.RPIDHash(a.rpID),
		Flags:     webauthn.FlagUserPresent | webauthn.FlagUserVerified,
		SignCount: counter,
	}.Marshal()

	digest := sha256.Sum256(webauthn.SignedData(authData, clientData))
	sig, err := ecdsa.SignASN1(a.random, priv, digest[:])
	if err != nil {
		return models.AssertionProof{}, fmt.Errorf("sign assertion: %w", err)
	}

	rawID, err := decodeID(key.CredentialID)
	if err != nil {
		return models.AssertionProof{}, err
	}

	return models.AssertionProof{
		ID:    key.CredentialID,
		RawID: rawID,
		Type:  models.PublicKeyCredentialType,
		Response: models.AssertionResponse{
			ClientDataJSON:    clientData,
			AuthenticatorData: authData,
			Signature:         sig,
			UserHandle:        models.Base64URL(key.UserHandle),
		},
	}, nil
}

// HasCredential reports whether any allowed credential lives on this device.
func (a *Authenticator) HasCredential(ctx context.Context, allowed []models.CredentialDescriptor) (bool, error) {
	_, err := a.findAllowed(ctx, allowed)
	if errors.Is(err, ErrNoMatchingCredential) {
		return false, nil
	}
	return err == nil, err
}

func (a *Authenticator) findAllowed(ctx context.Context, allowed []models.CredentialDescriptor) (models.AuthenticatorKey, error) {
	for _, d := range allowed {
		key, err := a.keys.GetKey(ctx, d.ID)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return models.AuthenticatorKey{}, fmt.Errorf("get key: %w", err)
		}
		if key.RPID != a.rpID {
			continue
		}
		return key, nil
	}
	return models.AuthenticatorKey{}, ErrNoMatchingCredential
}

func (a *Authenticator) checkExcluded(ctx context.Context, excluded []models.CredentialDescriptor) error {
	for _, d := range excluded {
		_, err := a.keys.GetKey(ctx, d.ID)
		if err == nil {
			return ErrCredentialExcluded
		}
		if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("get key: %w", err)
		}
	}
	return nil
}

func (a *Authenticator) clientData(typ, challenge string) ([]byte, error) {
	raw, err := json.Marshal(models.CollectedClientData{
		Type:      typ,
		Challenge: challenge,
		Origin:    a.origin,
	})
	if err != nil {
		return nil, fmt.Errorf("client data: %w", err)
	}
	return raw, nil
}

func offersES256(params []models.CredentialParameter) bool {
	for _, p := range params {
		if p.Type == models.PublicKeyCredentialType && p.Alg == models.COSEAlgES256 {
			return true
		}
	}
	return false
}

func decodeID(id string) (models.Base64URL, error) {
	raw, err := base64.RawURLEncoding.DecodeString(id)
	if err != nil {
		return nil, fmt.Errorf("credential id: %w", err)
	}
	return raw, nil
}
