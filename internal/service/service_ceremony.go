package service

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"crypto/sha256"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-trust-keeper/internal/config"
	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/models"
	"github.com/go-webauthn/webauthn/protocol"
	"github.com/go-webauthn/webauthn/protocol/webauthncose"
)

// ceremonyState is tracked per call for diagnostics only. A failed ceremony
// is never resumed; the client starts over with a fresh challenge.
type ceremonyState string

const (
	stateInitiated     ceremonyState = "initiated"
	stateAwaitingProof ceremonyState = "awaiting_proof"
	stateVerified      ceremonyState = "verified"
	stateFailed        ceremonyState = "failed"
)

const userVerificationRequired = "required"

type ceremonyService struct {
	identity    IdentityService
	ledger      ChallengeLedger
	credentials CredentialRegistry

	rp      config.RelyingParty
	timeout time.Duration
	now     func() time.Time

	logger *logger.Logger
}

// NewCeremonyService wires the ceremony engine over the ledger, the registry
// and the identity store.
func NewCeremonyService(identity IdentityService, ledger ChallengeLedger, credentials CredentialRegistry, rp config.RelyingParty, cfg config.Ceremony, logger *logger.Logger) CeremonyService {
	return &ceremonyService{
		identity:    identity,
		ledger:      ledger,
		credentials: credentials,
		rp:          rp,
		timeout:     cfg.Timeout,
		now:         time.Now,
		logger:      logger,
	}
}

// BeginRegistration requires an authenticated subject. The exclusion list
// holds the subject's existing credentials.
func (c *ceremonyService) BeginRegistration(ctx context.Context, subjectID string) (models.RegistrationOptions, error) {
	log := logger.FromContext(ctx).WithSubject(subjectID)
	log.Debug().Str("state", string(stateInitiated)).Msg("registration ceremony requested")

	subject, err := c.identity.FindByID(ctx, subjectID)
	if err != nil {
		return models.RegistrationOptions{}, err
	}

	existing, err := c.credentials.ListBySubject(ctx, subjectID)
	if err != nil {
		return models.RegistrationOptions{}, fmt.Errorf("list credentials: %w", err)
	}

	challenge, err := c.ledger.Issue(ctx, subjectID, models.CeremonyRegistration)
	if err != nil {
		return models.RegistrationOptions{}, err
	}
	log.Debug().Str("state", string(stateAwaitingProof)).Msg("registration ceremony started")

	displayName := subject.Name
	if displayName == "" {
		displayName = subject.Email
	}

	return models.RegistrationOptions{
		RelyingParty: models.RelyingParty{ID: c.rp.ID, Name: c.rp.Name},
		User: models.UserEntity{
			ID:          models.Base64URL(subject.ID),
			Name:        subject.Email,
			DisplayName: displayName,
		},
		Challenge: challenge.Value,
		PubKeyCredParams: []models.CredentialParameter{
			{Type: models.PublicKeyCredentialType, Alg: models.COSEAlgES256},
			{Type: models.PublicKeyCredentialType, Alg: models.COSEAlgEdDSA},
		},
		Timeout:            c.timeout.Milliseconds(),
		ExcludeCredentials: descriptors(existing),
		AuthenticatorSelection: models.AuthenticatorSelection{
			ResidentKey:      "preferred",
			UserVerification: userVerificationRequired,
		},
		Attestation: string(protocol.PreferNoAttestation),
	}, nil
}

// CompleteRegistration verifies the attestation and stores the credential.
// Every failure is a *CeremonyError; the cause is only logged.
func (c *ceremonyService) CompleteRegistration(ctx context.Context, subjectID string, proof models.RegistrationProof) (models.Credential, error) {
	kind := models.CeremonyRegistration

	if err := checkProofID(proof.Type, proof.ID, proof.RawID); err != nil {
		return models.Credential{}, c.fail(ctx, kind, subjectID, err)
	}

	parsed, err := protocol.CredentialCreationResponse{
		PublicKeyCredential: publicKeyCredential(proof.ID, proof.Type, proof.RawID),
		AttestationResponse: protocol.AuthenticatorAttestationResponse{
			AuthenticatorResponse: protocol.AuthenticatorResponse{ClientDataJSON: protocol.URLEncodedBase64(proof.Response.ClientDataJSON)},
			AttestationObject:     protocol.URLEncodedBase64(proof.Response.AttestationObject),
			Transports:            proof.Response.Transports,
		},
	}.Parse()
	if err != nil {
		return models.Credential{}, c.fail(ctx, kind, subjectID, fmt.Errorf("%w: %w", ErrProofMalformed, err))
	}
	clientData := parsed.Response.CollectedClientData
	if err = checkCeremonyType(clientData, protocol.CreateCeremony); err != nil {
		return models.Credential{}, c.fail(ctx, kind, subjectID, err)
	}

	consumed, err := c.ledger.Consume(ctx, subjectID, kind, clientData.Challenge)
	if err != nil {
		return models.Credential{}, c.fail(ctx, kind, subjectID, err)
	}

	if err = c.checkClientData(clientData, consumed.Value, protocol.CreateCeremony); err != nil {
		return models.Credential{}, c.fail(ctx, kind, subjectID, err)
	}

	attestation := parsed.Response.AttestationObject
	authData := attestation.AuthData
	if err = c.checkAuthenticatorData(authData); err != nil {
		return models.Credential{}, c.fail(ctx, kind, subjectID, err)
	}

	credentialID := models.Base64URL(authData.AttData.CredentialID).String()
	if credentialID != proof.ID {
		return models.Credential{}, c.fail(ctx, kind, subjectID, fmt.Errorf("%w: credential id differs from attested one", ErrProofMalformed))
	}

	if err = checkCredentialKey(authData.AttData.CredentialPublicKey); err != nil {
		return models.Credential{}, c.fail(ctx, kind, subjectID, err)
	}

	switch protocol.AttestationFormat(attestation.Format) {
	case protocol.AttestationFormatNone, protocol.AttestationFormatPacked:
	default:
		return models.Credential{}, c.fail(ctx, kind, subjectID, fmt.Errorf("%w: attestation format %q", ErrProofMalformed, attestation.Format))
	}

	clientDataHash := sha256.Sum256(proof.Response.ClientDataJSON)
	if err = attestation.VerifyAttestation(clientDataHash[:], nil); err != nil {
		return models.Credential{}, c.fail(ctx, kind, subjectID, fmt.Errorf("%w: attestation: %w", ErrSignatureInvalid, err))
	}

	credential, err := c.credentials.Register(ctx, models.Credential{
		CredentialID: credentialID,
		SubjectID:    subjectID,
		PublicKey:    authData.AttData.CredentialPublicKey,
		SignCount:    authData.Counter,
		Transports:   proof.Response.Transports,
		Label:        proof.Label,
		CreatedAt:    c.now().UTC(),
	})
	if err != nil {
		return models.Credential{}, c.fail(ctx, kind, subjectID, err)
	}

	logger.FromContext(ctx).WithSubject(subjectID).Info().
		Str("state", string(stateVerified)).
		Str("credential_id", credential.CredentialID).
		Str("attestation", attestation.Format).
		Msg("credential registered")

	return credential, nil
}

// BeginAuthentication resolves the claimed subject. A subject without
// credentials, or an email nobody owns, ends the ceremony with
// ErrNoCredentialsEnrolled before any challenge is issued.
func (c *ceremonyService) BeginAuthentication(ctx context.Context, claim models.AuthenticationClaim) (models.AuthenticationOptions, error) {
	subjectID := claim.SubjectID
	if subjectID == "" {
		if claim.Email == "" {
			return models.AuthenticationOptions{}, ErrInvalidDataProvided
		}
		subject, err := c.identity.FindByEmail(ctx, claim.Email)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return models.AuthenticationOptions{}, ErrNoCredentialsEnrolled
			}
			return models.AuthenticationOptions{}, err
		}
		subjectID = subject.ID
	}

	log := logger.FromContext(ctx).WithSubject(subjectID)
	log.Debug().Str("state", string(stateInitiated)).Msg("authentication ceremony requested")

	enrolled, err := c.credentials.ListBySubject(ctx, subjectID)
	if err != nil {
		return models.AuthenticationOptions{}, fmt.Errorf("list credentials: %w", err)
	}
	if len(enrolled) == 0 {
		return models.AuthenticationOptions{}, ErrNoCredentialsEnrolled
	}

	challenge, err := c.ledger.Issue(ctx, subjectID, models.CeremonyAuthentication)
	if err != nil {
		return models.AuthenticationOptions{}, err
	}
	log.Debug().Str("state", string(stateAwaitingProof)).Msg("authentication ceremony started")

	return models.AuthenticationOptions{
		Challenge:        challenge.Value,
		Timeout:          c.timeout.Milliseconds(),
		RPID:             c.rp.ID,
		AllowCredentials: descriptors(enrolled),
		UserVerification: userVerificationRequired,
	}, nil
}

// CompleteAuthentication verifies an assertion and advances the credential's
// counter. It returns the subject the credential belongs to.
func (c *ceremonyService) CompleteAuthentication(ctx context.Context, proof models.AssertionProof) (string, error) {
	kind := models.CeremonyAuthentication

	if err := checkProofID(proof.Type, proof.ID, proof.RawID); err != nil {
		return "", c.fail(ctx, kind, "", err)
	}

	credential, err := c.credentials.Get(ctx, proof.ID)
	if err != nil {
		return "", c.fail(ctx, kind, "", fmt.Errorf("%w: credential lookup: %w", ErrProofMalformed, err))
	}
	subjectID := credential.SubjectID

	parsed, err := protocol.CredentialAssertionResponse{
		PublicKeyCredential: publicKeyCredential(proof.ID, proof.Type, proof.RawID),
		AssertionResponse: protocol.AuthenticatorAssertionResponse{
			AuthenticatorResponse: protocol.AuthenticatorResponse{ClientDataJSON: protocol.URLEncodedBase64(proof.Response.ClientDataJSON)},
			AuthenticatorData:     protocol.URLEncodedBase64(proof.Response.AuthenticatorData),
			Signature:             protocol.URLEncodedBase64(proof.Response.Signature),
			UserHandle:            protocol.URLEncodedBase64(proof.Response.UserHandle),
		},
	}.Parse()
	if err != nil {
		return "", c.fail(ctx, kind, subjectID, fmt.Errorf("%w: %w", ErrProofMalformed, err))
	}
	clientData := parsed.Response.CollectedClientData
	if err = checkCeremonyType(clientData, protocol.AssertCeremony); err != nil {
		return "", c.fail(ctx, kind, subjectID, err)
	}

	consumed, err := c.ledger.Consume(ctx, subjectID, kind, clientData.Challenge)
	if err != nil {
		return "", c.fail(ctx, kind, subjectID, err)
	}

	if err = c.checkClientData(clientData, consumed.Value, protocol.AssertCeremony); err != nil {
		return "", c.fail(ctx, kind, subjectID, err)
	}

	authData := parsed.Response.AuthenticatorData
	if err = c.checkAuthenticatorData(authData); err != nil {
		return "", c.fail(ctx, kind, subjectID, err)
	}

	if len(parsed.Response.UserHandle) > 0 && string(parsed.Response.UserHandle) != subjectID {
		return "", c.fail(ctx, kind, subjectID, fmt.Errorf("%w: user handle does not own credential", ErrProofMalformed))
	}

	key, err := webauthncose.ParsePublicKey(credential.PublicKey)
	if err != nil {
		return "", c.fail(ctx, kind, subjectID, fmt.Errorf("stored public key: %w", err))
	}
	clientDataHash := sha256.Sum256(proof.Response.ClientDataJSON)
	signed := append(append([]byte(nil), proof.Response.AuthenticatorData...), clientDataHash[:]...)
	signatureValid, _ := webauthncose.VerifySignature(key, signed, parsed.Response.Signature)

	if err = c.credentials.VerifyAndAdvance(ctx, credential.CredentialID, authData.Counter, signatureValid); err != nil {
		return "", c.fail(ctx, kind, subjectID, err)
	}

	logger.FromContext(ctx).WithSubject(subjectID).Info().
		Str("state", string(stateVerified)).
		Str("credential_id", credential.CredentialID).
		Msg("authentication succeeded")

	return subjectID, nil
}

func checkCeremonyType(clientData protocol.CollectedClientData, ceremony protocol.CeremonyType) error {
	if clientData.Type != ceremony {
		return fmt.Errorf("%w: client data type %q", ErrProofMalformed, clientData.Type)
	}
	if clientData.Challenge == "" {
		return fmt.Errorf("%w: no challenge", ErrProofMalformed)
	}
	return nil
}

// checkClientData runs after the challenge was consumed. The origin must
// match exactly; no wildcard or suffix matching.
func (c *ceremonyService) checkClientData(clientData protocol.CollectedClientData, storedChallenge string, ceremony protocol.CeremonyType) error {
	if clientData.CrossOrigin {
		return fmt.Errorf("%w: cross-origin request", ErrOriginMismatch)
	}
	err := clientData.Verify(storedChallenge, ceremony, []string{c.rp.Origin}, nil, protocol.TopOriginIgnoreVerificationMode)
	if err != nil {
		return fmt.Errorf("%w: origin %q: %w", ErrOriginMismatch, clientData.Origin, err)
	}
	return nil
}

func (c *ceremonyService) checkAuthenticatorData(authData protocol.AuthenticatorData) error {
	rpIDHash := sha256.Sum256([]byte(c.rp.ID))
	if !bytes.Equal(authData.RPIDHash, rpIDHash[:]) {
		return fmt.Errorf("%w: rpIdHash", ErrOriginMismatch)
	}
	if !authData.Flags.UserPresent() || !authData.Flags.UserVerified() {
		return ErrUserNotPresent
	}
	return nil
}

// checkCredentialKey accepts ES256 over P-256 and EdDSA keys only.
func checkCredentialKey(raw []byte) error {
	key, err := webauthncose.ParsePublicKey(raw)
	if err != nil {
		return fmt.Errorf("%w: credential public key: %w", ErrProofMalformed, err)
	}
	switch k := key.(type) {
	case webauthncose.EC2PublicKeyData:
		if k.Algorithm == int64(webauthncose.AlgES256) && k.Curve == int64(webauthncose.P256) &&
			len(k.XCoord) == 32 && len(k.YCoord) == 32 {
			return nil
		}
	case webauthncose.OKPPublicKeyData:
		if k.Algorithm == int64(webauthncose.AlgEdDSA) && len(k.XCoord) == ed25519.PublicKeySize {
			return nil
		}
	}
	return fmt.Errorf("%w: unsupported credential public key", ErrProofMalformed)
}

func publicKeyCredential(id, credentialType string, rawID models.Base64URL) protocol.PublicKeyCredential {
	return protocol.PublicKeyCredential{
		Credential: protocol.Credential{ID: id, Type: credentialType},
		RawID:      protocol.URLEncodedBase64(rawID),
	}
}

// fail logs the internal cause and returns the opaque ceremony error.
func (c *ceremonyService) fail(ctx context.Context, kind models.CeremonyKind, subjectID string, cause error) error {
	logger.FromContext(ctx).Warn().
		Err(cause).
		Str("subject_id", subjectID).
		Str("kind", kind.String()).
		Str("state", string(stateFailed)).
		Msg("ceremony failed")

	return newCeremonyError(kind, cause)
}

func checkProofID(credentialType, id string, rawID models.Base64URL) error {
	if credentialType != models.PublicKeyCredentialType {
		return fmt.Errorf("%w: credential type %q", ErrProofMalformed, credentialType)
	}
	if id == "" {
		return fmt.Errorf("%w: empty credential id", ErrProofMalformed)
	}
	if len(rawID) > 0 && rawID.String() != id {
		return fmt.Errorf("%w: id and rawId differ", ErrProofMalformed)
	}
	return nil
}

func descriptors(credentials []models.Credential) []models.CredentialDescriptor {
	out := make([]models.CredentialDescriptor, 0, len(credentials))
	for _, c := range credentials {
		out = append(out, models.CredentialDescriptor{
			Type:       models.PublicKeyCredentialType,
			ID:         c.CredentialID,
			Transports: c.Transports,
		})
	}
	return out
}
