// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/base64"
	"encoding/json"
	"strings"
)

// PublicKeyCredentialType is the only credential type defined by WebAuthn.
const PublicKeyCredentialType = "public-key"

// COSE algorithm identifiers accepted for new credentials.
const (
	COSEAlgES256 int64 = -7
	COSEAlgEdDSA int64 = -8
)

// Base64URL is a byte slice that travels as unpadded base64url in JSON,
// which is how browsers serialise WebAuthn binary members.
type Base64URL []byte

// MarshalJSON implements json.Marshaler.
func (b Base64URL) MarshalJSON() ([]byte, error) {
	return json.Marshal(base64.RawURLEncoding.EncodeToString(b))
}

// UnmarshalJSON implements json.Unmarshaler. Both padded and unpadded input
// is accepted.
func (b *Base64URL) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}

// String returns the unpadded base64url form.
func (b Base64URL) String() string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// RelyingParty identifies the server a credential is bound to.
type RelyingParty struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserEntity is the WebAuthn user description sent in registration options.
type UserEntity struct {
	ID          Base64URL `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"displayName"`
}

// CredentialParameter advertises one acceptable signature algorithm.
type CredentialParameter struct {
	Type string `json:"type"`
	Alg  int64  `json:"alg"`
}

// CredentialDescriptor references an existing credential in exclusion and
// allow lists.
type CredentialDescriptor struct {
	Type       string   `json:"type"`
	ID         string   `json:"id"`
	Transports []string `json:"transports,omitempty"`
}

// AuthenticatorSelection expresses authenticator requirements.
type AuthenticatorSelection struct {
	ResidentKey      string `json:"residentKey,omitempty"`
	UserVerification string `json:"userVerification,omitempty"`
}

// RegistrationOptions is the challenge payload for the registration
// ceremony (PublicKeyCredentialCreationOptions).
type RegistrationOptions struct {
	RelyingParty           RelyingParty           `json:"rp"`
	User                   UserEntity             `json:"user"`
	Challenge              string                 `json:"challenge"`
	PubKeyCredParams       []CredentialParameter  `json:"pubKeyCredParams"`
	Timeout                int64                  `json:"timeout"`
	ExcludeCredentials     []CredentialDescriptor `json:"excludeCredentials"`
	AuthenticatorSelection AuthenticatorSelection `json:"authenticatorSelection"`
	Attestation            string                 `json:"attestation"`
}

// AuthenticationOptions is the challenge payload for the authentication
// ceremony (PublicKeyCredentialRequestOptions).
type AuthenticationOptions struct {
	Challenge        string                 `json:"challenge"`
	Timeout          int64                  `json:"timeout"`
	RPID             string                 `json:"rpId"`
	AllowCredentials []CredentialDescriptor `json:"allowCredentials"`
	UserVerification string                 `json:"userVerification"`
}

// AttestationResponse is the authenticator response of a registration.
type AttestationResponse struct {
	ClientDataJSON    Base64URL `json:"clientDataJSON"`
	AttestationObject Base64URL `json:"attestationObject"`
	Transports        []string  `json:"transports,omitempty"`
}

// RegistrationProof is what the client returns to complete a registration.
type RegistrationProof struct {
	ID       string              `json:"id"`
	RawID    Base64URL           `json:"rawId"`
	Type     string              `json:"type"`
	Response AttestationResponse `json:"response"`
	// Label is an optional human name for the new credential.
	Label string `json:"label,omitempty"`
}

// AssertionResponse is the authenticator response of an authentication.
type AssertionResponse struct {
	ClientDataJSON    Base64URL `json:"clientDataJSON"`
	AuthenticatorData Base64URL `json:"authenticatorData"`
	Signature         Base64URL `json:"signature"`
	UserHandle        Base64URL `json:"userHandle,omitempty"`
}

// AssertionProof is what the client returns to complete an authentication.
type AssertionProof struct {
	ID       string            `json:"id"`
	RawID    Base64URL         `json:"rawId"`
	Type     string            `json:"type"`
	Response AssertionResponse `json:"response"`
}

// CollectedClientData is the parsed clientDataJSON.
type CollectedClientData struct {
	Type        string `json:"type"`
	Challenge   string `json:"challenge"`
	Origin      string `json:"origin"`
	CrossOrigin bool   `json:"crossOrigin,omitempty"`
}

// Client data types.
const (
	ClientDataTypeCreate = "webauthn.create"
	ClientDataTypeGet    = "webauthn.get"
)

// AuthenticationClaim names the subject an authentication ceremony is for.
// SubjectID comes from an existing session; Email is used when there is none.
type AuthenticationClaim struct {
	SubjectID string `json:"-"`
	Email     string `json:"email,omitempty"`
}

// AuthenticationResult is returned once an assertion was verified.
type AuthenticationResult struct {
	SubjectID string `json:"subject_id"`
}
