// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound transports of go-trust-keeper.
//
// [ServerAdapter] is the client's view of the server API; the package ships an
// HTTP/REST implementation ([NewHTTPServerAdapter]) built on resty. [Mailer]
// is the server's outbound mail transport used for sign-in links, with a
// relay implementation and a console implementation for local development.
//
// HTTP status codes are mapped to the sentinel errors in errors.go by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-trust-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// go-trust-keeper server. Implementations handle serialisation, the bearer
// token and the mapping of transport errors to the sentinels of this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when signed out.
	Token() string

	// RequestSignInLink asks the server to mail a sign-in link.
	RequestSignInLink(ctx context.Context, req models.SignInRequest) error

	// VerifySignInLink redeems a link token. On success the returned session
	// token is also stored via SetToken.
	VerifySignInLink(ctx context.Context, req models.SignInVerification) (models.Session, error)

	// BeginRegistration fetches creation options for the signed-in subject.
	BeginRegistration(ctx context.Context) (models.RegistrationOptions, error)

	// CompleteRegistration sends the attestation and returns the stored
	// credential.
	CompleteRegistration(ctx context.Context, proof models.RegistrationProof) (models.Credential, error)

	// BeginAuthentication fetches request options. An unenrolled subject
	// yields a wrapped [ErrNotFound].
	BeginAuthentication(ctx context.Context, claim models.AuthenticationClaim) (models.AuthenticationOptions, error)

	// CompleteAuthentication sends the assertion. On success the returned
	// session token is also stored via SetToken.
	CompleteAuthentication(ctx context.Context, proof models.AssertionProof) (models.Session, error)

	// PasskeyStatus reports how many credentials the subject has enrolled.
	PasskeyStatus(ctx context.Context) (models.PasskeyStatus, error)

	// Me returns the signed-in subject's decrypted profile.
	Me(ctx context.Context) (models.Subject, error)
}

// Mailer delivers sign-in links.
type Mailer interface {
	SendSignInLink(ctx context.Context, to, link string) error
}
