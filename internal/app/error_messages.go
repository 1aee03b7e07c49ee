// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-trust-keeper server handlers and the client adapter.
//
// All Msg* constants are human-readable message strings written into the
// "error" member of JSON response bodies. The client maps them back to
// service errors, so the wording is part of the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoSubjectIDProvided is returned when a handler requires a session but
	// the request context carries no subject id.
	MsgNoSubjectIDProvided = "no subject ID provided"

	// MsgRegistrationFailed is the only detail ever returned for a failed
	// registration ceremony.
	MsgRegistrationFailed = "registration failed"

	// MsgAuthenticationFailed is the only detail ever returned for a failed
	// authentication ceremony.
	MsgAuthenticationFailed = "authentication failed"

	// MsgNoCredentialEnrolled tells the caller to fall back to registration.
	MsgNoCredentialEnrolled = "no credential enrolled"

	// MsgSubjectAlreadyExists is returned when an email change collides with
	// another subject.
	MsgSubjectAlreadyExists = "subject already exists"

	// MsgSignInLinkInvalid is returned for unknown, used or expired links.
	MsgSignInLinkInvalid = "sign-in link is invalid or expired"

	// MsgMailDeliveryFailed is returned when the mail relay rejected the
	// sign-in message.
	MsgMailDeliveryFailed = "sign-in link could not be delivered"

	// MsgNotFound is returned when the requested subject does not exist.
	MsgNotFound = "not found"
)
