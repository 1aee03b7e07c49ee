// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-trust-keeper/internal/adapter"
	"github.com/MKhiriev/go-trust-keeper/internal/app"
	"github.com/MKhiriev/go-trust-keeper/models"
)

// serverMessages maps the server's public error messages back to service
// errors. Messages are unique across statuses.
var serverMessages = map[string]error{
	app.MsgInvalidDataProvided:     ErrInvalidDataProvided,
	app.MsgSignInLinkInvalid:       ErrSignInLinkInvalid,
	app.MsgTokenIsExpiredOrInvalid: ErrTokenIsExpiredOrInvalid,
	app.MsgNoSubjectIDProvided:     ErrTokenIsExpiredOrInvalid,
	app.MsgNoCredentialEnrolled:    ErrNoCredentialsEnrolled,
	app.MsgMailDeliveryFailed:      ErrMailDelivery,
}

var ceremonyMessages = map[string]models.CeremonyKind{
	app.MsgRegistrationFailed:   models.CeremonyRegistration,
	app.MsgAuthenticationFailed: models.CeremonyAuthentication,
}

// mapAdapterError turns a transport error from the server adapter into the
// service error the server started from. Unrecognised errors pass through.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)
	if mapped, ok := serverMessages[msg]; ok {
		return mapped
	}
	if kind, ok := ceremonyMessages[msg]; ok {
		return newCeremonyError(kind, err)
	}

	switch {
	case errors.Is(err, adapter.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, adapter.ErrConflict):
		return ErrConflict
	}
	return err
}

// extractBody returns the server message from an adapter error of the form
// "<status text>: <message>".
func extractBody(err error) string {
	_, msg, found := strings.Cut(err.Error(), ": ")
	if !found {
		return err.Error()
	}
	return msg
}
