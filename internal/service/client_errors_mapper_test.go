package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-trust-keeper/internal/adapter"
	"github.com/MKhiriev/go-trust-keeper/internal/app"
	"github.com/stretchr/testify/assert"
)

func TestMapAdapterError(t *testing.T) {
	wrap := func(sentinel error, msg string) error { return fmt.Errorf("%w: %s", sentinel, msg) }

	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "invalid data", in: wrap(adapter.ErrBadRequest, app.MsgInvalidDataProvided), want: ErrInvalidDataProvided},
		{name: "registration failed", in: wrap(adapter.ErrBadRequest, app.MsgRegistrationFailed), want: ErrCeremonyFailed},
		{name: "authentication failed", in: wrap(adapter.ErrBadRequest, app.MsgAuthenticationFailed), want: ErrCeremonyFailed},
		{name: "link invalid", in: wrap(adapter.ErrUnauthorized, app.MsgSignInLinkInvalid), want: ErrSignInLinkInvalid},
		{name: "token invalid", in: wrap(adapter.ErrUnauthorized, app.MsgTokenIsExpiredOrInvalid), want: ErrTokenIsExpiredOrInvalid},
		{name: "no credential", in: wrap(adapter.ErrNotFound, app.MsgNoCredentialEnrolled), want: ErrNoCredentialsEnrolled},
		{name: "plain not found", in: wrap(adapter.ErrNotFound, app.MsgNotFound), want: ErrNotFound},
		{name: "conflict", in: wrap(adapter.ErrConflict, app.MsgSubjectAlreadyExists), want: ErrConflict},
		{name: "mail", in: wrap(adapter.ErrBadGateway, app.MsgMailDeliveryFailed), want: ErrMailDelivery},
		{name: "unknown bad request passes through", in: wrap(adapter.ErrBadRequest, "weird"), want: adapter.ErrBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.True(t, errors.Is(got, tt.want), "got %v", got)
		})
	}
}

func TestExtractBody(t *testing.T) {
	assert.Equal(t, "registration failed", extractBody(errors.New("bad request: registration failed")))
	assert.Equal(t, "plain", extractBody(errors.New("plain")))
}
