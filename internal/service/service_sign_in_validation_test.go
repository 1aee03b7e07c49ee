package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-trust-keeper/internal/mock"
	"github.com/MKhiriev/go-trust-keeper/internal/validators"
	"github.com/MKhiriev/go-trust-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSignInValidation_RequestLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockSignInService(ctrl)
	svc := NewSignInValidationService(inner, validators.NewRequestValidator())

	err := svc.RequestLink(context.Background(), "not-an-email", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidEmail)

	inner.EXPECT().RequestLink(gomock.Any(), "ann@example.com", "Ann").Return(nil)
	assert.NoError(t, svc.RequestLink(context.Background(), "ann@example.com", "Ann"))
}

func TestSignInValidation_VerifyLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockSignInService(ctrl)
	svc := NewSignInValidationService(inner, validators.NewRequestValidator())

	_, err := svc.VerifyLink(context.Background(), "ann@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyToken)

	inner.EXPECT().VerifyLink(gomock.Any(), "ann@example.com", "tok").Return(models.Subject{ID: "s-1"}, nil)
	subject, err := svc.VerifyLink(context.Background(), "ann@example.com", "tok")
	require.NoError(t, err)
	assert.Equal(t, "s-1", subject.ID)
}
