package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-trust-keeper/internal/validators"
	"github.com/MKhiriev/go-trust-keeper/models"
)

// signInValidationService rejects malformed sign-in input before it reaches
// the inner service, so no subject or token is created for it.
type signInValidationService struct {
	inner     SignInService
	validator validators.Validator
}

func NewSignInValidationService(inner SignInService, validator validators.Validator) SignInService {
	return &signInValidationService{inner: inner, validator: validator}
}

func (v *signInValidationService) RequestLink(ctx context.Context, email, name string) error {
	if err := v.validator.Validate(ctx, models.SignInRequest{Email: email, Name: name}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.RequestLink(ctx, email, name)
}

func (v *signInValidationService) VerifyLink(ctx context.Context, email, token string) (models.Subject, error) {
	if err := v.validator.Validate(ctx, models.SignInVerification{Email: email, Token: token}); err != nil {
		return models.Subject{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.VerifyLink(ctx, email, token)
}
