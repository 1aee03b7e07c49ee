package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-trust-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldEmail targets the email address of a request or update.
	FieldEmail = "email"

	// FieldName targets the optional display name.
	FieldName = "name"

	// FieldToken targets the sign-in link token.
	FieldToken = "token"

	// FieldLabel targets the human label of a new credential.
	FieldLabel = "label"

	// FieldAnyUpdate requires an update to change at least one field.
	FieldAnyUpdate = "any_update"
)

// Input limits.
const (
	MaxEmailLength = 254
	MaxNameLength  = 100
	MaxTokenLength = 128
	MaxLabelLength = 64
)

// RequestValidator checks the shape of identity and sign-in input before it
// reaches the services: SignInRequest, SignInVerification,
// AuthenticationClaim, SubjectUpdate and the label of a RegistrationProof.
// Ceremony proofs themselves are verified by the ceremony engine.
type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the concrete type of obj. Both values and pointers
// are accepted.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignInRequest:
		return v.validateSignInRequest(value, fields...)
	case *models.SignInRequest:
		return v.validateSignInRequest(*value, fields...)

	case models.SignInVerification:
		return v.validateSignInVerification(value, fields...)
	case *models.SignInVerification:
		return v.validateSignInVerification(*value, fields...)

	case models.AuthenticationClaim:
		return v.validateAuthenticationClaim(value, fields...)
	case *models.AuthenticationClaim:
		return v.validateAuthenticationClaim(*value, fields...)

	case models.SubjectUpdate:
		return v.validateSubjectUpdate(value, fields...)
	case *models.SubjectUpdate:
		return v.validateSubjectUpdate(*value, fields...)

	case models.RegistrationProof:
		return v.validateRegistrationProof(value, fields...)
	case *models.RegistrationProof:
		return v.validateRegistrationProof(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateSignInRequest(req models.SignInRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldName:
			if utf8.RuneCountInString(strings.TrimSpace(req.Name)) > MaxNameLength {
				return ErrNameTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateSignInVerification(req models.SignInVerification, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldToken}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldToken:
			token := strings.TrimSpace(req.Token)
			if token == "" {
				return ErrEmptyToken
			}
			if len(token) > MaxTokenLength {
				return ErrTokenTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateAuthenticationClaim accepts an empty email: the claim may be
// replaced by the session subject later.
func (v *RequestValidator) validateAuthenticationClaim(claim models.AuthenticationClaim, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(claim.Email) == "" {
				continue
			}
			if err := validateEmail(claim.Email); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateSubjectUpdate(upd models.SubjectUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAnyUpdate, FieldEmail, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldAnyUpdate:
			if upd.Email == nil && upd.Name == nil {
				return ErrNoFieldsToUpdate
			}
		case FieldEmail:
			if upd.Email == nil {
				continue
			}
			if err := validateEmail(*upd.Email); err != nil {
				return err
			}
		case FieldName:
			if upd.Name != nil && utf8.RuneCountInString(strings.TrimSpace(*upd.Name)) > MaxNameLength {
				return ErrNameTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateRegistrationProof(proof models.RegistrationProof, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLabel}
	}

	for _, f := range fields {
		switch f {
		case FieldLabel:
			if utf8.RuneCountInString(strings.TrimSpace(proof.Label)) > MaxLabelLength {
				return ErrLabelTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEmail accepts a bare RFC 5322 address without a display name.
func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" || len(email) > MaxEmailLength {
		return ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Name != "" || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}
