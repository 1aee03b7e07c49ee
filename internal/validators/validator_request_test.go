package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-trust-keeper/models"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestRequestValidator_Validate(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		// ── SignInRequest ─────────────────────────────────────────────
		{name: "sign-in ok", obj: models.SignInRequest{Email: "ann@example.com", Name: "Ann"}},
		{name: "sign-in pointer ok", obj: &models.SignInRequest{Email: " ann@example.com "}},
		{name: "sign-in empty email", obj: models.SignInRequest{}, wantErr: ErrInvalidEmail},
		{name: "sign-in display name", obj: models.SignInRequest{Email: "Ann <ann@example.com>"}, wantErr: ErrInvalidEmail},
		{name: "sign-in no at", obj: models.SignInRequest{Email: "ann.example.com"}, wantErr: ErrInvalidEmail},
		{name: "sign-in long name", obj: models.SignInRequest{Email: "ann@example.com", Name: strings.Repeat("я", MaxNameLength+1)}, wantErr: ErrNameTooLong},
		{name: "sign-in only name checked", obj: models.SignInRequest{}, fields: []string{FieldName}},

		// ── SignInVerification ────────────────────────────────────────
		{name: "verify ok", obj: models.SignInVerification{Email: "ann@example.com", Token: "abc"}},
		{name: "verify empty token", obj: models.SignInVerification{Email: "ann@example.com", Token: "  "}, wantErr: ErrEmptyToken},
		{name: "verify long token", obj: models.SignInVerification{Email: "ann@example.com", Token: strings.Repeat("a", MaxTokenLength+1)}, wantErr: ErrTokenTooLong},

		// ── AuthenticationClaim ───────────────────────────────────────
		{name: "claim empty allowed", obj: models.AuthenticationClaim{}},
		{name: "claim bad email", obj: &models.AuthenticationClaim{Email: "nope"}, wantErr: ErrInvalidEmail},

		// ── SubjectUpdate ─────────────────────────────────────────────
		{name: "update name", obj: models.SubjectUpdate{Name: strPtr("Ann")}},
		{name: "update nothing", obj: models.SubjectUpdate{}, wantErr: ErrNoFieldsToUpdate},
		{name: "update bad email", obj: models.SubjectUpdate{Email: strPtr("bad@")}, wantErr: ErrInvalidEmail},

		// ── RegistrationProof ─────────────────────────────────────────
		{name: "proof label ok", obj: models.RegistrationProof{Label: "laptop"}},
		{name: "proof label too long", obj: models.RegistrationProof{Label: strings.Repeat("x", MaxLabelLength+1)}, wantErr: ErrLabelTooLong},

		// ── misc ──────────────────────────────────────────────────────
		{name: "unknown field", obj: models.SignInRequest{Email: "ann@example.com"}, fields: []string{"phone"}, wantErr: ErrUnknownField},
		{name: "unsupported type", obj: 42, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
