package service

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-trust-keeper/internal/config"
	"github.com/MKhiriev/go-trust-keeper/internal/crypto"
	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/internal/mock"
	"github.com/MKhiriev/go-trust-keeper/internal/store"
	"github.com/MKhiriev/go-trust-keeper/internal/utils"
	"github.com/MKhiriev/go-trust-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var signInNow = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

type signInDeps struct {
	identity *mock.MockIdentityService
	tokens   *mock.MockVerificationTokenRepository
	mailer   *mock.MockMailer
	cipher   crypto.FieldCipher
}

func newTestSignInSvc(t *testing.T) (*signInService, signInDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := signInDeps{
		identity: mock.NewMockIdentityService(ctrl),
		tokens:   mock.NewMockVerificationTokenRepository(ctrl),
		mailer:   mock.NewMockMailer(ctrl),
		cipher:   newTestCipher(t, "sign-in-test-secret"),
	}

	cfg := config.App{HashKey: "hash-key", SignInLinkTTL: 10 * time.Minute, PublicURL: "https://trust.example.com"}
	svc := NewSignInService(deps.identity, deps.tokens, deps.cipher, deps.mailer, cfg, logger.Nop()).(*signInService)
	svc.now = func() time.Time { return signInNow }
	svc.random = func(int) (string, error) { return "link-token", nil }
	return svc, deps
}

// ── RequestLink ──────────────────────────────────────────────────────────────

func TestSignInService_RequestLink_NewSubject(t *testing.T) {
	svc, deps := newTestSignInSvc(t)
	subject := models.Subject{ID: "s-1", Email: "alice@example.com"}

	gomock.InOrder(
		deps.identity.EXPECT().CreateSubject(gomock.Any(), "alice@example.com", "Alice").Return(subject, nil),
		deps.tokens.EXPECT().CreateVerificationToken(gomock.Any(), models.VerificationToken{
			IdentifierHash: string(deps.cipher.LookupHash("alice@example.com")),
			TokenHash:      utils.HashString("link-token", "hash-key"),
			ExpiresAt:      signInNow.Add(10 * time.Minute),
		}).Return(nil),
		deps.mailer.EXPECT().SendSignInLink(gomock.Any(), "alice@example.com", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, link string) error {
				require.True(t, strings.HasPrefix(link, "https://trust.example.com/sign-in/verify?"))
				u, err := url.Parse(link)
				require.NoError(t, err)
				assert.Equal(t, "alice@example.com", u.Query().Get("email"))
				assert.Equal(t, "link-token", u.Query().Get("token"))
				return nil
			}),
	)

	require.NoError(t, svc.RequestLink(context.Background(), "alice@example.com", "Alice"))
}

func TestSignInService_RequestLink_ExistingSubject(t *testing.T) {
	svc, deps := newTestSignInSvc(t)
	subject := models.Subject{ID: "s-1", Email: "alice@example.com"}

	deps.identity.EXPECT().CreateSubject(gomock.Any(), "ALICE@example.com", "").Return(models.Subject{}, ErrConflict)
	deps.identity.EXPECT().FindByEmail(gomock.Any(), "ALICE@example.com").Return(subject, nil)
	deps.tokens.EXPECT().CreateVerificationToken(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, token models.VerificationToken) error {
			// same identifier whatever the case the email was typed in
			assert.Equal(t, string(deps.cipher.LookupHash("alice@example.com")), token.IdentifierHash)
			assert.NotContains(t, token.TokenHash, "link-token")
			return nil
		})
	deps.mailer.EXPECT().SendSignInLink(gomock.Any(), "alice@example.com", gomock.Any()).Return(nil)

	require.NoError(t, svc.RequestLink(context.Background(), "ALICE@example.com", ""))
}

func TestSignInService_RequestLink_MailFailure(t *testing.T) {
	svc, deps := newTestSignInSvc(t)

	deps.identity.EXPECT().CreateSubject(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Subject{ID: "s-1", Email: "a@b.c"}, nil)
	deps.tokens.EXPECT().CreateVerificationToken(gomock.Any(), gomock.Any()).Return(nil)
	deps.mailer.EXPECT().SendSignInLink(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("relay down"))

	err := svc.RequestLink(context.Background(), "a@b.c", "")
	assert.ErrorIs(t, err, ErrMailDelivery)
}

func TestSignInService_RequestLink_InvalidEmail(t *testing.T) {
	svc, deps := newTestSignInSvc(t)

	deps.identity.EXPECT().CreateSubject(gomock.Any(), "", "").Return(models.Subject{}, ErrInvalidDataProvided)

	err := svc.RequestLink(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── VerifyLink ───────────────────────────────────────────────────────────────

func TestSignInService_VerifyLink_FirstUseMarksVerified(t *testing.T) {
	svc, deps := newTestSignInSvc(t)
	idHash := string(deps.cipher.LookupHash("alice@example.com"))
	tokenHash := utils.HashString("link-token", "hash-key")

	deps.tokens.EXPECT().TakeVerificationToken(gomock.Any(), idHash, tokenHash).
		Return(models.VerificationToken{IdentifierHash: idHash, TokenHash: tokenHash, ExpiresAt: signInNow.Add(time.Minute)}, nil)
	deps.identity.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(models.Subject{ID: "s-1"}, nil)
	deps.identity.EXPECT().UpdateSubject(gomock.Any(), "s-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, upd models.SubjectUpdate) (models.Subject, error) {
			require.NotNil(t, upd.EmailVerifiedAt)
			assert.Equal(t, signInNow, *upd.EmailVerifiedAt)
			assert.Nil(t, upd.Email)
			return models.Subject{ID: "s-1", EmailVerifiedAt: upd.EmailVerifiedAt}, nil
		})

	got, err := svc.VerifyLink(context.Background(), "alice@example.com", "link-token")
	require.NoError(t, err)
	assert.Equal(t, "s-1", got.ID)
	assert.NotNil(t, got.EmailVerifiedAt)
}

func TestSignInService_VerifyLink_AlreadyVerified(t *testing.T) {
	svc, deps := newTestSignInSvc(t)
	verified := signInNow.Add(-time.Hour)

	deps.tokens.EXPECT().TakeVerificationToken(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.VerificationToken{ExpiresAt: signInNow.Add(time.Minute)}, nil)
	deps.identity.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(models.Subject{ID: "s-1", EmailVerifiedAt: &verified}, nil)

	got, err := svc.VerifyLink(context.Background(), "alice@example.com", "link-token")
	require.NoError(t, err)
	assert.Equal(t, verified, *got.EmailVerifiedAt)
}

func TestSignInService_VerifyLink_UsedOrUnknown(t *testing.T) {
	svc, deps := newTestSignInSvc(t)

	deps.tokens.EXPECT().TakeVerificationToken(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.VerificationToken{}, store.ErrNotFound)

	_, err := svc.VerifyLink(context.Background(), "alice@example.com", "link-token")
	assert.ErrorIs(t, err, ErrSignInLinkInvalid)
}

func TestSignInService_VerifyLink_Expired(t *testing.T) {
	svc, deps := newTestSignInSvc(t)

	deps.tokens.EXPECT().TakeVerificationToken(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.VerificationToken{ExpiresAt: signInNow}, nil)

	_, err := svc.VerifyLink(context.Background(), "alice@example.com", "link-token")
	assert.ErrorIs(t, err, ErrSignInLinkInvalid)
}

func TestSignInService_VerifyLink_MissingInput(t *testing.T) {
	svc, _ := newTestSignInSvc(t)

	_, err := svc.VerifyLink(context.Background(), "alice@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
