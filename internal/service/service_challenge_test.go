package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-trust-keeper/internal/config"
	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/internal/mock"
	"github.com/MKhiriev/go-trust-keeper/internal/store"
	"github.com/MKhiriev/go-trust-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var ledgerNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestLedger(t *testing.T) (*challengeLedger, *mock.MockChallengeRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockChallengeRepository(ctrl)

	l := NewChallengeLedger(repo, config.Ceremony{ChallengeTTL: 5 * time.Minute}, logger.Nop()).(*challengeLedger)
	l.now = func() time.Time { return ledgerNow }
	l.random = func(n int) (string, error) { return "fresh-challenge", nil }
	return l, repo
}

func TestChallengeLedger_Issue(t *testing.T) {
	l, repo := newTestLedger(t)

	want := models.Challenge{SubjectID: "s-1", Kind: models.CeremonyRegistration, Value: "fresh-challenge", CreatedAt: ledgerNow}
	repo.EXPECT().UpsertChallenge(gomock.Any(), want).Return(want, nil)

	got, err := l.Issue(context.Background(), "s-1", models.CeremonyRegistration)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestChallengeLedger_Issue_InvalidInput(t *testing.T) {
	l, _ := newTestLedger(t)

	_, err := l.Issue(context.Background(), "", models.CeremonyRegistration)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = l.Issue(context.Background(), "s-1", models.CeremonyKind("login"))
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestChallengeLedger_Issue_RandomFailure(t *testing.T) {
	l, _ := newTestLedger(t)
	l.random = func(int) (string, error) { return "", errors.New("no entropy") }

	_, err := l.Issue(context.Background(), "s-1", models.CeremonyAuthentication)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate challenge")
}

func TestChallengeLedger_Consume(t *testing.T) {
	live := models.Challenge{SubjectID: "s-1", Kind: models.CeremonyAuthentication, Value: "abc", CreatedAt: ledgerNow.Add(-time.Minute)}

	tests := []struct {
		name     string
		taken    models.Challenge
		takeErr  error
		supplied string
		wantErr  error
	}{
		{name: "match", taken: live, supplied: "abc"},
		{name: "mismatch", taken: live, supplied: "abd", wantErr: ErrChallengeRejected},
		{name: "prefix is not a match", taken: live, supplied: "ab", wantErr: ErrChallengeRejected},
		{name: "no live challenge", takeErr: store.ErrNotFound, supplied: "abc", wantErr: ErrChallengeRejected},
		{name: "storage error", takeErr: store.ErrExecutingQuery, supplied: "abc", wantErr: ErrChallengeRejected},
		{
			name:     "expired",
			taken:    models.Challenge{SubjectID: "s-1", Kind: models.CeremonyAuthentication, Value: "abc", CreatedAt: ledgerNow.Add(-5 * time.Minute)},
			supplied: "abc",
			wantErr:  ErrChallengeRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, repo := newTestLedger(t)
			// the live challenge is removed whatever the outcome
			repo.EXPECT().TakeChallenge(gomock.Any(), "s-1", models.CeremonyAuthentication).Return(tt.taken, tt.takeErr).Times(1)

			got, err := l.Consume(context.Background(), "s-1", models.CeremonyAuthentication, tt.supplied)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.taken, got)
		})
	}
}

func TestChallengeLedger_Sweep(t *testing.T) {
	l, repo := newTestLedger(t)
	cutoff := ledgerNow.Add(-5 * time.Minute)

	repo.EXPECT().DeleteChallengesCreatedBefore(gomock.Any(), cutoff).Return(int64(4), nil)

	n, err := l.Sweep(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
