package service

import (
	"context"
	"path/filepath"
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

// newTestTrustGate uses the real SQLite trust repository and a movable clock.
func newTestTrustGate(t *testing.T) (*trustGate, *time.Time) {
	t.Helper()
	storages, err := store.NewClientStorages(context.Background(), config.ClientStorage{
		DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "client.db")},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	g := NewTrustGate(storages.TrustRepository, config.ClientTrust{TTL: 5 * time.Minute}, logger.Nop()).(*trustGate)
	g.now = func() time.Time { return now }
	return g, &now
}

func TestTrustGate_ElevateWithinTTL(t *testing.T) {
	g, now := newTestTrustGate(t)
	ctx := context.Background()

	assert.False(t, g.IsElevated(ctx, "s-1"))

	require.NoError(t, g.Elevate(ctx, "s-1"))
	assert.True(t, g.IsElevated(ctx, "s-1"))
	assert.Equal(t, 5*time.Minute, g.Remaining(ctx, "s-1"))

	*now = now.Add(4 * time.Minute)
	assert.True(t, g.IsElevated(ctx, "s-1"))
	assert.Equal(t, time.Minute, g.Remaining(ctx, "s-1"))
}

func TestTrustGate_ExpiryClearsState(t *testing.T) {
	g, now := newTestTrustGate(t)
	ctx := context.Background()
	require.NoError(t, g.Elevate(ctx, "s-1"))

	*now = now.Add(5 * time.Minute)
	assert.False(t, g.IsElevated(ctx, "s-1"))

	// cleared, so moving the clock back does not revive it
	*now = now.Add(-5 * time.Minute)
	assert.False(t, g.IsElevated(ctx, "s-1"))
}

func TestTrustGate_OtherSubjectClearsState(t *testing.T) {
	g, _ := newTestTrustGate(t)
	ctx := context.Background()
	require.NoError(t, g.Elevate(ctx, "s-1"))

	assert.False(t, g.IsElevated(ctx, "s-2"))
	assert.False(t, g.IsElevated(ctx, "s-1"))
}

func TestTrustGate_Clear(t *testing.T) {
	g, _ := newTestTrustGate(t)
	ctx := context.Background()
	require.NoError(t, g.Elevate(ctx, "s-1"))

	require.NoError(t, g.Clear(ctx))
	assert.False(t, g.IsElevated(ctx, "s-1"))
	assert.NoError(t, g.Clear(ctx))
}

func TestTrustGate_ElevateEmptySubject(t *testing.T) {
	g, _ := newTestTrustGate(t)
	assert.ErrorIs(t, g.Elevate(context.Background(), ""), ErrInvalidDataProvided)
}

func TestTrustGate_StorageErrorFailsClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockLocalTrustRepository(ctrl)
	g := NewTrustGate(repo, config.ClientTrust{TTL: time.Minute}, logger.Nop())

	repo.EXPECT().GetTrustState(gomock.Any()).Return(models.TrustState{}, store.ErrScanningRow)
	repo.EXPECT().DeleteTrustState(gomock.Any()).Return(nil)

	assert.False(t, g.IsElevated(context.Background(), "s-1"))
}
