package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-trust-keeper/internal/mock"
	"github.com/MKhiriev/go-trust-keeper/internal/service"
	"github.com/MKhiriev/go-trust-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSubject = "2f4b8f0e-8d5d-4c39-9b39-5f3f2a1c9d11"

func newTrustModel(t *testing.T) (*TrustModel, *mock.MockClientAuthService, *mock.MockTrustGate) {
	t.Helper()
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	trust := mock.NewMockTrustGate(ctrl)
	return NewTrustModel(context.Background(), auth, trust, testSubject), auth, trust
}

func TestTrustModel_InitWithoutSubject(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewTrustModel(context.Background(), mock.NewMockClientAuthService(ctrl), mock.NewMockTrustGate(ctrl), "")

	assert.Nil(t, m.Init())
}

func TestTrustModel_InitLoadsStatusAndRemaining(t *testing.T) {
	m, auth, trust := newTrustModel(t)

	trust.EXPECT().Remaining(gomock.Any(), testSubject).Return(4 * time.Minute)
	auth.EXPECT().PasskeyStatus(gomock.Any()).Return(models.PasskeyStatus{HasPasskey: true, Count: 2}, nil)

	msgs := collect(m.Init())
	status, ok := findMsg[statusLoadedMsg](msgs)
	require.True(t, ok)

	m.Update(status)
	require.NotNil(t, m.status)
	assert.Equal(t, 2, m.status.Count)
	assert.Equal(t, 4*time.Minute, m.remaining)
	assert.Contains(t, m.View(), "подтверждено, осталось 4m0s")
}

func TestTrustModel_StaleTickIgnored(t *testing.T) {
	m, _, trust := newTrustModel(t)
	m.gen = 3

	_, cmd := m.Update(trustTickMsg{gen: 2, at: time.Now()})
	assert.Nil(t, cmd)

	trust.EXPECT().Remaining(gomock.Any(), testSubject).Return(time.Duration(0))
	_, cmd = m.Update(trustTickMsg{gen: 3, at: time.Now()})
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "заблокировано")
}

func TestTrustModel_SessionStartedBumpsGeneration(t *testing.T) {
	m, auth, trust := newTrustModel(t)
	other := "8a1c5ad4-6e0d-4c55-9a7e-1f0b3c2d4e5f"

	trust.EXPECT().Remaining(gomock.Any(), other).Return(time.Duration(0))
	auth.EXPECT().PasskeyStatus(gomock.Any()).Return(models.PasskeyStatus{}, nil).AnyTimes()

	_, cmd := m.Update(sessionStartedMsg{session: models.Session{SubjectID: other}})
	require.NotNil(t, cmd)
	assert.Equal(t, other, m.subjectID)
	assert.Equal(t, 1, m.gen)
}

func TestTrustModel_Unlock(t *testing.T) {
	tests := []struct {
		name       string
		unlockErr  error
		wantNotice string
		wantError  bool
	}{
		{name: "elevated", wantNotice: "Устройство подтверждено"},
		{name: "no passkey", unlockErr: service.ErrNoCredentialsEnrolled, wantNotice: "нет ключа доступа"},
		{name: "ceremony failed", unlockErr: &service.CeremonyError{Kind: models.CeremonyAuthentication, Cause: errors.New("bad signature")}, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, auth, trust := newTrustModel(t)

			auth.EXPECT().Unlock(gomock.Any()).Return(tt.unlockErr)
			trust.EXPECT().Remaining(gomock.Any(), testSubject).Return(time.Duration(0)).AnyTimes()

			_, cmd := m.Update(keyRunes("u"))
			assert.NotEmpty(t, m.busy)

			done, ok := findMsg[unlockDoneMsg](collect(cmd))
			require.True(t, ok)

			m.Update(done)
			assert.Empty(t, m.busy)
			if tt.wantError {
				require.NotNil(t, m.overlay)
				assert.Equal(t, "Ключ доступа не подтверждён", m.overlay.message)

				m.Update(keyType(tea.KeyEsc))
				assert.Nil(t, m.overlay)
				return
			}
			assert.Nil(t, m.overlay)
			assert.Contains(t, m.notice, tt.wantNotice)
		})
	}
}

func TestTrustModel_EnrollWithLabel(t *testing.T) {
	m, auth, _ := newTrustModel(t)

	m.Update(keyRunes("e"))
	require.True(t, m.enrolling)

	m.Update(keyRunes("laptop"))
	assert.Equal(t, "laptop", m.label.Value())

	auth.EXPECT().EnrollPasskey(gomock.Any(), "laptop").Return(models.Credential{Label: "laptop"}, nil)
	_, cmd := m.Update(keyType(tea.KeyEnter))
	assert.False(t, m.enrolling)
	assert.Empty(t, m.label.Value())

	done, ok := findMsg[enrollDoneMsg](collect(cmd))
	require.True(t, ok)

	auth.EXPECT().PasskeyStatus(gomock.Any()).Return(models.PasskeyStatus{HasPasskey: true, Count: 1}, nil)
	_, cmd = m.Update(done)
	assert.Equal(t, "Ключ доступа добавлен", m.notice)

	status, ok := findMsg[statusLoadedMsg](collect(cmd))
	require.True(t, ok)
	m.Update(status)
	assert.Equal(t, 1, m.status.Count)
}

func TestTrustModel_EnrollCancelled(t *testing.T) {
	m, _, _ := newTrustModel(t)

	m.Update(keyRunes("e"))
	m.Update(keyType(tea.KeyEsc))

	assert.False(t, m.enrolling)
}

func TestTrustModel_LockAndSignOut(t *testing.T) {
	m, auth, trust := newTrustModel(t)

	trust.EXPECT().Clear(gomock.Any()).Return(nil)
	trust.EXPECT().Remaining(gomock.Any(), testSubject).Return(time.Duration(0))

	_, cmd := m.Update(keyRunes("l"))
	lock, ok := findMsg[lockDoneMsg](collect(cmd))
	require.True(t, ok)
	m.Update(lock)
	assert.Equal(t, "Устройство заблокировано", m.notice)

	auth.EXPECT().SignOut(gomock.Any()).Return(nil)
	_, cmd = m.Update(keyRunes("o"))
	out, ok := findMsg[signedOutMsg](collect(cmd))
	require.True(t, ok)
	assert.NoError(t, out.err)
}

func TestTrustModel_KeysIgnoredWhileBusy(t *testing.T) {
	m, _, _ := newTrustModel(t)
	m.busy = "выход"

	_, cmd := m.Update(keyRunes("u"))
	assert.Nil(t, cmd)
}
