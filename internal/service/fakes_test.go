package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-trust-keeper/internal/crypto"
	"github.com/MKhiriev/go-trust-keeper/internal/store"
	"github.com/MKhiriev/go-trust-keeper/models"
)

// In-memory repositories with the same atomicity guarantees as the SQL ones.
// They let ceremony tests run whole flows, including concurrent ones.

type memSubjects struct {
	mu     sync.Mutex
	byID   map[string]models.SubjectRecord
	byHash map[crypto.LookupHash]string
}

func newMemSubjects() *memSubjects {
	return &memSubjects{byID: map[string]models.SubjectRecord{}, byHash: map[crypto.LookupHash]string{}}
}

func (m *memSubjects) CreateSubject(_ context.Context, rec models.SubjectRecord) (models.SubjectRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byHash[rec.EmailHash]; ok {
		return models.SubjectRecord{}, store.ErrSubjectHashExists
	}
	rec.CreatedAt = time.Now().UTC()
	rec.UpdatedAt = rec.CreatedAt
	m.byID[rec.ID] = rec
	m.byHash[rec.EmailHash] = rec.ID
	return rec, nil
}

func (m *memSubjects) FindSubjectByEmailHash(_ context.Context, hash crypto.LookupHash) (models.SubjectRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.byHash[hash]
	if !ok {
		return models.SubjectRecord{}, store.ErrNotFound
	}
	return m.byID[id], nil
}

func (m *memSubjects) FindSubjectByID(_ context.Context, id string) (models.SubjectRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.byID[id]
	if !ok {
		return models.SubjectRecord{}, store.ErrNotFound
	}
	return rec, nil
}

func (m *memSubjects) UpdateSubject(_ context.Context, upd models.SubjectRecordUpdate) (models.SubjectRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.byID[upd.ID]
	if !ok {
		return models.SubjectRecord{}, store.ErrNotFound
	}
	if upd.EmailHash != nil {
		if owner, taken := m.byHash[*upd.EmailHash]; taken && owner != upd.ID {
			return models.SubjectRecord{}, store.ErrSubjectHashExists
		}
		delete(m.byHash, rec.EmailHash)
		rec.EmailHash = *upd.EmailHash
		m.byHash[rec.EmailHash] = rec.ID
	}
	if upd.EmailEnc != nil {
		rec.EmailEnc = *upd.EmailEnc
	}
	if upd.NameEnc != nil {
		rec.NameEnc = upd.NameEnc
	}
	if upd.EmailVerifiedAt != nil {
		rec.EmailVerifiedAt = upd.EmailVerifiedAt
	}
	m.byID[rec.ID] = rec
	return rec, nil
}

type challengeKey struct {
	subjectID string
	kind      models.CeremonyKind
}

type memChallenges struct {
	mu   sync.Mutex
	live map[challengeKey]models.Challenge
}

func newMemChallenges() *memChallenges {
	return &memChallenges{live: map[challengeKey]models.Challenge{}}
}

func (m *memChallenges) UpsertChallenge(_ context.Context, c models.Challenge) (models.Challenge, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.live[challengeKey{c.SubjectID, c.Kind}] = c
	return c, nil
}

func (m *memChallenges) TakeChallenge(_ context.Context, subjectID string, kind models.CeremonyKind) (models.Challenge, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := challengeKey{subjectID, kind}
	c, ok := m.live[k]
	if !ok {
		return models.Challenge{}, store.ErrNotFound
	}
	delete(m.live, k)
	return c, nil
}

func (m *memChallenges) DeleteChallengesCreatedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for k, c := range m.live {
		if c.CreatedAt.Before(cutoff) {
			delete(m.live, k)
			n++
		}
	}
	return n, nil
}

func (m *memChallenges) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.live)
}

type memCredentials struct {
	mu    sync.Mutex
	byID  map[string]models.Credential
	order []string
}

func newMemCredentials() *memCredentials {
	return &memCredentials{byID: map[string]models.Credential{}}
}

func (m *memCredentials) CreateCredential(_ context.Context, c models.Credential) (models.Credential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[c.CredentialID]; ok {
		return models.Credential{}, store.ErrCredentialExists
	}
	m.byID[c.CredentialID] = c
	m.order = append(m.order, c.CredentialID)
	return c, nil
}

func (m *memCredentials) GetCredential(_ context.Context, id string) (models.Credential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.byID[id]
	if !ok {
		return models.Credential{}, store.ErrNotFound
	}
	return c, nil
}

func (m *memCredentials) ListCredentialsBySubject(_ context.Context, subjectID string) ([]models.Credential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Credential
	for _, id := range m.order {
		if c := m.byID[id]; c.SubjectID == subjectID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCredentials) CountCredentialsBySubject(ctx context.Context, subjectID string) (int, error) {
	list, err := m.ListCredentialsBySubject(ctx, subjectID)
	return len(list), err
}

func (m *memCredentials) AdvanceSignCount(_ context.Context, id string, presented uint32) (uint32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.byID[id]
	if !ok || !(c.SignCount == 0 || c.SignCount < presented) {
		return 0, store.ErrCounterNotAdvanced
	}
	c.SignCount = presented
	now := time.Now().UTC()
	c.LastUsedAt = &now
	m.byID[id] = c
	return presented, nil
}

func (m *memCredentials) ids() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.order)
}
