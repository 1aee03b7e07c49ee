package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/MKhiriev/go-trust-keeper/internal/config"
	"github.com/MKhiriev/go-trust-keeper/internal/crypto"
	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/internal/store"
	"github.com/MKhiriev/go-trust-keeper/models"
)

// challengeLedger persists one live challenge per (subject, kind). Issue is
// a single upsert and Consume a single DELETE ... RETURNING, so correctness
// holds across server processes.
type challengeLedger struct {
	challenges store.ChallengeRepository
	ttl        time.Duration

	// test seams
	now    func() time.Time
	random func(n int) (string, error)

	logger *logger.Logger
}

// NewChallengeLedger constructs a [ChallengeLedger]. Challenges older than
// cfg.ChallengeTTL are rejected on consume.
func NewChallengeLedger(challenges store.ChallengeRepository, cfg config.Ceremony, logger *logger.Logger) ChallengeLedger {
	return &challengeLedger{
		challenges: challenges,
		ttl:        cfg.ChallengeTTL,
		now:        time.Now,
		random:     crypto.RandomToken,
		logger:     logger,
	}
}

func (l *challengeLedger) Issue(ctx context.Context, subjectID string, kind models.CeremonyKind) (models.Challenge, error) {
	if subjectID == "" || !kind.Valid() {
		return models.Challenge{}, ErrInvalidDataProvided
	}

	value, err := l.random(crypto.ChallengeSize)
	if err != nil {
		return models.Challenge{}, fmt.Errorf("generate challenge: %w", err)
	}

	challenge, err := l.challenges.UpsertChallenge(ctx, models.Challenge{
		SubjectID: subjectID,
		Kind:      kind,
		Value:     value,
		CreatedAt: l.now().UTC(),
	})
	if err != nil {
		return models.Challenge{}, fmt.Errorf("persist challenge: %w", err)
	}

	return challenge, nil
}

// Consume always removes the live challenge, even when supplied does not
// match, so a challenge gets exactly one verification attempt.
func (l *challengeLedger) Consume(ctx context.Context, subjectID string, kind models.CeremonyKind, supplied string) (models.Challenge, error) {
	log := logger.FromContext(ctx)

	challenge, err := l.challenges.TakeChallenge(ctx, subjectID, kind)
	if err != nil {
		log.Debug().Err(err).Str("kind", kind.String()).Msg("no live challenge")
		return models.Challenge{}, ErrChallengeRejected
	}

	if subtle.ConstantTimeCompare([]byte(challenge.Value), []byte(supplied)) != 1 {
		log.Debug().Str("kind", kind.String()).Msg("challenge mismatch")
		return models.Challenge{}, ErrChallengeRejected
	}

	if l.ttl > 0 && challenge.ExpiredAt(l.now(), l.ttl) {
		log.Debug().Str("kind", kind.String()).Msg("challenge expired")
		return models.Challenge{}, ErrChallengeRejected
	}

	return challenge, nil
}

func (l *challengeLedger) Sweep(ctx context.Context, olderThan time.Time) (int64, error) {
	return l.challenges.DeleteChallengesCreatedBefore(ctx, olderThan)
}
