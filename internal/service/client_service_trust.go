package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-trust-keeper/internal/config"
	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/internal/store"
	"github.com/MKhiriev/go-trust-keeper/models"
)

type trustGate struct {
	states store.LocalTrustRepository
	ttl    time.Duration
	now    func() time.Time

	logger *logger.Logger
}

// NewTrustGate returns the [TrustGate] over the local trust record.
func NewTrustGate(states store.LocalTrustRepository, cfg config.ClientTrust, logger *logger.Logger) TrustGate {
	return &trustGate{
		states: states,
		ttl:    cfg.TTL,
		now:    time.Now,
		logger: logger,
	}
}

func (g *trustGate) Elevate(ctx context.Context, subjectID string) error {
	if subjectID == "" {
		return ErrInvalidDataProvided
	}

	if err := g.states.SaveTrustState(ctx, models.TrustState{SubjectID: subjectID, ElevatedAt: g.now().UTC()}); err != nil {
		return fmt.Errorf("save trust state: %w", err)
	}

	g.logger.WithSubject(subjectID).Info().Dur("ttl", g.ttl).Msg("device elevated")
	return nil
}

func (g *trustGate) IsElevated(ctx context.Context, subjectID string) bool {
	return g.Remaining(ctx, subjectID) > 0
}

func (g *trustGate) Remaining(ctx context.Context, subjectID string) time.Duration {
	state, err := g.states.GetTrustState(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return 0
	}
	if err != nil {
		g.logger.Err(err).Msg("reading trust state failed, clearing")
		g.clear(ctx)
		return 0
	}

	now := g.now()
	if !state.ValidAt(subjectID, now, g.ttl) {
		g.clear(ctx)
		return 0
	}

	return g.ttl - now.Sub(state.ElevatedAt)
}

func (g *trustGate) Clear(ctx context.Context) error {
	if err := g.states.DeleteTrustState(ctx); err != nil {
		return fmt.Errorf("delete trust state: %w", err)
	}
	return nil
}

func (g *trustGate) clear(ctx context.Context) {
	if err := g.Clear(ctx); err != nil {
		g.logger.Err(err).Msg("clearing trust state failed")
	}
}
