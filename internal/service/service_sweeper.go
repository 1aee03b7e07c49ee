package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/internal/store"
)

// sweeper deletes challenges past their TTL and expired sign-in tokens.
// Correctness never depends on it; superseded and expired rows are already
// rejected on use.
type sweeper struct {
	ledger       ChallengeLedger
	tokens       store.VerificationTokenRepository
	challengeTTL time.Duration

	logger *logger.Logger
}

// NewSweeper constructs a [Sweeper].
func NewSweeper(ledger ChallengeLedger, tokens store.VerificationTokenRepository, challengeTTL time.Duration, logger *logger.Logger) Sweeper {
	return &sweeper{
		ledger:       ledger,
		tokens:       tokens,
		challengeTTL: challengeTTL,
		logger:       logger,
	}
}

func (s *sweeper) Sweep(ctx context.Context, now time.Time) error {
	challenges, errChallenges := s.ledger.Sweep(ctx, now.Add(-s.challengeTTL))
	tokens, errTokens := s.tokens.DeleteVerificationTokensExpiredBefore(ctx, now)

	if err := errors.Join(errChallenges, errTokens); err != nil {
		s.logger.Err(err).Msg("sweep finished with errors")
		return err
	}

	if challenges > 0 || tokens > 0 {
		s.logger.Debug().Int64("challenges", challenges).Int64("tokens", tokens).Msg("expired rows swept")
	}
	return nil
}
