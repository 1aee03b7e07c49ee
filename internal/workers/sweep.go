package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/internal/service"
)

// sweepWorker calls [service.Sweeper] once per interval.
type sweepWorker struct {
	sweeper  service.Sweeper
	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func newSweepWorker(sweeper service.Sweeper, interval time.Duration, logger *logger.Logger) *sweepWorker {
	return &sweepWorker{
		sweeper:  sweeper,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *sweepWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("sweeper started")
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("sweeper stopped")
			return
		case <-ticker.C:
			if err := s.sweeper.Sweep(ctx, s.now()); err != nil {
				s.logger.Err(err).Msg("sweep failed")
			}
		}
	}
}
