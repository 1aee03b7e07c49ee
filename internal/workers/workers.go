package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-trust-keeper/internal/config"
	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the configured background jobs. A zero sweep interval
// disables the sweeper.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.SweepInterval > 0 {
		w.workers = append(w.workers, newSweepWorker(services.Sweeper, cfg.SweepInterval, logger))
	}
	return w
}

// Run starts every worker and waits until all of them returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() { worker.Run(ctx) })
	}
	wg.Wait()
}
