package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

type Workers struct {
	workers []Worker
	wg      sync.WaitGroup

	logger *logger.Logger
}

// NewWorkers builds the background workers of the server.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewOTPSweeper(storages.OTPs, cfg.OTPSweepInterval, logger),
		},
		logger: logger,
	}
}

// Run starts every worker in its own goroutine and returns immediately.
// Workers stop when ctx is cancelled; use [Workers.Wait] to block until
// they all returned.
func (w *Workers) Run(ctx context.Context) {
	w.logger.Info().Int("count", len(w.workers)).Msg("starting workers")

	for _, worker := range w.workers {
		w.wg.Go(func() {
			worker.Run(ctx)
		})
	}
}

func (w *Workers) Wait() {
	w.wg.Wait()
	w.logger.Info().Msg("workers stopped")
}
