package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"demandcast/internal/port"
)

// runTimeout bounds a single model comparison. The full suite on a maximal
// series finishes well under a minute; anything longer is stuck.
const runTimeout = 5 * time.Minute

// ForecastQueueConfig holds settings for the forecast queue worker.
type ForecastQueueConfig struct {
	PollInterval time.Duration
	Concurrency  int
}

// ForecastQueueWorker polls for pending forecast runs and dispatches them to
// the forecast service.
type ForecastQueueWorker struct {
	runRepo         port.RunRepository
	forecastService ForecastService
	cfg             ForecastQueueConfig
	logger          *zap.SugaredLogger
	wg              sync.WaitGroup
}

// NewForecastQueueWorker creates a new ForecastQueueWorker.
func NewForecastQueueWorker(runRepo port.RunRepository, forecastService ForecastService, cfg ForecastQueueConfig, logger *zap.SugaredLogger) *ForecastQueueWorker {
	return &ForecastQueueWorker{
		runRepo:         runRepo,
		forecastService: forecastService,
		cfg:             cfg,
		logger:          logger,
	}
}

// Start runs the polling loop until ctx is canceled. It blocks until all
// in-flight runs have finished.
func (w *ForecastQueueWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	sem := make(chan struct{}, w.cfg.Concurrency)

	w.logger.Infof("forecastQueueWorker: started (poll=%s, concurrency=%d)",
		w.cfg.PollInterval, w.cfg.Concurrency)

	for {
		select {
		case <-ctx.Done():
			w.logger.Infof("forecastQueueWorker: shutting down, waiting for in-flight runs...")
			w.wg.Wait()
			w.logger.Infof("forecastQueueWorker: shutdown complete")
			return
		case <-ticker.C:
			available := w.cfg.Concurrency - len(sem)
			if available <= 0 {
				continue
			}

			runs, err := w.runRepo.ClaimPending(ctx, available)
			if err != nil {
				if ctx.Err() != nil {
					// Context canceled during poll — exit gracefully
					continue
				}
				w.logger.Errorf("forecastQueueWorker: ClaimPending error: %v", err)
				continue
			}

			for i := range runs {
				run := runs[i] // copy for goroutine

				sem <- struct{}{} // acquire
				w.wg.Add(1)
				go func() {
					defer w.wg.Done()
					defer func() { <-sem }() // release

					// Use a fresh context independent of the poll context
					// so in-flight runs complete even during shutdown.
					runCtx, cancel := context.WithTimeout(context.Background(), runTimeout)
					defer cancel()

					w.logger.Infof("forecastQueueWorker: dispatching run %s (dataset %s)", run.ID, run.DatasetID)
					w.forecastService.ExecuteRun(runCtx, &run)
				}()
			}
		}
	}
}
