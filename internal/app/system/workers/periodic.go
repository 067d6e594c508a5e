// internal/app/system/workers/periodic.go
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/dalemusser/folio/internal/app/system/tasks"
	"go.uber.org/zap"
)

// Periodic runs a tasks.Job on a ticker until stopped.
type Periodic struct {
	job     tasks.Job
	log     *zap.Logger
	timeout time.Duration
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// NewPeriodic creates a worker for job. Each run gets its own context bounded
// by timeout.
func NewPeriodic(job tasks.Job, logger *zap.Logger, timeout time.Duration) *Periodic {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Periodic{
		job:     job,
		log:     logger,
		timeout: timeout,
		stopCh:  make(chan struct{}),
	}
}

// Start begins the background loop.
func (w *Periodic) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("worker started",
		zap.String("job", w.job.Name),
		zap.Duration("interval", w.job.Interval))
}

// Stop signals the worker to stop and waits for the current run to finish.
func (w *Periodic) Stop() {
	close(w.stopCh)
	w.wg.Wait()
	w.log.Info("worker stopped", zap.String("job", w.job.Name))
}

func (w *Periodic) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.once()
		}
	}
}

func (w *Periodic) once() {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	if err := w.job.Run(ctx); err != nil {
		w.log.Error("worker run failed", zap.String("job", w.job.Name), zap.Error(err))
	}
}
