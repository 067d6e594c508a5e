// internal/app/system/tasks/jobs.go
package tasks

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// SchemaRetryJob creates a job for a server that booted without its
// database. Each run pings; once the ping succeeds it runs ensure, and after
// ensure succeeds every later run is a no-op.
func SchemaRetryJob(logger *zap.Logger, interval time.Duration, ping, ensure func(ctx context.Context) error) Job {
	var done atomic.Bool
	return Job{
		Name:     "schema-retry",
		Interval: interval,
		Run: func(ctx context.Context) error {
			if done.Load() {
				return nil
			}
			if err := ping(ctx); err != nil {
				logger.Debug("database still unreachable", zap.Error(err))
				return nil
			}
			if err := ensure(ctx); err != nil {
				return err
			}
			done.Store(true)
			logger.Info("database reachable, schema ensured")
			return nil
		},
	}
}
