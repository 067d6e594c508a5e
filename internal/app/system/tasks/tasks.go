// internal/app/system/tasks/tasks.go
package tasks

import (
	"context"
	"time"
)

// Job is a named unit of periodic background work.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}
