// Package timeouts holds the process-wide deadlines used with
// context.WithTimeout around store calls and outbound requests.
//
// Tiers:
//   - Ping: health checks
//   - Short: single store operations (the default for every content route)
//   - Medium: list reads, bulk reorder, README fetch and render
//   - Long: GitHub statistics (several upstream calls)
//   - Batch: the repository classifier job
package timeouts

import (
	"context"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Default tier values, used until Configure or ConfigureFromEnv runs.
const (
	DefaultPing   = 2 * time.Second
	DefaultShort  = 5 * time.Second
	DefaultMedium = 10 * time.Second
	DefaultLong   = 30 * time.Second
	DefaultBatch  = 60 * time.Second
)

type tier int

const (
	tierPing tier = iota
	tierShort
	tierMedium
	tierLong
	tierBatch
	numTiers
)

// tierNames are the environment suffixes read by ConfigureFromEnv.
var tierNames = [numTiers]string{"PING", "SHORT", "MEDIUM", "LONG", "BATCH"}

var defaults = [numTiers]time.Duration{DefaultPing, DefaultShort, DefaultMedium, DefaultLong, DefaultBatch}

var (
	mu     sync.RWMutex
	values = defaults
)

func get(t tier) time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return values[t]
}

// Ping returns the timeout for the /health database ping.
func Ping() time.Duration { return get(tierPing) }

// Short returns the timeout for a single store operation.
func Short() time.Duration { return get(tierShort) }

// Medium returns the timeout for bulk writes and single upstream fetches.
func Medium() time.Duration { return get(tierMedium) }

// Long returns the timeout for fan-out upstream work such as GitHub stats.
func Long() time.Duration { return get(tierLong) }

// Batch returns the timeout for a classifier run.
func Batch() time.Duration { return get(tierBatch) }

// Config holds one value per tier. Zero values keep the current setting.
type Config struct {
	Ping   time.Duration
	Short  time.Duration
	Medium time.Duration
	Long   time.Duration
	Batch  time.Duration
}

func (c Config) array() [numTiers]time.Duration {
	return [numTiers]time.Duration{c.Ping, c.Short, c.Medium, c.Long, c.Batch}
}

// Configure overrides timeouts. Call it during startup, before handlers are
// registered.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	for t, d := range cfg.array() {
		if d > 0 {
			values[t] = d
		}
	}
}

// Reset restores the defaults.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	values = defaults
}

// EnvPrefix is prepended to the tier name to form the environment variable
// read by ConfigureFromEnv (FOLIO_TIMEOUT_SHORT, ...).
const EnvPrefix = "FOLIO_TIMEOUT_"

// ConfigureFromEnv reads FOLIO_TIMEOUT_{PING,SHORT,MEDIUM,LONG,BATCH} as Go
// durations ("500ms", "2m"). Unset or invalid values are ignored.
// Returns the number of timeouts configured.
func ConfigureFromEnv() int {
	mu.Lock()
	defer mu.Unlock()

	configured := 0
	for t, name := range tierNames {
		v := os.Getenv(EnvPrefix + name)
		if v == "" {
			continue
		}
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			values[t] = d
			configured++
		}
	}
	return configured
}

// Current returns the active configuration, for startup logging.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{
		Ping:   values[tierPing],
		Short:  values[tierShort],
		Medium: values[tierMedium],
		Long:   values[tierLong],
		Batch:  values[tierBatch],
	}
}

// WithTimeout is context.WithTimeout whose cancel func logs a warning when
// the deadline was hit.
//
//	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Batch(), h.Log, "classify repositories")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
