package timeouts_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dalemusser/folio/internal/app/system/timeouts"
	"go.uber.org/zap"
)

func TestConfigure_IgnoresZero(t *testing.T) {
	t.Cleanup(timeouts.Reset)

	timeouts.Configure(timeouts.Config{Short: 7 * time.Second})
	if got := timeouts.Short(); got != 7*time.Second {
		t.Errorf("Short: got %v, want 7s", got)
	}
	if got := timeouts.Medium(); got != timeouts.DefaultMedium {
		t.Errorf("Medium: got %v, want default %v", got, timeouts.DefaultMedium)
	}
}

func TestConfigureFromEnv(t *testing.T) {
	t.Cleanup(timeouts.Reset)
	t.Setenv("FOLIO_TIMEOUT_PING", "500ms")
	t.Setenv("FOLIO_TIMEOUT_BATCH", "2m")
	t.Setenv("FOLIO_TIMEOUT_LONG", "not-a-duration")

	if n := timeouts.ConfigureFromEnv(); n != 2 {
		t.Errorf("configured: got %d, want 2", n)
	}
	cur := timeouts.Current()
	if cur.Ping != 500*time.Millisecond {
		t.Errorf("Ping: got %v", cur.Ping)
	}
	if cur.Batch != 2*time.Minute {
		t.Errorf("Batch: got %v", cur.Batch)
	}
	if cur.Long != timeouts.DefaultLong {
		t.Errorf("Long: got %v, want default", cur.Long)
	}
}

func TestWithTimeout_Expires(t *testing.T) {
	ctx, cancel := timeouts.WithTimeout(context.Background(), time.Millisecond, zap.NewNop(), "test")
	defer cancel()
	<-ctx.Done()
	if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
		t.Errorf("ctx.Err: got %v", ctx.Err())
	}
}
