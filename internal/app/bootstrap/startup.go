// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"fmt"
	"sync"
	"time"

	statsfeature "github.com/dalemusser/folio/internal/app/features/stats"
	"github.com/dalemusser/folio/internal/app/resources"
	"github.com/dalemusser/folio/internal/app/system/auth"
	"github.com/dalemusser/folio/internal/app/system/githubapi"
	"github.com/dalemusser/folio/internal/app/system/leetcode"
	"github.com/dalemusser/folio/internal/app/system/ratelimit"
	"github.com/dalemusser/folio/internal/app/system/tasks"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
	"github.com/dalemusser/folio/internal/app/system/workers"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const (
	// statsRequestsPerMinute caps stats requests per client IP.
	statsRequestsPerMinute = 60
	// renderRequestsPerMinute caps markdown renders per client IP.
	renderRequestsPerMinute = 30
	// schemaRetryInterval is how often a degraded boot re-checks MongoDB.
	schemaRetryInterval = 30 * time.Second
)

// services holds the long-lived objects shared by BuildHandler and Shutdown.
type services struct {
	gate          *auth.Gate
	github        *githubapi.Client
	stats         *statsfeature.Handler
	statsLimiter  *ratelimit.Limiter
	renderLimiter *ratelimit.Limiter
	loginLimiter  *ratelimit.LoginLimiter
	schemaRetry   *workers.Periodic // nil unless the boot was degraded
}

var (
	svcMu sync.Mutex
	svc   *services
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. It parses
// the embedded fallback dataset, applies timeout overrides and, after a
// degraded boot, starts the worker that finishes schema setup once MongoDB
// answers.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if _, err := resources.Load(); err != nil {
		logger.Error("fallback dataset failed to load", zap.Error(err))
		return fmt.Errorf("load fallback dataset: %w", err)
	}

	if n := timeouts.ConfigureFromEnv(); n > 0 {
		cur := timeouts.Current()
		logger.Info("timeouts configured from environment",
			zap.Int("overrides", n),
			zap.Duration("ping", cur.Ping),
			zap.Duration("short", cur.Short),
			zap.Duration("medium", cur.Medium),
			zap.Duration("long", cur.Long),
			zap.Duration("batch", cur.Batch),
		)
	}

	s, err := newServices(coreCfg, appCfg, logger)
	if err != nil {
		return err
	}
	if deps.Degraded && deps.MongoClient != nil {
		job := tasks.SchemaRetryJob(logger, schemaRetryInterval,
			func(ctx context.Context) error { return deps.MongoClient.Ping(ctx, readpref.Primary()) },
			func(ctx context.Context) error { return ensureSchema(ctx, deps.MongoDatabase, logger) },
		)
		s.schemaRetry = workers.NewPeriodic(job, logger, timeouts.Batch())
		s.schemaRetry.Start()
	}

	svcMu.Lock()
	svc = s
	svcMu.Unlock()
	return nil
}

func newServices(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (*services, error) {
	tokens, err := auth.NewTokenService(appCfg.JWTSecret, appCfg.JWTIssuer, appCfg.TokenTTL)
	if err != nil {
		logger.Error("token service init failed", zap.Error(err))
		return nil, err
	}
	secure := coreCfg != nil && coreCfg.Env == "prod"
	gate, err := auth.NewGate(tokens, credentials(appCfg), appCfg.SessionKey, appCfg.CookieDomain, secure, logger)
	if err != nil {
		logger.Error("auth gate init failed", zap.Error(err))
		return nil, err
	}

	gh := githubapi.New(githubapi.Config{
		Token:      appCfg.GitHubToken,
		APIURL:     appCfg.GitHubAPIURL,
		GraphQLURL: appCfg.GitHubGraphQLURL,
		Timeout:    timeouts.Long(),
	}, logger)
	lc := leetcode.New(appCfg.LeetCodeGraphQLURL, timeouts.Medium())

	stats, err := statsfeature.NewHandler(gh, lc, appCfg.StatsCacheTTL, logger)
	if err != nil {
		logger.Error("stats cache init failed", zap.Error(err))
		return nil, err
	}

	return &services{
		gate:          gate,
		github:        gh,
		stats:         stats,
		statsLimiter:  ratelimit.New(statsRequestsPerMinute, time.Minute),
		renderLimiter: ratelimit.New(renderRequestsPerMinute, time.Minute),
		loginLimiter:  ratelimit.NewLoginLimiter(),
	}, nil
}

// currentServices returns the services built by Startup.
func currentServices() (*services, error) {
	svcMu.Lock()
	defer svcMu.Unlock()
	if svc == nil {
		return nil, fmt.Errorf("bootstrap: Startup has not run")
	}
	return svc, nil
}
