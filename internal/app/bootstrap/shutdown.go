// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown stops background workers and limiters, then disconnects MongoDB.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	svcMu.Lock()
	s := svc
	svc = nil
	svcMu.Unlock()

	if s != nil {
		if s.schemaRetry != nil {
			s.schemaRetry.Stop()
		}
		s.statsLimiter.Stop()
		s.renderLimiter.Stop()
		s.loginLimiter.Stop()
	}

	if deps.MongoClient != nil {
		logger.Info("disconnecting MongoDB client")
		if err := deps.MongoClient.Disconnect(ctx); err != nil {
			logger.Error("MongoDB disconnect failed", zap.Error(err))
			return err
		}
	}
	return nil
}
