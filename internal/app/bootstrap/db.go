// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	settingsstore "github.com/dalemusser/folio/internal/app/store/settings"
	"github.com/dalemusser/folio/internal/app/system/indexes"
	"github.com/dalemusser/folio/internal/app/system/validators"
	"github.com/dalemusser/folio/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureSchema creates the content collections with their JSON-schema
// validators, then the indexes, then moves singletons written under an
// ObjectID by older deployments onto the well-known key. Every step is
// idempotent. A degraded boot
// skips them; Startup retries once the database answers.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.Degraded {
		logger.Warn("schema setup deferred until MongoDB is reachable")
		return nil
	}
	return ensureSchema(ctx, deps.MongoDatabase, logger)
}

func ensureSchema(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	if err := validators.EnsureAll(ctx, db); err != nil {
		logger.Error("ensure validators failed", zap.Error(err))
		return fmt.Errorf("ensure validators: %w", err)
	}
	if err := indexes.EnsureAll(ctx, db); err != nil {
		logger.Error("ensure indexes failed", zap.Error(err))
		return fmt.Errorf("ensure indexes: %w", err)
	}
	for _, coll := range models.SingletonCollections {
		moved, err := settingsstore.AdoptLegacy(ctx, db, coll)
		if err != nil {
			logger.Error("adopt legacy singleton failed", zap.String("collection", coll), zap.Error(err))
			return fmt.Errorf("adopt legacy %s: %w", coll, err)
		}
		if moved {
			logger.Info("legacy singleton moved to well-known key", zap.String("collection", coll))
		}
	}
	logger.Info("schema ensured", zap.String("database", db.Name()))
	return nil
}
