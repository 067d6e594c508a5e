// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/folio/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// DBDeps holds database/back-end dependencies for the app.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database
	// Degraded is set when the server was unreachable at boot. Reads fall
	// back to the embedded dataset until a background retry succeeds.
	Degraded bool
}

// ConnectDB opens the MongoDB client with the configured pool sizes and
// verifies it with a ping. The connection is established lazily by the
// driver, so the ping is what surfaces an unreachable server. A failed ping
// keeps the client and reports Degraded instead of failing the boot; only a
// client that cannot be built at all is an error.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetAppName("folio").
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)
	if opts.ServerSelectionTimeout == nil {
		// Request handlers bound store calls by timeouts.Short.
		opts.SetServerSelectionTimeout(timeouts.Short())
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeouts.Long())
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		logger.Error("MongoDB connect failed", zap.Error(err))
		return DBDeps{}, fmt.Errorf("connect mongo: %w", err)
	}

	deps := DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, timeouts.Long())
	defer pingCancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		logger.Warn("MongoDB unreachable, starting degraded with fallback content",
			zap.String("database", appCfg.MongoDatabase),
			zap.Error(err))
		deps.Degraded = true
		return deps, nil
	}

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase),
		zap.Uint64("max_pool_size", appCfg.MongoMaxPoolSize),
		zap.Uint64("min_pool_size", appCfg.MongoMinPoolSize),
	)
	return deps, nil
}
