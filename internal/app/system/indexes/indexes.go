// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.
Singleton collections are keyed by _id and need nothing beyond the default index.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureProjects(ctx, db); err != nil {
		problems = append(problems, "projects: "+err.Error())
	}
	if err := ensureNotableProjects(ctx, db); err != nil {
		problems = append(problems, "notable projects: "+err.Error())
	}
	if err := ensureExperience(ctx, db); err != nil {
		problems = append(problems, "experience: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Core helper: reconcile a set of desired indexes for one collection         */
/* -------------------------------------------------------------------------- */

type existingIndex struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique *bool  `bson:"unique,omitempty"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func sameBoolPtr(a, b *bool) bool {
	av := false
	bv := false
	if a != nil {
		av = *a
	}
	if b != nil {
		bv = *b
	}
	return av == bv
}

// Mongo/DocDB sometimes returns IndexOptionsConflict when an index with the
// same keys already exists under a different name (or options differ).
func isOptionsConflictErr(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "IndexOptionsConflict")
}

func listIndexes(ctx context.Context, coll *mongo.Collection) map[string]existingIndex {
	existing := map[string]existingIndex{} // sig -> index
	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		return existing
	}
	defer cur.Close(ctx)
	for cur.Next(ctx) {
		var idx existingIndex
		if err := cur.Decode(&idx); err != nil {
			zap.L().Warn("failed to decode existing index",
				zap.String("collection", coll.Name()),
				zap.Error(err))
			continue
		}
		existing[keySig(idx.Key)] = idx
	}
	return existing
}

// recreate drops an index by name and creates m in its place.
func recreate(ctx context.Context, coll *mongo.Collection, oldName string, m mongo.IndexModel) error {
	if _, err := coll.Indexes().DropOne(ctx, oldName); err != nil {
		return fmt.Errorf("drop %s: %w", oldName, err)
	}
	if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
		return fmt.Errorf("create: %w", err)
	}
	return nil
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	var errs []string

	for _, m := range models {
		var desiredName string
		var desiredUnique *bool
		if m.Options != nil {
			if m.Options.Name != nil {
				desiredName = *m.Options.Name
			}
			desiredUnique = m.Options.Unique
		}
		desiredSig := keySig(m.Keys.(bson.D))
		fields := []zap.Field{
			zap.String("collection", coll.Name()),
			zap.String("name", desiredName),
			zap.String("keys", desiredSig),
		}

		start := time.Now()
		zap.L().Info("ensuring index", fields...)

		ex, found := listIndexes(ctx, coll)[desiredSig]
		if !found {
			created, err := coll.Indexes().CreateOne(ctx, m)
			if err != nil && isOptionsConflictErr(err) {
				// Lost a race or the keys exist under options we did not see; look again.
				ex, found = listIndexes(ctx, coll)[desiredSig]
			}
			if !found {
				if err != nil {
					zap.L().Warn("index ensure failed", append(fields, zap.Error(err))...)
					errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
					continue
				}
				zap.L().Info("index ensured", append(fields,
					zap.String("created_name", created),
					zap.String("took", time.Since(start).String()))...)
				continue
			}
		}

		switch {
		case sameBoolPtr(desiredUnique, ex.Unique) && (desiredName == "" || ex.Name == desiredName):
			zap.L().Info("reusing existing index", append(fields,
				zap.String("took", time.Since(start).String()))...)
		default:
			// Name or options differ: drop and recreate with the desired shape.
			if err := recreate(ctx, coll, ex.Name, m); err != nil {
				zap.L().Warn("index recreate failed", append(fields, zap.Error(err))...)
				errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
				continue
			}
			zap.L().Info("index dropped and recreated", append(fields,
				zap.String("from", ex.Name),
				zap.String("took", time.Since(start).String()))...)
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Per-collection index sets                                                  */
/* -------------------------------------------------------------------------- */

func ensureProjects(ctx context.Context, db *mongo.Database) error {
	c := db.Collection(models.ProjectsCollection)
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			// GET /api/projects sorts by position; reorder rewrites it in bulk.
			Keys:    bson.D{{Key: "position", Value: 1}},
			Options: options.Index().SetName("idx_projects_position"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "position", Value: 1}},
			Options: options.Index().SetName("idx_projects_status_position"),
		},
	})
}

func ensureNotableProjects(ctx context.Context, db *mongo.Database) error {
	c := db.Collection(models.NotableProjectsCollection)
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "title", Value: 1}},
			Options: options.Index().SetName("idx_notable_title"),
		},
	})
}

func ensureExperience(ctx context.Context, db *mongo.Database) error {
	c := db.Collection(models.ExperienceCollection)
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "startDate", Value: -1}},
			Options: options.Index().SetName("idx_experience_startdate_desc"),
		},
	})
}
