package indexes_test

import (
	"context"
	"testing"

	"github.com/dalemusser/folio/internal/app/system/indexes"
	"github.com/dalemusser/folio/internal/domain/models"
	"github.com/dalemusser/folio/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func indexNames(t *testing.T, ctx context.Context, c *mongo.Collection) map[string]bool {
	t.Helper()
	cur, err := c.Indexes().List(ctx)
	if err != nil {
		t.Fatalf("List indexes failed: %v", err)
	}
	defer cur.Close(ctx)

	names := make(map[string]bool)
	for cur.Next(ctx) {
		var idx bson.M
		if err := cur.Decode(&idx); err != nil {
			continue
		}
		if name, ok := idx["name"].(string); ok {
			names[name] = true
		}
	}
	return names
}

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("First EnsureAll failed: %v", err)
	}
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("Second EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_CreatesIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	expected := map[string][]string{
		models.ProjectsCollection:        {"idx_projects_position", "idx_projects_status_position"},
		models.NotableProjectsCollection: {"idx_notable_title"},
		models.ExperienceCollection:      {"idx_experience_startdate_desc"},
	}
	for coll, want := range expected {
		names := indexNames(t, ctx, db.Collection(coll))
		for _, name := range want {
			if !names[name] {
				t.Errorf("expected index %q to exist on %q", name, coll)
			}
		}
	}
}

func TestEnsureAll_RenamesMisnamedIndex(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	c := db.Collection(models.ProjectsCollection)
	_, err := c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "position", Value: 1}},
		Options: options.Index().SetName("position_legacy"),
	})
	if err != nil {
		t.Fatalf("seed index: %v", err)
	}

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	names := indexNames(t, ctx, c)
	if names["position_legacy"] {
		t.Error("legacy index name should have been replaced")
	}
	if !names["idx_projects_position"] {
		t.Error("idx_projects_position missing after rename")
	}
}
