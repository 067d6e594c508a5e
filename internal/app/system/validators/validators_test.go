package validators_test

import (
	"testing"

	"github.com/dalemusser/folio/internal/app/system/validators"
	"github.com/dalemusser/folio/internal/domain/models"
	"github.com/dalemusser/folio/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("First EnsureAll failed: %v", err)
	}
	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("Second EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_CreatesCollections(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		t.Fatalf("ListCollectionNames failed: %v", err)
	}
	collMap := make(map[string]bool)
	for _, name := range names {
		collMap[name] = true
	}

	for _, expected := range []string{
		models.ProjectsCollection,
		models.NotableProjectsCollection,
		models.ExperienceCollection,
		models.EducationCollection,
		models.SkillsCollection,
		models.SocialsCollection,
	} {
		if !collMap[expected] {
			t.Errorf("expected collection %q to exist", expected)
		}
	}
}

func TestProjectsValidator(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
	c := db.Collection(models.ProjectsCollection)

	tests := []struct {
		name    string
		doc     bson.M
		wantErr bool
	}{
		{"valid", bson.M{"title": "Crop Mate", "status": models.StatusCompleted, "position": 1, "technologies": bson.A{"Go"}}, false},
		{"null technologies", bson.M{"title": "Crop Mate", "technologies": nil}, false},
		{"missing title", bson.M{"status": models.StatusPlanned}, true},
		{"blank title", bson.M{"title": "   "}, true},
		{"bad status", bson.M{"title": "X", "status": "Abandoned"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.InsertOne(ctx, tt.doc)
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("insert failed: %v", err)
			}
		})
	}
}

func TestExperienceValidator_RequiredFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	_, err := db.Collection(models.ExperienceCollection).InsertOne(ctx, bson.M{"title": "Intern"})
	if err == nil {
		t.Error("expected validation error without company/startDate")
	}
}

func TestEducationValidator_ResponsibilityType(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	_, err := db.Collection(models.EducationCollection).InsertOne(ctx, bson.M{
		"_id": models.SingletonID,
		"responsibilitiesData": bson.A{
			bson.M{"title": "Lead", "type": "captain"},
		},
	})
	if err == nil {
		t.Error("expected validation error for unknown responsibility type")
	}
}

func TestResponsibilitiesValidator(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	coll := db.Collection(models.ResponsibilitiesCollection)
	if _, err := coll.InsertOne(ctx, bson.M{"title": "Mentor", "organization": "Club", "duration": "2024", "type": "mentor"}); err != nil {
		t.Fatalf("valid insert rejected: %v", err)
	}
	if _, err := coll.InsertOne(ctx, bson.M{"title": "Lead", "organization": "Club", "type": "captain"}); err == nil {
		t.Error("expected validation error for unknown type")
	}
	if _, err := coll.InsertOne(ctx, bson.M{"title": "Lead", "type": "mentor"}); err == nil {
		t.Error("expected validation error without organization")
	}
}
