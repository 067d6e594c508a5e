package settingsstore_test

import (
	"errors"
	"testing"
	"time"

	settingsstore "github.com/dalemusser/folio/internal/app/store/settings"
	"github.com/dalemusser/folio/internal/app/system/apperror"
	"github.com/dalemusser/folio/internal/domain/models"
	"github.com/dalemusser/folio/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Get_NeverWritten(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := settingsstore.NewSocials(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, found, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if found {
		t.Error("expected found=false before the first write")
	}
}

func TestStore_Upsert_KeepsOneDocument(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := settingsstore.NewEducation(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first := models.EducationDoc{
		EducationData:        []models.EducationItem{{Title: "B.Tech", Institution: "IIIT", Score: "CGPA: 7.3", Duration: "2022 - 2026"}},
		ResponsibilitiesData: []models.ResponsibilityItem{},
	}
	if _, err := store.Upsert(ctx, first); err != nil {
		t.Fatalf("first Upsert failed: %v", err)
	}

	second := models.EducationDoc{
		EducationData: []models.EducationItem{{Title: "M.Tech", Institution: "IIT"}},
		ResponsibilitiesData: []models.ResponsibilityItem{
			{Title: "Treasurer", Organization: "Club", Duration: "2024", Type: models.ResponsibilityTreasurer},
		},
	}
	saved, err := store.Upsert(ctx, second)
	if err != nil {
		t.Fatalf("second Upsert failed: %v", err)
	}
	if saved.UpdatedAt == nil {
		t.Error("expected updatedAt to be set")
	}
	if len(saved.EducationData) != 1 || saved.EducationData[0].Title != "M.Tech" {
		t.Errorf("EducationData: got %+v", saved.EducationData)
	}

	if n := testutil.NewFixtures(t, db).Count(ctx, models.EducationCollection); n != 1 {
		t.Errorf("Count: got %d, want 1", n)
	}

	got, found, err := store.Get(ctx)
	if err != nil || !found {
		t.Fatalf("Get: found=%v err=%v", found, err)
	}
	if len(got.ResponsibilitiesData) != 1 || got.ResponsibilitiesData[0].Type != models.ResponsibilityTreasurer {
		t.Errorf("ResponsibilitiesData: got %+v", got.ResponsibilitiesData)
	}
}

func TestSkillsStore_ItemOperations(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := settingsstore.NewSkills(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Upsert(ctx, models.SkillsDoc{
		Languages:  []models.SkillItem{{Name: "Go", Icon: "go"}},
		Frameworks: []models.SkillItem{},
		Tools:      []models.SkillItem{},
		SoftSkills: []models.SkillItem{},
	}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	if err := store.AddItem(ctx, models.SkillLanguage, models.SkillItem{Name: "Rust", Icon: "rust"}); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if err := store.ReplaceItem(ctx, models.SkillLanguage, "Go", models.SkillItem{Name: "Go", Icon: "golang"}); err != nil {
		t.Fatalf("ReplaceItem failed: %v", err)
	}
	if err := store.RemoveItem(ctx, models.SkillLanguage, "Rust"); err != nil {
		t.Fatalf("RemoveItem failed: %v", err)
	}

	doc, _, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(doc.Languages) != 1 || doc.Languages[0].Icon != "golang" {
		t.Errorf("Languages: got %+v", doc.Languages)
	}

	if err := store.ReplaceItem(ctx, models.SkillTool, "Docker", models.SkillItem{Name: "Docker"}); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("ReplaceItem missing: got %v, want not found", err)
	}
	if err := store.RemoveItem(ctx, models.SkillLanguage, "Rust"); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("RemoveItem missing: got %v, want not found", err)
	}
	if err := store.AddItem(ctx, "database", models.SkillItem{Name: "Mongo"}); !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("AddItem unknown type: got %v, want validation error", err)
	}

	if n := testutil.NewFixtures(t, db).Count(ctx, models.SkillsCollection); n != 1 {
		t.Errorf("Count: got %d, want 1", n)
	}
}

func TestAdoptLegacy_MovesObjectIDKeyedDocument(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	legacyID := primitive.NewObjectID()
	_, err := db.Collection(models.SocialsCollection).InsertOne(ctx, bson.M{
		"_id":        legacyID,
		"GithubID":   "tashifkhan",
		"LeetCodeID": "khan-tashif",
		"updatedAt":  time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("InsertOne failed: %v", err)
	}

	moved, err := settingsstore.AdoptLegacy(ctx, db, models.SocialsCollection)
	if err != nil || !moved {
		t.Fatalf("AdoptLegacy: moved=%v err=%v", moved, err)
	}

	store := settingsstore.NewSocials(db)
	doc, found, err := store.Get(ctx)
	if err != nil || !found {
		t.Fatalf("Get: found=%v err=%v", found, err)
	}
	if doc.GithubID != "tashifkhan" || doc.LeetCodeID != "khan-tashif" {
		t.Errorf("adopted document: got %+v", doc)
	}
	var gone bson.M
	if err := fx.Find(ctx, models.SocialsCollection, legacyID, &gone); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("legacy document: got %v, want removed", err)
	}

	if _, err := store.Upsert(ctx, models.Socials{GithubID: "renamed"}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if n := fx.Count(ctx, models.SocialsCollection); n != 1 {
		t.Errorf("documents after upsert: got %d, want 1", n)
	}
}

func TestAdoptLegacy_NoOp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	moved, err := settingsstore.AdoptLegacy(ctx, db, models.SkillsCollection)
	if err != nil || moved {
		t.Fatalf("empty collection: moved=%v err=%v", moved, err)
	}

	store := settingsstore.NewSkills(db)
	if _, err := store.Upsert(ctx, models.SkillsDoc{Languages: []models.SkillItem{{Name: "Go"}}}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	_, err = db.Collection(models.SkillsCollection).InsertOne(ctx, bson.M{
		"_id":       primitive.NewObjectID(),
		"languages": bson.A{bson.M{"name": "Stale"}},
	})
	if err != nil {
		t.Fatalf("InsertOne failed: %v", err)
	}

	moved, err = settingsstore.AdoptLegacy(ctx, db, models.SkillsCollection)
	if err != nil || moved {
		t.Fatalf("keyed document present: moved=%v err=%v", moved, err)
	}
	doc, _, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(doc.Languages) != 1 || doc.Languages[0].Name != "Go" {
		t.Errorf("Languages: got %+v", doc.Languages)
	}
}
