package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/folio/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateProject inserts a project at the given position.
func (f *Fixtures) CreateProject(ctx context.Context, title string, position int) models.Project {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.Project{
		ID:           primitive.NewObjectID(),
		Position:     position,
		Title:        title,
		Description:  title + " description",
		Technologies: []string{"Go"},
		Status:       models.StatusInProgress,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := f.db.Collection(models.ProjectsCollection).InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test project: %v", err)
	}
	return p
}

// CreateNotableProject inserts a featured project.
func (f *Fixtures) CreateNotableProject(ctx context.Context, title string) models.NotableProject {
	f.t.Helper()

	p := models.NotableProject{
		ID:           primitive.NewObjectID(),
		Title:        title,
		ImageLink:    "https://example.com/" + title + ".png",
		Description:  title + " description",
		Technologies: []string{"Go"},
	}
	if _, err := f.db.Collection(models.NotableProjectsCollection).InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test notable project: %v", err)
	}
	return p
}

// CreateExperience inserts an experience entry starting at startDate.
func (f *Fixtures) CreateExperience(ctx context.Context, company, startDate string) models.Experience {
	f.t.Helper()

	now := time.Now().UTC()
	e := models.Experience{
		ID:           primitive.NewObjectID(),
		Title:        "Engineer",
		Company:      company,
		Location:     "Remote",
		StartDate:    startDate,
		Description:  []string{"<p>Built things</p>"},
		Technologies: []string{"Go"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := f.db.Collection(models.ExperienceCollection).InsertOne(ctx, e); err != nil {
		f.t.Fatalf("failed to create test experience: %v", err)
	}
	return e
}

// Find decodes the document with the given ID from collection into out.
// It returns mongo.ErrNoDocuments when the document is gone.
func (f *Fixtures) Find(ctx context.Context, collection string, id primitive.ObjectID, out any) error {
	f.t.Helper()
	return f.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(out)
}

// Count returns the number of documents in collection.
func (f *Fixtures) Count(ctx context.Context, collection string) int64 {
	f.t.Helper()
	n, err := f.db.Collection(collection).CountDocuments(ctx, bson.M{})
	if err != nil {
		f.t.Fatalf("failed to count %s: %v", collection, err)
	}
	return n
}
