// internal/app/store/responsibilities/responsibilitystore.go
package responsibilitystore

import (
	"context"
	"strings"
	"time"

	"github.com/dalemusser/folio/internal/app/system/apperror"
	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the positions-of-responsibility collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new responsibility store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(models.ResponsibilitiesCollection)}
}

// List returns every entry in insertion order.
func (s *Store) List(ctx context.Context) ([]models.Responsibility, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Responsibility{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts an entry with a fresh ID and timestamps.
func (s *Store) Create(ctx context.Context, r models.Responsibility) (models.Responsibility, error) {
	r.Title = strings.TrimSpace(r.Title)
	r.Organization = strings.TrimSpace(r.Organization)
	if r.Title == "" || r.Organization == "" {
		return models.Responsibility{}, apperror.ValidationFailed("", "title and organization are required")
	}

	now := time.Now().UTC()
	r.ID = primitive.NewObjectID()
	r.CreatedAt = now
	r.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, r); err != nil {
		return models.Responsibility{}, err
	}
	return r, nil
}

// Update applies the non-nil fields of patch and refreshes updatedAt.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, patch models.ResponsibilityPatch) error {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = strings.TrimSpace(*patch.Title)
	}
	if patch.Organization != nil {
		set["organization"] = strings.TrimSpace(*patch.Organization)
	}
	if patch.Duration != nil {
		set["duration"] = *patch.Duration
	}
	if patch.Type != nil {
		set["type"] = *patch.Type
	}

	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("Responsibility")
	}
	return nil
}

// Delete removes an entry by ID.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperror.NotFound("Responsibility")
	}
	return nil
}
