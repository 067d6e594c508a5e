// internal/app/store/notableprojects/notableprojectstore.go
package notableprojectstore

import (
	"context"
	"strings"

	"github.com/dalemusser/folio/internal/app/system/apperror"
	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store provides access to the featured project collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new notable project store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(models.NotableProjectsCollection)}
}

// List returns every featured project in collection order.
func (s *Store) List(ctx context.Context) ([]models.NotableProject, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.NotableProject{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a featured project with a fresh ID.
func (s *Store) Create(ctx context.Context, p models.NotableProject) (models.NotableProject, error) {
	if strings.TrimSpace(p.Title) == "" {
		return models.NotableProject{}, apperror.ValidationFailed("title", "title is required")
	}
	p.ID = primitive.NewObjectID()
	p.Title = strings.TrimSpace(p.Title)
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.NotableProject{}, err
	}
	return p, nil
}

// Update applies the non-nil fields of patch.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, patch models.NotableProjectPatch) error {
	set := bson.M{}
	if patch.Title != nil {
		set["title"] = strings.TrimSpace(*patch.Title)
	}
	if patch.ImageLink != nil {
		set["imageLink"] = *patch.ImageLink
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Technologies != nil {
		techs := *patch.Technologies
		if techs == nil {
			techs = []string{}
		}
		set["technologies"] = techs
	}
	if patch.GithubLink != nil {
		set["githubLink"] = *patch.GithubLink
	}
	if patch.LiveLink != nil {
		set["liveLink"] = *patch.LiveLink
	}
	if patch.PlaystoreLink != nil {
		set["playstoreLink"] = *patch.PlaystoreLink
	}

	var (
		matched int64
		err     error
	)
	if len(set) == 0 {
		// Nothing to change; still report a missing record.
		matched, err = s.c.CountDocuments(ctx, bson.M{"_id": id})
	} else {
		var res *mongo.UpdateResult
		res, err = s.c.UpdateByID(ctx, id, bson.M{"$set": set})
		if res != nil {
			matched = res.MatchedCount
		}
	}
	if err != nil {
		return err
	}
	if matched == 0 {
		return apperror.NotFound("Notable project")
	}
	return nil
}

// Delete removes a featured project by ID.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperror.NotFound("Notable project")
	}
	return nil
}
