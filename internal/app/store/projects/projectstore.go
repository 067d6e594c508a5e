// internal/app/store/projects/projectstore.go
package projectstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/folio/internal/app/system/apperror"
	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the project collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new project store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(models.ProjectsCollection)}
}

// List returns every project ordered by position. Ties keep insertion order.
func (s *Store) List(ctx context.Context) ([]models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Project{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a project. The store assigns the ID and timestamps; an
// empty status becomes In Progress and a position <= 0 appends the project
// after the current last one.
func (s *Store) Create(ctx context.Context, p models.Project) (models.Project, error) {
	if strings.TrimSpace(p.Title) == "" {
		return models.Project{}, apperror.ValidationFailed("title", "title is required")
	}

	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.Title = strings.TrimSpace(p.Title)
	if p.Status == "" {
		p.Status = models.StatusInProgress
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	if p.Position <= 0 {
		next, err := s.nextPosition(ctx)
		if err != nil {
			return models.Project{}, err
		}
		p.Position = next
	}

	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// nextPosition returns one past the highest stored position (1 when empty).
func (s *Store) nextPosition(ctx context.Context) (int, error) {
	var last struct {
		Position int `bson:"position"`
	}
	opts := options.FindOne().
		SetSort(bson.D{{Key: "position", Value: -1}}).
		SetProjection(bson.M{"position": 1})
	err := s.c.FindOne(ctx, bson.M{}, opts).Decode(&last)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return last.Position + 1, nil
}

// Update applies the non-nil fields of patch and refreshes updatedAt.
// Returns a not-found error when no project has the ID.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, patch models.ProjectPatch) error {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Position != nil {
		set["position"] = *patch.Position
	}
	if patch.Title != nil {
		set["title"] = strings.TrimSpace(*patch.Title)
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
	if patch.Status != nil && *patch.Status != "" {
		set["status"] = *patch.Status
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

	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("Project")
	}
	return nil
}

// Delete removes a project by ID.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperror.NotFound("Project")
	}
	return nil
}

// Reorder sets each listed project's position to its 1-based index in ids,
// in a single unordered bulk write. Projects not in ids keep their position.
// It is not atomic with concurrent single updates; the last write wins.
func (s *Store) Reorder(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, apperror.ValidationFailed("projectIds", "Valid project IDs array is required")
	}
	now := time.Now().UTC()
	writes := make([]mongo.WriteModel, 0, len(ids))
	for i, id := range ids {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": id}).
			SetUpdate(bson.M{"$set": bson.M{"position": i + 1, "updatedAt": now}}))
	}

	res, err := s.c.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return 0, err
	}
	if res.MatchedCount == 0 {
		return 0, apperror.NotFound("Projects")
	}
	return res.MatchedCount, nil
}
