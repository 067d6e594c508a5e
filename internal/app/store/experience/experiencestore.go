// internal/app/store/experience/experiencestore.go
package experiencestore

import (
	"context"
	"strings"
	"time"

	"github.com/dalemusser/folio/internal/app/system/apperror"
	"github.com/dalemusser/folio/internal/app/system/htmlsanitize"
	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the experience collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new experience store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(models.ExperienceCollection)}
}

// List returns every entry, most recent start date first.
func (s *Store) List(ctx context.Context) ([]models.Experience, error) {
	opts := options.Find().SetSort(bson.D{{Key: "startDate", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Experience{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts an entry. Description HTML is sanitized and a current
// position never keeps an end date.
func (s *Store) Create(ctx context.Context, e models.Experience) (models.Experience, error) {
	if strings.TrimSpace(e.Title) == "" || strings.TrimSpace(e.Company) == "" || strings.TrimSpace(e.StartDate) == "" {
		return models.Experience{}, apperror.ValidationFailed("", "title, company and startDate are required")
	}

	now := time.Now().UTC()
	e.ID = primitive.NewObjectID()
	e.Description = htmlsanitize.SanitizeAll(e.Description)
	if e.Technologies == nil {
		e.Technologies = []string{}
	}
	if e.Current {
		e.EndDate = ""
	}
	e.CreatedAt = now
	e.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, e); err != nil {
		return models.Experience{}, err
	}
	return e, nil
}

// Update applies the non-nil fields of patch. Setting current clears the
// stored end date.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, patch models.ExperiencePatch) error {
	set := bson.M{"updatedAt": time.Now().UTC()}
	unset := bson.M{}

	if patch.Title != nil {
		set["title"] = strings.TrimSpace(*patch.Title)
	}
	if patch.Company != nil {
		set["company"] = strings.TrimSpace(*patch.Company)
	}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}
	if patch.StartDate != nil {
		set["startDate"] = *patch.StartDate
	}
	if patch.EndDate != nil {
		if *patch.EndDate == "" {
			unset["endDate"] = ""
		} else {
			set["endDate"] = *patch.EndDate
		}
	}
	if patch.Current != nil {
		set["current"] = *patch.Current
		if *patch.Current {
			delete(set, "endDate")
			unset["endDate"] = ""
		}
	}
	if patch.Description != nil {
		set["description"] = htmlsanitize.SanitizeAll(*patch.Description)
	}
	if patch.Technologies != nil {
		techs := *patch.Technologies
		if techs == nil {
			techs = []string{}
		}
		set["technologies"] = techs
	}
	if patch.CompanyURL != nil {
		set["companyUrl"] = *patch.CompanyURL
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	res, err := s.c.UpdateByID(ctx, id, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("Experience")
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
		return apperror.NotFound("Experience")
	}
	return nil
}
