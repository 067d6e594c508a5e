// internal/app/store/settings/settingsstore.go
package settingsstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store holds one singleton document of type T under _id "default".
// Education, skills and socials each get their own Store.
type Store[T any] struct {
	c *mongo.Collection
}

// New creates a singleton store over the named collection.
func New[T any](db *mongo.Database, collection string) *Store[T] {
	return &Store[T]{c: db.Collection(collection)}
}

// NewEducation returns the education document store.
func NewEducation(db *mongo.Database) *Store[models.EducationDoc] {
	return New[models.EducationDoc](db, models.EducationCollection)
}

// NewSocials returns the social links document store.
func NewSocials(db *mongo.Database) *Store[models.Socials] {
	return New[models.Socials](db, models.SocialsCollection)
}

func singletonFilter() bson.M {
	return bson.M{"_id": models.SingletonID}
}

// Get returns the document. found is false when it has never been written.
func (s *Store[T]) Get(ctx context.Context) (doc T, found bool, err error) {
	err = s.c.FindOne(ctx, singletonFilter()).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return doc, false, nil
	}
	if err != nil {
		return doc, false, err
	}
	return doc, true, nil
}

// Upsert writes every field of doc, creating the document when absent, and
// returns the stored result. The collection never holds more than one
// document.
func (s *Store[T]) Upsert(ctx context.Context, doc T) (T, error) {
	var out T

	set, err := toSet(doc)
	if err != nil {
		return out, err
	}
	set["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	err = s.c.FindOneAndUpdate(ctx, singletonFilter(), bson.M{"$set": set}, opts).Decode(&out)
	return out, err
}

// AdoptLegacy moves a singleton stored under any other _id, such as the
// ObjectID older deployments wrote, to the well-known key. It does nothing
// when the keyed document exists or the collection is empty, and reports
// whether a document moved. The oldest legacy document wins.
func AdoptLegacy(ctx context.Context, db *mongo.Database, collection string) (bool, error) {
	c := db.Collection(collection)
	n, err := c.CountDocuments(ctx, singletonFilter())
	if err != nil || n > 0 {
		return false, err
	}

	var raw bson.M
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})
	err = c.FindOne(ctx, bson.M{"_id": bson.M{"$ne": models.SingletonID}}, opts).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	legacyID := raw["_id"]
	raw["_id"] = models.SingletonID
	if _, err := c.InsertOne(ctx, raw); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}
	if _, err := c.DeleteOne(ctx, bson.M{"_id": legacyID}); err != nil {
		return true, err
	}
	return true, nil
}

// toSet flattens doc into the top-level fields of a $set.
func toSet(doc any) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	set := bson.M{}
	if err := bson.Unmarshal(raw, &set); err != nil {
		return nil, err
	}
	delete(set, "_id")
	return set, nil
}
