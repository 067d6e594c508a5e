package settingsstore

import (
	"context"
	"time"

	"github.com/dalemusser/folio/internal/app/system/apperror"
	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SkillsStore is the skills singleton plus per-item operations on its four
// lists.
type SkillsStore struct {
	*Store[models.SkillsDoc]
}

// NewSkills returns the skills document store.
func NewSkills(db *mongo.Database) *SkillsStore {
	return &SkillsStore{New[models.SkillsDoc](db, models.SkillsCollection)}
}

func skillField(skillType string) (string, error) {
	field, ok := models.SkillField(skillType)
	if !ok {
		return "", apperror.ValidationFailed("type", "Invalid skill type")
	}
	return field, nil
}

// AddItem appends item to the list for skillType, creating the document
// when absent.
func (s *SkillsStore) AddItem(ctx context.Context, skillType string, item models.SkillItem) error {
	field, err := skillField(skillType)
	if err != nil {
		return err
	}
	update := bson.M{
		"$push": bson.M{field: item},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	_, err = s.c.UpdateOne(ctx, singletonFilter(), update, options.Update().SetUpsert(true))
	return err
}

// ReplaceItem overwrites the first item named name in the skillType list.
func (s *SkillsStore) ReplaceItem(ctx context.Context, skillType, name string, item models.SkillItem) error {
	field, err := skillField(skillType)
	if err != nil {
		return err
	}
	filter := bson.M{"_id": models.SingletonID, field + ".name": name}
	update := bson.M{"$set": bson.M{
		field + ".$": item,
		"updatedAt":  time.Now().UTC(),
	}}
	res, err := s.c.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("Skill")
	}
	return nil
}

// RemoveItem deletes every item named name from the skillType list.
func (s *SkillsStore) RemoveItem(ctx context.Context, skillType, name string) error {
	field, err := skillField(skillType)
	if err != nil {
		return err
	}
	filter := bson.M{"_id": models.SingletonID, field + ".name": name}
	update := bson.M{
		"$pull": bson.M{field: bson.M{"name": name}},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	res, err := s.c.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("Skill")
	}
	return nil
}
