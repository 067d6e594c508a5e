// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"strings"

	"github.com/dalemusser/folio/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureAll creates collections (if missing) and tries to attach JSON-Schema
// validators. On servers that don't support collMod/validators (e.g. some
// DocumentDB versions), we log and skip gracefully.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	// helper: ensure collection exists (with truthful logging) and then validator (if provided)
	ensure := func(coll string, schema bson.M) {
		if _, err := ensureCollection(ctx, db, coll); err != nil {
			problems = append(problems, coll+": "+err.Error())
			return
		}
		if schema == nil {
			return
		}
		if err := setValidator(ctx, db, coll, schema); err != nil {
			// DocumentDB or other deployments may not support collMod/validators.
			if isNoSuchCommand(err) || isNotImplemented(err) {
				zap.L().Info("validator skipped (unsupported)", zap.String("collection", coll))
				return
			}
			problems = append(problems, coll+": "+err.Error())
		}
	}

	ensure(models.ProjectsCollection, projectsSchema())
	ensure(models.NotableProjectsCollection, notableProjectsSchema())
	ensure(models.ExperienceCollection, experienceSchema())
	ensure(models.ResponsibilitiesCollection, responsibilitiesSchema())

	// Singletons: one document under _id "default" (see settingsstore.AdoptLegacy).
	ensure(models.EducationCollection, educationSchema())
	ensure(models.SkillsCollection, skillsSchema())
	ensure(models.SocialsCollection, socialsSchema())

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* ---------------------- collection helpers & logging ---------------------- */

// collectionExists returns true when <name> already exists.
// Uses ListCollectionNames to avoid "created collection" log when it didn't.
func collectionExists(ctx context.Context, db *mongo.Database, name string) (bool, error) {
	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

// ensureCollection idempotently makes sure <name> exists.
// Returns created==true only if we actually created it.
func ensureCollection(ctx context.Context, db *mongo.Database, name string) (created bool, err error) {
	exists, listErr := collectionExists(ctx, db, name)
	if listErr == nil && exists {
		zap.L().Info("collection exists", zap.String("collection", name))
		return false, nil
	}
	// If listing failed, fall back to create-and-handle-race.
	if err := db.CreateCollection(ctx, name); err != nil {
		// NamespaceExists / already exists is fine (race or prior run).
		if isNamespaceExistsErr(err) {
			zap.L().Info("collection exists", zap.String("collection", name))
			return false, nil
		}
		zap.L().Warn("createCollection failed", zap.String("collection", name), zap.Error(err))
		return false, err
	}
	zap.L().Info("created collection", zap.String("collection", name))
	return true, nil
}

/* ------------------------------ validators ------------------------------- */

func setValidator(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	var out bson.M
	if err := db.RunCommand(ctx, cmd).Decode(&out); err != nil {
		return err
	}
	zap.L().Info("validator ensured", zap.String("collection", name))
	return nil
}

/* ------------------------- error helpers ------------------------- */

func isNamespaceExistsErr(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 48 || strings.Contains(strings.ToLower(ce.Message), "already exists")) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "already exists") || strings.Contains(s, "namespace exists")
}

func isNoSuchCommand(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 59 || strings.Contains(strings.ToLower(ce.Message), "no such command")) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "no such command")
}

func isNotImplemented(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 115 ||
		strings.Contains(strings.ToLower(ce.Message), "not implemented") ||
		strings.Contains(strings.ToLower(ce.Message), "not supported")) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "not implemented") || strings.Contains(s, "not supported")
}

/* ------------------------- JSON-Schema docs ---------------------- */

var (
	nonEmptyString = bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"}
	optString      = bson.M{"bsonType": bson.A{"string", "null"}}
	stringArray    = bson.M{"bsonType": bson.A{"array", "null"}, "items": bson.M{"bsonType": "string"}}
	number         = bson.M{"bsonType": bson.A{"int", "long", "double"}}
)

func enumOf(values []string) bson.A {
	out := bson.A{}
	for _, v := range values {
		out = append(out, v)
	}
	return out
}

func projectsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"title"},
			"properties": bson.M{
				"title":         nonEmptyString,
				"description":   bson.M{"bsonType": "string"},
				"position":      number,
				"technologies":  stringArray,
				"status":        bson.M{"enum": enumOf(models.ProjectStatuses)},
				"githubLink":    optString,
				"liveLink":      optString,
				"playstoreLink": optString,
				"createdAt":     bson.M{"bsonType": "date"},
				"updatedAt":     bson.M{"bsonType": "date"},
			},
		},
	}
}

func notableProjectsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"title"},
			"properties": bson.M{
				"title":         nonEmptyString,
				"imageLink":     optString,
				"description":   bson.M{"bsonType": "string"},
				"technologies":  stringArray,
				"githubLink":    optString,
				"liveLink":      optString,
				"playstoreLink": optString,
			},
		},
	}
}

func experienceSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"title", "company", "startDate"},
			"properties": bson.M{
				"title":        nonEmptyString,
				"company":      nonEmptyString,
				"location":     bson.M{"bsonType": "string"},
				"startDate":    nonEmptyString,
				"endDate":      optString,
				"current":      bson.M{"bsonType": "bool"},
				"description":  stringArray,
				"technologies": stringArray,
				"companyUrl":   optString,
			},
		},
	}
}

func responsibilitiesSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"title", "organization", "type"},
			"properties": bson.M{
				"title":        nonEmptyString,
				"organization": nonEmptyString,
				"duration":     bson.M{"bsonType": "string"},
				"type":         bson.M{"enum": enumOf(models.ResponsibilityTypes)},
			},
		},
	}
}

func educationSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"properties": bson.M{
				"educationData": bson.M{
					"bsonType": bson.A{"array", "null"},
					"items": bson.M{
						"bsonType": "object",
						"required": bson.A{"title"},
						"properties": bson.M{
							"title":       bson.M{"bsonType": "string"},
							"institution": bson.M{"bsonType": "string"},
							"score":       bson.M{"bsonType": "string"},
							"duration":    bson.M{"bsonType": "string"},
						},
					},
				},
				"responsibilitiesData": bson.M{
					"bsonType": bson.A{"array", "null"},
					"items": bson.M{
						"bsonType": "object",
						"required": bson.A{"title", "type"},
						"properties": bson.M{
							"title":        bson.M{"bsonType": "string"},
							"organization": bson.M{"bsonType": "string"},
							"duration":     bson.M{"bsonType": "string"},
							"type":         bson.M{"enum": enumOf(models.ResponsibilityTypes)},
						},
					},
				},
			},
		},
	}
}

func skillsSchema() bson.M {
	item := bson.M{
		"bsonType": bson.A{"array", "null"},
		"items": bson.M{
			"bsonType":   "object",
			"required":   bson.A{"name"},
			"properties": bson.M{"name": nonEmptyString},
		},
	}
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"properties": bson.M{
				"languages":  item,
				"frameworks": item,
				"tools":      item,
				"softSkills": item,
			},
		},
	}
}

func socialsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"properties": bson.M{
				"GithubID":   optString,
				"LeetCodeID": optString,
				"LinkedInID": optString,
				"InstaID":    optString,
				"TwitterID":  optString,
				"ResumeLink": optString,
			},
		},
	}
}
