// Package shared holds request helpers used by every content feature.
package shared

import (
	"strings"

	"github.com/dalemusser/folio/internal/app/system/apperror"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IDBody is the identifier part of an update or delete body. Both "_id" and
// "id" are accepted; "_id" wins.
type IDBody struct {
	ID    string `json:"_id"`
	AltID string `json:"id"`
}

// ObjectID parses the identifier. A missing or malformed id is a validation
// error naming the resource.
func (b IDBody) ObjectID(resource string) (primitive.ObjectID, error) {
	raw := strings.TrimSpace(b.ID)
	if raw == "" {
		raw = strings.TrimSpace(b.AltID)
	}
	return ParseID(resource, raw)
}

// ParseID parses a hex ObjectID.
func ParseID(resource, raw string) (primitive.ObjectID, error) {
	if raw == "" {
		return primitive.NilObjectID, apperror.ValidationFailed("_id", resource+" ID is required")
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, apperror.ValidationFailed("_id", "Invalid "+strings.ToLower(resource)+" ID")
	}
	return id, nil
}

// ParseIDs parses a list of hex ObjectIDs. The list must be non-empty.
func ParseIDs(field string, raw []string) ([]primitive.ObjectID, error) {
	if len(raw) == 0 {
		return nil, apperror.ValidationFailed(field, "Valid project IDs array is required")
	}
	ids := make([]primitive.ObjectID, 0, len(raw))
	for _, s := range raw {
		id, err := primitive.ObjectIDFromHex(strings.TrimSpace(s))
		if err != nil {
			return nil, apperror.ValidationFailed(field, "All project IDs must be valid: "+s)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
