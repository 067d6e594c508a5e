package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Responsibility is a position of responsibility stored as its own record.
// Type is one of ResponsibilityTypes.
type Responsibility struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title        string             `bson:"title" json:"title"`
	Organization string             `bson:"organization" json:"organization"`
	Duration     string             `bson:"duration" json:"duration"`
	Type         string             `bson:"type" json:"type"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ResponsibilityPatch carries the fields of a partial update. Nil fields are
// left unchanged.
type ResponsibilityPatch struct {
	Title        *string `json:"title,omitempty"`
	Organization *string `json:"organization,omitempty"`
	Duration     *string `json:"duration,omitempty"`
	Type         *string `json:"type,omitempty"`
}
