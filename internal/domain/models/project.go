package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project status values.
const (
	StatusPlanned    = "Planned"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// ProjectStatuses lists every accepted Project.Status value.
var ProjectStatuses = []string{StatusPlanned, StatusInProgress, StatusCompleted}

// Project is an entry in the ordered project list. Position determines
// display order and is rewritten wholesale by reorder.
type Project struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Position     int                `bson:"position" json:"position"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Technologies []string           `bson:"technologies" json:"technologies"`
	Status       string             `bson:"status" json:"status"` // Planned | In Progress | Completed

	GithubLink    string `bson:"githubLink,omitempty" json:"githubLink,omitempty"`
	LiveLink      string `bson:"liveLink,omitempty" json:"liveLink,omitempty"`
	PlaystoreLink string `bson:"playstoreLink,omitempty" json:"playstoreLink,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ProjectPatch carries the fields of a partial project update.
// Nil fields are left untouched.
type ProjectPatch struct {
	Position      *int      `json:"position,omitempty"`
	Title         *string   `json:"title,omitempty"`
	Description   *string   `json:"description,omitempty"`
	Technologies  *[]string `json:"technologies,omitempty"`
	Status        *string   `json:"status,omitempty"`
	GithubLink    *string   `json:"githubLink,omitempty"`
	LiveLink      *string   `json:"liveLink,omitempty"`
	PlaystoreLink *string   `json:"playstoreLink,omitempty"`
}
