package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotableProject is a featured project card. It has no position; the
// collection's natural order is the display order.
type NotableProject struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title        string             `bson:"title" json:"title"`
	ImageLink    string             `bson:"imageLink" json:"imageLink"`
	Description  string             `bson:"description" json:"description"`
	Technologies []string           `bson:"technologies" json:"technologies"`

	GithubLink    string `bson:"githubLink,omitempty" json:"githubLink,omitempty"`
	LiveLink      string `bson:"liveLink,omitempty" json:"liveLink,omitempty"`
	PlaystoreLink string `bson:"playstoreLink,omitempty" json:"playstoreLink,omitempty"`
}

// NotableProjectPatch carries the fields of a partial notable project update.
type NotableProjectPatch struct {
	Title         *string   `json:"title,omitempty"`
	ImageLink     *string   `json:"imageLink,omitempty"`
	Description   *string   `json:"description,omitempty"`
	Technologies  *[]string `json:"technologies,omitempty"`
	GithubLink    *string   `json:"githubLink,omitempty"`
	LiveLink      *string   `json:"liveLink,omitempty"`
	PlaystoreLink *string   `json:"playstoreLink,omitempty"`
}
