package models

import "time"

// Socials is the single social-links document of a deployment.
type Socials struct {
	GithubID   string     `bson:"GithubID,omitempty" json:"GithubID,omitempty"`
	LeetCodeID string     `bson:"LeetCodeID,omitempty" json:"LeetCodeID,omitempty"`
	LinkedInID string     `bson:"LinkedInID,omitempty" json:"LinkedInID,omitempty"`
	InstaID    string     `bson:"InstaID,omitempty" json:"InstaID,omitempty"`
	TwitterID  string     `bson:"TwitterID,omitempty" json:"TwitterID,omitempty"`
	ResumeLink string     `bson:"ResumeLink,omitempty" json:"ResumeLink,omitempty"`
	UpdatedAt  *time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
