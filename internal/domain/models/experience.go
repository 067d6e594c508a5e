package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Experience is a work history entry. StartDate and EndDate are kept as the
// strings the admin form sends (e.g. "2024-06"), which sort correctly.
type Experience struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title        string             `bson:"title" json:"title"`
	Company      string             `bson:"company" json:"company"`
	Location     string             `bson:"location" json:"location"`
	StartDate    string             `bson:"startDate" json:"startDate"`
	EndDate      string             `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Current      bool               `bson:"current" json:"current"`
	Description  []string           `bson:"description" json:"description"` // HTML-bearing, sanitized on write
	Technologies []string           `bson:"technologies" json:"technologies"`
	CompanyURL   string             `bson:"companyUrl,omitempty" json:"companyUrl,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ExperiencePatch carries the fields of a partial experience update.
type ExperiencePatch struct {
	Title        *string   `json:"title,omitempty"`
	Company      *string   `json:"company,omitempty"`
	Location     *string   `json:"location,omitempty"`
	StartDate    *string   `json:"startDate,omitempty"`
	EndDate      *string   `json:"endDate,omitempty"`
	Current      *bool     `json:"current,omitempty"`
	Description  *[]string `json:"description,omitempty"`
	Technologies *[]string `json:"technologies,omitempty"`
	CompanyURL   *string   `json:"companyUrl,omitempty"`
}
