package models

import "time"

// Responsibility types.
const (
	ResponsibilityTreasurer = "treasurer"
	ResponsibilitySecretary = "secretary"
	ResponsibilityExecutive = "executive"
	ResponsibilityMentor    = "mentor"
)

// ResponsibilityTypes lists every accepted ResponsibilityItem.Type value.
var ResponsibilityTypes = []string{
	ResponsibilityTreasurer,
	ResponsibilitySecretary,
	ResponsibilityExecutive,
	ResponsibilityMentor,
}

// EducationItem is one degree or school record.
type EducationItem struct {
	Title       string `bson:"title" json:"title"` // e.g. "B.Tech (ECE)"
	Institution string `bson:"institution" json:"institution"`
	Score       string `bson:"score" json:"score"`       // e.g. "CGPA: 7.3"
	Duration    string `bson:"duration" json:"duration"` // e.g. "Sept 2022 - June 2026"
}

// ResponsibilityItem is a position of responsibility.
type ResponsibilityItem struct {
	Title        string `bson:"title" json:"title"`
	Organization string `bson:"organization" json:"organization"`
	Duration     string `bson:"duration" json:"duration"`
	Type         string `bson:"type" json:"type"`
}

// EducationDoc is the single education document of a deployment.
type EducationDoc struct {
	EducationData        []EducationItem      `bson:"educationData" json:"educationData"`
	ResponsibilitiesData []ResponsibilityItem `bson:"responsibilitiesData" json:"responsibilitiesData"`
	UpdatedAt            *time.Time           `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
