package models

// Collection names in the Portfolio database. They match the collections the
// site has always used, so existing data loads unchanged.
const (
	ProjectsCollection         = "Project Collection"
	NotableProjectsCollection  = "MajorProjects"
	ExperienceCollection       = "Experience Collection"
	EducationCollection        = "EducationalDesc"
	SkillsCollection           = "SkillsDesc"
	SocialsCollection          = "Socials"
	ResponsibilitiesCollection = "ResponsibilityDesc"
)

// SingletonID is the well-known _id of every singleton document.
const SingletonID = "default"

// SingletonCollections lists the collections holding one document each.
var SingletonCollections = []string{EducationCollection, SkillsCollection, SocialsCollection}
