package models

import "time"

// Skill type keys, as used by the ?type= filter and the item operations.
const (
	SkillLanguage  = "language"
	SkillFramework = "framework"
	SkillTool      = "tool"
	SkillSoft      = "softSkill"
)

// SkillTypes lists every accepted skill type key.
var SkillTypes = []string{SkillLanguage, SkillFramework, SkillTool, SkillSoft}

// SkillItem is the union of the four skill shapes. Each list only uses the
// fields that belong to it; the rest stay empty and are omitted on the wire.
type SkillItem struct {
	Name        string `bson:"name" json:"name"`
	Icon        string `bson:"icon,omitempty" json:"icon,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Category    string `bson:"category,omitempty" json:"category,omitempty"` // soft skills: "Soft Skills" | "Other Avocations"
}

// SkillsDoc is the single skills document of a deployment.
type SkillsDoc struct {
	Languages  []SkillItem `bson:"languages" json:"languages"`
	Frameworks []SkillItem `bson:"frameworks" json:"frameworks"`
	Tools      []SkillItem `bson:"tools" json:"tools"`
	SoftSkills []SkillItem `bson:"softSkills" json:"softSkills"`
	UpdatedAt  *time.Time  `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// SkillField maps a skill type key to its document field name.
// ok is false for unknown types.
func SkillField(skillType string) (field string, ok bool) {
	switch skillType {
	case SkillLanguage:
		return "languages", true
	case SkillFramework:
		return "frameworks", true
	case SkillTool:
		return "tools", true
	case SkillSoft:
		return "softSkills", true
	}
	return "", false
}

// List returns the list for the given skill type key.
func (d SkillsDoc) List(skillType string) ([]SkillItem, bool) {
	switch skillType {
	case SkillLanguage:
		return d.Languages, true
	case SkillFramework:
		return d.Frameworks, true
	case SkillTool:
		return d.Tools, true
	case SkillSoft:
		return d.SoftSkills, true
	}
	return nil, false
}
