// internal/app/resources/resources.go
package resources

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FS holds the fallback dataset served when the content store is unavailable.
//
//go:embed fallback/*.json
var FS embed.FS

// Dataset is the static copy of every content collection.
type Dataset struct {
	Projects         []models.Project
	NotableProjects  []models.NotableProject
	Experience       []models.Experience
	Education        models.EducationDoc
	Skills           models.SkillsDoc
	Socials          models.Socials
	Responsibilities []models.Responsibility // file order
}

var (
	loadOnce sync.Once
	dataset  Dataset
	loadErr  error
)

// Load parses the embedded dataset once. The files are compiled in, so an
// error here is a build defect; startup calls Load to surface it early.
func Load() (Dataset, error) {
	loadOnce.Do(func() {
		dataset, loadErr = parse()
	})
	return dataset, loadErr
}

func parse() (Dataset, error) {
	var d Dataset
	files := []struct {
		name string
		dst  any
	}{
		{"fallback/projects.json", &d.Projects},
		{"fallback/notable_projects.json", &d.NotableProjects},
		{"fallback/experience.json", &d.Experience},
		{"fallback/education.json", &d.Education},
		{"fallback/skills.json", &d.Skills},
		{"fallback/socials.json", &d.Socials},
		{"fallback/responsibilities.json", &d.Responsibilities},
	}
	for _, f := range files {
		b, err := FS.ReadFile(f.name)
		if err != nil {
			return Dataset{}, fmt.Errorf("read %s: %w", f.name, err)
		}
		if err := json.Unmarshal(b, f.dst); err != nil {
			return Dataset{}, fmt.Errorf("parse %s: %w", f.name, err)
		}
	}

	// Stable ids so the site can key list items.
	for i := range d.Projects {
		d.Projects[i].ID = fallbackID(1, i)
	}
	for i := range d.NotableProjects {
		d.NotableProjects[i].ID = fallbackID(2, i)
	}
	for i := range d.Experience {
		d.Experience[i].ID = fallbackID(3, i)
	}
	for i := range d.Responsibilities {
		d.Responsibilities[i].ID = fallbackID(4, i)
	}
	sort.SliceStable(d.Projects, func(i, j int) bool { return d.Projects[i].Position < d.Projects[j].Position })
	sort.SliceStable(d.Experience, func(i, j int) bool { return d.Experience[i].StartDate > d.Experience[j].StartDate })
	return d, nil
}

func fallbackID(kind byte, i int) primitive.ObjectID {
	var id primitive.ObjectID
	id[0] = 0xfa
	id[9] = kind
	id[10] = byte(i >> 8)
	id[11] = byte(i)
	return id
}

// The accessors below return copies; callers may modify them freely.

// Projects returns the fallback projects ordered by position.
func Projects() []models.Project {
	d, _ := Load()
	return append([]models.Project(nil), d.Projects...)
}

// NotableProjects returns the fallback featured projects.
func NotableProjects() []models.NotableProject {
	d, _ := Load()
	return append([]models.NotableProject(nil), d.NotableProjects...)
}

// Experience returns the fallback experience entries, newest first.
func Experience() []models.Experience {
	d, _ := Load()
	return append([]models.Experience{}, d.Experience...)
}

// Education returns the fallback education document.
func Education() models.EducationDoc {
	d, _ := Load()
	e := d.Education
	e.EducationData = append([]models.EducationItem(nil), e.EducationData...)
	e.ResponsibilitiesData = append([]models.ResponsibilityItem{}, e.ResponsibilitiesData...)
	return e
}

// Skills returns the fallback skills document.
func Skills() models.SkillsDoc {
	d, _ := Load()
	s := d.Skills
	s.Languages = append([]models.SkillItem(nil), s.Languages...)
	s.Frameworks = append([]models.SkillItem(nil), s.Frameworks...)
	s.Tools = append([]models.SkillItem(nil), s.Tools...)
	s.SoftSkills = append([]models.SkillItem(nil), s.SoftSkills...)
	return s
}

// Socials returns the fallback social links.
func Socials() models.Socials {
	d, _ := Load()
	return d.Socials
}

// Responsibilities returns the fallback positions of responsibility.
func Responsibilities() []models.Responsibility {
	d, _ := Load()
	return append([]models.Responsibility{}, d.Responsibilities...)
}
